package objects

// Rectangle is a plain data type with behavior attached. The struct
// declares what a rectangle is; the methods below declare what one can do.
type Rectangle struct {
	Width  float64
	Height float64
}

// Area reads the rectangle, so a value receiver (a copy) is enough.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Scale multiplies both sides by f in place. Writing back to the caller's
// rectangle requires a pointer receiver.
func (r *Rectangle) Scale(f float64) {
	r.Width *= f
	r.Height *= f
}
