package abstraction

import "math"

// Shape names one operation and supplies no body. Any type with a
// matching Area method satisfies it, with no declaration linking the two.
type Shape interface {
	Area() float64
}

// Circle is one concrete shape.
type Circle struct {
	Radius float64
}

// Area gives Shape's promise a body for circles.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

var _ Shape = Circle{}
