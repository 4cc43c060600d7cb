package visibility

// Counter accumulates a running total. The type and its two methods are
// exported; the field holding the state is not.
type Counter struct {
	total int
}

// Add increases the total by n.
func (c *Counter) Add(n int) {
	c.total += n
}

// Total reports the accumulated value.
func (c *Counter) Total() int {
	return c.total
}

// zero resets the counter. Lower-case z: only this package can call it.
func (c *Counter) zero() {
	c.total = 0
}

// tally is an unexported contract. Other packages cannot name it, but the
// exported Counter still satisfies it for use inside this one.
type tally interface {
	Add(n int)
	Total() int
}

var _ tally = (*Counter)(nil)
