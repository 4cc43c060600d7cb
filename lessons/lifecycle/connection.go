package lifecycle

// Connection is a resource with an explicit open/closed lifecycle. Both
// fields are unexported; construction goes through NewConnection.
type Connection struct {
	addr string
	open bool
}

// NewConnection returns a connection to addr, already open. This is the
// constructor convention: a function, not syntax.
func NewConnection(addr string) *Connection {
	return &Connection{addr: addr, open: true}
}

// Addr reports the address the connection was built with.
func (c *Connection) Addr() string {
	return c.addr
}

// IsOpen reports whether Close has not yet been called.
func (c *Connection) IsOpen() bool {
	return c.open
}

// Close releases the connection. Closing an already-closed connection is
// a no-op, so a deferred Close is always safe.
func (c *Connection) Close() error {
	c.open = false
	return nil
}
