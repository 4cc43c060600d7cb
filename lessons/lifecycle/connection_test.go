package lifecycle_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govocab/lessons/lifecycle"
)

// The acquire-then-defer pairing is the whole lifecycle idiom.
func ExampleNewConnection() {
	work := func() {
		conn := lifecycle.NewConnection("db:5432")
		defer conn.Close()
		fmt.Println(conn.Addr(), conn.IsOpen())
	}
	work()
	// Output: db:5432 true
}

func TestNewConnectionStartsOpen(t *testing.T) {
	conn := lifecycle.NewConnection("db:5432")
	assert.True(t, conn.IsOpen())
	assert.Equal(t, "db:5432", conn.Addr())
}

func TestCloseIsIdempotent(t *testing.T) {
	conn := lifecycle.NewConnection("db:5432")

	require.NoError(t, conn.Close())
	assert.False(t, conn.IsOpen())

	// A second Close, as a defer would issue after an early explicit one.
	require.NoError(t, conn.Close())
	assert.False(t, conn.IsOpen())
}

// Close() error is the io.Closer shape, so connections plug into any code
// written against that stdlib contract.
func TestConnectionIsACloser(t *testing.T) {
	var c io.Closer = lifecycle.NewConnection("db:5432")
	assert.NoError(t, c.Close())
}
