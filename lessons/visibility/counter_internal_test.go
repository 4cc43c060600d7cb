package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Inside the package every identifier is fair game, including the
// unexported method and the unexported interface.
func TestZeroResets(t *testing.T) {
	var c Counter
	c.Add(5)
	c.zero()
	assert.Equal(t, 0, c.Total())
}

func TestCounterSatisfiesTally(t *testing.T) {
	var tl tally = &Counter{}
	tl.Add(3)
	tl.Add(4)
	assert.Equal(t, 7, tl.Total())
}
