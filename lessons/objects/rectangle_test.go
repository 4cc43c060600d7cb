package objects_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"govocab/lessons/objects"
)

func TestArea(t *testing.T) {
	tests := []struct {
		name string
		r    objects.Rectangle
		want float64
	}{
		{"unit square", objects.Rectangle{Width: 1, Height: 1}, 1},
		{"three by four", objects.Rectangle{Width: 3, Height: 4}, 12},
		{"zero value", objects.Rectangle{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Area())
		})
	}
}

func TestScaleMutatesInPlace(t *testing.T) {
	r := objects.Rectangle{Width: 3, Height: 4}
	r.Scale(2)
	assert.Equal(t, 6.0, r.Width)
	assert.Equal(t, 8.0, r.Height)
}

func TestAssignmentCopies(t *testing.T) {
	a := objects.Rectangle{Width: 3, Height: 4}
	b := a
	b.Scale(10)

	// b is an independent object; scaling it leaves a untouched.
	assert.Equal(t, 3.0, a.Width)
	assert.Equal(t, 30.0, b.Width)
}
