package polymorphism_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"govocab/lessons/polymorphism"
)

func TestVariantSounds(t *testing.T) {
	assert.Equal(t, "Bark", polymorphism.Dog{}.Sound())
	assert.Equal(t, "Meow", polymorphism.Cat{}.Sound())
}

// Dispatch follows the value bound at call time, in both directions; no
// call ever sees the previous binding.
func TestRebindingNeverGoesStale(t *testing.T) {
	var s polymorphism.Speaker

	s = polymorphism.Dog{}
	assert.Equal(t, "Bark", s.Sound())

	s = polymorphism.Cat{}
	assert.Equal(t, "Meow", s.Sound())

	s = polymorphism.Dog{}
	assert.Equal(t, "Bark", s.Sound())
}

// The same call expression dispatches differently per element.
func TestDispatchAcrossSlice(t *testing.T) {
	speakers := []polymorphism.Speaker{
		polymorphism.Dog{},
		polymorphism.Cat{},
		polymorphism.Dog{},
	}

	var got []string
	for _, s := range speakers {
		got = append(got, s.Sound())
	}
	assert.Equal(t, []string{"Bark", "Meow", "Bark"}, got)
}

func TestVariantsSatisfySpeaker(t *testing.T) {
	// Compile-time facts restated as run-time assertions so the property
	// shows up in test output.
	var s polymorphism.Speaker

	s = polymorphism.Dog{}
	_, isDog := s.(polymorphism.Dog)
	assert.True(t, isDog)

	s = polymorphism.Cat{}
	_, isCat := s.(polymorphism.Cat)
	assert.True(t, isCat)
}
