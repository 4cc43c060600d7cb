package generics_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"govocab/lessons/generics"
)

func ExampleStack() {
	var s generics.Stack[string]
	s.Push("first")
	s.Push("second")

	top, _ := s.Pop()
	fmt.Println(top, s.Len())
	// Output: second 1
}

func TestLIFOOrder(t *testing.T) {
	var s generics.Stack[int]
	for i := 1; i <= 3; i++ {
		s.Push(i)
	}

	var got []int
	for {
		v, ok := s.Pop()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 2, 1}, got)
}

func TestPopEmpty(t *testing.T) {
	var s generics.Stack[string]

	v, ok := s.Pop()
	assert.False(t, ok)
	assert.Equal(t, "", v, "empty pop yields T's zero value")
	assert.Equal(t, 0, s.Len())
}

func TestZeroValueStackIsUsable(t *testing.T) {
	var s generics.Stack[float64]
	s.Push(1.5)
	assert.Equal(t, 1, s.Len())
}
