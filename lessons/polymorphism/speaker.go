package polymorphism

import "fmt"

// Speaker is the abstraction: one operation, no body.
type Speaker interface {
	Sound() string
}

// Dog is a variant of Speaker. No fields: the type is the behavior.
type Dog struct{}

// Sound is the Dog body for Speaker's one operation.
func (Dog) Sound() string { return "Bark" }

// Cat is the other variant.
type Cat struct{}

// Sound is the Cat body.
func (Cat) Sound() string { return "Meow" }

// Announce is the single call site. It states which operation runs, never
// which body; the Speaker bound at call time decides that.
func Announce(s Speaker) {
	fmt.Println(s.Sound())
}
