// Package abstraction introduces the interface, Go's one tool for naming
// behavior without implementing it.
//
// An abstract method in class terms is a declared operation with no body,
// forcing each concrete subclass to supply one. A Go interface is a type
// made of nothing but such declarations. Shape below promises a single
// operation, Area, and says nothing about how any particular shape
// computes it. You cannot instantiate Shape itself; only concrete types
// give the promise a body.
//
// The part with no classroom equivalent is that satisfaction is implicit.
// Circle never mentions Shape: no implements clause, no registration.
// Having an Area() float64 method with the right signature is the entire
// relationship, checked structurally by the compiler at the point a
// Circle is used as a Shape. The declaration
//
//	var _ Shape = Circle{}
//
// in shape.go forces that check at compile time inside this package; it
// is the idiomatic way to pin the relationship down when no other code
// here exercises it.
//
// Implicit satisfaction inverts the usual dependency direction: the
// interface can be declared next to the code that consumes it, after the
// concrete types already exist, and types from packages that have never
// heard of Shape still satisfy it. That is why Go interfaces stay small
// (one or two methods) and why the standard library is full of
// single-method contracts like io.Reader and io.Closer.
package abstraction
