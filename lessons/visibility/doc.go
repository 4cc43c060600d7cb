// Package visibility shows Go's entire access-modifier system: the case
// of the first letter.
//
// An identifier that starts with an upper-case letter is exported and
// reachable from other packages. One that starts with a lower-case letter
// is unexported and reachable only inside its own package. That single
// rule replaces public, private, protected, internal, and friend. There
// is no per-field keyword to forget and no way to widen access after the
// fact short of renaming.
//
// The boundary is the package, not the type. Any code in this package can
// touch Counter's total field and call its zero method; code in any other
// package sees only Add and Total. A "private to the type" scope does not
// exist, which is why Go packages stay small and focused: everything in
// the package is inside the fence.
//
// The rule applies uniformly to every kind of identifier. Counter the
// type is exported while its total field is not; Add is exported while
// zero is not; even the tally interface at the bottom of counter.go is
// unexported, usable as a contract inside the package but invisible
// outside it.
package visibility
