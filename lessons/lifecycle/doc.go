// Package lifecycle covers what Go offers in place of constructors and
// destructors.
//
// # Construction
//
// There is no constructor syntax. When a type needs setup beyond its zero
// value, the convention is a plain function named New, or NewTypeName in
// packages exporting several types. NewConnection below is one: it takes
// the parameters, fills in the invariant (a connection starts open), and
// returns a value ready for use. Nothing enforces the convention (a
// caller can still write &Connection{}), which is why the previous lesson
// prefers zero values that are themselves valid. Use a constructor when
// "ready to use" genuinely requires work; skip it otherwise.
//
// # Destruction
//
// There are no destructors. Memory is the garbage collector's job, and
// every other resource is released explicitly by a method named Close
// (the io.Closer shape), typically scheduled at acquisition time:
//
//	conn := lifecycle.NewConnection("db:5432")
//	defer conn.Close()
//
// defer runs the call when the surrounding function returns, on every
// path out, which is as close to deterministic destruction as Go gets.
// Close returns an error because teardown can fail, and it is idempotent
// here because defer and an explicit early Close may both run.
package lifecycle
