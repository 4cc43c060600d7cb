// Package generics closes the course with type parameters, Go's answer
// to templates.
//
// Before Go 1.18 a reusable container had two bad options: interface{}
// elements (losing the element type, gaining runtime assertions) or
// copy-paste per type. A type parameter gives the third option: Stack[T]
// is written once, and each instantiation (Stack[int], Stack[string])
// is a distinct, fully typed container. Push on a Stack[int] takes an
// int, not an any, and the compiler enforces it at the call site.
//
// The constraint after the parameter name says what the code may do with
// T. Stack only stores and returns elements, so the loosest constraint,
// any, suffices. A Min[T] would need constraints.Ordered; methods it
// doesn't use stay unavailable.
//
// Pop returns (T, bool) rather than pointers or panics: the comma-ok
// shape the language uses for map lookups and type assertions. On an
// empty stack the T half is the zero value of whatever T is; the `var
// zero T` declaration is the idiom for naming it, since there is no
// literal for "zero of an unknown type".
//
// Note what this lesson does not use: interfaces. Generics and interfaces
// both abstract over types, but at different times. The polymorphism
// lesson's dispatch happens at run time, value by value; a type parameter
// is resolved entirely at compile time. Reach for generics when the types
// vary but the behavior is identical, and for interfaces when the
// behavior itself must vary.
package generics
