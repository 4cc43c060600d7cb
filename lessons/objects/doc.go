// Package objects introduces the struct-with-methods pairing that plays
// the role of classes and objects.
//
// # What
//
// In class-based languages a class bundles fields and the functions that
// operate on them, and an object is one live instance of that bundle. Go
// splits the bundle into two declarations that sit side by side: a struct
// type holds the fields, and methods declared on that type hold the
// behavior. Rectangle below is the whole pattern. Its fields describe one
// rectangle; Area and Scale are the operations that belong to it.
//
// # Instances
//
// There is no `new Rectangle(3, 4)` ceremony. A composite literal
// Rectangle{Width: 3, Height: 4} is an instance, and so is the zero value
// Rectangle{}: every struct value is an object from the moment it
// exists. Two literals are two independent objects; assigning one to
// another copies the fields.
//
// # Receivers
//
// The receiver is the method's view of the instance, written before the
// method name instead of arriving as an implicit `this`. Area takes a
// value receiver: it reads the rectangle and a copy suffices. Scale takes
// a pointer receiver: it must write Width and Height back, so it needs
// the caller's rectangle rather than a copy. That choice, value or
// pointer, is the closest thing Go has to a const method annotation, and
// it is visible in the signature rather than buried in a keyword.
package objects
