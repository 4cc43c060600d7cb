// Package encapsulation shows state hidden behind methods.
//
// Encapsulation in the classroom sense means: the data is private, and
// the only way to change it is through operations the type's author
// wrote. In Go that falls out of the visibility rule from the previous
// lesson. Account's balance field is unexported, so from outside this
// package the only handles on it are Deposit and Balance. No importer can
// assign to the balance directly, print a struct literal with it set, or
// bypass whatever bookkeeping the methods perform.
//
// Account deliberately has no constructor. Its zero value, balance 0,
// is already a valid account, so var a Account is ready to use. Making
// the zero value useful is the Go idiom that most often removes the need
// for a constructor at all; the lifecycle lesson covers the case where
// one is genuinely needed.
//
// Note what is absent: no getter/setter pair per field. Balance is an
// accessor because reading the balance is part of the type's job, not
// because a style guide demands symmetry. If callers never needed to read
// it, the method would not exist.
package encapsulation
