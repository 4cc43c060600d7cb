// Package polymorphism is the payoff of the previous lessons: one call
// site with many behaviors, chosen at run time.
//
// # The cast
//
// Speaker is the abstraction: a single operation, Sound, with no body.
// Dog and Cat are its variants. Each is a zero-field struct (nothing to
// configure, nothing to mutate: the type itself IS the behavior) and
// each supplies its own Sound body. Neither mentions Speaker;
// satisfaction is implicit, as the abstraction lesson showed.
//
// # The dispatch
//
// Announce takes a Speaker and calls Sound on it. Which body runs is not
// decided by the text of Announce, which never changes, but by the
// concrete type inside the interface value at the moment of the call. An
// interface value is a (type, value) pair under the hood; the call s.Sound()
// looks up Sound in the pair's type and runs that one. Assign a Dog and
// the call barks; reassign the same variable to a Cat and the identical
// call meows. The example in example_test.go pins this down in a dozen
// lines, output and all.
//
// There is a second faithful rendering of the same idea: collapse Dog and
// Cat into a single struct carrying a kind tag, and switch on the tag
// inside Announce. The switch gathers every behavior into one place and
// must be reopened for each new variant; the interface turns that inside
// out, keeping each behavior beside its type and leaving Announce closed.
// That trade is why this lesson dispatches through the interface value:
// adding a Hamster means one new type with one method, and the text of
// Announce still never changes.
//
// # What rebinding means
//
// The variable is rebound, never the variant. Dog and Cat values are
// immutable after construction, so the only moving part is which pair the
// interface variable currently holds. After s = Cat{} there is no residue
// of the Dog: the next call dispatches on Cat, and the Dog value is
// simply gone. "Stale" behavior is impossible because the method is
// looked up at every call, not captured at binding time.
//
// This is the mechanism the catalog, the diagrams and the server in this
// repository are built to surface: when a lesson's diagram shows
//
//	Dog --|> Speaker
//	Cat --|> Speaker
//
// it is reporting exactly the two satisfaction facts that make Announce
// polymorphic.
package polymorphism
