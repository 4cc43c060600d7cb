// Package glossary holds the document's vocabulary and the annotators
// that attach it to the scanned catalog.
package glossary

// Term is one vocabulary entry: the classroom word and what it means in
// this document's Go reading.
type Term struct {
	Slug       string
	Name       string
	Definition string
}

var vocabulary = []Term{
	{
		Slug:       "objects",
		Name:       "Classes & Objects",
		Definition: "A bundle of data and the behavior that belongs to it; in Go, a struct type with methods, and every value of it is an object.",
	},
	{
		Slug:       "visibility",
		Name:       "Access Modifiers",
		Definition: "Rules deciding which code may reach an identifier; in Go, upper-case means exported, lower-case means package-private, and the package is the boundary.",
	},
	{
		Slug:       "encapsulation",
		Name:       "Encapsulation",
		Definition: "State reachable only through the operations its author wrote; in Go, unexported fields behind exported methods.",
	},
	{
		Slug:       "lifecycle",
		Name:       "Constructors & Destructors",
		Definition: "The setup and teardown ends of a value's life; in Go, a New function and an explicit, usually deferred, Close.",
	},
	{
		Slug:       "inheritance",
		Name:       "Inheritance",
		Definition: "Reusing one type's behavior in another; in Go, struct embedding with method promotion, deliberately without subtyping.",
	},
	{
		Slug:       "abstraction",
		Name:       "Abstraction",
		Definition: "A named behavioral contract that declares an operation without fixing its implementation; in Go, an interface, satisfied implicitly.",
	},
	{
		Slug:       "variant",
		Name:       "Variant",
		Definition: "A concrete realization of an abstraction whose behavior is fixed at construction; each variant supplies its own body for the contract's operations.",
	},
	{
		Slug:       "polymorphism",
		Name:       "Polymorphism",
		Definition: "One call site, many behaviors: the same operation invoked through an abstraction runs a different body per variant.",
	},
	{
		Slug:       "dispatch",
		Name:       "Dispatch",
		Definition: "Selecting which variant's implementation runs, decided by the value bound at call time rather than the declared type of the reference.",
	},
	{
		Slug:       "generics",
		Name:       "Generic Templates",
		Definition: "Code written once over a type parameter, with each instantiation fixed to a concrete type at compile time.",
	},
}

// Terms returns the vocabulary in document order. The slice is a copy.
func Terms() []Term {
	out := make([]Term, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// Lookup returns the term with the given slug.
func Lookup(slug string) (Term, bool) {
	for _, t := range vocabulary {
		if t.Slug == slug {
			return t, true
		}
	}
	return Term{}, false
}

// slugForName maps a manifest term name ("Generic Templates") back to its
// glossary slug.
func slugForName(name string) (string, bool) {
	for _, t := range vocabulary {
		if t.Name == name {
			return t.Slug, true
		}
	}
	return "", false
}

// termIndex gives the document order of a slug, for sorting tag lists.
func termIndex(slug string) int {
	for i, t := range vocabulary {
		if t.Slug == slug {
			return i
		}
	}
	return len(vocabulary)
}
