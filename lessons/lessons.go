// Package lessons is the table of contents of the teaching corpus: one
// entry per lesson package, in reading order. Each lesson under lessons/
// explains one piece of object-oriented vocabulary and shows its Go
// counterpart in a snippet small enough to read in one sitting.
//
// The manifest carries only presentation data (titles, summaries, order).
// Everything else (prose, declared types, satisfied contracts) lives in
// the lesson packages themselves and is extracted from them by the catalog.
package lessons

// Lesson is one manifest entry. Slug doubles as the lesson's package name
// and as its URL path segment in the browser.
type Lesson struct {
	Slug    string
	Title   string
	Term    string // the vocabulary item the lesson is named for
	Summary string // one line for the table of contents
}

// Dir returns the lesson's directory, relative to the module root.
func (l Lesson) Dir() string {
	return "lessons/" + l.Slug
}

var ordered = []Lesson{
	{
		Slug:    "objects",
		Title:   "Structs and Methods",
		Term:    "Classes & Objects",
		Summary: "A struct with methods is the class/object pairing: data plus the behavior that belongs to it.",
	},
	{
		Slug:    "visibility",
		Title:   "The Capital Letter",
		Term:    "Access Modifiers",
		Summary: "Exported versus unexported identifiers are Go's entire access-modifier system, and the package is the boundary.",
	},
	{
		Slug:    "encapsulation",
		Title:   "State Behind Methods",
		Term:    "Encapsulation",
		Summary: "Keep the field unexported and every change to it flows through the methods you wrote.",
	},
	{
		Slug:    "lifecycle",
		Title:   "New and Close",
		Term:    "Constructors & Destructors",
		Summary: "A New function builds values ready for use; a deferred Close is the teardown you schedule yourself.",
	},
	{
		Slug:    "inheritance",
		Title:   "Embedding, Not Subclassing",
		Term:    "Inheritance",
		Summary: "Struct embedding reuses code through promotion and shadowing, without creating a subtype.",
	},
	{
		Slug:    "abstraction",
		Title:   "The Interface Contract",
		Term:    "Abstraction",
		Summary: "An interface names an operation without implementing it; any type with the right methods satisfies it implicitly.",
	},
	{
		Slug:    "polymorphism",
		Title:   "One Call, Many Sounds",
		Term:    "Polymorphism",
		Summary: "A call through an interface value runs the implementation of whichever variant is bound at that moment.",
	},
	{
		Slug:    "generics",
		Title:   "Type Parameters",
		Term:    "Generic Templates",
		Summary: "Write a container once over a type parameter and let the compiler stamp out a typed copy per use.",
	},
}

// All returns the lessons in reading order. The slice is a copy; callers
// may reorder it freely.
func All() []Lesson {
	out := make([]Lesson, len(ordered))
	copy(out, ordered)
	return out
}

// BySlug returns the manifest entry for slug, if one exists.
func BySlug(slug string) (Lesson, bool) {
	for _, l := range ordered {
		if l.Slug == slug {
			return l, true
		}
	}
	return Lesson{}, false
}
