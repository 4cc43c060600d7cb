package catalog

import "go/types"

// Lesson is one manifest entry joined with the facts scanned from its
// package: the prose, the source files, and (after annotation) the
// vocabulary it demonstrates.
type Lesson struct {
	Slug    string
	Title   string
	Term    string
	Summary string
	Dir     string // module-root-relative lesson directory
	PkgPath string

	Doc         string   // package doc comment text (the lesson prose)
	SourceFiles []string // module-root-relative snippet files, doc.go excluded

	Terms   []string // glossary slugs the lesson demonstrates (set by annotators)
	Related []string // slugs of lessons sharing a term (set by annotators)
}

// InterfaceDef represents a discovered interface. Lesson is the owning
// lesson's slug; interfaces pulled in from outside the corpus (stdlib,
// imports) carry an empty Lesson.
type InterfaceDef struct {
	Name       string
	Lesson     string
	PkgPath    string
	PkgName    string
	Methods    []MethodSig
	TypeObj    *types.Interface
	SourceFile string
}

// TypeDef represents a discovered named type.
type TypeDef struct {
	Name         string
	Lesson       string
	PkgPath      string
	PkgName      string
	IsStruct     bool
	Generic      bool // declared with type parameters
	Fields       []FieldSig
	Methods      []MethodSig
	Constructors []string // package functions returning this type (New…)
	TypeObj      *types.Named
	SourceFile   string
}

// FieldSig captures one struct field.
type FieldSig struct {
	Name     string
	Type     string
	Exported bool
	Embedded bool
}

// MethodSig captures a method name, its signature string, and whether it
// is declared on the pointer type.
type MethodSig struct {
	Name        string
	Signature   string
	PointerRecv bool
}

// Relation captures that a concrete type satisfies an interface.
type Relation struct {
	Type       *TypeDef
	Interface  *InterfaceDef
	ViaPointer bool // true if only *T (not T) satisfies the interface
}

// Catalog holds the complete scanned corpus.
type Catalog struct {
	ModulePath string
	Lessons    []Lesson
	Interfaces []InterfaceDef
	Types      []TypeDef
	Relations  []Relation
}

// ScanOptions controls scanning and filtering.
type ScanOptions struct {
	Filter            string // restrict to one lesson slug
	IncludeStdlib     bool   // keep relations to stdlib interfaces (io.Closer etc.)
	IncludeUnexported bool
}

// Lesson returns the manifest entry for slug.
func (c *Catalog) Lesson(slug string) (*Lesson, bool) {
	for i := range c.Lessons {
		if c.Lessons[i].Slug == slug {
			return &c.Lessons[i], true
		}
	}
	return nil, false
}

// LessonInterfaces returns the interfaces declared in the lesson, in
// catalog order.
func (c *Catalog) LessonInterfaces(slug string) []InterfaceDef {
	var out []InterfaceDef
	for _, iface := range c.Interfaces {
		if iface.Lesson == slug {
			out = append(out, iface)
		}
	}
	return out
}

// LessonTypes returns the named types declared in the lesson, in catalog
// order.
func (c *Catalog) LessonTypes(slug string) []TypeDef {
	var out []TypeDef
	for _, typ := range c.Types {
		if typ.Lesson == slug {
			out = append(out, typ)
		}
	}
	return out
}

// LessonRelations returns the relations whose concrete type belongs to the
// lesson. The interface side may live outside the lesson (an embedded or
// stdlib contract).
func (c *Catalog) LessonRelations(slug string) []Relation {
	var out []Relation
	for _, rel := range c.Relations {
		if rel.Type.Lesson == slug {
			out = append(out, rel)
		}
	}
	return out
}
