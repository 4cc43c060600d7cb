package glossary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govocab/internal/catalog"
)

func TestVocabulary(t *testing.T) {
	terms := Terms()
	require.Len(t, terms, 10)

	seen := map[string]bool{}
	for _, term := range terms {
		assert.False(t, seen[term.Slug], "duplicate slug %q", term.Slug)
		seen[term.Slug] = true
		assert.NotEmpty(t, term.Name, "%s: name", term.Slug)
		assert.NotEmpty(t, term.Definition, "%s: definition", term.Slug)
	}

	dispatch, ok := Lookup("dispatch")
	require.True(t, ok)
	assert.Contains(t, dispatch.Definition, "bound at call time")

	_, ok = Lookup("monads")
	assert.False(t, ok)

	terms[0].Slug = "mutated"
	again := Terms()
	assert.NotEqual(t, "mutated", again[0].Slug, "Terms must return a copy")
}

// taggerCatalog wires three synthetic lessons: one polymorphic, one
// encapsulating, one empty (fallback case).
func taggerCatalog() *catalog.Catalog {
	c := &catalog.Catalog{
		Lessons: []catalog.Lesson{
			{Slug: "speakers", Term: "Polymorphism"},
			{Slug: "vault", Term: "Encapsulation"},
			{Slug: "bare", Term: "Generic Templates"},
		},
		Interfaces: []catalog.InterfaceDef{
			{
				Name: "Speaker", Lesson: "speakers",
				PkgPath: "fakevocab/lessons/speakers", PkgName: "speakers",
				Methods: []catalog.MethodSig{{Name: "Sound", Signature: "Sound() string"}},
			},
		},
		Types: []catalog.TypeDef{
			{
				Name: "Dog", Lesson: "speakers", IsStruct: true,
				Methods: []catalog.MethodSig{{Name: "Sound", Signature: "Sound() string"}},
			},
			{
				Name: "Cat", Lesson: "speakers", IsStruct: true,
				Methods: []catalog.MethodSig{{Name: "Sound", Signature: "Sound() string"}},
			},
			{
				Name: "Account", Lesson: "vault", IsStruct: true,
				Fields:  []catalog.FieldSig{{Name: "balance", Type: "int"}},
				Methods: []catalog.MethodSig{{Name: "Deposit", PointerRecv: true}, {Name: "Balance", PointerRecv: true}},
			},
		},
	}
	c.Relations = []catalog.Relation{
		{Type: &c.Types[0], Interface: &c.Interfaces[0]},
		{Type: &c.Types[1], Interface: &c.Interfaces[0]},
	}
	return c
}

func TestTermTagger(t *testing.T) {
	c := NewTermTagger().Annotate(taggerCatalog())

	tests := []struct {
		slug string
		want []string
	}{
		// Two of the lesson's own types satisfying its own interface is
		// the polymorphism signature; tags come out in glossary order.
		{"speakers", []string{"objects", "abstraction", "variant", "polymorphism", "dispatch"}},
		{"vault", []string{"objects", "encapsulation"}},
		// No facts at all: fall back to the manifest term.
		{"bare", []string{"generics"}},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			l, ok := c.Lesson(tt.slug)
			require.True(t, ok)
			assert.Equal(t, tt.want, l.Terms)
		})
	}
}

func TestTermTaggerSingleImplementationIsNotPolymorphism(t *testing.T) {
	c := taggerCatalog()
	c.Relations = c.Relations[:1] // only Dog satisfies Speaker

	c = NewTermTagger().Annotate(c)

	l, ok := c.Lesson("speakers")
	require.True(t, ok)
	assert.Equal(t, []string{"objects", "abstraction"}, l.Terms)
}

func TestTermTaggerRuleDetails(t *testing.T) {
	tests := []struct {
		name string
		typ  catalog.TypeDef
		want []string
	}{
		{
			name: "embedding means inheritance",
			typ: catalog.TypeDef{
				Name: "Car", Lesson: "solo", IsStruct: true,
				Fields:  []catalog.FieldSig{{Name: "Engine", Type: "Engine", Exported: true, Embedded: true}},
				Methods: []catalog.MethodSig{{Name: "Describe"}},
			},
			want: []string{"objects", "inheritance"},
		},
		{
			name: "constructor plus Close means lifecycle",
			typ: catalog.TypeDef{
				Name: "Conn", Lesson: "solo", IsStruct: true,
				Fields:       []catalog.FieldSig{{Name: "addr", Type: "string"}},
				Methods:      []catalog.MethodSig{{Name: "Close", PointerRecv: true}},
				Constructors: []string{"NewConn"},
			},
			want: []string{"objects", "encapsulation", "lifecycle"},
		},
		{
			name: "type parameters mean generics",
			typ: catalog.TypeDef{
				Name: "Stack", Lesson: "solo", IsStruct: true, Generic: true,
				Methods: []catalog.MethodSig{{Name: "Push", PointerRecv: true}},
			},
			want: []string{"objects", "generics"},
		},
		{
			name: "unexported method means visibility",
			typ: catalog.TypeDef{
				Name: "Counter", Lesson: "solo", IsStruct: true,
				Methods: []catalog.MethodSig{{Name: "Total"}, {Name: "zero"}},
			},
			want: []string{"objects", "visibility"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &catalog.Catalog{
				Lessons: []catalog.Lesson{{Slug: "solo", Term: "Abstraction"}},
				Types:   []catalog.TypeDef{tt.typ},
			}
			c = NewTermTagger().Annotate(c)
			assert.Equal(t, tt.want, c.Lessons[0].Terms)
		})
	}
}

func TestCrossRefs(t *testing.T) {
	c := &catalog.Catalog{
		Lessons: []catalog.Lesson{
			{Slug: "a", Terms: []string{"abstraction", "objects"}},
			{Slug: "b", Terms: []string{"abstraction", "objects"}},
			{Slug: "c", Terms: []string{"generics", "objects"}},
			{Slug: "d", Terms: []string{"generics"}},
			{Slug: "e", Terms: []string{"objects"}},
		},
	}

	c = NewCrossRefs().Annotate(c)

	// "objects" is carried by 4 of 5 lessons and links nothing; the
	// narrow terms link their carriers pairwise.
	related := map[string][]string{}
	for _, l := range c.Lessons {
		related[l.Slug] = l.Related
	}
	assert.Equal(t, []string{"b"}, related["a"])
	assert.Equal(t, []string{"a"}, related["b"])
	assert.Equal(t, []string{"d"}, related["c"])
	assert.Equal(t, []string{"c"}, related["d"])
	assert.Empty(t, related["e"])
}

func TestApplyChains(t *testing.T) {
	c := Apply(taggerCatalog(), NewTermTagger(), NewCrossRefs())

	for _, l := range c.Lessons {
		assert.NotEmpty(t, l.Terms, "%s should be tagged after the pipeline", l.Slug)
	}
}
