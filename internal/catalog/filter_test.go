package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticCatalog builds a small hand-wired catalog: two lessons, one
// unexported interface and type, one stdlib contract with a relation, and
// one stdlib orphan.
func syntheticCatalog() *Catalog {
	c := &Catalog{
		ModulePath: "fakevocab",
		Lessons: []Lesson{
			{Slug: "alpha", Title: "Alpha"},
			{Slug: "beta", Title: "Beta"},
		},
		Interfaces: []InterfaceDef{
			{Name: "Speaker", Lesson: "alpha", PkgPath: "fakevocab/lessons/alpha", PkgName: "alpha"},
			{Name: "quiet", Lesson: "alpha", PkgPath: "fakevocab/lessons/alpha", PkgName: "alpha"},
			{Name: "Closer", PkgPath: "io", PkgName: "io"},
			{Name: "Stringer", PkgPath: "fmt", PkgName: "fmt"},
		},
		Types: []TypeDef{
			{Name: "Dog", Lesson: "alpha", PkgPath: "fakevocab/lessons/alpha", PkgName: "alpha"},
			{Name: "cat", Lesson: "alpha", PkgPath: "fakevocab/lessons/alpha", PkgName: "alpha"},
			{Name: "Conn", Lesson: "beta", PkgPath: "fakevocab/lessons/beta", PkgName: "beta"},
		},
	}
	c.Relations = []Relation{
		{Type: &c.Types[0], Interface: &c.Interfaces[0]},
		{Type: &c.Types[1], Interface: &c.Interfaces[0]},
		{Type: &c.Types[0], Interface: &c.Interfaces[1]},
		{Type: &c.Types[2], Interface: &c.Interfaces[2], ViaPointer: true},
	}
	return c
}

func ifaceNames(c *Catalog) []string {
	var out []string
	for _, i := range c.Interfaces {
		out = append(out, i.Name)
	}
	return out
}

func typeNames(c *Catalog) []string {
	var out []string
	for _, t := range c.Types {
		out = append(out, t.Name)
	}
	return out
}

func relPairs(c *Catalog) []string {
	var out []string
	for _, r := range c.Relations {
		out = append(out, r.Type.Name+"->"+r.Interface.Name)
	}
	return out
}

func TestFilterCatalogDefaults(t *testing.T) {
	got := FilterCatalog(syntheticCatalog(), ScanOptions{})

	assert.ElementsMatch(t, []string{"Speaker"}, ifaceNames(got),
		"unexported and unused/stdlib interfaces must be pruned")
	assert.ElementsMatch(t, []string{"Dog", "Conn"}, typeNames(got),
		"corpus types stay even without relations; unexported ones go")
	assert.ElementsMatch(t, []string{"Dog->Speaker"}, relPairs(got))
	assert.Len(t, got.Lessons, 2)
}

func TestFilterCatalogIncludeStdlib(t *testing.T) {
	got := FilterCatalog(syntheticCatalog(), ScanOptions{IncludeStdlib: true})

	assert.ElementsMatch(t, []string{"Speaker", "Closer"}, ifaceNames(got),
		"stdlib contract with a relation stays; orphan Stringer still pruned")
	assert.ElementsMatch(t, []string{"Dog->Speaker", "Conn->Closer"}, relPairs(got))

	for _, rel := range got.Relations {
		if rel.Interface.Name == "Closer" {
			assert.True(t, rel.ViaPointer, "ViaPointer must survive filtering")
		}
	}
}

func TestFilterCatalogIncludeUnexported(t *testing.T) {
	got := FilterCatalog(syntheticCatalog(), ScanOptions{IncludeUnexported: true})

	assert.ElementsMatch(t, []string{"Speaker", "quiet"}, ifaceNames(got))
	assert.ElementsMatch(t, []string{"Dog", "cat", "Conn"}, typeNames(got))
	assert.ElementsMatch(t, []string{"Dog->Speaker", "cat->Speaker", "Dog->quiet"}, relPairs(got))
}

func TestFilterCatalogSlugScope(t *testing.T) {
	got := FilterCatalog(syntheticCatalog(), ScanOptions{Filter: "alpha", IncludeStdlib: true})

	require.Len(t, got.Lessons, 1)
	assert.Equal(t, "alpha", got.Lessons[0].Slug)
	assert.ElementsMatch(t, []string{"Dog"}, typeNames(got), "beta's types are out of scope")
	assert.ElementsMatch(t, []string{"Dog->Speaker"}, relPairs(got),
		"beta's stdlib relation is out of scope even with stdlib included")
}

func TestFilterCatalogSlugCrossLesson(t *testing.T) {
	c := &Catalog{
		ModulePath: "fakevocab",
		Lessons: []Lesson{
			{Slug: "alpha", Title: "Alpha"},
			{Slug: "beta", Title: "Beta"},
		},
		Interfaces: []InterfaceDef{
			{Name: "Speaker", Lesson: "alpha", PkgPath: "fakevocab/lessons/alpha", PkgName: "alpha"},
		},
		Types: []TypeDef{
			{Name: "Robot", Lesson: "beta", PkgPath: "fakevocab/lessons/beta", PkgName: "beta"},
		},
	}
	c.Relations = []Relation{
		{Type: &c.Types[0], Interface: &c.Interfaces[0]},
	}

	// Scoped to the type's lesson, the relation survives and pulls the
	// foreign contract in, the way stdlib contracts are pulled in.
	got := FilterCatalog(c, ScanOptions{Filter: "beta"})
	assert.ElementsMatch(t, []string{"Robot"}, typeNames(got))
	assert.ElementsMatch(t, []string{"Speaker"}, ifaceNames(got),
		"another lesson's contract stays while a kept relation reaches it")
	assert.ElementsMatch(t, []string{"Robot->Speaker"}, relPairs(got))
	require.Len(t, got.Relations, 1)
	assert.Same(t, &got.Interfaces[0], got.Relations[0].Interface)

	// Scoped to the interface's lesson, the satisfier belongs elsewhere:
	// a relation follows its concrete type, never its interface.
	got = FilterCatalog(c, ScanOptions{Filter: "alpha"})
	assert.ElementsMatch(t, []string{"Speaker"}, ifaceNames(got))
	assert.Empty(t, typeNames(got))
	assert.Empty(t, relPairs(got))
}

func TestFilterCatalogRewiresRelations(t *testing.T) {
	src := syntheticCatalog()
	got := FilterCatalog(src, ScanOptions{})

	require.Len(t, got.Relations, 1)
	rel := got.Relations[0]

	// The relation must point into the filtered slices, not the source's.
	require.Len(t, got.Types, 2)
	assert.True(t, rel.Type == &got.Types[0] || rel.Type == &got.Types[1])
	require.Len(t, got.Interfaces, 1)
	assert.Same(t, &got.Interfaces[0], rel.Interface)
}

func TestIsStdlib(t *testing.T) {
	assert.True(t, isStdlib("io"))
	assert.True(t, isStdlib("encoding/json"))
	assert.True(t, isStdlib("builtin"))
	assert.False(t, isStdlib("github.com/stretchr/testify"))
	assert.False(t, isStdlib("golang.org/x/tools/go/packages"))
}

func TestIsUnexported(t *testing.T) {
	assert.True(t, isUnexported("tally"))
	assert.True(t, isUnexported(""))
	assert.False(t, isUnexported("Speaker"))
	assert.False(t, isUnexported("error"), "builtin error counts as exported")
}
