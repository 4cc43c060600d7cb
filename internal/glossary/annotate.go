package glossary

import (
	"go/token"
	"sort"

	"govocab/internal/catalog"
)

// Annotator transforms a catalog, attaching vocabulary information. The
// catalog is modified in place and returned to allow chaining.
type Annotator interface {
	Annotate(c *catalog.Catalog) *catalog.Catalog
}

// Apply runs the annotators in order.
func Apply(c *catalog.Catalog, annotators ...Annotator) *catalog.Catalog {
	for _, a := range annotators {
		c = a.Annotate(c)
	}
	return c
}

// TermTagger tags each lesson with the vocabulary its code actually
// exhibits, derived from the scanned facts rather than the manifest. A
// lesson whose facts trigger no rule falls back to its manifest term.
type TermTagger struct{}

func NewTermTagger() *TermTagger { return &TermTagger{} }

func (tg *TermTagger) Annotate(c *catalog.Catalog) *catalog.Catalog {
	for i := range c.Lessons {
		l := &c.Lessons[i]
		tags := deriveTerms(c, l.Slug)
		if len(tags) == 0 {
			if slug, ok := slugForName(l.Term); ok {
				tags = []string{slug}
			}
		}
		l.Terms = tags
	}
	return c
}

func deriveTerms(c *catalog.Catalog, slug string) []string {
	tagged := map[string]bool{}

	ifaces := c.LessonInterfaces(slug)
	types := c.LessonTypes(slug)

	if len(ifaces) > 0 {
		tagged["abstraction"] = true
	}
	for _, iface := range ifaces {
		if !token.IsExported(iface.Name) {
			tagged["visibility"] = true
		}
	}

	for _, typ := range types {
		if typ.IsStruct && len(typ.Methods) > 0 {
			tagged["objects"] = true
		}
		if !token.IsExported(typ.Name) {
			tagged["visibility"] = true
		}
		if typ.Generic {
			tagged["generics"] = true
		}

		var unexportedField, exportedMethod, hasClose bool
		for _, f := range typ.Fields {
			if f.Embedded {
				tagged["inheritance"] = true
			}
			if !f.Exported {
				unexportedField = true
			}
		}
		for _, m := range typ.Methods {
			if token.IsExported(m.Name) {
				exportedMethod = true
			} else {
				tagged["visibility"] = true
			}
			if m.Name == "Close" {
				hasClose = true
			}
		}
		if unexportedField && exportedMethod {
			tagged["encapsulation"] = true
		}
		if hasClose && len(typ.Constructors) > 0 {
			tagged["lifecycle"] = true
		}
	}

	// Polymorphism shows when one of the lesson's own interfaces is
	// satisfied by two or more of the lesson's own types.
	implCount := map[string]int{}
	for _, rel := range c.LessonRelations(slug) {
		if rel.Interface.Lesson == slug {
			implCount[rel.Interface.PkgPath+"."+rel.Interface.Name]++
		}
	}
	for _, n := range implCount {
		if n >= 2 {
			tagged["variant"] = true
			tagged["polymorphism"] = true
			tagged["dispatch"] = true
		}
	}

	var tags []string
	for term := range tagged {
		tags = append(tags, term)
	}
	sort.Slice(tags, func(i, j int) bool { return termIndex(tags[i]) < termIndex(tags[j]) })
	return tags
}

// CrossRefs links each lesson to the other lessons sharing a vocabulary
// term. Terms carried by more than half the corpus link everything to
// everything, so they are ignored. Runs after TermTagger.
type CrossRefs struct{}

func NewCrossRefs() *CrossRefs { return &CrossRefs{} }

func (cr *CrossRefs) Annotate(c *catalog.Catalog) *catalog.Catalog {
	carriers := map[string][]string{} // term slug → lesson slugs
	for _, l := range c.Lessons {
		for _, term := range l.Terms {
			carriers[term] = append(carriers[term], l.Slug)
		}
	}

	half := len(c.Lessons) / 2
	for i := range c.Lessons {
		l := &c.Lessons[i]
		related := map[string]bool{}
		for _, term := range l.Terms {
			others := carriers[term]
			if len(others) > half {
				continue
			}
			for _, slug := range others {
				if slug != l.Slug {
					related[slug] = true
				}
			}
		}

		l.Related = l.Related[:0]
		for slug := range related {
			l.Related = append(l.Related, slug)
		}
		sort.Slice(l.Related, func(a, b int) bool {
			return lessonIndex(c, l.Related[a]) < lessonIndex(c, l.Related[b])
		})
	}
	return c
}

func lessonIndex(c *catalog.Catalog, slug string) int {
	for i := range c.Lessons {
		if c.Lessons[i].Slug == slug {
			return i
		}
	}
	return len(c.Lessons)
}
