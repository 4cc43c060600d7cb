package diagram

import (
	"fmt"
	"go/types"
	"sort"
	"strings"

	"govocab/internal/catalog"
)

// Chapter is one page of the document's diagram deck.
type Chapter struct {
	Slug    string // lesson slug; empty for the overview
	Title   string
	Mermaid string
}

// Chapters renders the deck: chapter 0 is the overview of every contract
// in the catalog, followed by one chapter per lesson in manifest order.
func Chapters(c *catalog.Catalog, opts DiagramOptions) []Chapter {
	chapters := []Chapter{{
		Title:   "Overview",
		Mermaid: generateOverview(c, opts),
	}}
	for _, l := range c.Lessons {
		chapters = append(chapters, Chapter{
			Slug:    l.Slug,
			Title:   l.Title,
			Mermaid: GenerateMermaid(LessonView(c, l.Slug), opts),
		})
	}
	return chapters
}

// ChapterBySlug returns the chapter for a lesson slug.
func ChapterBySlug(chapters []Chapter, slug string) (Chapter, bool) {
	for _, ch := range chapters {
		if ch.Slug == slug {
			return ch, true
		}
	}
	return Chapter{}, false
}

// generateOverview produces a Mermaid classDiagram showing only interface
// nodes and interface-embedding arrows (--|>). No implementation blocks, no
// method bodies, no implementation arrows. This is the document's map of
// contracts.
func generateOverview(c *catalog.Catalog, opts DiagramOptions) string {
	var b strings.Builder

	ifaces := make([]catalog.InterfaceDef, len(c.Interfaces))
	copy(ifaces, c.Interfaces)
	sort.Slice(ifaces, func(i, j int) bool {
		if ifaces[i].PkgName != ifaces[j].PkgName {
			return ifaces[i].PkgName < ifaces[j].PkgName
		}
		return ifaces[i].Name < ifaces[j].Name
	})

	if opts.IncludeInit {
		b.WriteString("%%{init: {'theme': 'base', 'themeVariables': {'primaryColor': '#ffffff', 'primaryBorderColor': '#cccccc', 'primaryTextColor': '#000000', 'lineColor': '#555555'}}%%\n")
	}
	b.WriteString("classDiagram")
	if len(ifaces) > 0 {
		b.WriteString("\n")
		b.WriteString("    direction LR\n")
		b.WriteString("    classDef interfaceStyle fill:#2374ab,stroke:#1a5a8a,color:#fff,stroke-width:2px,font-weight:bold")
	}

	// Interface blocks: empty bodies with only the <<interface>> tag.
	for _, iface := range ifaces {
		id := NodeID(iface.PkgName, iface.Name)
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("    class %s {\n", id))
		b.WriteString("        <<interface>>\n")
		b.WriteString("    }")
	}

	embeddings := collectEmbeddingArrows(ifaces)
	if len(ifaces) > 0 && len(embeddings) > 0 {
		b.WriteString("\n")
	}
	for _, arrow := range embeddings {
		b.WriteString("\n")
		b.WriteString(arrow)
	}

	if len(ifaces) > 0 {
		b.WriteString("\n")
		for _, iface := range ifaces {
			id := NodeID(iface.PkgName, iface.Name)
			b.WriteString(fmt.Sprintf("\n    cssClass \"%s\" interfaceStyle", id))
		}
	}

	return b.String()
}

// collectEmbeddingArrows detects interface embedding and returns sorted
// arrow lines. For each interface with a non-nil TypeObj, it checks
// NumEmbeddeds() to find which other interfaces in the set it embeds.
func collectEmbeddingArrows(ifaces []catalog.InterfaceDef) []string {
	ifaceLookup := make(map[string]catalog.InterfaceDef, len(ifaces))
	for _, iface := range ifaces {
		ifaceLookup[iface.PkgPath+"."+iface.Name] = iface
	}

	var arrows []string
	for _, child := range ifaces {
		if child.TypeObj == nil {
			continue
		}
		for i := 0; i < child.TypeObj.NumEmbeddeds(); i++ {
			named, ok := child.TypeObj.EmbeddedType(i).(*types.Named)
			if !ok {
				continue
			}
			obj := named.Obj()
			if obj.Pkg() == nil {
				// Universe-scope type such as error.
				continue
			}
			parentKey := obj.Pkg().Path() + "." + obj.Name()
			parent, exists := ifaceLookup[parentKey]
			if !exists {
				continue
			}
			childID := NodeID(child.PkgName, child.Name)
			parentID := NodeID(parent.PkgName, parent.Name)
			if childID != parentID {
				arrows = append(arrows, fmt.Sprintf("    %s --|> %s", childID, parentID))
			}
		}
	}

	sort.Strings(arrows)
	return arrows
}
