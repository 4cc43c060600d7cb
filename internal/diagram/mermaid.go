package diagram

import (
	"fmt"
	"go/token"
	"sort"
	"strings"

	"govocab/internal/catalog"
)

// DiagramOptions controls Mermaid diagram generation.
type DiagramOptions struct {
	MaxMethodsPerBox int  // default 5, 0 means unlimited
	IncludeInit      bool // include %%{init:}%% directive (for standalone .mmd files)
}

// DefaultDiagramOptions returns sensible defaults for diagram generation.
func DefaultDiagramOptions() DiagramOptions {
	return DiagramOptions{MaxMethodsPerBox: 5}
}

// View is the slice of the catalog one diagram shows.
type View struct {
	Interfaces []catalog.InterfaceDef
	Types      []catalog.TypeDef
	Relations  []catalog.Relation
}

// CatalogView covers the whole filtered catalog.
func CatalogView(c *catalog.Catalog) View {
	return View{
		Interfaces: c.Interfaces,
		Types:      c.Types,
		Relations:  c.Relations,
	}
}

// LessonView covers one lesson: its own types and interfaces, the
// relations its types participate in, and any outside interfaces those
// relations reach (an embedded or stdlib contract satisfied by a lesson
// type).
func LessonView(c *catalog.Catalog, slug string) View {
	v := View{
		Interfaces: c.LessonInterfaces(slug),
		Types:      c.LessonTypes(slug),
		Relations:  c.LessonRelations(slug),
	}

	seen := make(map[string]bool, len(v.Interfaces))
	for _, iface := range v.Interfaces {
		seen[iface.PkgPath+"."+iface.Name] = true
	}
	for _, rel := range v.Relations {
		key := rel.Interface.PkgPath + "." + rel.Interface.Name
		if !seen[key] {
			seen[key] = true
			v.Interfaces = append(v.Interfaces, *rel.Interface)
		}
	}
	return v
}

// GenerateMermaid produces a Mermaid classDiagram string for a view.
func GenerateMermaid(view View, opts DiagramOptions) string {
	var b strings.Builder

	// Sort interfaces deterministically by (pkgName, name).
	ifaces := make([]catalog.InterfaceDef, len(view.Interfaces))
	copy(ifaces, view.Interfaces)
	sort.Slice(ifaces, func(i, j int) bool {
		if ifaces[i].PkgName != ifaces[j].PkgName {
			return ifaces[i].PkgName < ifaces[j].PkgName
		}
		return ifaces[i].Name < ifaces[j].Name
	})

	// Sort types deterministically by (pkgName, name).
	typs := make([]catalog.TypeDef, len(view.Types))
	copy(typs, view.Types)
	sort.Slice(typs, func(i, j int) bool {
		if typs[i].PkgName != typs[j].PkgName {
			return typs[i].PkgName < typs[j].PkgName
		}
		return typs[i].Name < typs[j].Name
	})

	// Sort relations deterministically by (type name, interface name).
	rels := make([]catalog.Relation, len(view.Relations))
	copy(rels, view.Relations)
	sort.Slice(rels, func(i, j int) bool {
		typeKeyI := rels[i].Type.PkgName + "_" + rels[i].Type.Name
		typeKeyJ := rels[j].Type.PkgName + "_" + rels[j].Type.Name
		if typeKeyI != typeKeyJ {
			return typeKeyI < typeKeyJ
		}
		ifaceKeyI := rels[i].Interface.PkgName + "_" + rels[i].Interface.Name
		ifaceKeyJ := rels[j].Interface.PkgName + "_" + rels[j].Interface.Name
		return ifaceKeyI < ifaceKeyJ
	})

	// Header + style definitions.
	if opts.IncludeInit {
		b.WriteString("%%{init: {'theme': 'base', 'themeVariables': {'primaryColor': '#ffffff', 'primaryBorderColor': '#cccccc', 'primaryTextColor': '#000000', 'lineColor': '#555555'}}%%\n")
	}
	b.WriteString("classDiagram")
	if len(ifaces) > 0 || len(typs) > 0 {
		b.WriteString("\n")
		b.WriteString("    direction LR\n")
		b.WriteString("    classDef interfaceStyle fill:#2374ab,stroke:#1a5a8a,color:#fff,stroke-width:2px,font-weight:bold\n")
		b.WriteString("    classDef implStyle fill:#4a9c6d,stroke:#357a50,color:#fff,stroke-width:2px")
	}

	// Interfaces section.
	for _, iface := range ifaces {
		b.WriteString("\n")
		writeInterfaceBlock(&b, iface, opts)
	}

	// Types section (separated by blank line from interfaces if both exist).
	if len(ifaces) > 0 && len(typs) > 0 {
		b.WriteString("\n")
	}
	for _, typ := range typs {
		b.WriteString("\n")
		writeTypeBlock(&b, typ, opts)
	}

	// Relations section (separated by blank line from types if both exist).
	if (len(ifaces) > 0 || len(typs) > 0) && len(rels) > 0 {
		b.WriteString("\n")
	}
	for _, rel := range rels {
		b.WriteString("\n")
		writeRelation(&b, rel)
	}

	// Style assignments section.
	if len(ifaces) > 0 || len(typs) > 0 {
		b.WriteString("\n")
		for _, iface := range ifaces {
			id := NodeID(iface.PkgName, iface.Name)
			b.WriteString(fmt.Sprintf("\n    cssClass \"%s\" interfaceStyle", id))
		}
		for _, typ := range typs {
			id := NodeID(typ.PkgName, typ.Name)
			b.WriteString(fmt.Sprintf("\n    cssClass \"%s\" implStyle", id))
		}
	}

	return b.String()
}

// SanitizeSignature removes characters in method signatures that break Mermaid syntax.
// Mermaid treats {}, <>, and ~ as special in class diagram labels.
// Uses only ASCII-safe replacements that work in both mmdc CLI and browser Mermaid.js.
func SanitizeSignature(sig string) string {
	// Replace <-chan with chan (drop direction indicator — Mermaid can't handle <).
	sig = strings.ReplaceAll(sig, "<-chan", "chan")
	// Replace interface{} with "any" BEFORE stripping braces — bare "interface"
	// is a reserved keyword in browser Mermaid.js (<<interface>> tag parsing).
	sig = strings.ReplaceAll(sig, "interface{}", "any")
	// Strip remaining empty braces — in Go signatures these are empty type literals
	// like struct{}, map[K]struct{}.
	sig = strings.ReplaceAll(sig, "{}", "")
	return sig
}

// sanitizeID replaces /, ., - with _ in node identifiers.
func sanitizeID(s string) string {
	r := strings.NewReplacer("/", "_", ".", "_", "-", "_")
	return r.Replace(s)
}

// NodeID builds a sanitized node ID from pkgName and type/interface name.
func NodeID(pkgName, name string) string {
	return sanitizeID(pkgName + "_" + name)
}

// writeInterfaceBlock writes a Mermaid class block for an interface.
func writeInterfaceBlock(b *strings.Builder, iface catalog.InterfaceDef, opts DiagramOptions) {
	id := NodeID(iface.PkgName, iface.Name)
	b.WriteString(fmt.Sprintf("    class %s {\n", id))
	b.WriteString("        <<interface>>\n")
	if iface.SourceFile != "" {
		b.WriteString("        %% file: " + iface.SourceFile + "\n")
	}
	limit, truncated := methodLimit(len(iface.Methods), opts)
	for i := 0; i < limit; i++ {
		b.WriteString(fmt.Sprintf("        +%s\n", SanitizeSignature(iface.Methods[i].Signature)))
	}
	if truncated {
		b.WriteString("        ...\n")
	}
	b.WriteString("    }")
}

// writeTypeBlock writes a Mermaid class block for a concrete type: its
// fields first, then its methods, each marked exported (+) or not (-).
// The lesson diagrams show what the prose discusses, so unlike interface
// blocks nothing here is elided by exportedness.
func writeTypeBlock(b *strings.Builder, typ catalog.TypeDef, opts DiagramOptions) {
	id := NodeID(typ.PkgName, typ.Name)
	b.WriteString(fmt.Sprintf("    class %s {\n", id))
	if typ.SourceFile != "" {
		b.WriteString("        %% file: " + typ.SourceFile + "\n")
	}
	for _, f := range typ.Fields {
		b.WriteString(fmt.Sprintf("        %s%s %s\n", visibilityMark(f.Exported), f.Name, SanitizeSignature(f.Type)))
	}
	limit, truncated := methodLimit(len(typ.Methods), opts)
	for i := 0; i < limit; i++ {
		m := typ.Methods[i]
		b.WriteString(fmt.Sprintf("        %s%s\n", visibilityMark(token.IsExported(m.Name)), SanitizeSignature(m.Signature)))
	}
	if truncated {
		b.WriteString("        ...\n")
	}
	b.WriteString("    }")
}

func visibilityMark(exported bool) string {
	if exported {
		return "+"
	}
	return "-"
}

func methodLimit(n int, opts DiagramOptions) (limit int, truncated bool) {
	limit = n
	if opts.MaxMethodsPerBox > 0 && limit > opts.MaxMethodsPerBox {
		return opts.MaxMethodsPerBox, true
	}
	return limit, false
}

// writeRelation writes a single Mermaid relation line.
func writeRelation(b *strings.Builder, rel catalog.Relation) {
	typeID := NodeID(rel.Type.PkgName, rel.Type.Name)
	ifaceID := NodeID(rel.Interface.PkgName, rel.Interface.Name)
	b.WriteString(fmt.Sprintf("    %s --|> %s", typeID, ifaceID))
}
