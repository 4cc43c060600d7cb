package catalog

import (
	"strings"
	"unicode"
)

// FilterCatalog applies the scan options to a catalog: lesson-slug scoping,
// unexported pruning, and stdlib-relation pruning. A relation follows its
// concrete type's lesson, matching LessonRelations. In-scope corpus entities
// survive on their own; interfaces outside the scope (stdlib, imports, other
// lessons under a slug filter) survive only while a kept relation reaches
// them, so chapters never show contracts nothing satisfies.
func FilterCatalog(c *Catalog, opts ScanOptions) *Catalog {
	filtered := &Catalog{ModulePath: c.ModulePath}

	inScope := func(lesson string) bool {
		return opts.Filter == "" || lesson == opts.Filter
	}

	for _, l := range c.Lessons {
		if inScope(l.Slug) {
			filtered.Lessons = append(filtered.Lessons, l)
		}
	}

	// Pass 1: decide which relations survive the options.
	type relKey struct {
		typeKey, ifaceKey string
		viaPointer        bool
	}
	var keptRels []relKey
	usedIfaces := make(map[string]bool)
	for _, rel := range c.Relations {
		iface, typ := rel.Interface, rel.Type

		if !opts.IncludeStdlib && iface.Lesson == "" && isStdlib(iface.PkgPath) {
			continue
		}
		if !opts.IncludeUnexported && (isUnexported(iface.Name) || isUnexported(typ.Name)) {
			continue
		}
		if !inScope(typ.Lesson) {
			continue
		}

		keptRels = append(keptRels, relKey{
			typeKey:    typeKey(typ.PkgPath, typ.Name),
			ifaceKey:   typeKey(iface.PkgPath, iface.Name),
			viaPointer: rel.ViaPointer,
		})
		usedIfaces[typeKey(iface.PkgPath, iface.Name)] = true
	}

	// Pass 2: keep in-scope corpus entities on their own; anything else only
	// while a kept relation reaches it. Pass 1 already applied the
	// exportedness gate to reached interfaces.
	for i := range c.Interfaces {
		iface := &c.Interfaces[i]
		if iface.Lesson == "" || !inScope(iface.Lesson) {
			if usedIfaces[typeKey(iface.PkgPath, iface.Name)] {
				filtered.Interfaces = append(filtered.Interfaces, *iface)
			}
			continue
		}
		if !opts.IncludeUnexported && isUnexported(iface.Name) {
			continue
		}
		filtered.Interfaces = append(filtered.Interfaces, *iface)
	}

	for i := range c.Types {
		typ := &c.Types[i]
		if !inScope(typ.Lesson) {
			continue
		}
		if !opts.IncludeUnexported && isUnexported(typ.Name) {
			continue
		}
		filtered.Types = append(filtered.Types, *typ)
	}

	// Pass 3: rewire relations into the filtered slices. Both slices are
	// complete now, so element addresses are stable.
	ifaceIdx := make(map[string]int, len(filtered.Interfaces))
	for i := range filtered.Interfaces {
		ifaceIdx[typeKey(filtered.Interfaces[i].PkgPath, filtered.Interfaces[i].Name)] = i
	}
	typeIdx := make(map[string]int, len(filtered.Types))
	for i := range filtered.Types {
		typeIdx[typeKey(filtered.Types[i].PkgPath, filtered.Types[i].Name)] = i
	}

	for _, rk := range keptRels {
		ti, okT := typeIdx[rk.typeKey]
		ii, okI := ifaceIdx[rk.ifaceKey]
		if !okT || !okI {
			continue
		}
		filtered.Relations = append(filtered.Relations, Relation{
			Type:       &filtered.Types[ti],
			Interface:  &filtered.Interfaces[ii],
			ViaPointer: rk.viaPointer,
		})
	}

	return filtered
}

func isStdlib(pkgPath string) bool {
	// Stdlib packages have no dot in the first path element.
	firstPart := pkgPath
	if i := strings.IndexByte(pkgPath, '/'); i >= 0 {
		firstPart = pkgPath[:i]
	}
	return !strings.Contains(firstPart, ".")
}

func isUnexported(name string) bool {
	if name == "" {
		return true
	}
	// The built-in error interface is lowercase but reachable everywhere.
	if name == "error" {
		return false
	}
	return unicode.IsLower(rune(name[0]))
}

func typeKey(pkgPath, name string) string {
	return pkgPath + "." + name
}
