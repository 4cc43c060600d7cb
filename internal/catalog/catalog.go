package catalog

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"

	"govocab/lessons"
)

// Scan loads the lesson packages under root and produces the catalog: the
// manifest joined with each lesson's prose, types, interfaces, and
// satisfies-relations. root must be the module root (the directory holding
// go.mod).
func Scan(ctx context.Context, root string, opts ScanOptions, logger *slog.Logger) (*Catalog, error) {
	modulePath, err := ModulePath(root)
	if err != nil {
		return nil, err
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedTypes |
			packages.NeedSyntax | packages.NeedTypesInfo | packages.NeedImports,
		Dir:     root,
		Context: ctx,
	}

	pkgs, err := packages.Load(cfg, "./lessons/...")
	if err != nil {
		return nil, fmt.Errorf("loading lesson packages: %w", err)
	}

	// Stdlib contracts the corpus may satisfy without importing them
	// (io.Closer for the teardown lesson). Loaded only on request.
	if opts.IncludeStdlib {
		stdPkgs, stdErr := packages.Load(cfg, "io", "fmt")
		if stdErr != nil {
			logger.Warn("failed to load stdlib packages", "error", stdErr)
		} else {
			pkgs = append(pkgs, stdPkgs...)
		}
	}

	logger.Info("packages loaded", "packages_count", len(pkgs))

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			logger.Warn("package load error", "package", pkg.PkgPath, "error", e.Msg)
		}
	}

	c := &Catalog{ModulePath: modulePath}
	lessonPrefix := modulePath + "/lessons/"
	manifestPath := modulePath + "/lessons"

	// Phase 1: join loaded packages against the manifest.
	seenSlugs := make(map[string]bool)
	for _, pkg := range pkgs {
		if pkg.Types == nil || !strings.HasPrefix(pkg.PkgPath, lessonPrefix) {
			continue
		}
		slug := strings.TrimPrefix(pkg.PkgPath, lessonPrefix)
		entry, ok := lessons.BySlug(slug)
		if !ok {
			return nil, fmt.Errorf("package %s is in the corpus but not in the manifest", pkg.PkgPath)
		}
		seenSlugs[slug] = true

		c.Lessons = append(c.Lessons, Lesson{
			Slug:        entry.Slug,
			Title:       entry.Title,
			Term:        entry.Term,
			Summary:     entry.Summary,
			Dir:         entry.Dir(),
			PkgPath:     pkg.PkgPath,
			Doc:         packageDoc(pkg),
			SourceFiles: snippetFiles(pkg, root),
		})
	}
	for _, entry := range lessons.All() {
		if !seenSlugs[entry.Slug] {
			return nil, fmt.Errorf("lesson %q is in the manifest but has no package under lessons/", entry.Slug)
		}
	}

	// Manifest order, not load order.
	sort.Slice(c.Lessons, func(i, j int) bool {
		return manifestIndex(c.Lessons[i].Slug) < manifestIndex(c.Lessons[j].Slug)
	})

	// Phase 2: collect interfaces and named types.
	seenIfaces := make(map[string]bool)

	collectIfaces := func(scope *types.Scope, lesson, pkgPath, pkgName string, fset *token.FileSet) {
		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok {
				continue
			}
			named, ok := tn.Type().(*types.Named)
			if !ok {
				continue
			}
			iface, ok := named.Underlying().(*types.Interface)
			if !ok {
				continue
			}
			key := pkgPath + "." + tn.Name()
			if seenIfaces[key] {
				continue
			}
			seenIfaces[key] = true
			c.Interfaces = append(c.Interfaces, InterfaceDef{
				Name:       tn.Name(),
				Lesson:     lesson,
				PkgPath:    pkgPath,
				PkgName:    pkgName,
				Methods:    extractIfaceMethods(iface),
				TypeObj:    iface,
				SourceFile: resolveSourceFile(fset, tn.Pos(), root),
			})
			logger.Debug("found interface", "name", tn.Name(), "package", pkgPath, "methods", iface.NumMethods())
		}
	}

	for _, pkg := range pkgs {
		if pkg.Types == nil || pkg.PkgPath == manifestPath {
			continue
		}

		lesson := ""
		if strings.HasPrefix(pkg.PkgPath, lessonPrefix) {
			lesson = strings.TrimPrefix(pkg.PkgPath, lessonPrefix)
		}

		scope := pkg.Types.Scope()
		collectIfaces(scope, lesson, pkg.PkgPath, pkg.Name, pkg.Fset)

		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok {
				continue
			}
			named, ok := tn.Type().(*types.Named)
			if !ok {
				continue
			}
			if _, ok := named.Underlying().(*types.Interface); ok {
				continue
			}
			// Concrete types matter only inside the corpus; imported ones
			// can never belong to a lesson chapter.
			if lesson == "" {
				continue
			}
			c.Types = append(c.Types, TypeDef{
				Name:       tn.Name(),
				Lesson:     lesson,
				PkgPath:    pkg.PkgPath,
				PkgName:    pkg.Name,
				IsStruct:   isStruct(named),
				Generic:    named.TypeParams().Len() > 0,
				Fields:     extractFields(named),
				Methods:    extractTypeMethods(named),
				TypeObj:    named,
				SourceFile: resolveSourceFile(pkg.Fset, tn.Pos(), root),
			})
			logger.Debug("found type", "name", tn.Name(), "package", pkg.PkgPath)
		}

		// Interfaces from imported packages, so corpus types can be matched
		// against contracts they satisfy without declaring.
		for _, imp := range pkg.Imports {
			if imp.Types == nil {
				continue
			}
			collectIfaces(imp.Types.Scope(), "", imp.PkgPath, imp.Name, imp.Fset)
		}
	}

	// The built-in error interface from the universe scope.
	if errorObj := types.Universe.Lookup("error"); errorObj != nil {
		if tn, ok := errorObj.(*types.TypeName); ok {
			if iface, ok := tn.Type().Underlying().(*types.Interface); ok {
				if !seenIfaces["builtin.error"] {
					seenIfaces["builtin.error"] = true
					c.Interfaces = append(c.Interfaces, InterfaceDef{
						Name:    "error",
						PkgPath: "builtin",
						PkgName: "builtin",
						Methods: extractIfaceMethods(iface),
						TypeObj: iface,
					})
				}
			}
		}
	}

	// Constructors: package functions whose result is one of the package's
	// own named types.
	attachConstructors(c, pkgs, lessonPrefix)

	// Deterministic order before matching: relations hold pointers into
	// these slices, so they must not move afterwards.
	sort.Slice(c.Interfaces, func(i, j int) bool {
		if c.Interfaces[i].Lesson != c.Interfaces[j].Lesson {
			return c.Interfaces[i].Lesson < c.Interfaces[j].Lesson
		}
		if c.Interfaces[i].PkgName != c.Interfaces[j].PkgName {
			return c.Interfaces[i].PkgName < c.Interfaces[j].PkgName
		}
		return c.Interfaces[i].Name < c.Interfaces[j].Name
	})
	sort.Slice(c.Types, func(i, j int) bool {
		if c.Types[i].Lesson != c.Types[j].Lesson {
			return c.Types[i].Lesson < c.Types[j].Lesson
		}
		return c.Types[i].Name < c.Types[j].Name
	})

	logger.Info("corpus collected", "lessons", len(c.Lessons), "interfaces", len(c.Interfaces), "types", len(c.Types))

	// Phase 3: match corpus types against interfaces on both the value and
	// the pointer method set.
	var methodSetCache typeutil.MethodSetCache
	for i := range c.Types {
		t := &c.Types[i]
		// Uninstantiated generic types have no complete method set to match.
		if t.Generic {
			continue
		}
		for j := range c.Interfaces {
			iface := &c.Interfaces[j]
			if iface.TypeObj.NumMethods() == 0 {
				continue
			}

			valType := t.TypeObj
			valMethodSet := methodSetCache.MethodSet(valType)
			ptrMethodSet := methodSetCache.MethodSet(types.NewPointer(valType))

			if types.Implements(valType, iface.TypeObj) || matchesMethodSet(valMethodSet, iface.TypeObj) {
				c.Relations = append(c.Relations, Relation{Type: t, Interface: iface, ViaPointer: false})
				logger.Debug("match found", "type", t.Name, "interface", iface.Name, "via_pointer", false)
			} else if types.Implements(types.NewPointer(valType), iface.TypeObj) || matchesMethodSet(ptrMethodSet, iface.TypeObj) {
				c.Relations = append(c.Relations, Relation{Type: t, Interface: iface, ViaPointer: true})
				logger.Debug("match found", "type", t.Name, "interface", iface.Name, "via_pointer", true)
			}
		}
	}

	sort.Slice(c.Relations, func(i, j int) bool {
		ti := c.Relations[i].Type.PkgName + "_" + c.Relations[i].Type.Name
		tj := c.Relations[j].Type.PkgName + "_" + c.Relations[j].Type.Name
		if ti != tj {
			return ti < tj
		}
		ii := c.Relations[i].Interface.PkgName + "_" + c.Relations[i].Interface.Name
		ij := c.Relations[j].Interface.PkgName + "_" + c.Relations[j].Interface.Name
		return ii < ij
	})

	logger.Info("scan complete", "relations", len(c.Relations))

	return c, nil
}

// packageDoc returns the package doc comment text, taking the longest one
// when several files carry a comment (doc.go holds the lesson prose).
func packageDoc(pkg *packages.Package) string {
	var doc string
	for _, f := range pkg.Syntax {
		if f.Doc == nil {
			continue
		}
		if text := f.Doc.Text(); len(text) > len(doc) {
			doc = text
		}
	}
	return strings.TrimSpace(doc)
}

// snippetFiles returns the lesson's source files relative to root, without
// doc.go (its content is the prose, already carried on the Lesson).
func snippetFiles(pkg *packages.Package, root string) []string {
	var files []string
	for _, abs := range pkg.GoFiles {
		if filepath.Base(abs) == "doc.go" {
			continue
		}
		rel, err := filepath.Rel(root, abs)
		if err != nil {
			rel = abs
		}
		files = append(files, rel)
	}
	sort.Strings(files)
	return files
}

func manifestIndex(slug string) int {
	for i, l := range lessons.All() {
		if l.Slug == slug {
			return i
		}
	}
	return len(lessons.All())
}

// attachConstructors records, per corpus type, the package-level functions
// that return it (the New… convention).
func attachConstructors(c *Catalog, pkgs []*packages.Package, lessonPrefix string) {
	byKey := make(map[string]*TypeDef, len(c.Types))
	for i := range c.Types {
		byKey[c.Types[i].PkgPath+"."+c.Types[i].Name] = &c.Types[i]
	}

	for _, pkg := range pkgs {
		if pkg.Types == nil || !strings.HasPrefix(pkg.PkgPath, lessonPrefix) {
			continue
		}
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			fn, ok := scope.Lookup(name).(*types.Func)
			if !ok {
				continue
			}
			sig, ok := fn.Type().(*types.Signature)
			if !ok || sig.Recv() != nil {
				continue
			}
			results := sig.Results()
			for i := 0; i < results.Len(); i++ {
				named := namedResult(results.At(i).Type())
				if named == nil || named.Obj().Pkg() == nil {
					continue
				}
				key := named.Obj().Pkg().Path() + "." + named.Obj().Name()
				if def, ok := byKey[key]; ok {
					def.Constructors = append(def.Constructors, fn.Name())
				}
			}
		}
	}

	for i := range c.Types {
		sort.Strings(c.Types[i].Constructors)
	}
}

func namedResult(t types.Type) *types.Named {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	named, _ := t.(*types.Named)
	return named
}

func extractIfaceMethods(iface *types.Interface) []MethodSig {
	methods := make([]MethodSig, iface.NumMethods())
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		methods[i] = MethodSig{
			Name:      m.Name(),
			Signature: formatSignature(m),
		}
	}
	return methods
}

func extractTypeMethods(named *types.Named) []MethodSig {
	var methods []MethodSig
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		methods = append(methods, MethodSig{
			Name:        m.Name(),
			Signature:   formatSignature(m),
			PointerRecv: hasPointerReceiver(m),
		})
	}
	return methods
}

func hasPointerReceiver(fn *types.Func) bool {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return false
	}
	_, isPtr := sig.Recv().Type().(*types.Pointer)
	return isPtr
}

func extractFields(named *types.Named) []FieldSig {
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil
	}
	fields := make([]FieldSig, 0, st.NumFields())
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		fields = append(fields, FieldSig{
			Name:     f.Name(),
			Type:     shortType(f.Type()),
			Exported: f.Exported(),
			Embedded: f.Embedded(),
		})
	}
	return fields
}

func formatSignature(fn *types.Func) string {
	sig := fn.Type().(*types.Signature)
	var b strings.Builder
	b.WriteString(fn.Name())
	b.WriteString("(")
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(shortType(params.At(i).Type()))
	}
	b.WriteString(")")
	results := sig.Results()
	if results.Len() > 0 {
		b.WriteString(" ")
		if results.Len() == 1 {
			b.WriteString(shortType(results.At(0).Type()))
		} else {
			b.WriteString("(")
			for i := 0; i < results.Len(); i++ {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(shortType(results.At(i).Type()))
			}
			b.WriteString(")")
		}
	}
	return b.String()
}

func shortType(t types.Type) string {
	return types.TypeString(t, func(pkg *types.Package) string {
		return pkg.Name()
	})
}

func isStruct(named *types.Named) bool {
	_, ok := named.Underlying().(*types.Struct)
	return ok
}

func matchesMethodSet(mset *types.MethodSet, iface *types.Interface) bool {
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		if mset.Lookup(m.Pkg(), m.Name()) == nil {
			return false
		}
	}
	return true
}

// resolveSourceFile resolves a token position to a file path relative to
// moduleRoot.
func resolveSourceFile(fset *token.FileSet, pos token.Pos, moduleRoot string) string {
	if fset == nil || !pos.IsValid() {
		return ""
	}
	position := fset.Position(pos)
	if !position.IsValid() || position.Filename == "" {
		return ""
	}
	rel, err := filepath.Rel(moduleRoot, position.Filename)
	if err != nil {
		return position.Filename
	}
	return rel
}
