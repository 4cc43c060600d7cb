// Package booklet renders the scanned curriculum as one self-contained
// Markdown document: contents, the contract overview, a section per
// lesson, and the glossary.
package booklet

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"govocab/internal/catalog"
	"govocab/internal/diagram"
	"govocab/internal/glossary"
)

// Options controls booklet rendering.
type Options struct {
	Title   string // document title, defaults to "Go Vocabulary"
	RootDir string // module root used to resolve lesson source files
	Diagram diagram.DiagramOptions
}

// Write renders the booklet for a catalog to w. Lesson sections are
// rendered concurrently and assembled in manifest order.
func Write(w io.Writer, c *catalog.Catalog, opts Options) error {
	title := opts.Title
	if title == "" {
		title = "Go Vocabulary"
	}

	chapters := diagram.Chapters(c, opts.Diagram)

	sections := make([]string, len(c.Lessons))
	var g errgroup.Group
	for i, l := range c.Lessons {
		g.Go(func() error {
			ch, _ := diagram.ChapterBySlug(chapters, l.Slug)
			s, err := renderLesson(c, l, ch.Mermaid, opts.RootDir)
			if err != nil {
				return err
			}
			sections[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	b.WriteString("The classroom words of object-oriented programming, each read in Go.\n\n")

	b.WriteString("## Contents\n\n")
	for i, l := range c.Lessons {
		fmt.Fprintf(&b, "%d. [%s](#%s)\n", i+1, l.Title, anchor(l.Title))
	}
	b.WriteString("\n")

	if len(c.Interfaces) > 0 {
		b.WriteString("## Overview\n\n")
		b.WriteString("Every contract in the curriculum, and which lessons' contracts embed which.\n\n")
		writeMermaid(&b, chapters[0].Mermaid)
	}

	for _, s := range sections {
		b.WriteString(s)
	}

	b.WriteString("## Glossary\n\n")
	b.WriteString("| Term | Definition |\n")
	b.WriteString("|------|------------|\n")
	for _, t := range glossary.Terms() {
		fmt.Fprintf(&b, "| %s | %s |\n", t.Name, t.Definition)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderLesson(c *catalog.Catalog, l catalog.Lesson, mermaid, rootDir string) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", l.Title)
	if len(l.Terms) > 0 {
		fmt.Fprintf(&b, "*Terms: %s*\n\n", strings.Join(l.Terms, ", "))
	}
	if doc := strings.TrimSpace(l.Doc); doc != "" {
		b.WriteString(doc)
		b.WriteString("\n\n")
	}

	for _, src := range l.SourceFiles {
		code, err := os.ReadFile(filepath.Join(rootDir, src))
		if err != nil {
			return "", fmt.Errorf("reading lesson source %s: %w", src, err)
		}
		fmt.Fprintf(&b, "`%s`\n\n", filepath.ToSlash(src))
		b.WriteString("```go\n")
		b.Write(bytes.TrimRight(code, "\n"))
		b.WriteString("\n```\n\n")
	}

	if mermaid != "" {
		writeMermaid(&b, mermaid)
	}

	if len(l.Related) > 0 {
		links := make([]string, 0, len(l.Related))
		for _, slug := range l.Related {
			rel, ok := c.Lesson(slug)
			if !ok {
				continue
			}
			links = append(links, fmt.Sprintf("[%s](#%s)", rel.Title, anchor(rel.Title)))
		}
		if len(links) > 0 {
			fmt.Fprintf(&b, "*See also: %s*\n\n", strings.Join(links, ", "))
		}
	}

	return b.String(), nil
}

func writeMermaid(b *strings.Builder, mermaid string) {
	b.WriteString("```mermaid\n")
	b.WriteString(mermaid)
	b.WriteString("\n```\n\n")
}

// anchor turns a section title into its GitHub-style fragment link.
func anchor(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteByte('-')
		}
	}
	return b.String()
}
