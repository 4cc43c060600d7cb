// Package server hosts the curriculum over HTTP: an index of lessons,
// one page per lesson with prose, source, and a rendered diagram, and
// the booklet as plain Markdown.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"govocab/internal/booklet"
	"govocab/internal/catalog"
	"govocab/internal/diagram"
	"govocab/internal/glossary"
)

// Options controls page rendering.
type Options struct {
	Title   string // site title, defaults to "Go Vocabulary"
	RootDir string // module root used to resolve lesson source files
	Diagram diagram.DiagramOptions
}

// Server renders a scanned catalog as a small website. All pages are
// derived once at construction; the catalog does not change while
// serving.
type Server struct {
	title    string
	overview string
	entries  []indexEntry
	pages    map[string]*lessonPage
	booklet  []byte
	logger   *slog.Logger

	indexTmpl  *template.Template
	lessonTmpl *template.Template
}

type indexEntry struct {
	Slug    string
	Title   string
	Summary string
	Terms   string
}

type lessonLink struct {
	Slug  string
	Title string
}

type sourceListing struct {
	Path string
	Code string
}

type lessonPage struct {
	SiteTitle string
	Title     string
	Slug      string
	Terms     string
	Doc       string
	Sources   []sourceListing
	Mermaid   string
	Related   []lessonLink
	Prev      *lessonLink
	Next      *lessonLink
}

// New builds a server for a catalog. Lesson sources are read and all
// pages are assembled up front, so a missing source file fails here
// rather than on first request.
func New(c *catalog.Catalog, opts Options, logger *slog.Logger) (*Server, error) {
	indexTmpl, err := template.New("index").Parse(indexHTMLTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing index template: %w", err)
	}
	lessonTmpl, err := template.New("lesson").Parse(lessonHTMLTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing lesson template: %w", err)
	}

	title := opts.Title
	if title == "" {
		title = "Go Vocabulary"
	}

	chapters := diagram.Chapters(c, opts.Diagram)

	s := &Server{
		title:      title,
		entries:    make([]indexEntry, 0, len(c.Lessons)),
		pages:      make(map[string]*lessonPage, len(c.Lessons)),
		logger:     logger,
		indexTmpl:  indexTmpl,
		lessonTmpl: lessonTmpl,
	}
	if len(c.Interfaces) > 0 {
		s.overview = chapters[0].Mermaid
	}

	for i, l := range c.Lessons {
		s.entries = append(s.entries, indexEntry{
			Slug:    l.Slug,
			Title:   l.Title,
			Summary: l.Summary,
			Terms:   strings.Join(l.Terms, ", "),
		})

		page := &lessonPage{
			SiteTitle: title,
			Title:     l.Title,
			Slug:      l.Slug,
			Terms:     strings.Join(l.Terms, ", "),
			Doc:       strings.TrimSpace(l.Doc),
		}
		for _, src := range l.SourceFiles {
			code, err := os.ReadFile(filepath.Join(opts.RootDir, src))
			if err != nil {
				return nil, fmt.Errorf("reading lesson source %s: %w", src, err)
			}
			page.Sources = append(page.Sources, sourceListing{
				Path: filepath.ToSlash(src),
				Code: string(code),
			})
		}
		if ch, ok := diagram.ChapterBySlug(chapters, l.Slug); ok {
			page.Mermaid = ch.Mermaid
		}
		for _, slug := range l.Related {
			if rel, ok := c.Lesson(slug); ok {
				page.Related = append(page.Related, lessonLink{Slug: rel.Slug, Title: rel.Title})
			}
		}
		if i > 0 {
			prev := c.Lessons[i-1]
			page.Prev = &lessonLink{Slug: prev.Slug, Title: prev.Title}
		}
		if i < len(c.Lessons)-1 {
			next := c.Lessons[i+1]
			page.Next = &lessonLink{Slug: next.Slug, Title: next.Title}
		}
		s.pages[l.Slug] = page
	}

	var buf bytes.Buffer
	if err := booklet.Write(&buf, c, booklet.Options{
		Title:   title,
		RootDir: opts.RootDir,
		Diagram: opts.Diagram,
	}); err != nil {
		return nil, fmt.Errorf("rendering booklet: %w", err)
	}
	s.booklet = buf.Bytes()

	return s, nil
}

// Handler returns the site's routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /lesson/{slug}", s.handleLesson)
	mux.HandleFunc("GET /lesson/{slug}/mermaid.md", s.handleLessonMermaid)
	mux.HandleFunc("GET /booklet.md", s.handleBooklet)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("request received", "method", r.Method, "path", r.URL.Path)

	data := struct {
		Title    string
		Lessons  []indexEntry
		Overview string
		Terms    []glossary.Term
	}{
		Title:    s.title,
		Lessons:  s.entries,
		Overview: s.overview,
		Terms:    glossary.Terms(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("failed to render index template", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (s *Server) handleLesson(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("request received", "method", r.Method, "path", r.URL.Path)

	page, ok := s.pages[r.PathValue("slug")]
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.lessonTmpl.Execute(w, page); err != nil {
		s.logger.Error("failed to render lesson template", "error", err, "slug", page.Slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (s *Server) handleLessonMermaid(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("request received", "method", r.Method, "path", r.URL.Path)

	page, ok := s.pages[r.PathValue("slug")]
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(page.Mermaid))
}

func (s *Server) handleBooklet(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("request received", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write(s.booklet)
}

// Serve starts the HTTP server. It blocks until the context is
// cancelled or the server fails.
func (s *Server) Serve(ctx context.Context, port int, openBrowser bool) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Handler(),
	}

	url := fmt.Sprintf("http://localhost:%d", port)
	s.logger.Info("starting HTTP server", "addr", url, "lessons", len(s.entries))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
		close(errCh)
	}()

	if openBrowser {
		openInBrowser(url, s.logger)
	}

	// Block until the context is cancelled or the server fails.
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown error: %w", err)
		}
		return nil
	}
}

// openInBrowser opens the given URL in the default system browser.
func openInBrowser(url string, logger *slog.Logger) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		logger.Warn("unsupported platform for opening browser", "os", runtime.GOOS)
		return
	}

	if err := cmd.Start(); err != nil {
		logger.Warn("failed to open browser", "error", err)
	}
}
