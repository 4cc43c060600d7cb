package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"govocab/internal/booklet"
	"govocab/internal/catalog"
	"govocab/internal/diagram"
	"govocab/internal/glossary"
	"govocab/internal/logging"
	"govocab/internal/server"
	"govocab/lessons"
)

func main() {
	// Use a custom FlagSet so we can parse all args regardless of position.
	// Go's default flag.Parse stops at the first non-flag argument, which
	// breaks "govocab ./path -output booklet.md". We reorder args so flags
	// come first, then positional args.
	flags, positional := reorderArgs(os.Args[1:])

	fs := flag.NewFlagSet("govocab", flag.ExitOnError)
	port := fs.Int("port", defaultPort(), "HTTP server port (default from GOVOCAB_PORT)")
	lessonFlag := fs.String("lesson", "", "restrict to one lesson slug")
	includeStdlib := fs.Bool("include-stdlib", false, "show satisfied standard library interfaces in diagrams")
	includeUnexported := fs.Bool("include-unexported", false, "include unexported types and interfaces")
	output := fs.String("output", "", "write the Markdown booklet to a file instead of serving")
	noBrowser := fs.Bool("no-browser", false, "skip auto-opening browser")
	logFile := fs.String("log-file", "logs/govocab.log", "log file path")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")

	if err := fs.Parse(flags); err != nil {
		os.Exit(1)
	}
	// Collect any remaining args from flag parsing + our positional args
	positional = append(positional, fs.Args()...)

	// The positional argument is the module root; default to the working
	// directory so a bare "govocab" serves the bundled lessons.
	dir := "."
	if len(positional) > 0 {
		dir = positional[0]
	}

	if *lessonFlag != "" {
		if _, ok := lessons.BySlug(*lessonFlag); !ok {
			fmt.Fprintf(os.Stderr, "Unknown lesson %q. Valid slugs: %s\n",
				*lessonFlag, strings.Join(lessonSlugs(), ", "))
			os.Exit(1)
		}
	}

	// Parse log level
	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q: %v\n", *logLevel, err)
		os.Exit(1)
	}

	// Setup logging
	logger, logCleanup, err := logging.Setup(*logFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logging: %v\n", err)
		os.Exit(1)
	}
	defer logCleanup()

	// Setup signal handling with context cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	// Step 1: Locate the module root
	root, err := catalog.LocateRoot(dir)
	if err != nil {
		logger.Error("failed to locate module root", "error", err)
		fmt.Fprintf(os.Stderr, "Error locating module root: %v\n", err)
		os.Exit(1)
	}

	// Step 2: Scan the lesson corpus
	fmt.Println("Loading lessons...")
	opts := catalog.ScanOptions{
		Filter:            *lessonFlag,
		IncludeStdlib:     *includeStdlib,
		IncludeUnexported: *includeUnexported,
	}

	cat, err := catalog.Scan(ctx, root, opts, logger)
	if err != nil {
		logger.Error("scan failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error scanning lessons: %v\n", err)
		os.Exit(1)
	}

	// Step 3: Annotate with vocabulary, then filter to the requested view
	cat = glossary.Apply(cat, glossary.NewTermTagger(), glossary.NewCrossRefs())
	cat = catalog.FilterCatalog(cat, opts)

	fmt.Printf("Found %d lessons, %d interfaces, %d types, %d relations\n",
		len(cat.Lessons), len(cat.Interfaces), len(cat.Types), len(cat.Relations))

	if len(cat.Lessons) == 0 {
		fmt.Println("No lessons matched — nothing to show.")
		os.Exit(0)
	}

	diagramOpts := diagram.DefaultDiagramOptions()

	// Step 4: Output or serve
	if *output != "" {
		var buf bytes.Buffer
		if err := booklet.Write(&buf, cat, booklet.Options{RootDir: root, Diagram: diagramOpts}); err != nil {
			logger.Error("failed to render booklet", "error", err)
			fmt.Fprintf(os.Stderr, "Error rendering booklet: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*output, buf.Bytes(), 0o644); err != nil {
			logger.Error("failed to write output file", "error", err)
			fmt.Fprintf(os.Stderr, "Error writing to %s: %v\n", *output, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote booklet to %s\n", *output)
	} else {
		srv, err := server.New(cat, server.Options{RootDir: root, Diagram: diagramOpts}, logger)
		if err != nil {
			logger.Error("failed to build site", "error", err)
			fmt.Fprintf(os.Stderr, "Error building site: %v\n", err)
			os.Exit(1)
		}

		openBrowser := !*noBrowser
		fmt.Printf("Starting server on http://localhost:%d\n", *port)
		if err := srv.Serve(ctx, *port, openBrowser); err != nil {
			logger.Error("server error", "error", err)
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	}
}

// reorderArgs separates flags and positional arguments so flags can appear
// in any position (before or after the positional directory argument).
// Flags that take a value (e.g., -output booklet.md) consume the next arg.
func reorderArgs(args []string) (flags, positional []string) {
	// Set of flags that take a value argument
	valueFlagSet := map[string]bool{
		"-lesson": true, "-port": true,
		"-output": true, "-log-file": true, "-log-level": true,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
			// Check if this flag takes a value (and it's not using = syntax)
			if !strings.Contains(arg, "=") && valueFlagSet[arg] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}
	return flags, positional
}

// defaultPort reads GOVOCAB_PORT, falling back to 8080.
func defaultPort() int {
	if v := os.Getenv("GOVOCAB_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 8080
}

func lessonSlugs() []string {
	all := lessons.All()
	slugs := make([]string, 0, len(all))
	for _, l := range all {
		slugs = append(slugs, l.Slug)
	}
	return slugs
}
