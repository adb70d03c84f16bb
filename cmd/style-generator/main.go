// Package main provides the CLI entrypoint for style-generator.
//
// style-generator is a one-shot codegen tool that:
//   - Reads the map style spec JSON (layer types, paint/layout/light attributes)
//   - Filters attributes against the target Android and iOS SDK versions
//   - Renders the native style bridges, the TypeScript declarations and the
//     JS style map from embedded templates
//   - Emits docs.json and docs.md describing the same properties
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"style-generator/internal/docs"
	"style-generator/internal/gen"
	"style-generator/internal/plan"
	"style-generator/internal/stylespec"
)

func main() {
	specPath := flag.String("spec", "style-spec/v8.json", "Path to the style spec JSON")
	root := flag.String("root", "", "Output root, overrides -in-package when set")
	inPackage := flag.Bool("in-package", true, "Write artifacts into the package tree instead of the sibling maps checkout")
	docsDir := flag.String("docs-dir", "docs", "Output directory for docs.json and docs.md")
	dump := flag.Bool("dump", false, "Dump the enumerated plan to stdout and exit without writing")
	verbose := flag.Bool("v", false, "Log enumeration notices")
	flag.Parse()

	initLogger(*verbose)

	err := run(*specPath, gen.Config{InPackage: *inPackage, Root: *root}, *docsDir, *dump)
	if errors.Is(err, stylespec.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fmt.Fprintln(os.Stderr, "Fetch it first: scripts/fetch-style-spec.sh")
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(specPath string, cfg gen.Config, docsDir string, dump bool) error {
	doc, err := stylespec.LoadFile(specPath)
	if err != nil {
		return err
	}

	p := plan.Enumerate(doc, plan.DefaultConfig())

	for _, notice := range p.Notices.All() {
		slog.Debug("enumeration notice", "severity", notice.Severity.String(), "notice", notice.String())
	}

	if dump {
		spew.Dump(p)
		return nil
	}

	files, err := gen.NewGenerator(cfg).Generate(p)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files, cfg.OutputRoot()); err != nil {
		return err
	}

	for _, f := range files {
		slog.Debug("wrote artifact", "path", f.Filename)
	}

	// Markdown is generated strictly after docs.json inside Emit.
	return docs.Emit(p, docsDir)
}

func initLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
