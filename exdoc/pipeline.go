package exdoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/CAPITAL-Skrax/enaml/internal/fileutil"
)

// DefaultExtension selects example files during discovery.
const DefaultExtension = ".enaml"

// docFilePermissions applies to generated documents (rw-r--r--).
const docFilePermissions = 0o644

// Generator produces one document, and best effort one snapshot, per
// example. Generation is idempotent: every run overwrites stale output.
type Generator struct {
	orch *Orchestrator
	cfg  generatorConfig
}

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	extension string
	marker    string
	keepGoing bool
	out       io.Writer
	errOut    io.Writer
}

// Option configures a Generator.
type Option func(*Generator)

// WithExtension sets the file extension discovery selects.
func WithExtension(ext string) Option {
	return func(g *Generator) {
		g.cfg.extension = ext
	}
}

// WithMarker sets the whole-line sentinel discovery requires.
func WithMarker(marker string) Option {
	return func(g *Generator) {
		g.cfg.marker = marker
	}
}

// WithKeepGoing makes RunAll record an example's structural failure and
// continue with the remaining examples instead of aborting the run.
func WithKeepGoing(keep bool) Option {
	return func(g *Generator) {
		g.cfg.keepGoing = keep
	}
}

// WithOutput sets the writer progress lines go to.
func WithOutput(w io.Writer) Option {
	return func(g *Generator) {
		g.cfg.out = w
	}
}

// WithErrOutput sets the writer capture diagnostics and per-example
// failures go to.
func WithErrOutput(w io.Writer) Option {
	return func(g *Generator) {
		g.cfg.errOut = w
	}
}

// NewGenerator creates a Generator around a capture capability. A nil
// capturer disables snapshots entirely; documents are then generated
// without screenshot sections.
func NewGenerator(capturer Capturer, opts ...Option) *Generator {
	g := &Generator{
		cfg: generatorConfig{
			extension: DefaultExtension,
			marker:    MarkerLine,
			out:       os.Stdout,
			errOut:    os.Stderr,
		},
	}
	if capturer != nil {
		g.orch = NewOrchestrator(capturer)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes the document for one example, overwriting prior output at
// the same path. Capture failures degrade to a document without a
// screenshot block; a source without a docstring structure fails with
// ErrMalformedSource.
func (g *Generator) Generate(ctx context.Context, docsRoot, examplePath string) error {
	ex := NewExample(examplePath)
	fmt.Fprintf(g.cfg.out, "generating doc for %s\n", ex.Name)

	var res CaptureResult
	if g.orch != nil {
		imagePath := filepath.Join(docsRoot, "images", ex.ImageName)
		res = g.orch.Capture(ctx, examplePath, imagePath)
		if !res.Success {
			fmt.Fprintf(g.cfg.errOut, "could not snapshot %s\n    %s\n", ex.Name, res.Message)
		}
	}

	source, err := os.ReadFile(examplePath) // #nosec G304 -- discovered path
	if err != nil {
		return fmt.Errorf("reading %s: %w", examplePath, err)
	}

	raw, err := ExtractDocstring(string(source))
	if err != nil {
		return fmt.Errorf("%s: %w", ex.Name, err)
	}

	var screenshot string
	if res.Success {
		screenshot = RenderScreenshotFragment(ex.ImageName)
	}

	text, err := RenderDocument(Fields{
		Title:      ex.Title,
		Name:       ex.Name,
		Path:       ex.RelPath,
		Docstring:  CleanDocstring(raw),
		Screenshot: screenshot,
	})
	if err != nil {
		return err
	}

	if err := fileutil.EnsureDir(docsRoot); err != nil {
		return fmt.Errorf("creating docs directory: %w", err)
	}
	outPath := filepath.Join(docsRoot, ex.DocFileName())
	// #nosec G306 -- generated documents are meant to be readable
	if err := os.WriteFile(outPath, []byte(text), docFilePermissions); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteDocument, outPath, err)
	}
	return nil
}

// RunAll discovers marked examples under examplesRoot and generates a
// document for each, in walk order. By default the first structural failure
// aborts the run; with keep-going enabled, failures are reported as they
// happen and returned joined after the full pass.
func (g *Generator) RunAll(ctx context.Context, docsRoot, examplesRoot string, suffixes []string) error {
	paths, err := Discover(examplesRoot, g.cfg.extension, g.cfg.marker, suffixes)
	if err != nil {
		return fmt.Errorf("discovering examples: %w", err)
	}

	var errs []error
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.Generate(ctx, docsRoot, p); err != nil {
			if !g.cfg.keepGoing {
				return err
			}
			errs = append(errs, err)
			fmt.Fprintf(g.cfg.errOut, "FAILED %s: %v\n", p, err)
		}
	}
	return errors.Join(errs...)
}

// Close releases the capture capability.
func (g *Generator) Close() error {
	if g.orch != nil {
		return g.orch.Close()
	}
	return nil
}
