package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/CAPITAL-Skrax/enaml/exdoc"
)

// Default locations, relative to the working directory. The examples root
// sits beside the docs tree the way the repository lays them out.
const (
	defaultDocsDir     = "docs/source/examples"
	defaultExamplesDir = "examples"
)

// run loads configuration, builds the generator, and processes every
// selected example.
func run(ctx context.Context, flags *cliFlags, env *Environment) error {
	cfg := DefaultConfig()
	if flags.config != "" {
		loaded, err := LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	docsRoot := cfg.Docs.Dir
	if docsRoot == "" {
		docsRoot = defaultDocsDir
	}
	examplesRoot := cfg.Examples.Dir
	if examplesRoot == "" {
		examplesRoot = defaultExamplesDir
	}

	capturer, err := buildCapturer(cfg.Capture)
	if err != nil {
		return err
	}

	out := env.Stdout
	if flags.quiet {
		out = io.Discard
	}

	opts := []exdoc.Option{
		exdoc.WithKeepGoing(cfg.KeepGoing),
		exdoc.WithOutput(out),
		exdoc.WithErrOutput(env.Stderr),
	}
	if cfg.Examples.Extension != "" {
		opts = append(opts, exdoc.WithExtension(cfg.Examples.Extension))
	}

	gen := exdoc.NewGenerator(capturer, opts...)
	defer func() { _ = gen.Close() }()

	return gen.RunAll(ctx, docsRoot, examplesRoot, flags.filenames)
}

// buildCapturer creates the rod capturer from config, or nil when capture
// is disabled.
func buildCapturer(cfg CaptureConfig) (exdoc.Capturer, error) {
	if cfg.Disabled {
		return nil, nil
	}

	var opts []exdoc.CaptureOption

	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid capture timeout %q", cfg.Timeout)
		}
		opts = append(opts, exdoc.WithCaptureTimeout(d))
	}

	if cfg.SettleDelay != "" {
		d, err := time.ParseDuration(cfg.SettleDelay)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("invalid settle delay %q", cfg.SettleDelay)
		}
		opts = append(opts, exdoc.WithSettleDelay(d))
	}

	if cfg.Viewport.Width != 0 || cfg.Viewport.Height != 0 {
		if cfg.Viewport.Width <= 0 || cfg.Viewport.Height <= 0 {
			return nil, fmt.Errorf("invalid viewport %dx%d", cfg.Viewport.Width, cfg.Viewport.Height)
		}
		opts = append(opts, exdoc.WithViewport(cfg.Viewport.Width, cfg.Viewport.Height))
	}

	return exdoc.NewRodCapturer(opts...), nil
}
