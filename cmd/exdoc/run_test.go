package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/CAPITAL-Skrax/enaml/exdoc"
)

func TestBuildCapturer(t *testing.T) {
	t.Parallel()

	t.Run("disabled returns nil", func(t *testing.T) {
		t.Parallel()

		c, err := buildCapturer(CaptureConfig{Disabled: true})
		if err != nil {
			t.Fatalf("buildCapturer() error = %v", err)
		}
		if c != nil {
			t.Error("buildCapturer() returned a capturer for disabled capture")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		c, err := buildCapturer(CaptureConfig{})
		if err != nil {
			t.Fatalf("buildCapturer() error = %v", err)
		}
		if _, ok := c.(*exdoc.RodCapturer); !ok {
			t.Errorf("buildCapturer() = %T, want *exdoc.RodCapturer", c)
		}
	})

	t.Run("tuned capturer", func(t *testing.T) {
		t.Parallel()

		c, err := buildCapturer(CaptureConfig{
			Timeout:     "1m",
			SettleDelay: "250ms",
			Viewport:    ViewportConfig{Width: 1024, Height: 768},
		})
		if err != nil {
			t.Fatalf("buildCapturer() error = %v", err)
		}
		if c == nil {
			t.Fatal("buildCapturer() = nil")
		}
	})

	t.Run("invalid durations rejected", func(t *testing.T) {
		t.Parallel()

		tests := []CaptureConfig{
			{Timeout: "soon"},
			{Timeout: "-5s"},
			{SettleDelay: "never"},
			{Viewport: ViewportConfig{Width: -1, Height: 100}},
			{Viewport: ViewportConfig{Width: 100}},
		}
		for _, cfg := range tests {
			if _, err := buildCapturer(cfg); err == nil {
				t.Errorf("buildCapturer(%+v) accepted invalid settings", cfg)
			}
		}
	})
}

func TestRun_NoCapture(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	examplesRoot := filepath.Join(root, "examples")
	if err := os.MkdirAll(examplesRoot, 0o750); err != nil {
		t.Fatal(err)
	}
	source := "\"\"\" A demo.\n\n<< autodoc-me >>\n\"\"\"\nenamldef Main(Window): pass\n"
	if err := os.WriteFile(filepath.Join(examplesRoot, "demo.enaml"), []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}
	docsRoot := filepath.Join(root, "docs")

	var out, errOut bytes.Buffer
	env := &Environment{Stdout: &out, Stderr: &errOut}
	flags := &cliFlags{
		docsRoot:     docsRoot,
		examplesRoot: examplesRoot,
		noCapture:    true,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, flags, env); err != nil {
		t.Fatalf("run() error = %v\nstderr: %s", err, errOut.String())
	}

	data, err := os.ReadFile(filepath.Join(docsRoot, "ex_demo.rst"))
	if err != nil {
		t.Fatalf("document not written: %v", err)
	}
	if !strings.Contains(string(data), "Demo Example") {
		t.Errorf("document missing title:\n%s", data)
	}
	if strings.Contains(string(data), ".. image::") {
		t.Errorf("document references a screenshot with capture disabled:\n%s", data)
	}
	if !strings.Contains(out.String(), "generating doc for demo") {
		t.Errorf("progress line missing, got %q", out.String())
	}
}

func TestRun_MalformedExampleFails(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	examplesRoot := filepath.Join(root, "examples")
	if err := os.MkdirAll(examplesRoot, 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(examplesRoot, "broken.enaml"),
		[]byte("<< autodoc-me >>\nno docstring here\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	env := &Environment{Stdout: &out, Stderr: &errOut}
	flags := &cliFlags{
		docsRoot:     filepath.Join(root, "docs"),
		examplesRoot: examplesRoot,
		noCapture:    true,
	}

	if err := run(context.Background(), flags, env); err == nil {
		t.Error("run() succeeded for a malformed example, want error")
	}
}
