// Package exdoc generates the example documentation for the enaml examples.
//
// # Overview
//
// Example files opt into documentation with a marker line:
//
//	<< autodoc-me >>
//
// For every marked example, exdoc extracts the leading docstring, converts
// it to reStructuredText, renders a document describing the example, and
// captures a PNG snapshot of the example's preview in headless Chrome.
//
// # Quick Start
//
// Create a generator and run it over an examples tree:
//
//	gen := exdoc.NewGenerator(exdoc.NewRodCapturer())
//	defer gen.Close()
//
//	if err := gen.RunAll(ctx, "docs/source/examples", "examples", nil); err != nil {
//	    log.Fatal(err)
//	}
//
// Each selected example produces docs/source/examples/ex_<name>.rst and,
// best effort, docs/source/examples/images/ex_<name>.png. Snapshot failures
// never abort the run; the document is simply generated without its
// screenshot section.
//
// # Generation Pipeline
//
// Per example, the pipeline runs these stages:
//
//  1. Derive names and paths from the example file
//  2. Capture a preview snapshot (best effort, isolated and cleaned up)
//  3. Extract and clean the docstring
//  4. Render the reStructuredText document
//  5. Write it, overwriting any stale output
//
// # Browser Requirements
//
// Snapshot capture requires Chrome/Chromium. The go-rod library downloads a
// managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
// Pass a nil Capturer to NewGenerator to skip capture entirely.
package exdoc
