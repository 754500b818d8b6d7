package exdoc

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// pathRootMarker anchors download and include links: the portion of an
// example's path starting at this directory is what generated documents
// reference.
const pathRootMarker = "examples"

// Example describes one example file and the names derived from it.
// Instances are immutable value snapshots computed per run.
type Example struct {
	Path string // path to the example source as discovered

	Name      string // base name without directory or extension
	Title     string // human-readable title derived from Name
	ImageName string // snapshot file name, ex_<name>.png
	RelPath   string // path fragment starting at the examples root marker
}

// NewExample derives all document-facing names from an example path.
func NewExample(path string) Example {
	base := filepath.Base(path)
	if idx := strings.IndexByte(base, '.'); idx >= 0 {
		base = base[:idx]
	}
	return Example{
		Path: path,
		Name: base,
		// cases.Caser is stateful, so build one per call.
		Title:     cases.Title(language.English).String(strings.ReplaceAll(base, "_", " ")),
		ImageName: "ex_" + base + ".png",
		RelPath:   relToMarker(path),
	}
}

// DocFileName returns the generated document's file name.
func (e Example) DocFileName() string {
	return "ex_" + e.Name + ".rst"
}

// relToMarker returns the path from the examples root marker onward,
// normalized to forward slashes for use in generated documents. Paths
// outside an examples tree are returned as-is.
func relToMarker(path string) string {
	p := filepath.ToSlash(path)
	if idx := strings.Index(p, pathRootMarker); idx >= 0 {
		return p[idx:]
	}
	return p
}
