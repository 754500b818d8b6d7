package exdoc

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Discover walks root and returns the example files that request
// documentation: files with the given extension, optionally restricted to
// paths ending in one of suffixes, whose content contains marker as a whole
// line. WalkDir visits entries in lexical order, so results are
// deterministic for a fixed tree.
func Discover(root, ext, marker string, suffixes []string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !strings.HasSuffix(path, ext) {
			return nil
		}
		if !matchesAnySuffix(path, suffixes) {
			return nil
		}
		ok, err := hasMarkerLine(path, marker)
		if err != nil {
			return err
		}
		if ok {
			found = append(found, path)
		}
		return nil
	})
	return found, err
}

// matchesAnySuffix reports whether path ends with one of the suffixes.
// An empty allow-list matches everything.
func matchesAnySuffix(path string, suffixes []string) bool {
	if len(suffixes) == 0 {
		return true
	}
	for _, s := range suffixes {
		if strings.HasSuffix(path, s) {
			return true
		}
	}
	return false
}

// hasMarkerLine reports whether marker appears as a whole line of the file.
// A marker embedded in a longer line does not count.
func hasMarkerLine(path, marker string) (bool, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the walk
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	want := []byte(marker)
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.Equal(bytes.TrimSuffix(line, []byte("\r")), want) {
			return true, nil
		}
	}
	return false, nil
}
