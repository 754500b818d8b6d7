// Package fileutil provides file and path helpers shared by the generation
// library and the CLI.
package fileutil

import (
	"fmt"
	"os"
	"strings"
)

// dirPermissions applies to directories created for generated output
// (rwxr-x---: owner full, group read+execute).
const dirPermissions = 0o750

// EnsureDir creates a directory and any missing parents. An existing
// directory is not an error.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, dirPermissions); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a bare name. A string containing path separators (/, \) is treated as a
// path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
