package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CAPITAL-Skrax/enaml/internal/fileutil"
	"github.com/CAPITAL-Skrax/enaml/internal/hints"
	"github.com/CAPITAL-Skrax/enaml/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all configuration for documentation generation.
type Config struct {
	Docs      DocsConfig     `yaml:"docs"`
	Examples  ExamplesConfig `yaml:"examples"`
	Capture   CaptureConfig  `yaml:"capture"`
	KeepGoing bool           `yaml:"keepGoing"`
}

// DocsConfig defines where generated documents are written.
type DocsConfig struct {
	Dir string `yaml:"dir"` // Output directory (empty = docs/source/examples)
}

// ExamplesConfig defines where examples are discovered.
type ExamplesConfig struct {
	Dir       string `yaml:"dir"`       // Examples root (empty = examples)
	Extension string `yaml:"extension"` // File extension (empty = .enaml)
}

// CaptureConfig defines snapshot capture options.
type CaptureConfig struct {
	Disabled    bool           `yaml:"disabled"`
	Timeout     string         `yaml:"timeout"`     // Page load timeout, e.g. "30s"
	SettleDelay string         `yaml:"settleDelay"` // Fixed pre-snapshot wait, e.g. "500ms"
	Viewport    ViewportConfig `yaml:"viewport"`
}

// ViewportConfig defines the snapshot viewport in CSS pixels.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DefaultConfig returns a neutral configuration; unset values fall back to
// library defaults when the generator is built.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/exdoc/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "exdoc", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s%s",
		ErrConfigNotFound, strings.Join(triedPaths, ", "), hints.ForConfigNotFound(triedPaths))
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *Config) {
	if flags.docsRoot != "" {
		cfg.Docs.Dir = flags.docsRoot
	}
	if flags.examplesRoot != "" {
		cfg.Examples.Dir = flags.examplesRoot
	}
	if flags.timeout != "" {
		cfg.Capture.Timeout = flags.timeout
	}
	if flags.settleDelay != "" {
		cfg.Capture.SettleDelay = flags.settleDelay
	}
	if flags.noCapture {
		cfg.Capture.Disabled = true
	}
	if flags.keepGoing {
		cfg.KeepGoing = true
	}
}
