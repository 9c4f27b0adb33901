package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the default configuration file name looked up in
	// the current and home directories.
	DefaultConfigFile = ".slashcheck.yaml"

	// XDGConfigFile is the configuration file name inside XDGConfigDir.
	XDGConfigFile = "config.yaml"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .slashcheck.yaml configuration file.
// Pointer and nil-slice fields distinguish "not set" from zero values, so an
// explicit `baseUrl: ""` disables base URL stripping.
type File struct {
	// RootDir is the directory to scan.
	RootDir *string `yaml:"rootDir,omitempty"`

	// BaseURL is the canonical site URL stripped from hrefs.
	BaseURL *string `yaml:"baseUrl,omitempty"`

	// Exclude lists path substrings whose HTML files are not checked.
	Exclude []string `yaml:"exclude,omitempty"`

	// ExcludeGlobs lists doublestar patterns whose HTML files are not checked.
	ExcludeGlobs []string `yaml:"excludeGlobs,omitempty"`

	// Parser selects the link extractor ("regex" or "html").
	Parser string `yaml:"parser,omitempty"`

	// IgnoreCase makes regex tag matching case-insensitive.
	IgnoreCase *bool `yaml:"ignoreCase,omitempty"`

	// Concurrency is the number of files checked in parallel.
	Concurrency int `yaml:"concurrency,omitempty"`

	// KeepGoing records unreadable files instead of aborting.
	KeepGoing *bool `yaml:"keepGoing,omitempty"`
}

// Apply copies every value set in the file onto cfg.
func (f *File) Apply(cfg *Config) {
	if f.RootDir != nil {
		cfg.RootDir = *f.RootDir
	}
	if f.BaseURL != nil {
		cfg.BaseURL = *f.BaseURL
	}
	if f.Exclude != nil {
		cfg.ExcludedPathSubstrings = f.Exclude
	}
	if f.ExcludeGlobs != nil {
		cfg.ExcludeGlobs = f.ExcludeGlobs
	}
	if f.Parser != "" {
		cfg.Parser = f.Parser
	}
	if f.IgnoreCase != nil {
		cfg.IgnoreCase = *f.IgnoreCase
	}
	if f.Concurrency != 0 {
		cfg.Concurrency = f.Concurrency
	}
	if f.KeepGoing != nil {
		cfg.KeepGoing = *f.KeepGoing
	}
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .slashcheck.yaml in the current directory
// 3. Look for config.yaml in the XDG config directory
// 4. Look for .slashcheck.yaml in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), XDGConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}

	return ""
}
