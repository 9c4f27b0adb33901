package config

import (
	"net/url"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/nao1215/slashcheck/internal/extract"
)

// Default configuration values.
const (
	// DefaultRootDir is the build output directory of the documentation site,
	// relative to the working directory.
	DefaultRootDir = "dist"

	// DefaultBaseURL is the canonical production site. Absolute links to it
	// are checked like root-relative links.
	DefaultBaseURL = "https://developer.okta.com"

	// DefaultExcludedPathSubstring is the subtree of documentation generated
	// from SDKs. Its pages are not checked, but remain valid link targets.
	DefaultExcludedPathSubstring = "docs/sdk/"

	// DefaultParser is the link extractor used when none is configured.
	DefaultParser = string(extract.KindRegex)

	// AppName is the application name used for XDG directory paths.
	AppName = "slashcheck"
)

// Config holds all configuration options for slashcheck.
// It is populated from the configuration file and CLI flags and passed
// explicitly to the checker; nothing is read from global state.
type Config struct {
	// RootDir is the directory to scan.
	RootDir string

	// BaseURL is stripped from hrefs before classification.
	// An empty value disables stripping.
	BaseURL string

	// ExcludedPathSubstrings skip HTML files whose relative path contains
	// any of them.
	ExcludedPathSubstrings []string

	// ExcludeGlobs skip HTML files whose relative path matches any of these
	// doublestar patterns (e.g. "**/generated/**").
	ExcludeGlobs []string

	// Parser selects the link extractor: "regex" or "html".
	Parser string

	// IgnoreCase makes the regex extractor match tag names case-insensitively.
	// The default matches tags exactly as written, like "<a", not "<A".
	IgnoreCase bool

	// Concurrency is the number of files read and checked in parallel.
	Concurrency int

	// KeepGoing records unreadable files in the report instead of aborting
	// the whole run on the first read error.
	KeepGoing bool

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the default locations are searched.
	ConfigFilePath string

	// JSONReport enables JSON report output.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When empty, the report is written to stdout.
	ReportFile string

	// NoColor disables colored terminal output.
	NoColor bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		RootDir:                DefaultRootDir,
		BaseURL:                DefaultBaseURL,
		ExcludedPathSubstrings: []string{DefaultExcludedPathSubstring},
		Parser:                 DefaultParser,
		Concurrency:            runtime.NumCPU(),
	}
}

// XDGConfigDir returns the XDG config directory for slashcheck.
// On Linux: ~/.config/slashcheck
// On macOS: ~/Library/Application Support/slashcheck
// On Windows: %APPDATA%\slashcheck
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as one of the sentinel errors in errors.go.
func (c *Config) Validate() error {
	if c.RootDir == "" {
		return ErrNoRootDir
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if !validParser(c.Parser) {
		return ErrUnknownParser
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	for _, g := range c.ExcludeGlobs {
		if !doublestar.ValidatePattern(g) {
			return ErrInvalidExcludeGlob
		}
	}

	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ErrInvalidBaseURL
		}
	}

	return nil
}

func validParser(parser string) bool {
	for _, k := range extract.Kinds() {
		if parser == string(k) {
			return true
		}
	}
	return false
}
