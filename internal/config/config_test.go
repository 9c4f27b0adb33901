package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default RootDir is dist", func(t *testing.T) {
		t.Parallel()
		if cfg.RootDir != "dist" {
			t.Errorf("expected RootDir to be 'dist', got %q", cfg.RootDir)
		}
	})

	t.Run("default BaseURL is the production site", func(t *testing.T) {
		t.Parallel()
		if cfg.BaseURL != "https://developer.okta.com" {
			t.Errorf("unexpected BaseURL %q", cfg.BaseURL)
		}
	})

	t.Run("default excludes the SDK subtree", func(t *testing.T) {
		t.Parallel()
		if len(cfg.ExcludedPathSubstrings) != 1 || cfg.ExcludedPathSubstrings[0] != "docs/sdk/" {
			t.Errorf("unexpected ExcludedPathSubstrings %v", cfg.ExcludedPathSubstrings)
		}
	})

	t.Run("default parser is regex", func(t *testing.T) {
		t.Parallel()
		if cfg.Parser != "regex" {
			t.Errorf("expected Parser to be 'regex', got %q", cfg.Parser)
		}
	})

	t.Run("default tag matching is case-sensitive", func(t *testing.T) {
		t.Parallel()
		if cfg.IgnoreCase {
			t.Error("expected IgnoreCase to be false")
		}
	})

	t.Run("default concurrency is the CPU count", func(t *testing.T) {
		t.Parallel()
		if cfg.Concurrency != runtime.NumCPU() {
			t.Errorf("expected Concurrency %d, got %d", runtime.NumCPU(), cfg.Concurrency)
		}
	})

	t.Run("read errors are fatal by default", func(t *testing.T) {
		t.Parallel()
		if cfg.KeepGoing {
			t.Error("expected KeepGoing to be false")
		}
	})

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected defaults to validate, got %v", err)
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{name: "valid config", modify: func(*Config) {}, wantErr: nil},
		{name: "empty root", modify: func(c *Config) { c.RootDir = "" }, wantErr: ErrNoRootDir},
		{name: "zero concurrency", modify: func(c *Config) { c.Concurrency = 0 }, wantErr: ErrInvalidConcurrency},
		{name: "negative concurrency", modify: func(c *Config) { c.Concurrency = -1 }, wantErr: ErrInvalidConcurrency},
		{name: "unknown parser", modify: func(c *Config) { c.Parser = "dom" }, wantErr: ErrUnknownParser},
		{name: "html parser", modify: func(c *Config) { c.Parser = "html" }, wantErr: nil},
		{
			name:    "json and markdown",
			modify:  func(c *Config) { c.JSONReport, c.MarkdownReport = true, true },
			wantErr: ErrConflictingReportFormats,
		},
		{name: "bad glob", modify: func(c *Config) { c.ExcludeGlobs = []string{"docs/[sdk"} }, wantErr: ErrInvalidExcludeGlob},
		{name: "good glob", modify: func(c *Config) { c.ExcludeGlobs = []string{"**/sdk/**"} }, wantErr: nil},
		{name: "base url without scheme", modify: func(c *Config) { c.BaseURL = "developer.okta.com" }, wantErr: ErrInvalidBaseURL},
		{name: "empty base url", modify: func(c *Config) { c.BaseURL = "" }, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewConfig()
			cfg.Concurrency = 4
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestLoadConfigFile tests YAML configuration loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	writeConfig := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		return path
	}

	t.Run("all fields", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
rootDir: public
baseUrl: https://example.com
exclude:
  - api/
excludeGlobs:
  - "**/generated/**"
parser: html
ignoreCase: true
concurrency: 2
keepGoing: true
`)
		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cfg := NewConfig()
		cf.Apply(cfg)

		if cfg.RootDir != "public" {
			t.Errorf("RootDir = %q", cfg.RootDir)
		}
		if cfg.BaseURL != "https://example.com" {
			t.Errorf("BaseURL = %q", cfg.BaseURL)
		}
		if len(cfg.ExcludedPathSubstrings) != 1 || cfg.ExcludedPathSubstrings[0] != "api/" {
			t.Errorf("ExcludedPathSubstrings = %v", cfg.ExcludedPathSubstrings)
		}
		if len(cfg.ExcludeGlobs) != 1 || cfg.ExcludeGlobs[0] != "**/generated/**" {
			t.Errorf("ExcludeGlobs = %v", cfg.ExcludeGlobs)
		}
		if cfg.Parser != "html" {
			t.Errorf("Parser = %q", cfg.Parser)
		}
		if !cfg.IgnoreCase || !cfg.KeepGoing {
			t.Error("expected IgnoreCase and KeepGoing to be true")
		}
		if cfg.Concurrency != 2 {
			t.Errorf("Concurrency = %d", cfg.Concurrency)
		}
	})

	t.Run("unset fields keep defaults", func(t *testing.T) {
		t.Parallel()

		cf, err := LoadConfigFile(writeConfig(t, "rootDir: build\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cfg := NewConfig()
		cf.Apply(cfg)

		if cfg.RootDir != "build" {
			t.Errorf("RootDir = %q", cfg.RootDir)
		}
		if cfg.BaseURL != DefaultBaseURL {
			t.Errorf("expected default BaseURL, got %q", cfg.BaseURL)
		}
		if len(cfg.ExcludedPathSubstrings) != 1 {
			t.Errorf("expected default exclusions, got %v", cfg.ExcludedPathSubstrings)
		}
	})

	t.Run("explicit empty base url disables stripping", func(t *testing.T) {
		t.Parallel()

		cf, err := LoadConfigFile(writeConfig(t, "baseUrl: \"\"\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cfg := NewConfig()
		cf.Apply(cfg)
		if cfg.BaseURL != "" {
			t.Errorf("expected empty BaseURL, got %q", cfg.BaseURL)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(writeConfig(t, "exclude: [unterminated\n"))
		if err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests configuration file lookup with an explicit path.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("parser: regex\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("explicit missing path", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); got != "" {
			t.Errorf("expected empty path, got %q", got)
		}
	})
}

// TestXDGConfigDir tests that the XDG directory ends with the app name.
func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	if filepath.Base(XDGConfigDir()) != AppName {
		t.Errorf("expected XDG config dir to end with %q, got %q", AppName, XDGConfigDir())
	}
}
