package config

import "errors"

// Configuration validation errors returned by Config.Validate.
// Callers can match them with errors.Is.
var (
	// ErrNoRootDir is returned when no directory to scan is configured.
	ErrNoRootDir = errors.New("no root directory specified")

	// ErrInvalidConcurrency is returned when concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrUnknownParser is returned when the parser is neither "regex" nor "html".
	ErrUnknownParser = errors.New("unknown parser: must be regex or html")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidExcludeGlob is returned when an exclusion glob is malformed.
	ErrInvalidExcludeGlob = errors.New("invalid exclude glob")

	// ErrInvalidBaseURL is returned when the base URL is not an absolute URL.
	ErrInvalidBaseURL = errors.New("invalid base URL: must include scheme and host")
)
