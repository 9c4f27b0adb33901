// Package model defines the core data structures used throughout slashcheck.
//
// This package contains the following main types:
//   - FileRecord: A discovered file, absolute and relative to the scan root
//   - KnownPaths: The set of every file path under the scan root
//   - Link: One extracted href and its normalized form
//   - FileReport: The bad links found in a single HTML file
//   - Result: The outcome of a complete check run
//
// The models are shared by the enumerator, the link pipeline, the checker and the
// report writers, and are serializable to JSON for report output.
package model
