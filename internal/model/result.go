package model

import (
	"encoding/hex"
	"io"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Result is the outcome of one check run over a scan root.
// BadFiles and Errors are in enumeration order, which is deterministic
// for an unchanged directory tree.
type Result struct {
	// Root is the scanned directory as given by the user.
	Root string `json:"root"`

	// FilesChecked is the number of HTML files that were scanned for links.
	FilesChecked int `json:"files_checked"`

	// FilesKnown is the number of files in the known-path set.
	FilesKnown int `json:"files_known"`

	// BadFiles contains one entry per file with at least one bad link.
	BadFiles []FileReport `json:"bad_files"`

	// Errors contains files that could not be read. It is only populated
	// when read errors are recoverable.
	Errors []FileError `json:"errors,omitempty"`
}

// NewResult creates an empty Result for the given root.
func NewResult(root string) *Result {
	return &Result{
		Root:     root,
		BadFiles: make([]FileReport, 0),
	}
}

// Passed reports whether the run found no bad links and no unreadable files.
func (r *Result) Passed() bool {
	return len(r.BadFiles) == 0 && len(r.Errors) == 0
}

// BadLinkCount returns the total number of bad links across all files.
func (r *Result) BadLinkCount() int {
	total := 0
	for _, f := range r.BadFiles {
		total += len(f.BadLinks)
	}
	return total
}

// Fingerprint returns a SHA3-256 digest of the findings.
// Two runs over the same tree yield the same fingerprint, which makes it easy
// to compare reports between CI runs without diffing them.
func (r *Result) Fingerprint() string {
	h := sha3.New256()
	for _, f := range r.BadFiles {
		writeField(h, "file", f.File.RelPath)
		for _, l := range f.BadLinks {
			writeField(h, "link", l.Original)
		}
	}
	for _, e := range r.Errors {
		writeField(h, "error", e.File.RelPath)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// writeField writes a tagged, newline-terminated field so that adjacent
// values cannot collide ("ab"+"c" vs "a"+"bc").
func writeField(w io.Writer, tag, value string) {
	var sb strings.Builder
	sb.WriteString(tag)
	sb.WriteByte('\t')
	sb.WriteString(value)
	sb.WriteByte('\n')
	_, _ = io.WriteString(w, sb.String())
}
