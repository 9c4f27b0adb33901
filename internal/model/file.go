package model

import (
	"path"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// FileRecord identifies a file discovered under the scan root.
// It is created once during enumeration and never modified.
type FileRecord struct {
	// Path is the absolute (or root-joined) filesystem path used for reading.
	Path string `json:"-"`

	// RelPath is the slash-separated path relative to the scan root,
	// e.g. "guides/foo/index.html".
	RelPath string `json:"path"`
}

// Dir returns the slash-separated directory of the file relative to the scan root.
// Files directly under the root have an empty directory.
func (f FileRecord) Dir() string {
	dir := path.Dir(f.RelPath)
	if dir == "." {
		return ""
	}
	return dir
}

// KnownPaths is the set of relative paths of every file under the scan root.
// It is fully populated by the enumerator before any lookup happens and is
// read-only afterward, so it is safe for concurrent readers.
type KnownPaths struct {
	paths map[string]struct{}
}

// NewKnownPaths creates a KnownPaths set from the given relative paths.
func NewKnownPaths(paths ...string) *KnownPaths {
	k := &KnownPaths{paths: make(map[string]struct{}, len(paths))}
	for _, p := range paths {
		k.paths[canonicalKey(p)] = struct{}{}
	}
	return k
}

// Has reports whether the relative path exists under the scan root.
// A leading "/" is treated as root-relative, so "/blog.html" and "blog.html"
// name the same file.
func (k *KnownPaths) Has(p string) bool {
	if k == nil {
		return false
	}
	_, ok := k.paths[canonicalKey(p)]
	return ok
}

// Len returns the number of known paths.
func (k *KnownPaths) Len() int {
	if k == nil {
		return 0
	}
	return len(k.paths)
}

// canonicalKey converts a path into the form used as a set key.
// Names are compared in NFC because some filesystems (APFS, HFS+) return
// decomposed names while hrefs are usually composed.
func canonicalKey(p string) string {
	return norm.NFC.String(strings.TrimPrefix(p, "/"))
}
