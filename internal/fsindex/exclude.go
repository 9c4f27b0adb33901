package fsindex

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Exclude decides which HTML files are skipped during checking.
// Excluded files still count as known link targets.
type Exclude struct {
	// substrings skip any path that contains one of them.
	substrings []string

	// globs skip any path matching one of them (doublestar syntax).
	globs []string
}

// NewExclude creates an Exclude from path substrings and doublestar globs.
// Empty entries are ignored.
func NewExclude(substrings, globs []string) *Exclude {
	e := &Exclude{}
	for _, s := range substrings {
		if s != "" {
			e.substrings = append(e.substrings, s)
		}
	}
	for _, g := range globs {
		if g != "" {
			e.globs = append(e.globs, g)
		}
	}
	return e
}

// Match reports whether the slash-separated relative path is excluded.
// A nil Exclude matches nothing.
func (e *Exclude) Match(relPath string) bool {
	if e == nil {
		return false
	}
	for _, s := range e.substrings {
		if strings.Contains(relPath, s) {
			return true
		}
	}
	for _, g := range e.globs {
		// Patterns are validated when the configuration is loaded,
		// so a match error only means "no match".
		if ok, err := doublestar.Match(g, relPath); err == nil && ok {
			return true
		}
	}
	return false
}
