package link

import (
	"regexp"
	"strings"

	"github.com/nao1215/slashcheck/internal/model"
)

// PageExtension is appended to extensionless links to look for the page
// they would be served from.
const PageExtension = ".html"

// fileExtRegex matches a last path segment of the form "name.ext".
var fileExtRegex = regexp.MustCompile(`(^|/)[^/]+\.[^/.]+$`)

// nonHTTPSchemes are link schemes that never reach the web host.
var nonHTTPSchemes = []string{"mailto:", "tel:"}

// Classifier decides which normalized links are findings.
type Classifier struct {
	known *model.KnownPaths
}

// NewClassifier creates a Classifier backed by the known-path set.
// The set must be fully built before the first call to Keep.
func NewClassifier(known *model.KnownPaths) *Classifier {
	return &Classifier{known: known}
}

// Keep reports whether the link is a bad link, i.e. an internal,
// extensionless path without a trailing slash that does not map to an
// existing "<path>.html" page.
func (c *Classifier) Keep(l model.Link) bool {
	p := l.Normalized

	switch {
	case p == "":
		return false
	case fileExtRegex.MatchString(p):
		return false
	case strings.HasSuffix(p, "/"):
		return false
	case strings.Contains(p, "://"):
		return false
	case hasNonHTTPScheme(p):
		return false
	case c.known.Has(p + PageExtension):
		return false
	default:
		return true
	}
}

// Filter returns the links Keep accepts, preserving their order.
func (c *Classifier) Filter(links []model.Link) []model.Link {
	bad := make([]model.Link, 0)
	for _, l := range links {
		if c.Keep(l) {
			bad = append(bad, l)
		}
	}
	return bad
}

func hasNonHTTPScheme(p string) bool {
	for _, scheme := range nonHTTPSchemes {
		if strings.Contains(p, scheme) {
			return true
		}
	}
	return false
}
