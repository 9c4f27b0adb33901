package link

import (
	"path"
	"strings"

	"github.com/nao1215/slashcheck/internal/model"
)

// Normalizer turns raw hrefs into root-relative or base-relative paths.
type Normalizer struct {
	// baseURL is removed from hrefs so absolute links back to the
	// canonical site are treated like root-relative links.
	baseURL string
}

// NewNormalizer creates a Normalizer that strips baseURL.
// An empty baseURL disables base URL stripping.
func NewNormalizer(baseURL string) *Normalizer {
	return &Normalizer{baseURL: baseURL}
}

// Normalize prepares href, found in a file whose directory (relative to the
// scan root) is baseDir, for classification. The steps run in this order:
//  1. strip everything from the first "#"
//  2. remove the first occurrence of the base URL
//  3. resolve relative paths (no leading "/", no ":") against baseDir
func (n *Normalizer) Normalize(href, baseDir string) model.Link {
	prepped := href

	if i := strings.IndexByte(prepped, '#'); i >= 0 {
		prepped = prepped[:i]
	}

	if n.baseURL != "" {
		prepped = strings.Replace(prepped, n.baseURL, "", 1)
	}

	if isRelative(prepped) {
		prepped = resolve(baseDir, prepped)
	}

	return model.Link{
		Original:   href,
		Normalized: prepped,
	}
}

// isRelative reports whether p is a path relative to the current file.
// Anything with a ":" is scheme-qualified (http:, mailto:, tel:, javascript:).
func isRelative(p string) bool {
	return p != "" && !strings.HasPrefix(p, "/") && !strings.Contains(p, ":")
}

// resolve joins p onto dir lexically, collapsing "." and ".." segments.
// A trailing slash on p is kept because it decides whether the link redirects.
func resolve(dir, p string) string {
	joined := path.Join(dir, p)
	if strings.HasSuffix(p, "/") && !strings.HasSuffix(joined, "/") {
		joined += "/"
	}
	return joined
}
