package extract

import "regexp"

// hrefPattern matches the href of an a, area, base or link element.
// The href must be double quoted and non-empty, and must be the last
// attribute before the closing ">".
const hrefPattern = `<(a|area|base|link)[^>]*href\s*=\s*"([^"]+)">`

var (
	hrefRegex           = regexp.MustCompile(hrefPattern)
	hrefRegexIgnoreCase = regexp.MustCompile(`(?i)` + hrefPattern)
)

// RegexExtractor extracts hrefs with a regular expression.
// Tag names are matched case-sensitively unless WithIgnoreCase is used.
type RegexExtractor struct {
	re *regexp.Regexp
}

// RegexOption configures a RegexExtractor.
type RegexOption func(*RegexExtractor)

// WithIgnoreCase makes tag and attribute names match case-insensitively,
// so <A HREF="..."> is also found.
func WithIgnoreCase() RegexOption {
	return func(e *RegexExtractor) {
		e.re = hrefRegexIgnoreCase
	}
}

// NewRegexExtractor creates a RegexExtractor.
func NewRegexExtractor(opts ...RegexOption) *RegexExtractor {
	e := &RegexExtractor{re: hrefRegex}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the href of every match in document order.
func (e *RegexExtractor) Extract(content []byte) []string {
	matches := e.re.FindAllSubmatch(content, -1)
	hrefs := make([]string, 0, len(matches))
	for _, m := range matches {
		hrefs = append(hrefs, string(m[2]))
	}
	return hrefs
}
