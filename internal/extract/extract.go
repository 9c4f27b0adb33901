package extract

import (
	"fmt"
)

// Extractor returns every href in an HTML document, in document order.
type Extractor interface {
	Extract(content []byte) []string
}

// Kind names an Extractor implementation in configuration.
type Kind string

const (
	// KindRegex selects RegexExtractor.
	KindRegex Kind = "regex"

	// KindHTML selects HTMLExtractor.
	KindHTML Kind = "html"
)

// Kinds lists all supported extractor kinds.
func Kinds() []Kind {
	return []Kind{KindRegex, KindHTML}
}

// New returns the Extractor for the given kind.
// ignoreCase only affects the regex extractor; the HTML tokenizer is always
// case-insensitive on tag names.
func New(kind Kind, ignoreCase bool) (Extractor, error) {
	switch kind {
	case KindRegex, "":
		if ignoreCase {
			return NewRegexExtractor(WithIgnoreCase()), nil
		}
		return NewRegexExtractor(), nil
	case KindHTML:
		return NewHTMLExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown extractor %q", kind)
	}
}
