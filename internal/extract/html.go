package extract

import (
	"bytes"

	"golang.org/x/net/html"
)

// linkElements are the elements whose href attribute is a navigable link.
var linkElements = map[string]bool{
	"a":    true,
	"area": true,
	"base": true,
	"link": true,
}

// HTMLExtractor extracts hrefs with the golang.org/x/net/html tokenizer.
// Unlike RegexExtractor it finds hrefs in any attribute position and with any
// quoting. Attribute values are returned with entities decoded.
type HTMLExtractor struct{}

// NewHTMLExtractor creates an HTMLExtractor.
func NewHTMLExtractor() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract returns the non-empty href of every link element in document order.
func (e *HTMLExtractor) Extract(content []byte) []string {
	hrefs := make([]string, 0)
	z := html.NewTokenizer(bytes.NewReader(content))

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a tokenizer error; either way there is nothing more to read.
			return hrefs
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if !hasAttr || !linkElements[string(name)] {
				continue
			}
			// Only the first href counts, as in browsers.
			for more := true; more; {
				var key, val []byte
				key, val, more = z.TagAttr()
				if string(key) == "href" {
					if len(val) > 0 {
						hrefs = append(hrefs, string(val))
					}
					break
				}
			}
		}
	}
}
