// Package link normalizes extracted hrefs and decides which ones are findings.
//
// A static host behind the CDN redirects extensionless directory URLs that lack
// a trailing slash, often to a different host. A link is safe when it points at
// a file with an extension, ends with "/", leaves the site, or names a page that
// exists as "<path>.html". Every other internal link is reported.
//
// # Usage
//
//	n := link.NewNormalizer("https://developer.okta.com")
//	c := link.NewClassifier(known)
//	for _, href := range hrefs {
//	    l := n.Normalize(href, file.Dir())
//	    if c.Keep(l) {
//	        // bad link
//	    }
//	}
package link
