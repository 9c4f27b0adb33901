// Package extract pulls href values out of HTML documents.
//
// Two extractors are provided:
//   - RegexExtractor matches `<tag ... href="...">` textually. It is tolerant of
//     malformed markup and is the default.
//   - HTMLExtractor runs the golang.org/x/net/html tokenizer and finds hrefs
//     regardless of attribute order, quoting or tag case.
//
// Both only look at a, area, base and link elements and return hrefs in
// document order without deduplication.
package extract
