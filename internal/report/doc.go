// Package report renders check results.
//
// Three formats are supported:
//   - SimpleWriter: human-readable text for terminals, optionally colored
//   - JSONWriter: machine-readable output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown, suited to CI job summaries
//
// Every failing report ends with the same remediation text, which explains the
// trailing-slash rule and where the links have to be fixed.
package report
