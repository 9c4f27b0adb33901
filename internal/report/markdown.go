package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/slashcheck/internal/model"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown, e.g. for
// $GITHUB_STEP_SUMMARY.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the result in Markdown format.
func (w *MarkdownWriter) Write(result *model.Result) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Trailing Slash Check")
	md.PlainText("")

	w.writeSummary(md, result)
	w.writeBadFiles(md, result)
	w.writeErrors(md, result)

	if !result.Passed() {
		md.H2("How to fix")
		md.PlainText("")
		md.PlainText(Remediation)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// writeSummary writes the summary table and an overall status alert.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, result *model.Result) {
	status := "✅ Passed"
	if !result.Passed() {
		status = "❌ Failed"
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Root", tableCode(result.Root)},
			{"HTML Files Checked", strconv.Itoa(result.FilesChecked)},
			{"Files Known", strconv.Itoa(result.FilesKnown)},
			{"Files With Bad Links", strconv.Itoa(len(result.BadFiles))},
			{"Bad Links", strconv.Itoa(result.BadLinkCount())},
			{"Status", status},
		},
	})
	md.PlainText("")

	switch {
	case len(result.Errors) > 0:
		md.Cautionf("%d %s could not be read.", len(result.Errors), plural(len(result.Errors), "file"))
	case len(result.BadFiles) > 0:
		md.Warningf("%d bad %s found in %d %s.",
			result.BadLinkCount(), plural(result.BadLinkCount(), "link"),
			len(result.BadFiles), plural(len(result.BadFiles), "file"))
	default:
		md.Tip("No links will redirect because of a missing trailing slash.")
	}
	md.PlainText("")
}

// writeBadFiles writes one section per bad file with its original hrefs.
func (w *MarkdownWriter) writeBadFiles(md *markdown.Markdown, result *model.Result) {
	if len(result.BadFiles) == 0 {
		return
	}

	md.H2("Bad Links")
	md.PlainText("")

	for _, f := range result.BadFiles {
		md.H3(markdown.Code(f.File.RelPath))
		md.PlainText("")

		rows := make([][]string, len(f.BadLinks))
		for i, l := range f.BadLinks {
			rows[i] = []string{tableCode(l.Original), tableCode(l.Normalized)}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Link", "Resolved"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}

// writeErrors lists unreadable files.
func (w *MarkdownWriter) writeErrors(md *markdown.Markdown, result *model.Result) {
	if len(result.Errors) == 0 {
		return
	}

	md.H2("Unreadable Files")
	md.PlainText("")

	items := make([]string, len(result.Errors))
	for i, e := range result.Errors {
		items[i] = "`" + e.File.RelPath + "`: " + e.Message
	}
	md.BulletList(items...)
	md.PlainText("")
}

// tableCode formats s as a code span that is safe inside a table cell.
// A pipe would end the cell even inside backticks, and a backtick in s needs a
// longer delimiter.
func tableCode(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	if !strings.Contains(s, "`") {
		return markdown.Code(s)
	}
	return "`` " + s + " ``"
}
