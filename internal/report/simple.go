package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
	"github.com/nao1215/slashcheck/internal/model"
)

// summaryPathWidth caps the path column of the summary table.
const summaryPathWidth = 60

var (
	styleOK     = color.New(color.FgGreen, color.OpBold)
	styleFail   = color.New(color.FgRed, color.OpBold)
	styleFile   = color.New(color.FgYellow)
	styleLink   = color.New(color.FgRed)
	styleHeader = color.New(color.OpBold)
)

// SimpleWriter outputs human-readable text reports.
type SimpleWriter struct {
	baseWriter

	// colorize enables ANSI colors via gookit/color.
	colorize bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithColor enables or disables colored output.
// Colors are still dropped when gookit/color detects a terminal without
// color support.
func WithColor(enabled bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.colorize = enabled
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the result in human-readable format.
func (w *SimpleWriter) Write(result *model.Result) (int, error) {
	var sb strings.Builder

	if result.Passed() {
		sb.WriteString(w.paint(styleOK, "OK"))
		sb.WriteString(fmt.Sprintf(": no trailing-slash problems in %d HTML %s.\n",
			result.FilesChecked, plural(result.FilesChecked, "file")))
		return w.output.Write([]byte(sb.String()))
	}

	w.writeBadFiles(&sb, result)
	w.writeErrors(&sb, result)
	w.writeSummary(&sb, result)
	w.writeRemediation(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeBadFiles lists every bad file with its original hrefs.
func (w *SimpleWriter) writeBadFiles(sb *strings.Builder, result *model.Result) {
	if len(result.BadFiles) == 0 {
		return
	}

	sb.WriteString("\n")
	sb.WriteString(w.paint(styleHeader, "Links that will redirect because they lack a trailing slash:"))
	sb.WriteString("\n\n")

	for _, f := range result.BadFiles {
		sb.WriteString(w.paint(styleFile, f.File.RelPath))
		sb.WriteString("\n")
		for _, l := range f.BadLinks {
			sb.WriteString("  ")
			sb.WriteString(w.paint(styleLink, l.Original))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
}

// writeErrors lists files that could not be read.
func (w *SimpleWriter) writeErrors(sb *strings.Builder, result *model.Result) {
	if len(result.Errors) == 0 {
		return
	}

	sb.WriteString(w.paint(styleHeader, "Files that could not be read:"))
	sb.WriteString("\n\n")
	for _, e := range result.Errors {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", w.paint(styleFile, e.File.RelPath), e.Message))
	}
	sb.WriteString("\n")
}

// writeSummary writes an aligned per-file count table and the totals.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, result *model.Result) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(w.paint(styleHeader, "SUMMARY"))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	width := 0
	for _, f := range result.BadFiles {
		width = max(width, runewidth.StringWidth(f.File.RelPath))
	}
	width = min(width, summaryPathWidth)

	for _, f := range result.BadFiles {
		name := runewidth.Truncate(f.File.RelPath, width, "...")
		n := len(f.BadLinks)
		sb.WriteString(fmt.Sprintf("  %s  %d %s\n", runewidth.FillRight(name, width), n, plural(n, "link")))
	}
	if len(result.BadFiles) > 0 {
		sb.WriteString("\n")
	}

	files := len(result.BadFiles)
	links := result.BadLinkCount()
	sb.WriteString(w.paint(styleFail, "FAILED"))
	sb.WriteString(fmt.Sprintf(": %d bad %s in %d %s (%d HTML %s checked)\n",
		links, plural(links, "link"), files, plural(files, "file"),
		result.FilesChecked, plural(result.FilesChecked, "file")))
	if n := len(result.Errors); n > 0 {
		sb.WriteString(fmt.Sprintf("        %d unreadable %s\n", n, plural(n, "file")))
	}
	sb.WriteString("\n")
}

// writeRemediation writes the fixed remediation text.
func (w *SimpleWriter) writeRemediation(sb *strings.Builder) {
	sb.WriteString(Remediation)
	sb.WriteString("\n")
}

// paint applies style to s when colors are enabled.
func (w *SimpleWriter) paint(style color.Style, s string) string {
	if !w.colorize {
		return s
	}
	return style.Sprint(s)
}
