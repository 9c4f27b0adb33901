package report

import (
	"io"

	"github.com/nao1215/slashcheck/internal/model"
)

// Remediation is the fixed guidance printed after a failing report.
const Remediation = `Links to pages must end with a trailing slash (/blog/) or point at a file
with an extension (/blog.html, /logo.png). Without one, the static host behind
the CDN answers with a redirect that can send readers to the wrong host.

These files are build output. Fix the links in the source files (Markdown,
components, front matter) that generated them, then rebuild and run the check
again.`

// Writer defines the interface for report output.
// Implementations write check results in various formats.
type Writer interface {
	// Write outputs the result to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(result *model.Result) (int, error)
}

// MultiWriter writes to multiple Writers in order.
// This is useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the result to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(result *model.Result) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(result)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// plural returns word with an "s" appended unless n is 1.
func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
