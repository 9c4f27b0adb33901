package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/slashcheck/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// version is recorded in the report.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
	}
}

// WithVersion records the tool version in the report.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONReport wraps a result with derived fields so consumers do not need to
// recompute them.
type JSONReport struct {
	// Version is the slashcheck version that generated this report.
	Version string `json:"version,omitempty"`

	// Passed is true when no bad links and no unreadable files were found.
	Passed bool `json:"passed"`

	// BadFileCount is the number of files with bad links.
	BadFileCount int `json:"bad_file_count"`

	// BadLinkCount is the total number of bad links.
	BadLinkCount int `json:"bad_link_count"`

	// Fingerprint identifies the findings; equal for identical runs.
	Fingerprint string `json:"fingerprint"`

	// Result is the full check result.
	Result *model.Result `json:"result"`

	// Remediation is the fix guidance, only present when the check failed.
	Remediation string `json:"remediation,omitempty"`
}

// NewJSONReport creates a JSONReport for result.
func NewJSONReport(result *model.Result, version string) *JSONReport {
	r := &JSONReport{
		Version:      version,
		Passed:       result.Passed(),
		BadFileCount: len(result.BadFiles),
		BadLinkCount: result.BadLinkCount(),
		Fingerprint:  result.Fingerprint(),
		Result:       result,
	}
	if !r.Passed {
		r.Remediation = Remediation
	}
	return r
}

// Write outputs the result in JSON format.
func (w *JSONWriter) Write(result *model.Result) (int, error) {
	var data []byte
	var err error

	report := NewJSONReport(result, w.version)
	if w.indent {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
