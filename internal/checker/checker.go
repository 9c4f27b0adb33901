package checker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/nao1215/slashcheck/internal/extract"
	"github.com/nao1215/slashcheck/internal/fsindex"
	"github.com/nao1215/slashcheck/internal/link"
	"github.com/nao1215/slashcheck/internal/model"
	"golang.org/x/sync/errgroup"
)

// Checker finds bad links in the HTML files under a scan root.
// A Checker holds no per-run state and may be reused.
type Checker struct {
	// extractor pulls hrefs out of file content.
	extractor extract.Extractor

	// normalizer prepares hrefs for classification.
	normalizer *link.Normalizer

	// exclude skips HTML files that should not be checked.
	exclude *fsindex.Exclude

	// concurrency is the maximum number of files processed at once.
	concurrency int

	// keepGoing records read errors instead of aborting the run.
	keepGoing bool

	// progress receives one "Checking <file>" line per file, if set.
	progress   io.Writer
	progressMu sync.Mutex

	// readFile reads file content. Replaced in tests.
	readFile func(name string) ([]byte, error)

	// logger is used for run-level logging.
	logger *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithExtractor sets the link extractor. The default is the regex extractor.
func WithExtractor(e extract.Extractor) Option {
	return func(c *Checker) {
		if e != nil {
			c.extractor = e
		}
	}
}

// WithNormalizer sets the link normalizer. The default strips no base URL.
func WithNormalizer(n *link.Normalizer) Option {
	return func(c *Checker) {
		if n != nil {
			c.normalizer = n
		}
	}
}

// WithExclude sets the rules for HTML files that are not checked.
func WithExclude(e *fsindex.Exclude) Option {
	return func(c *Checker) {
		c.exclude = e
	}
}

// WithConcurrency sets the maximum number of files processed in parallel.
// Non-positive values are ignored.
func WithConcurrency(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithKeepGoing makes unreadable files a recorded error rather than a fatal one.
func WithKeepGoing(keepGoing bool) Option {
	return func(c *Checker) {
		c.keepGoing = keepGoing
	}
}

// WithProgress writes a line per checked file to w.
func WithProgress(w io.Writer) Option {
	return func(c *Checker) {
		c.progress = w
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Checker with the given options.
func New(opts ...Option) *Checker {
	c := &Checker{
		extractor:   extract.NewRegexExtractor(),
		normalizer:  link.NewNormalizer(""),
		concurrency: runtime.NumCPU(),
		readFile:    os.ReadFile,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// fileOutcome is the result of checking a single file.
type fileOutcome struct {
	bad []model.Link
	err error
}

// Run checks every HTML file under root and returns the aggregated result.
//
// Bad links are part of the result, never an error. An error is returned
// when the root cannot be enumerated, when the context is cancelled, or when a
// file cannot be read and keep-going is off; in those cases no result is
// returned.
func (c *Checker) Run(ctx context.Context, root string) (*model.Result, error) {
	startTime := time.Now()

	idx, err := fsindex.Build(ctx, root, c.exclude)
	if err != nil {
		return nil, err
	}

	c.logger.Info("starting check",
		"root", root,
		"files", len(idx.Files),
		"known", idx.Known.Len(),
		"concurrency", c.concurrency,
	)

	classifier := link.NewClassifier(idx.Known)
	outcomes := make([]fileOutcome, len(idx.Files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, file := range idx.Files {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			c.reportProgress(file)

			bad, err := c.checkFile(file, classifier)
			if err != nil {
				if !c.keepGoing {
					return err
				}
				c.logger.Warn("skipping unreadable file", "file", file.RelPath, "error", err)
			}

			// Each goroutine owns its own index, so no locking is needed.
			outcomes[i] = fileOutcome{bad: bad, err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := model.NewResult(root)
	result.FilesChecked = len(idx.Files)
	result.FilesKnown = idx.Known.Len()

	for i, o := range outcomes {
		file := idx.Files[i]
		if o.err != nil {
			result.Errors = append(result.Errors, model.NewFileError(file, o.err))
			continue
		}
		if len(o.bad) > 0 {
			result.BadFiles = append(result.BadFiles, model.FileReport{
				File:     file,
				BadLinks: o.bad,
			})
		}
	}

	c.logger.Info("check completed",
		"root", root,
		"bad_files", len(result.BadFiles),
		"bad_links", result.BadLinkCount(),
		"errors", len(result.Errors),
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)

	return result, nil
}

// checkFile returns the bad links of a single file in document order.
func (c *Checker) checkFile(file model.FileRecord, classifier *link.Classifier) ([]model.Link, error) {
	content, err := c.readFile(file.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file.RelPath, err)
	}

	hrefs := c.extractor.Extract(content)
	dir := file.Dir()

	links := make([]model.Link, 0, len(hrefs))
	for _, href := range hrefs {
		links = append(links, c.normalizer.Normalize(href, dir))
	}

	bad := classifier.Filter(links)

	c.logger.Debug("checked file",
		"file", file.RelPath,
		"links", len(links),
		"bad", len(bad),
	)

	return bad, nil
}

// reportProgress writes the progress line for file, if progress is enabled.
// Lines from parallel workers may interleave in any order.
func (c *Checker) reportProgress(file model.FileRecord) {
	if c.progress == nil {
		return
	}
	c.progressMu.Lock()
	defer c.progressMu.Unlock()
	fmt.Fprintf(c.progress, "Checking %s\n", file.RelPath)
}
