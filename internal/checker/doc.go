// Package checker runs the link check over a scan root.
//
// A run is a single linear pass:
//
//	enumerate files -> (per HTML file) extract -> normalize -> filter -> aggregate
//
// The known-path set is fully built by the enumerator before any file is
// checked and is never modified afterward. Checking a file only depends on its
// own content and that set, so files are processed in parallel with a bounded
// errgroup while the result keeps enumeration order.
//
// # Usage
//
//	c := checker.New(
//	    checker.WithNormalizer(link.NewNormalizer(cfg.BaseURL)),
//	    checker.WithConcurrency(cfg.Concurrency),
//	)
//	result, err := c.Run(ctx, cfg.RootDir)
package checker
