package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/nao1215/slashcheck/internal/checker"
	"github.com/nao1215/slashcheck/internal/config"
	"github.com/nao1215/slashcheck/internal/extract"
	"github.com/nao1215/slashcheck/internal/fsindex"
	"github.com/nao1215/slashcheck/internal/link"
	"github.com/nao1215/slashcheck/internal/model"
	"github.com/nao1215/slashcheck/internal/report"
	"github.com/spf13/cobra"
)

// newCheckCmd creates the command that runs the link check.
// It is used as the root command, so `slashcheck` alone runs a check.
func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Short: "Find links that redirect because they lack a trailing slash",
		Long: `slashcheck scans a directory of built static HTML files and reports internal
links that the static host would redirect.

Behind the CDN, a directory-style URL without a trailing slash (/blog) is
redirected by the static-page host before it is served. slashcheck flags every
internal link that has no trailing slash, no file extension, and no matching
<path>.html page in the build output.

The exit code is 0 when no bad links are found, 1 when bad links are found,
and 2 when the check cannot run.

Examples:
  # Check the default build output (./dist)
  slashcheck

  # Check another directory
  slashcheck public

  # Treat links to another host as the canonical site
  slashcheck --base-url https://www.example.com

  # Write a Markdown report for a CI job summary
  slashcheck --markdown -o "$GITHUB_STEP_SUMMARY"

Configuration file (.slashcheck.yaml) example:
  rootDir: dist
  baseUrl: https://developer.okta.com
  exclude:
    - docs/sdk/
  excludeGlobs:
    - "**/generated/**"
  parser: regex`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheckCmd,
	}

	// Scan flags
	cmd.Flags().String("root", "",
		"Directory to scan (default \""+config.DefaultRootDir+"\"; a positional argument also works)")
	cmd.Flags().String("base-url", config.DefaultBaseURL,
		"Canonical site URL stripped from absolute links (empty disables)")
	cmd.Flags().StringSlice("exclude", []string{config.DefaultExcludedPathSubstring},
		"Skip HTML files whose path contains this substring (repeatable)")
	cmd.Flags().StringSlice("exclude-glob", nil,
		"Skip HTML files whose path matches this glob, e.g. **/sdk/** (repeatable)")

	// Extraction flags
	cmd.Flags().String("parser", config.DefaultParser,
		"Link extractor: regex or html")
	cmd.Flags().Bool("ignore-case", false,
		"Match tag names case-insensitively with the regex extractor")

	// Execution flags
	cmd.Flags().IntP("concurrency", "j", 0,
		"Number of files checked in parallel (0 or unset: number of CPUs)")
	cmd.Flags().BoolP("keep-going", "k", false,
		"Report unreadable files instead of aborting the check")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .slashcheck.yaml in current, XDG config or home directory)")

	// Report flags
	cmd.Flags().Bool("json", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Also write the report to this file path (creates directories if needed)")
	cmd.Flags().Bool("no-color", false,
		"Disable colored output")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	result, err := runCheck(ctx, cfg, cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}

	if err := outputReport(cfg, result, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if !result.Passed() {
		return errFindings
	}
	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the configuration file and
// cobra command flags, in increasing order of precedence. Only flags the user
// actually set override the file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if flags.Changed("root") {
		if cfg.RootDir, err = flags.GetString("root"); err != nil {
			return nil, err
		}
	}
	if len(args) > 0 {
		if flags.Changed("root") {
			return nil, fmt.Errorf("root given both as argument %q and --root flag", args[0])
		}
		cfg.RootDir = args[0]
	}

	if flags.Changed("base-url") {
		if cfg.BaseURL, err = flags.GetString("base-url"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("exclude") {
		if cfg.ExcludedPathSubstrings, err = flags.GetStringSlice("exclude"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("exclude-glob") {
		if cfg.ExcludeGlobs, err = flags.GetStringSlice("exclude-glob"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("parser") {
		if cfg.Parser, err = flags.GetString("parser"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("ignore-case") {
		if cfg.IgnoreCase, err = flags.GetBool("ignore-case"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("concurrency") {
		if cfg.Concurrency, err = flags.GetInt("concurrency"); err != nil {
			return nil, err
		}
		// 0 means one worker per CPU, as in the config file.
		if cfg.Concurrency == 0 {
			cfg.Concurrency = runtime.NumCPU()
		}
	}
	if flags.Changed("keep-going") {
		if cfg.KeepGoing, err = flags.GetBool("keep-going"); err != nil {
			return nil, err
		}
	}

	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	if cfg.NoColor, err = flags.GetBool("no-color"); err != nil {
		return nil, err
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.NoColor = true
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(w, opts)
	return slog.New(handler)
}

// runCheck builds a checker from cfg and runs it.
// Progress lines go to stdout only when stdout carries the text report, so
// JSON and Markdown output on stdout stay machine-readable.
func runCheck(ctx context.Context, cfg *config.Config, stdout io.Writer, logger *slog.Logger) (*model.Result, error) {
	extractor, err := extract.New(extract.Kind(cfg.Parser), cfg.IgnoreCase)
	if err != nil {
		return nil, err
	}

	opts := []checker.Option{
		checker.WithLogger(logger),
		checker.WithExtractor(extractor),
		checker.WithNormalizer(link.NewNormalizer(cfg.BaseURL)),
		checker.WithExclude(fsindex.NewExclude(cfg.ExcludedPathSubstrings, cfg.ExcludeGlobs)),
		checker.WithConcurrency(cfg.Concurrency),
		checker.WithKeepGoing(cfg.KeepGoing),
	}
	if cfg.ReportFile != "" || (!cfg.JSONReport && !cfg.MarkdownReport) {
		opts = append(opts, checker.WithProgress(stdout))
	}

	return checker.New(opts...).Run(ctx, cfg.RootDir)
}

// outputReport writes the result in the configured format to stdout.
// When a report file is set, the configured format goes to the file and the
// text report still goes to stdout, so CI logs show the outcome.
func outputReport(cfg *config.Config, result *model.Result, stdout io.Writer) error {
	colorize := !cfg.NoColor
	if cfg.ReportFile == "" {
		_, err := newReportWriter(cfg, stdout, colorize).Write(result)
		return err
	}

	// Create directories if they don't exist
	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	return writeReportFile(f, cfg, result, stdout)
}

// writeReportFile writes the configured format to f and the text report to
// stdout, then closes f. A failed close means the report may be incomplete
// and is returned as an error.
func writeReportFile(f io.WriteCloser, cfg *config.Config, result *model.Result, stdout io.Writer) error {
	writer := report.NewMultiWriter(
		newReportWriter(cfg, f, false),
		report.NewSimpleWriter(stdout, report.WithColor(!cfg.NoColor)),
	)
	if _, err := writer.Write(result); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// newReportWriter returns the writer for the configured report format.
func newReportWriter(cfg *config.Config, output io.Writer, colorize bool) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithColor(colorize))
	}
}
