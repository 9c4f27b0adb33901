package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	// exitOK means every link passed.
	exitOK = 0

	// exitFindings means at least one bad link or unreadable file was reported.
	exitFindings = 1

	// exitError means the check could not run (bad configuration, missing root,
	// unreadable file without --keep-going).
	exitError = 2
)

// errFindings is returned by the check command when the report is not clean.
// It carries no message because the report already explains the failure.
var errFindings = errors.New("bad links found")

// NewRootCmd creates the root command for slashcheck.
func NewRootCmd() *cobra.Command {
	cmd := newCheckCmd()
	cmd.Use = "slashcheck [root]"
	cmd.Version = getVersion()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

// run executes the CLI with the given arguments and maps the outcome to an
// exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errFindings) {
			return exitFindings
		}
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}
	return exitOK
}
