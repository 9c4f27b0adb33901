// Package main provides the entry point for the slashcheck CLI.
//
// slashcheck scans a directory of built static HTML files and reports internal
// links that a static host would redirect because they lack a trailing slash.
//
// Usage:
//
//	slashcheck            # check ./dist
//	slashcheck public     # check ./public
//
// See --help for all available options.
package main

import "os"

// main is the entry point for slashcheck.
func main() {
	os.Exit(Execute())
}
