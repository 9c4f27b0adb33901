// Package config provides configuration structures and utilities for slashcheck.
// It defines the scan root, the canonical base URL, exclusion rules, the link
// extractor and report output preferences, and loads them from a YAML file.
package config
