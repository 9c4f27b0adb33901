package fsindex

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeTree creates files (with empty content) under dir.
func writeTree(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte("<html></html>"), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}
}

// TestBuild tests enumeration of a scan root.
func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("selects html files and knows every file", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root,
			"index.html",
			"blog/index.html",
			"blog.html",
			"assets/site.css",
			"assets/logo.png",
			"docs/sdk/java/index.html",
			"legacy.htm",
		)

		idx, err := Build(context.Background(), root, NewExclude([]string{"docs/sdk/"}, nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"blog.html", "blog/index.html", "index.html"}
		if len(idx.Files) != len(want) {
			t.Fatalf("expected %d files, got %d: %v", len(want), len(idx.Files), idx.Files)
		}
		for i, f := range idx.Files {
			if f.RelPath != want[i] {
				t.Errorf("file %d: expected %q, got %q", i, want[i], f.RelPath)
			}
			if f.Path != filepath.Join(root, filepath.FromSlash(want[i])) {
				t.Errorf("file %d: unexpected absolute path %q", i, f.Path)
			}
		}

		if idx.Known.Len() != 7 {
			t.Errorf("expected 7 known paths, got %d", idx.Known.Len())
		}
		for _, p := range []string{"assets/site.css", "docs/sdk/java/index.html", "legacy.htm"} {
			if !idx.Known.Has(p) {
				t.Errorf("expected %s to be known", p)
			}
		}
	})

	t.Run("exclusion globs", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, "index.html", "api/v1/sdk/index.html", "drafts/a.html")

		idx, err := Build(context.Background(), root, NewExclude(nil, []string{"**/sdk/**", "drafts/*"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(idx.Files) != 1 || idx.Files[0].RelPath != "index.html" {
			t.Errorf("expected only index.html, got %v", idx.Files)
		}
		if !idx.Known.Has("drafts/a.html") {
			t.Error("excluded files must still be known")
		}
	})

	t.Run("empty root", func(t *testing.T) {
		t.Parallel()

		idx, err := Build(context.Background(), t.TempDir(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(idx.Files) != 0 || idx.Known.Len() != 0 {
			t.Errorf("expected empty index, got %d files and %d known", len(idx.Files), idx.Known.Len())
		}
	})

	t.Run("missing root", func(t *testing.T) {
		t.Parallel()

		_, err := Build(context.Background(), filepath.Join(t.TempDir(), "nope"), nil)
		if !errors.Is(err, ErrRootNotFound) {
			t.Errorf("expected ErrRootNotFound, got %v", err)
		}
	})

	t.Run("root is a file", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, "index.html")
		_, err := Build(context.Background(), filepath.Join(root, "index.html"), nil)
		if !errors.Is(err, ErrRootNotDirectory) {
			t.Errorf("expected ErrRootNotDirectory, got %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, "index.html")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Build(ctx, root, nil)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("deterministic order", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, "z.html", "a/b.html", "m.html", "a.html")

		first, err := Build(context.Background(), root, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := Build(context.Background(), root, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range first.Files {
			if first.Files[i] != second.Files[i] {
				t.Errorf("order differs at %d: %v vs %v", i, first.Files[i], second.Files[i])
			}
		}
	})
}
