package fsindex

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/nao1215/slashcheck/internal/model"
)

// HTMLExtension is the only extension selected for checking.
// The comparison is exact, so ".htm" and ".HTML" files are not checked.
const HTMLExtension = ".html"

var (
	// ErrRootNotFound is returned when the scan root does not exist.
	ErrRootNotFound = errors.New("scan root not found")

	// ErrRootNotDirectory is returned when the scan root is not a directory.
	ErrRootNotDirectory = errors.New("scan root is not a directory")
)

// Index is the result of enumerating a scan root.
type Index struct {
	// Root is the scan root as passed to Build.
	Root string

	// Files are the HTML files to check, sorted by relative path.
	Files []model.FileRecord

	// Known contains the relative path of every discovered file.
	Known *model.KnownPaths
}

// Build walks root recursively and returns its Index.
//
// Any error (missing root, unreadable directory, cancelled context) aborts the
// walk and no partial Index is returned.
func Build(ctx context.Context, root string, exclude *Exclude) (*Index, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("failed to stat scan root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDirectory, root)
	}

	var (
		all   []string
		files []model.FileRecord
	)

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		all = append(all, rel)

		if filepath.Ext(rel) == HTMLExtension && !exclude.Match(rel) {
			files = append(files, model.FileRecord{Path: path, RelPath: rel})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelPath < files[j].RelPath
	})

	return &Index{
		Root:  root,
		Files: files,
		Known: model.NewKnownPaths(all...),
	}, nil
}
