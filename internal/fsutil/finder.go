// Package fsutil provides file system helpers for configuration discovery.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// FindByExt recursively collects every file under root whose name ends with
// ext, returning the paths sorted lexicographically so callers get a stable
// merge order.
func FindByExt(root string, ext string) ([]string, error) {
	if ext == "" {
		panic("fsutil: extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
