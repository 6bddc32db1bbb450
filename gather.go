package pickit

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// GatherDir collects the regular files under dir into a batch, in
// lexical order. When recursive is true, subdirectories are traversed;
// otherwise only immediate children are collected. A nil selector includes
// everything. Gathering only collects input for validation — it never
// filters duplicates or applies constraints.
func GatherDir(ctx context.Context, dir string, selector FileSelector, recursive bool) ([]File, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDir, dir)
	}

	if selector == nil {
		selector = All()
	}

	var files []File
	if recursive {
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			entryInfo, err := d.Info()
			if err != nil {
				return err
			}
			if f := FileFromInfo(entryInfo); selector.Match(f) {
				files = append(files, f)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return files, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() {
			continue
		}
		entryInfo, err := entry.Info()
		if err != nil {
			return nil, err
		}
		if f := FileFromInfo(entryInfo); selector.Match(f) {
			files = append(files, f)
		}
	}
	return files, nil
}

// GatherPaths stats each path and returns the corresponding batch, in
// argument order. Every path must name a regular file; directories are
// rejected.
func GatherPaths(paths ...string) ([]File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	files := make([]File, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%w: %s is a directory", ErrNotSupported, p)
		}
		files = append(files, FileFromInfo(info))
	}
	return files, nil
}
