package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotDirectory marks a root path that is missing or not a directory.
// It is the only condition that aborts a run before any file is touched.
var ErrNotDirectory = errors.New("not a valid directory")

// Discover returns the files under root whose extension matches ext,
// sorted lexicographically. Non-recursive mode inspects direct children
// only; recursive mode descends with WalkDir, which does not follow
// symlinked directories. Unreadable subtrees become warnings, not errors.
func Discover(root string, recursive bool, ext string) ([]string, []string, error) {
	st, err := os.Stat(root)
	if err != nil || !st.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	paths := make([]string, 0)
	warns := make([]string, 0)

	if recursive {
		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				warns = append(warns, fmt.Sprintf("scan failed (skipped): %s", path))
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if strings.EqualFold(filepath.Ext(path), ext) {
				paths = append(paths, path)
			}
			return nil
		})
		if walkErr != nil {
			warns = append(warns, fmt.Sprintf("directory scan aborted: %s", root))
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, nil, fmt.Errorf("reading directory %s: %w", root, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(e.Name()), ext) {
				paths = append(paths, filepath.Join(root, e.Name()))
			}
		}
	}

	sort.Strings(paths)
	sort.Strings(warns)
	return paths, warns, nil
}
