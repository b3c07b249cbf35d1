// Package discovery enumerates source files under vendor trees by pattern.
//
// Results are deterministic: paths come back relative to the working
// directory, normalized to backslashes for MSBuild, and sorted
// lexicographically so regenerated descriptors are byte-identical.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Options configures pattern-based file enumeration.
type Options struct {
	// Recurse descends into subdirectories. The default matches only the
	// direct children of base, the way vendor trees declare platform
	// subfolders explicitly instead of pulling in every port.
	Recurse bool
}

// Find returns files under base whose names match pattern (filepath.Match
// syntax, e.g. "*.c"). A missing base is not an error: optional vendor
// subtrees simply contribute zero files.
func Find(base, pattern string, opts Options) ([]string, error) {
	base = filepath.FromSlash(base)

	info, err := os.Stat(base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", base, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", base)
	}

	var files []string
	if opts.Recurse {
		files, err = findRecursive(base, pattern)
	} else {
		files, err = findFlat(base, pattern)
	}
	if err != nil {
		return nil, err
	}

	for i, f := range files {
		files[i] = winPath(f)
	}
	sort.Strings(files)

	return files, nil
}

// findFlat matches direct children of base only.
func findFlat(base, pattern string) ([]string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", base, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if matched {
			files = append(files, filepath.Join(base, entry.Name()))
		}
	}

	return files, nil
}

// findRecursive matches files anywhere under base.
func findRecursive(base, pattern string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		matched, err := filepath.Match(pattern, d.Name())
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if matched {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", base, err)
	}

	return files, nil
}

// winPath converts path separators to the backslash convention MSBuild
// expects in ClCompile entries.
func winPath(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), "/", "\\")
}
