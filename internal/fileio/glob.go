package fileio

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
)

// Expand resolves a glob pattern to the sorted list of matching regular
// files. Gitignore-style ** patterns are resolved with a parallel walk
// rooted at the pattern's fixed prefix; plain patterns glob directly.
func Expand(pattern string) ([]string, error) {
	if strings.Contains(pattern, "**") {
		base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))
		return Find(filepath.FromSlash(base), rest)
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, err
	}

	files := matches[:0]
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, match)
	}

	sort.Strings(files)
	return files, nil
}

// Find walks root recursively and returns files whose path relative to
// root matches the pattern. The walk is parallel; results are sorted.
func Find(root, pattern string) ([]string, error) {
	var (
		mu      sync.Mutex
		matches []string
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return nil
		}

		ok, matchErr := doublestar.Match(pattern, filepath.ToSlash(rel))
		if matchErr != nil {
			return matchErr
		}
		if ok {
			mu.Lock()
			matches = append(matches, p)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}
