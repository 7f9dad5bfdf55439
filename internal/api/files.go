package api

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/standardbeagle/smart-diff/internal/types"
)

// discoverFiles walks root and returns the paths (joined with root) of the
// files that should be parsed, honoring Options.Recursive, IncludeHidden,
// FilePatterns and IgnorePatterns (§6). Patterns are matched against the
// root-relative, forward-slash form of each path so doublestar behaves the
// same on every platform.
func discoverFiles(root string, opts types.Options) ([]string, error) {
	var out []string

	walkFn := func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path != root && !opts.Recursive {
				return filepath.SkipDir
			}
			if !opts.IncludeHidden && isHidden(d.Name()) && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if !opts.IncludeHidden && isHidden(d.Name()) {
			return nil
		}
		if len(opts.IgnorePatterns) > 0 && matchesAny(opts.IgnorePatterns, rel) {
			return nil
		}
		if len(opts.FilePatterns) > 0 && !matchesAny(opts.FilePatterns, rel) {
			return nil
		}
		out = append(out, path)
		return nil
	}

	if err := filepath.WalkDir(root, walkFn); err != nil {
		return nil, err
	}
	sort.Strings(out) // §5 determinism: file discovery order must be stable
	return out, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

func matchesAny(patterns []string, path string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
	}
	return false
}
