package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/smart-diff/internal/types"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return root
}

func TestDiscoverFiles_RecursiveByDefault(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.py":        "def f(): pass",
		"nested/b.py": "def g(): pass",
	})
	opts := types.DefaultOptions()
	out, err := discoverFiles(root, opts)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestDiscoverFiles_NonRecursiveSkipsSubdirs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.py":        "def f(): pass",
		"nested/b.py": "def g(): pass",
	})
	opts := types.DefaultOptions()
	opts.Recursive = false
	out, err := discoverFiles(root, opts)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a.py", filepath.Base(out[0]))
}

func TestDiscoverFiles_HiddenFilesExcludedByDefault(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.py":     "def f(): pass",
		".b.py":    "def g(): pass",
		".git/x":   "ignore me",
	})
	opts := types.DefaultOptions()
	out, err := discoverFiles(root, opts)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a.py", filepath.Base(out[0]))
}

func TestDiscoverFiles_IncludeHiddenOptsIn(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.py":  "def f(): pass",
		".b.py": "def g(): pass",
	})
	opts := types.DefaultOptions()
	opts.IncludeHidden = true
	out, err := discoverFiles(root, opts)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestDiscoverFiles_FilePatternsRestrictToMatches(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.py": "def f(): pass",
		"b.rs": "fn g() {}",
	})
	opts := types.DefaultOptions()
	opts.FilePatterns = []string{"*.py"}
	out, err := discoverFiles(root, opts)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a.py", filepath.Base(out[0]))
}

func TestDiscoverFiles_IgnorePatternsExcludeMatches(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.py":        "def f(): pass",
		"vendor/c.py": "def h(): pass",
	})
	opts := types.DefaultOptions()
	opts.IgnorePatterns = []string{"vendor/**"}
	out, err := discoverFiles(root, opts)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a.py", filepath.Base(out[0]))
}

func TestDiscoverFiles_SortedForDeterminism(t *testing.T) {
	root := writeTree(t, map[string]string{
		"z.py": "def f(): pass",
		"a.py": "def g(): pass",
	})
	opts := types.DefaultOptions()
	out, err := discoverFiles(root, opts)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a.py", filepath.Base(out[0]))
	assert.Equal(t, "z.py", filepath.Base(out[1]))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, isHidden(".git"))
	assert.False(t, isHidden("."))
	assert.False(t, isHidden(".."))
	assert.False(t, isHidden("visible.go"))
}
