package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smarterrors "github.com/standardbeagle/smart-diff/internal/errors"
	"github.com/standardbeagle/smart-diff/internal/resolver"
	"github.com/standardbeagle/smart-diff/internal/types"
)

func TestCompare_RejectsInvalidOptions(t *testing.T) {
	src := writeTree(t, map[string]string{"a.py": "def f(): pass"})
	tgt := writeTree(t, map[string]string{"a.py": "def f(): pass"})

	opts := types.DefaultOptions()
	opts.Weights = types.Weights{Signature: 0.1, Body: 0.1, Context: 0.1} // doesn't sum to 1

	_, _, err := Compare(context.Background(), src, tgt, opts)
	assert.Error(t, err)
}

func TestCompare_RejectsMissingSourceRoot(t *testing.T) {
	tgt := writeTree(t, map[string]string{"a.py": "def f(): pass"})
	_, _, err := Compare(context.Background(), "/nonexistent/does-not-exist", tgt, types.DefaultOptions())
	assert.Error(t, err)
}

func TestCompare_RejectsFileAsRoot(t *testing.T) {
	tgt := writeTree(t, map[string]string{"a.py": "def f(): pass"})
	src := writeTree(t, map[string]string{"a.py": "def f(): pass"})
	filePath := src + "/a.py"
	_, _, err := Compare(context.Background(), filePath, tgt, types.DefaultOptions())
	assert.Error(t, err)
}

func TestCompare_CancelledContextReturnsCancelledSentinel(t *testing.T) {
	src := writeTree(t, map[string]string{"a.py": "def f(): pass"})
	tgt := writeTree(t, map[string]string{"a.py": "def f(): pass"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Compare(ctx, src, tgt, types.DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, smarterrors.Cancelled)
}

func TestCompare_IdenticalTreesProduceIdenticalMatches(t *testing.T) {
	content := "def add(a, b):\n    return a + b\n"
	src := writeTree(t, map[string]string{"a.py": content})
	tgt := writeTree(t, map[string]string{"a.py": content})

	_, comparison, err := Compare(context.Background(), src, tgt, types.DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, comparison)
	assert.Empty(t, comparison.FileChanges)
	require.NotEmpty(t, comparison.FunctionMatches)
	for _, m := range comparison.FunctionMatches {
		assert.Equal(t, types.MatchIdentical, m.Kind)
	}
}

func TestFlattenFunctions_SortsByFileThenLineThenName(t *testing.T) {
	a := types.NewFunctionRecord()
	a.FilePath, a.Location.StartLine, a.QualifiedName = "b.py", 5, "b"
	b := types.NewFunctionRecord()
	b.FilePath, b.Location.StartLine, b.QualifiedName = "a.py", 10, "a"
	c := types.NewFunctionRecord()
	c.FilePath, c.Location.StartLine, c.QualifiedName = "a.py", 2, "c"

	units := []resolver.FileUnit{
		{Path: "b.py", Functions: []*types.FunctionRecord{a}},
		{Path: "a.py", Functions: []*types.FunctionRecord{b, c}},
	}

	out := flattenFunctions(units)
	require.Len(t, out, 3)
	assert.Equal(t, "c", out[0].QualifiedName) // a.py line 2
	assert.Equal(t, "a", out[1].QualifiedName) // a.py line 10
	assert.Equal(t, "b", out[2].QualifiedName) // b.py line 5
}
