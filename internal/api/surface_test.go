package api

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/smart-diff/internal/types"
)

func seedComparison() (uuid.UUID, string) {
	fn := types.NewFunctionRecord()
	fn.QualifiedName = "pkg.run"
	fn.SimpleName = "run"
	match := &types.FunctionMatch{
		TargetFn:        fn,
		Kind:            types.MatchModified,
		ChangeMagnitude: 0.3,
		Similarity:      types.Similarity{Overall: 0.7},
	}
	c := &types.Comparison{FunctionMatches: []*types.FunctionMatch{match}}
	c.BuildSummary()
	return defaultStore.Create(c), "run"
}

func TestSurface_SummaryListGetEvictRoundTrip(t *testing.T) {
	id, fnName := seedComparison()

	summary, err := Summary(id)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Counts[types.MatchModified])

	matches, err := ListChanges(id, ListOptions{})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m, err := GetFunctionDiff(id, fnName)
	require.NoError(t, err)
	assert.Equal(t, "pkg.run", m.SortKey())

	Evict(id)
	_, err = Summary(id)
	assert.Error(t, err)
}

func TestSurface_UnknownIDReturnsError(t *testing.T) {
	_, err := Summary(uuid.New())
	assert.Error(t, err)
}
