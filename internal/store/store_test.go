package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/smart-diff/internal/types"
)

func matchWith(qualified, simple string, kind types.MatchKind, magnitude float64) *types.FunctionMatch {
	fn := types.NewFunctionRecord()
	fn.QualifiedName = qualified
	fn.SimpleName = simple
	return &types.FunctionMatch{
		TargetFn:        fn,
		Kind:            kind,
		ChangeMagnitude: magnitude,
		Similarity:      types.Similarity{Overall: 1 - magnitude},
	}
}

func seeded(matches ...*types.FunctionMatch) (*Store, uuid.UUID) {
	s := New()
	c := &types.Comparison{FunctionMatches: matches}
	c.BuildSummary()
	id := s.Create(c)
	return s, id
}

func TestStore_CreateAndSummary(t *testing.T) {
	s, id := seeded(
		matchWith("a", "a", types.MatchModified, 0.4),
		matchWith("b", "b", types.MatchIdentical, 0.0),
	)
	summary, err := s.Summary(id)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Counts[types.MatchModified])
	assert.Equal(t, 1, summary.Counts[types.MatchIdentical])
}

func TestStore_SummaryUnknownIDIsBadInput(t *testing.T) {
	s := New()
	_, err := s.Summary(uuid.New())
	assert.Error(t, err)
}

func TestStore_ListFiltersByKindAndMagnitude(t *testing.T) {
	s, id := seeded(
		matchWith("a", "a", types.MatchModified, 0.4),
		matchWith("b", "b", types.MatchRenamed, 0.1),
		matchWith("c", "c", types.MatchModified, 0.05),
	)
	out, err := s.List(id, ListOptions{Kinds: map[types.MatchKind]struct{}{types.MatchModified: {}}, MinMagnitude: 0.1})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].SortKey())
}

func TestStore_ListSortsByMagnitudeAscendingByDefault(t *testing.T) {
	s, id := seeded(
		matchWith("hi", "hi", types.MatchModified, 0.9),
		matchWith("lo", "lo", types.MatchModified, 0.1),
	)
	out, err := s.List(id, ListOptions{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "lo", out[0].SortKey())
	assert.Equal(t, "hi", out[1].SortKey())
}

func TestStore_ListDescendingReversesOrder(t *testing.T) {
	s, id := seeded(
		matchWith("hi", "hi", types.MatchModified, 0.9),
		matchWith("lo", "lo", types.MatchModified, 0.1),
	)
	out, err := s.List(id, ListOptions{Descending: true})
	require.NoError(t, err)
	assert.Equal(t, "hi", out[0].SortKey())
}

func TestStore_ListTieBreaksByNameWhenMagnitudeEqual(t *testing.T) {
	s, id := seeded(
		matchWith("zeta", "zeta", types.MatchModified, 0.5),
		matchWith("alpha", "alpha", types.MatchModified, 0.5),
	)
	out, err := s.List(id, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, "alpha", out[0].SortKey())
	assert.Equal(t, "zeta", out[1].SortKey())
}

func TestStore_ListRespectsLimit(t *testing.T) {
	s, id := seeded(
		matchWith("a", "a", types.MatchModified, 0.1),
		matchWith("b", "b", types.MatchModified, 0.2),
		matchWith("c", "c", types.MatchModified, 0.3),
	)
	out, err := s.List(id, ListOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestStore_GetBySimpleNameThenQualified(t *testing.T) {
	s, id := seeded(matchWith("pkg.run", "run", types.MatchModified, 0.2))
	m, err := s.Get(id, "run")
	require.NoError(t, err)
	assert.Equal(t, "pkg.run", m.SortKey())

	m2, err := s.Get(id, "pkg.run")
	require.NoError(t, err)
	assert.Equal(t, "pkg.run", m2.SortKey())
}

func TestStore_GetAmbiguityResolvedByHighestMagnitude(t *testing.T) {
	s, id := seeded(
		matchWith("a.run", "run", types.MatchModified, 0.2),
		matchWith("b.run", "run", types.MatchModified, 0.8),
	)
	m, err := s.Get(id, "run")
	require.NoError(t, err)
	assert.Equal(t, "b.run", m.SortKey())
}

func TestStore_GetUnknownNameIsBadInput(t *testing.T) {
	s, id := seeded(matchWith("a", "a", types.MatchModified, 0.1))
	_, err := s.Get(id, "missing")
	assert.Error(t, err)
}

func TestStore_Evict(t *testing.T) {
	s, id := seeded(matchWith("a", "a", types.MatchModified, 0.1))
	s.Evict(id)
	_, err := s.Summary(id)
	assert.Error(t, err)
}
