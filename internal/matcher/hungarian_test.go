package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignment_SquareOptimalMatch(t *testing.T) {
	// Row 0 is cheapest on col 1, row 1 cheapest on col 0.
	cost := [][]float64{
		{0.9, 0.1},
		{0.1, 0.9},
	}
	out := assignment(cost, 1e6)
	assert.Equal(t, []int{1, 0}, out)
}

func TestAssignment_MoreRowsThanCols(t *testing.T) {
	cost := [][]float64{
		{0.2},
		{0.1},
		{0.8},
	}
	out := assignment(cost, 1e6)
	assert.Len(t, out, 3)
	used := map[int]bool{}
	matchedRows := 0
	for _, c := range out {
		if c < 0 {
			continue
		}
		assert.False(t, used[c], "column reused across rows")
		used[c] = true
		matchedRows++
	}
	assert.Equal(t, 1, matchedRows) // only one column exists
	assert.Equal(t, 0, out[1])      // row 1 has the lowest cost, wins the single column
}

func TestAssignment_MoreColsThanRows(t *testing.T) {
	cost := [][]float64{
		{0.5, 0.1, 0.9},
	}
	out := assignment(cost, 1e6)
	assert.Equal(t, []int{1}, out)
}

func TestAssignment_UnusablePairsLeftUnmatched(t *testing.T) {
	unusable := 1e6
	cost := [][]float64{
		{unusable, unusable},
		{unusable, unusable},
	}
	out := assignment(cost, unusable)
	for _, c := range out {
		assert.Equal(t, -1, c)
	}
}

func TestAssignment_EmptyInput(t *testing.T) {
	assert.Nil(t, assignment(nil, 1e6))
}

func TestTranspose(t *testing.T) {
	in := [][]float64{{1, 2, 3}, {4, 5, 6}}
	out := transpose(in)
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, out)
}
