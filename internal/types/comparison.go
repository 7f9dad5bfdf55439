package types

import (
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// FileChangeKind classifies a file present on only one side of a comparison.
type FileChangeKind uint8

const (
	FileUnchanged FileChangeKind = iota
	FileAdded
	FileDeleted
	FileModified
)

// FileChange summarizes one file's presence/modification across the two
// roots, independent of its function-level matches.
type FileChange struct {
	Path string
	Kind FileChangeKind
}

// Summary is the counts-by-kind view returned by Comparison Store's
// `summary` operation (§4.7).
type Summary struct {
	Counts          map[MatchKind]int
	TotalSource     int
	TotalTarget     int
	MeanMagnitude   float64
	StdDevMagnitude float64
	AnalysisDuration time.Duration
}

// Comparison is the immutable artifact produced by one pipeline run (§3).
// It is retained in the Comparison Store under ID until evicted.
type Comparison struct {
	ID         uuid.UUID
	SourceRoot string
	TargetRoot string
	CreatedAt  time.Time

	FileChanges     []FileChange
	FunctionMatches []*FunctionMatch

	Summary          Summary
	AnalysisDuration time.Duration

	Diagnostics []Diagnostic
	OptionsUsed Options
}

// BuildSummary derives the Summary from FunctionMatches, satisfying §8
// invariant 2 ("Counts in the summary sum to |S| + |T| - matched_pairs").
func (c *Comparison) BuildSummary() {
	counts := make(map[MatchKind]int, 6)
	magnitudes := make([]float64, 0, len(c.FunctionMatches))
	for _, m := range c.FunctionMatches {
		counts[m.Kind]++
		magnitudes = append(magnitudes, m.ChangeMagnitude)
	}
	mean, stddev := meanStdDevOf(magnitudes)
	c.Summary = Summary{
		Counts:           counts,
		TotalSource:      counts[MatchKind(MatchIdentical)] + counts[MatchModified] + counts[MatchRenamed] + counts[MatchMoved] + counts[MatchDeleted],
		TotalTarget:      counts[MatchKind(MatchIdentical)] + counts[MatchModified] + counts[MatchRenamed] + counts[MatchMoved] + counts[MatchAdded],
		MeanMagnitude:    mean,
		StdDevMagnitude:  stddev,
		AnalysisDuration: c.AnalysisDuration,
	}
}

// meanStdDevOf reports the mean and the sample standard deviation (n-1
// denominator, as gonum's stat.MeanStdDev computes it) of the
// change-magnitude distribution for a comparison's summary.
func meanStdDevOf(xs []float64) (mean, stddev float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	mean, std := stat.MeanStdDev(xs, nil)
	return mean, std
}
