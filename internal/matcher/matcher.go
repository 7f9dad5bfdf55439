// Package matcher is the Assignment Matcher (§4.5): given two function
// lists, it produces the maximum-total-similarity one-to-one assignment
// above the match threshold, classifies every pair, and returns Added/
// Deleted records for anything left over.
package matcher

import (
	"sort"

	"github.com/standardbeagle/smart-diff/internal/similarity"
	"github.com/standardbeagle/smart-diff/internal/types"
)

// unusableCost marks a pair that failed the signature prefilter or scored
// zero - far larger than any real cost (which lives in [0,1]).
const unusableCost = 1e6

// Match runs the full §4.5 pipeline: prefilter, assignment (Hungarian below
// N_max, greedy above it), threshold cut, and classification. Every input
// function appears in exactly one output FunctionMatch (§8 invariant 1).
func Match(source, target []*types.FunctionRecord, opts types.Options) []*types.FunctionMatch {
	n, m := len(source), len(target)

	pairWeight := make([][]float64, n)
	for i := range pairWeight {
		pairWeight[i] = make([]float64, m)
		for j := range pairWeight[i] {
			pairWeight[i][j] = -1 // unscored sentinel
		}
	}

	score := func(i, j int) float64 {
		if pairWeight[i][j] >= 0 {
			return pairWeight[i][j]
		}
		var w float64
		if similarity.SignaturePrefilter(source[i], target[j], opts.SignaturePrefilter) {
			w = similarity.Composite(source[i], target[j], opts).Overall
		}
		pairWeight[i][j] = w
		return w
	}

	var matches []*types.FunctionMatch
	var sourceMatched, targetMatched []bool

	if int64(n)*int64(m) <= int64(opts.NMax) {
		sourceMatched, targetMatched, matches = hungarianPass(source, target, score, opts)
	} else {
		sourceMatched, targetMatched, matches = greedyPass(source, target, score, opts)
	}

	for i, used := range sourceMatched {
		if !used {
			matches = append(matches, &types.FunctionMatch{SourceFn: source[i], Kind: types.MatchDeleted, ChangeMagnitude: 1})
		}
	}
	for j, used := range targetMatched {
		if !used {
			matches = append(matches, &types.FunctionMatch{TargetFn: target[j], Kind: types.MatchAdded, ChangeMagnitude: 1})
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].SortKey() < matches[j].SortKey() })
	return matches
}

func hungarianPass(source, target []*types.FunctionRecord, score func(i, j int) float64, opts types.Options) (srcUsed, tgtUsed []bool, matches []*types.FunctionMatch) {
	n, m := len(source), len(target)
	srcUsed = make([]bool, n)
	tgtUsed = make([]bool, m)
	if n == 0 || m == 0 {
		return srcUsed, tgtUsed, nil
	}

	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, m)
		for j := range cost[i] {
			w := score(i, j)
			if w <= 0 {
				cost[i][j] = unusableCost
			} else {
				cost[i][j] = 1 - w
			}
		}
	}

	assigned := assignment(cost, unusableCost)
	for i, j := range assigned {
		if j < 0 {
			continue
		}
		w := score(i, j)
		if w < opts.SimilarityThreshold {
			continue
		}
		srcUsed[i] = true
		tgtUsed[j] = true
		matches = append(matches, classify(source[i], target[j], opts))
	}
	return srcUsed, tgtUsed, matches
}

// greedyPass is the §4.5/§5 fallback above N_max: every candidate pair that
// survives the signature prefilter is scored once, sorted by weight
// descending with the §4.5 deterministic tie-break, then consumed greedily.
func greedyPass(source, target []*types.FunctionRecord, score func(i, j int) float64, opts types.Options) (srcUsed, tgtUsed []bool, matches []*types.FunctionMatch) {
	n, m := len(source), len(target)
	srcUsed = make([]bool, n)
	tgtUsed = make([]bool, m)

	type candidate struct {
		i, j int
		w    float64
	}
	var candidates []candidate
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if !similarity.SignaturePrefilter(source[i], target[j], opts.SignaturePrefilter) {
				continue
			}
			w := score(i, j)
			if w >= opts.SimilarityThreshold {
				candidates = append(candidates, candidate{i, j, w})
			}
		}
	}

	sort.Slice(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		if ca.w != cb.w {
			return ca.w > cb.w
		}
		return tieBreak(source[ca.i], target[ca.j], source[cb.i], target[cb.j])
	})

	for _, c := range candidates {
		if srcUsed[c.i] || tgtUsed[c.j] {
			continue
		}
		srcUsed[c.i] = true
		tgtUsed[c.j] = true
		matches = append(matches, classify(source[c.i], target[c.j], opts))
	}
	return srcUsed, tgtUsed, matches
}

// tieBreak implements §4.5's deterministic tie-break chain: identical name,
// then identical file, then higher signature similarity, then lexicographic
// qualified name. Returns true if pair a should sort before pair b.
func tieBreak(srcA, tgtA, srcB, tgtB *types.FunctionRecord) bool {
	nameA := srcA.SimpleName == tgtA.SimpleName
	nameB := srcB.SimpleName == tgtB.SimpleName
	if nameA != nameB {
		return nameA
	}
	fileA := srcA.FilePath == tgtA.FilePath
	fileB := srcB.FilePath == tgtB.FilePath
	if fileA != fileB {
		return fileA
	}
	sigA := similarity.Signature(srcA, tgtA)
	sigB := similarity.Signature(srcB, tgtB)
	if sigA != sigB {
		return sigA > sigB
	}
	return tgtA.QualifiedName < tgtB.QualifiedName
}
