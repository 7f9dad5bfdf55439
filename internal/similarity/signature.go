package similarity

import (
	"github.com/hbollon/go-edlib"

	"github.com/standardbeagle/smart-diff/internal/types"
)

// signature sub-weights (§4.4): name 0.4, parameter types (LCS) 0.4, return
// type 0.1, modifiers (Jaccard) 0.1.
const (
	nameWeight       = 0.40
	paramWeight      = 0.40
	returnWeight     = 0.10
	modifiersWeight  = 0.10
)

// Signature computes the signature-similarity axis between two functions
// (§4.4). Every sub-score is already in [0,1]; the weighted sum is too.
func Signature(a, b *types.FunctionRecord) float64 {
	return nameWeight*nameSimilarity(a.SimpleName, b.SimpleName) +
		paramWeight*paramSimilarity(a.Signature.ParamTypes(), b.Signature.ParamTypes()) +
		returnWeight*returnSimilarity(a.Signature.ReturnType, b.Signature.ReturnType) +
		modifiersWeight*jaccardSet(modifierSet(a.Signature), modifierSet(b.Signature))
}

// nameSimilarity delegates to go-edlib's Levenshtein-backed string
// similarity, short-circuiting the exact-match and empty-string cases it
// doesn't need library help with.
func nameSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	sim, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return 0
	}
	return float64(sim)
}

// paramSimilarity scores the ordered parameter-type lists by longest common
// subsequence length over the pair with the longer list, per §4.4.
func paramSimilarity(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	lcs := lcsLength(a, b)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return float64(lcs) / float64(maxLen)
}

func lcsLength(a, b []string) int {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0
	}
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if normalizeType(a[i-1]) == normalizeType(b[j-1]) {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

func returnSimilarity(a, b string) float64 {
	if ReturnTypeEquivalent(a, b) {
		return 1
	}
	return 0
}

func modifierSet(s types.Signature) map[string]struct{} {
	return s.Modifiers
}

func jaccardSet(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 1
	}
	return float64(inter) / float64(union)
}
