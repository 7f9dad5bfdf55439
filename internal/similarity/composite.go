// Package similarity is the Similarity Engine (§4.4): it scores a candidate
// function pair along three axes - signature, body, context - and combines
// them into the composite Overall score the matcher assigns on.
package similarity

import "github.com/standardbeagle/smart-diff/internal/types"

// Composite scores a and b along all three axes and combines them with the
// caller's weights. Every returned axis is in [0,1], and so is Overall,
// provided weights.Sum() == 1 (validated upstream by internal/api).
func Composite(a, b *types.FunctionRecord, opts types.Options) types.Similarity {
	sig := Signature(a, b)
	body := Body(a, b, opts.BodyNodeCap, opts.SizeRatioThreshold)
	ctx := Context(a, b)

	overall := opts.Weights.Signature*sig + opts.Weights.Body*body + opts.Weights.Context*ctx
	if overall < 0 {
		overall = 0
	}
	if overall > 1 {
		overall = 1
	}

	return types.Similarity{
		Overall:   overall,
		Signature: sig,
		Body:      body,
		Context:   ctx,
	}
}

// SignaturePrefilter reports whether a and b are cheap enough to be worth a
// full Composite call (and its tree-edit-distance cost): §4.5 step 1 admits
// a pair when its signature similarity alone clears the matcher's threshold,
// OR the two functions share a simple name, OR they live in the same file -
// either of the latter two is enough on its own to catch a same-file rename
// or overload whose signature similarity happens to be low.
func SignaturePrefilter(a, b *types.FunctionRecord, threshold float64) bool {
	if a.SimpleName == b.SimpleName || a.FilePath == b.FilePath {
		return true
	}
	return Signature(a, b) >= threshold
}
