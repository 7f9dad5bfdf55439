package similarity

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/standardbeagle/smart-diff/internal/types"
)

// Context computes the context-similarity axis (§4.4): Jaccard similarity
// over each function's resolved neighborhood (callees and referenced types).
// Unresolved names contribute nothing here - they never made it into the
// RoaringBitmap sets built by the resolver - which is why the matcher still
// weighs signature and body more heavily by default.
func Context(a, b *types.FunctionRecord) float64 {
	setA := unionBitmap(a.Calls, a.TypeRefs)
	setB := unionBitmap(b.Calls, b.TypeRefs)

	if setA.IsEmpty() && setB.IsEmpty() {
		return 1
	}

	inter := setA.AndCardinality(setB)
	union := setA.OrCardinality(setB)
	if union == 0 {
		return 1
	}
	return float64(inter) / float64(union)
}

func unionBitmap(a, b *roaring.Bitmap) *roaring.Bitmap {
	switch {
	case a == nil && b == nil:
		return roaring.New()
	case a == nil:
		return b.Clone()
	case b == nil:
		return a.Clone()
	default:
		return roaring.Or(a, b)
	}
}
