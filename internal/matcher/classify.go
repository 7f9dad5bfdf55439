package matcher

import (
	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/smart-diff/internal/diffbuilder"
	"github.com/standardbeagle/smart-diff/internal/similarity"
	"github.com/standardbeagle/smart-diff/internal/types"
)

// classify scores a matched pair, decides its MatchKind, and (for anything
// short of Identical) attaches an EditScript and unified diff (§4.5, §4.6).
func classify(src, tgt *types.FunctionRecord, opts types.Options) *types.FunctionMatch {
	if bodyHashesEqual(src.BodyText, tgt.BodyText) && signaturesEqual(src.Signature, tgt.Signature) && src.FilePath == tgt.FilePath && src.SimpleName == tgt.SimpleName {
		return &types.FunctionMatch{
			SourceFn:   src,
			TargetFn:   tgt,
			Kind:       types.MatchIdentical,
			Similarity: types.Similarity{Overall: 1, Signature: 1, Body: 1, Context: 1},
		}
	}

	sim := similarity.Composite(src, tgt, opts)

	changes := types.Changes{
		SignatureChanged: sim.Signature < 0.999,
		BodyChanged:      sim.Body < 0.999,
		Renamed:          src.SimpleName != tgt.SimpleName,
		Moved:            src.FilePath != tgt.FilePath,
	}

	// The signature score also weighs the name, so the kind compares the
	// declaration itself; otherwise a rename alone would read as Modified.
	kind := classifyKind(types.Changes{
		SignatureChanged: !signaturesEqual(src.Signature, tgt.Signature),
		BodyChanged:      changes.BodyChanged,
		Renamed:          changes.Renamed,
		Moved:            changes.Moved,
	})

	match := &types.FunctionMatch{
		SourceFn:        src,
		TargetFn:        tgt,
		Kind:            kind,
		Similarity:      sim,
		ChangeMagnitude: 1 - sim.Overall,
		Changes:         changes,
	}

	if kind != types.MatchIdentical {
		match.EditScript = diffbuilder.EditScript(src, tgt, opts.BodyNodeCap)
		match.UnifiedDiff = diffbuilder.UnifiedDiff(src, tgt)
	}

	return match
}

// classifyKind resolves the §4.5 classification precedence: an unchanged
// body and signature with only identity (name/location) differing is a pure
// Rename or Move; any body or signature change is a Modified, even alongside
// a rename or move, since the content itself is what changed. Here a
// signature change means parameters, return type or modifiers, not the name.
func classifyKind(c types.Changes) types.MatchKind {
	switch {
	case !c.SignatureChanged && !c.BodyChanged && !c.Renamed && !c.Moved:
		return types.MatchIdentical
	case c.SignatureChanged || c.BodyChanged:
		return types.MatchModified
	case c.Renamed:
		return types.MatchRenamed
	case c.Moved:
		return types.MatchMoved
	default:
		return types.MatchModified
	}
}

// bodyHashesEqual is the Identical fast path (§3, §9's byte-equality
// shortcut): hash both bodies with xxhash first, so the common case of
// obviously-different bodies (different hash) never pays for a full string
// compare, and fall back to the exact compare only on a hash match to rule
// out collisions.
func bodyHashesEqual(a, b string) bool {
	if xxhash.Sum64String(a) != xxhash.Sum64String(b) {
		return false
	}
	return a == b
}

func signaturesEqual(a, b types.Signature) bool {
	if a.ReturnType != b.ReturnType || len(a.Parameters) != len(b.Parameters) {
		return false
	}
	for i := range a.Parameters {
		if a.Parameters[i] != b.Parameters[i] {
			return false
		}
	}
	if len(a.Modifiers) != len(b.Modifiers) {
		return false
	}
	for k := range a.Modifiers {
		if _, ok := b.Modifiers[k]; !ok {
			return false
		}
	}
	return true
}
