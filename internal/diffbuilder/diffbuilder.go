// Package diffbuilder is the Diff Builder (§4.6): given two matched function
// bodies, it produces a structural EditScript and a unified text diff.
package diffbuilder

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/standardbeagle/smart-diff/internal/types"
)

// UnifiedDiffContext is the number of context lines around each hunk (§4.6).
const UnifiedDiffContext = 3

// UnifiedDiff renders a's and b's source text as a unified diff.
func UnifiedDiff(a, b *types.FunctionRecord) string {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(a.BodyText),
		B:        difflib.SplitLines(b.BodyText),
		FromFile: fmt.Sprintf("%s:%d", a.FilePath, a.Location.StartLine),
		ToFile:   fmt.Sprintf("%s:%d", b.FilePath, b.Location.StartLine),
		Context:  UnifiedDiffContext,
	}
	out, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return ""
	}
	return out
}

// EditScript builds the structural edit script between two function bodies
// (§4.6). Below the body-node cap it walks both subtrees positionally and
// emits Relabel/Insert/Delete ops (a structural alignment, not the minimal
// Zhang-Shasha back-pointer script - the similarity engine already paid for
// the true edit distance to score the pair; re-deriving its backtrace here
// would double that cost for a number used only for display). Above the
// cap, where the Similarity Engine itself fell back to line-Jaccard, the
// script is a line-level diff instead and Fast is set.
func EditScript(a, b *types.FunctionRecord, bodyNodeCap int) *types.EditScript {
	if a.Body == nil || b.Body == nil {
		return &types.EditScript{}
	}
	if a.Body.NodeCount() > bodyNodeCap || b.Body.NodeCount() > bodyNodeCap {
		return &types.EditScript{Ops: lineLevelOps(a.BodyText, b.BodyText), Fast: true}
	}
	var ops []types.EditOp
	align("", a.Body, b.Body, &ops)
	return &types.EditScript{Ops: ops}
}

// align walks both subtrees positionally, recording a Relabel when two nodes
// at the same structural path differ, and Insert/Delete for the size
// difference in each node's children.
func align(path string, a, b *types.Node, ops *[]types.EditOp) {
	if a.Kind != b.Kind || !attrsEqual(a, b) {
		*ops = append(*ops, types.EditOp{
			Kind:     types.EditRelabel,
			NodePath: path,
			NodeKind: a.Kind,
			NewKind:  b.Kind,
			NewAttrs: cloneAttrs(b.Attributes),
		})
	}

	na, nb := len(a.Children), len(b.Children)
	common := na
	if nb < common {
		common = nb
	}
	for i := 0; i < common; i++ {
		align(childPath(path, i), a.Children[i], b.Children[i], ops)
	}
	for i := common; i < na; i++ {
		*ops = append(*ops, types.EditOp{Kind: types.EditDelete, NodePath: childPath(path, i), NodeKind: a.Children[i].Kind})
	}
	for i := common; i < nb; i++ {
		*ops = append(*ops, types.EditOp{
			Kind:          types.EditInsert,
			NodePath:      childPath(path, i),
			NodeKind:      b.Children[i].Kind,
			NewParentPath: path,
			NewPosition:   i,
			NewAttrs:      cloneAttrs(b.Children[i].Attributes),
		})
	}
}

func childPath(parent string, i int) string {
	if parent == "" {
		return fmt.Sprintf("%d", i)
	}
	return fmt.Sprintf("%s.%d", parent, i)
}

func attrsEqual(a, b *types.Node) bool {
	keys := types.IdentityAttrs(a.Kind)
	for _, k := range keys {
		if a.Attr(k) != b.Attr(k) {
			return false
		}
	}
	return true
}

func cloneAttrs(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func lineLevelOps(a, b string) []types.EditOp {
	linesA := strings.Split(a, "\n")
	linesB := strings.Split(b, "\n")
	matcher := difflib.NewMatcher(linesA, linesB)
	var ops []types.EditOp
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'd':
			for i := op.I1; i < op.I2; i++ {
				ops = append(ops, types.EditOp{Kind: types.EditDelete, NodePath: fmt.Sprintf("line:%d", i)})
			}
		case 'i':
			for j := op.J1; j < op.J2; j++ {
				ops = append(ops, types.EditOp{Kind: types.EditInsert, NodePath: fmt.Sprintf("line:%d", j), NewPosition: j})
			}
		case 'r':
			for i, j := op.I1, op.J1; i < op.I2 || j < op.J2; i, j = i+1, j+1 {
				ops = append(ops, types.EditOp{Kind: types.EditRelabel, NodePath: fmt.Sprintf("line:%d", i)})
			}
		}
	}
	return ops
}
