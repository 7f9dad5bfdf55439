package similarity

import (
	"strings"

	"github.com/standardbeagle/smart-diff/internal/types"
)

// tedTree is a tree flattened into post-order for the Zhang-Shasha algorithm,
// indexed from 1 (classic pseudocode uses 1-indexing so that 0 can mean "the
// empty forest").
type tedTree struct {
	nodes    []*types.Node // nodes[1..n]
	leftmost []int         // leftmost[i] = index of leftmost leaf descendant of nodes[i]
}

func flatten(root *types.Node) *tedTree {
	t := &tedTree{nodes: []*types.Node{nil}, leftmost: []int{0}}
	t.visit(root)
	return t
}

func (t *tedTree) visit(n *types.Node) int {
	var leftmostIdx int
	if len(n.Children) == 0 {
		leftmostIdx = 0 // placeholder, fixed up below once this node's own index is known
	} else {
		for i, c := range n.Children {
			idx := t.visit(c)
			if i == 0 {
				leftmostIdx = t.leftmost[idx]
			}
		}
	}
	t.nodes = append(t.nodes, n)
	myIdx := len(t.nodes) - 1
	if len(n.Children) == 0 {
		leftmostIdx = myIdx
	}
	t.leftmost = append(t.leftmost, leftmostIdx)
	return myIdx
}

// keyroots returns, for each distinct leftmost-leaf value, the largest index
// sharing it, ascending - the standard Zhang-Shasha keyroot set.
func (t *tedTree) keyroots() []int {
	last := make(map[int]int)
	for i := 1; i < len(t.nodes); i++ {
		last[t.leftmost[i]] = i
	}
	out := make([]int, 0, len(last))
	for _, idx := range last {
		out = append(out, idx)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// identifierNameAttr maps node kinds that carry an identifier-like name to
// the attribute key naming it. Only these kinds are eligible for the
// rename-discount tier below; everything else relabels at the flat 0.5 rate
// once its identity attributes differ.
var identifierNameAttr = map[types.NodeKind]string{
	types.KindFunction:     "name",
	types.KindMethod:       "name",
	types.KindConstructor:  "name",
	types.KindClass:        "name",
	types.KindInterface:    "name",
	types.KindVariableDecl: "name",
	types.KindFieldDecl:    "name",
	types.KindParameter:    "name",
	types.KindIdentifier:   "name",
	types.KindCall:         "function_name",
}

// renameMap is the globally-consistent identifier rename mapping learned
// between two function bodies before tree edit distance runs (§4.4, §9 Open
// Question #1). A rename only earns the 0.25 relabel discount when every
// occurrence of the old name lines up with the same new name across the
// whole pair, not just at the one node being compared - otherwise it is an
// ordinary identity change and costs the flat 0.5.
type renameMap struct {
	forward map[string]string
}

// learnRenames walks a and b positionally (pairing each node with its
// same-index sibling, the same correspondence the Diff Builder's structural
// alignment uses) collecting identifier-name pairs that differ at
// otherwise-matching positions, then keeps only the pairs that never
// conflict with a different pairing found elsewhere in the two bodies.
func learnRenames(a, b *types.Node) *renameMap {
	oldToNew := make(map[string]map[string]struct{})
	newToOld := make(map[string]map[string]struct{})

	var walk func(x, y *types.Node)
	walk = func(x, y *types.Node) {
		if x == nil || y == nil || x.Kind != y.Kind {
			return
		}
		if key, ok := identifierNameAttr[x.Kind]; ok {
			ov, nv := x.Attr(key), y.Attr(key)
			if ov != "" && nv != "" && ov != nv {
				if oldToNew[ov] == nil {
					oldToNew[ov] = make(map[string]struct{})
				}
				oldToNew[ov][nv] = struct{}{}
				if newToOld[nv] == nil {
					newToOld[nv] = make(map[string]struct{})
				}
				newToOld[nv][ov] = struct{}{}
			}
		}
		n := len(x.Children)
		if len(y.Children) < n {
			n = len(y.Children)
		}
		for i := 0; i < n; i++ {
			walk(x.Children[i], y.Children[i])
		}
	}
	walk(a, b)

	forward := make(map[string]string)
	for old, news := range oldToNew {
		if len(news) != 1 {
			continue // same old name renamed two different ways: not consistent
		}
		var nv string
		for n := range news {
			nv = n
		}
		if len(newToOld[nv]) != 1 {
			continue // two different old names collapsed onto the same new one
		}
		forward[old] = nv
	}
	return &renameMap{forward: forward}
}

// isConsistentRename reports whether a and b differ only in their
// identifier-name attribute, and that rename matches the mapping renames
// learned across the whole pair.
func isConsistentRename(a, b *types.Node, renames *renameMap) bool {
	if renames == nil {
		return false
	}
	key, ok := identifierNameAttr[a.Kind]
	if !ok {
		return false
	}
	for _, k := range types.IdentityAttrs(a.Kind) {
		if k == key {
			continue
		}
		if a.Attr(k) != b.Attr(k) {
			return false
		}
	}
	ov, nv := a.Attr(key), b.Attr(key)
	if ov == "" || nv == "" || ov == nv {
		return false
	}
	return renames.forward[ov] == nv
}

// relabelCost is the per-node substitution cost for tree edit distance
// (§4.4): 0 on an exact Kind+identity match, 0.25 when the only difference
// is an identifier rename that is globally consistent across the compared
// pair, 0.5 for any other identity-attribute mismatch under a matching
// Kind, and 1 when Kind itself differs.
func relabelCost(a, b *types.Node, renames *renameMap) float64 {
	if a.Kind != b.Kind {
		return 1
	}
	keys := types.IdentityAttrs(a.Kind)
	if len(keys) == 0 {
		return 0
	}
	differs := false
	for _, key := range keys {
		if a.Attr(key) != b.Attr(key) {
			differs = true
			break
		}
	}
	if !differs {
		return 0
	}
	if isConsistentRename(a, b, renames) {
		return 0.25
	}
	return 0.5
}

// treeEditDistance computes the Zhang-Shasha tree edit distance with unit
// insert/delete costs and the relabel cost above (§4.4: "Zhang-Shasha tree
// edit distance over the NAST body subtrees").
func treeEditDistance(t1, t2 *tedTree, renames *renameMap) float64 {
	n1, n2 := len(t1.nodes)-1, len(t2.nodes)-1
	treedist := make([][]float64, n1+1)
	for i := range treedist {
		treedist[i] = make([]float64, n2+1)
	}

	for _, i := range t1.keyroots() {
		for _, j := range t2.keyroots() {
			forestDist(t1, t2, i, j, treedist, renames)
		}
	}
	return treedist[n1][n2]
}

func forestDist(t1, t2 *tedTree, i, j int, treedist [][]float64, renames *renameMap) {
	li, lj := t1.leftmost[i], t2.leftmost[j]

	width, height := i-li+2, j-lj+2
	fd := make([][]float64, width)
	for r := range fd {
		fd[r] = make([]float64, height)
	}

	// fd is indexed by offset from li-1..i and lj-1..j; row 0 / col 0 mean
	// "one before the forest start" (the empty forest).
	row := func(i1 int) int { return i1 - (li - 1) }
	col := func(j1 int) int { return j1 - (lj - 1) }

	for i1 := li; i1 <= i; i1++ {
		fd[row(i1)][0] = fd[row(i1-1)][0] + 1 // delete cost
	}
	for j1 := lj; j1 <= j; j1++ {
		fd[0][col(j1)] = fd[0][col(j1-1)] + 1 // insert cost
	}

	for i1 := li; i1 <= i; i1++ {
		for j1 := lj; j1 <= j; j1++ {
			if t1.leftmost[i1] == li && t2.leftmost[j1] == lj {
				del := fd[row(i1-1)][col(j1)] + 1
				ins := fd[row(i1)][col(j1-1)] + 1
				rel := fd[row(i1-1)][col(j1-1)] + relabelCost(t1.nodes[i1], t2.nodes[j1], renames)
				best := min3(del, ins, rel)
				fd[row(i1)][col(j1)] = best
				treedist[i1][j1] = best
			} else {
				p, q := t1.leftmost[i1]-1, t2.leftmost[j1]-1
				del := fd[row(i1-1)][col(j1)] + 1
				ins := fd[row(i1)][col(j1-1)] + 1
				rel := fd[row(p)][col(q)] + treedist[i1][j1]
				fd[row(i1)][col(j1)] = min3(del, ins, rel)
			}
		}
	}
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// Body computes the body-similarity axis (§4.4). Above BodyNodeCap or when
// the larger body is more than sizeRatioThreshold times the smaller (§9 Open
// Question #3), it falls back to a line-Jaccard comparison of the original
// source text rather than paying for full tree edit distance.
func Body(a, b *types.FunctionRecord, bodyNodeCap int, sizeRatioThreshold float64) float64 {
	if a.Body == nil && b.Body == nil {
		return 1
	}
	if a.Body == nil || b.Body == nil {
		return 0
	}

	na, nb := a.Body.NodeCount(), b.Body.NodeCount()
	if usesFastPath(na, nb, bodyNodeCap, sizeRatioThreshold) {
		return lineJaccard(a.BodyText, b.BodyText)
	}

	t1, t2 := flatten(a.Body), flatten(b.Body)
	renames := learnRenames(a.Body, b.Body)
	dist := treeEditDistance(t1, t2, renames)
	maxNodes := na
	if nb > maxNodes {
		maxNodes = nb
	}
	if maxNodes == 0 {
		return 1
	}
	sim := 1 - dist/float64(maxNodes)
	if sim < 0 {
		sim = 0
	}
	return sim
}

func usesFastPath(na, nb, bodyNodeCap int, sizeRatioThreshold float64) bool {
	if na > bodyNodeCap || nb > bodyNodeCap {
		return true
	}
	small, large := na, nb
	if small > large {
		small, large = large, small
	}
	if small == 0 {
		return large > 0
	}
	return float64(large)/float64(small) > sizeRatioThreshold
}

func lineJaccard(a, b string) float64 {
	linesA := nonEmptyLines(a)
	linesB := nonEmptyLines(b)
	if len(linesA) == 0 && len(linesB) == 0 {
		return 1
	}
	setA := make(map[string]struct{}, len(linesA))
	for _, l := range linesA {
		setA[l] = struct{}{}
	}
	setB := make(map[string]struct{}, len(linesB))
	for _, l := range linesB {
		setB[l] = struct{}{}
	}
	inter := 0
	for l := range setA {
		if _, ok := setB[l]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 1
	}
	return float64(inter) / float64(union)
}

func nonEmptyLines(s string) []string {
	raw := strings.Split(s, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
