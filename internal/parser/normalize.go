package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/standardbeagle/smart-diff/internal/types"
)

// normalizer converts one tree-sitter parse tree into a Normalized AST for a
// single language, collecting diagnostics for unrecoverable ERROR nodes
// along the way (§4.1's contract never throws for syntactic errors).
type normalizer struct {
	lang        types.Language
	table       kindTable
	source      []byte
	diagnostics []types.Diagnostic
	filePath    string
}

func newNormalizer(lang types.Language, source []byte, filePath string) *normalizer {
	return &normalizer{lang: lang, table: mappingFor(lang), source: source, filePath: filePath}
}

// Normalize converts the tree-sitter root into a NAST Program node.
func (n *normalizer) Normalize(root *sitter.Node) *types.Node {
	return n.convert(root)
}

// convert maps one tree-sitter node to a NAST node. A node type absent from
// the mapping table is not materialized: convert then returns its first
// materialized descendant, or nil if it has none (convertChildrenInto
// instead lifts every materialized descendant of such a node onto the
// parent).
func (n *normalizer) convert(ts *sitter.Node) *types.Node {
	if ts == nil {
		return nil
	}
	kind, ok := n.table[ts.Type()]
	if !ok {
		// Trivia/punctuation: not materialized, but descend in case a
		// meaningful descendant hangs off an unmapped wrapper node.
		return n.convertChildrenInto(nil, ts)
	}

	loc := n.location(ts)
	node := types.NewNode(kind, loc)

	if kind == types.KindError {
		n.diagnostics = append(n.diagnostics, types.Diagnostic{
			Kind:     types.DiagnosticParseError,
			FilePath: n.filePath,
			Line:     loc.Line,
			Column:   loc.Column,
			Message:  "unrecoverable syntax error near " + nodeText(ts, n.source),
		})
	}

	n.attachAttributes(node, ts, kind)

	switch kind {
	case types.KindFunction, types.KindMethod, types.KindConstructor:
		n.attachFunctionChildren(node, ts)
	case types.KindCall:
		n.attachCallChildren(node, ts)
	default:
		n.convertChildrenInto(node, ts)
	}

	return node
}

// convertChildrenInto walks ts's children, appending every materialized
// descendant to parent (or, if parent is nil, returns the first
// materialized descendant standing in for ts, used when ts itself was
// dropped as trivia). Multiple materialized descendants under a dropped
// wrapper all surface as siblings of whatever they would have sat beside had
// the wrapper been mapped.
func (n *normalizer) convertChildrenInto(parent *types.Node, ts *sitter.Node) *types.Node {
	count := int(ts.ChildCount())
	var first *types.Node
	for i := 0; i < count; i++ {
		child := ts.Child(i)
		if child == nil || !child.IsNamed() {
			continue
		}
		if _, mapped := n.table[child.Type()]; parent != nil && !mapped {
			n.convertChildrenInto(parent, child)
			continue
		}
		converted := n.convert(child)
		if converted == nil {
			continue
		}
		if parent != nil {
			parent.AddChild(converted)
		} else if first == nil {
			first = converted
		}
	}
	return first
}

func (n *normalizer) location(ts *sitter.Node) types.Location {
	start := ts.StartPoint()
	return types.Location{
		Line:         int(start.Row) + 1,
		Column:       int(start.Column) + 1,
		StartByte:    ts.StartByte(),
		EndByte:      ts.EndByte(),
		OriginalText: nodeText(ts, n.source),
	}
}

func nodeText(ts *sitter.Node, source []byte) string {
	if ts == nil {
		return ""
	}
	start, end := ts.StartByte(), ts.EndByte()
	if start > end || int(end) > len(source) {
		return ""
	}
	return string(source[start:end])
}
