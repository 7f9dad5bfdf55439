package parser

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/standardbeagle/smart-diff/internal/types"
)

// attachAttributes fills in the attribute set for a freshly materialized
// NAST node, following §4.1's normalization rules: name-holding nodes expose
// "name", call sites expose "function_name"/"arg_count", literals expose
// "literal_kind"/"literal_value".
func (n *normalizer) attachAttributes(node *types.Node, ts *sitter.Node, kind types.NodeKind) {
	switch kind {
	case types.KindFunction, types.KindMethod, types.KindConstructor:
		node.SetAttr("name", n.declName(ts))
		if rt := n.returnType(ts); rt != "" {
			node.SetAttr("return_type", rt)
		}
	case types.KindClass, types.KindInterface, types.KindModule:
		node.SetAttr("name", textOfField(ts, n.source, "name"))
	case types.KindIdentifier:
		node.SetAttr("name", nodeText(ts, n.source))
	case types.KindLiteral:
		litKind, litVal := literalKindValue(ts, n.source)
		node.SetAttr("literal_kind", litKind)
		node.SetAttr("literal_value", litVal)
	case types.KindVariableDecl, types.KindFieldDecl:
		node.SetAttr("name", firstDeclaredName(ts, n.source))
		if t := textOfField(ts, n.source, "type"); t != "" {
			node.SetAttr("type", t)
		}
	case types.KindImport:
		node.SetAttr("module", strings.TrimSpace(nodeText(ts, n.source)))
	case types.KindBinaryExpr, types.KindUnaryExpr, types.KindAssignment:
		node.SetAttr("operator", operatorText(ts, n.source))
	}
}

// attachFunctionChildren materializes a function's parameters and body
// separately from the generic child walk, because parameter extraction
// needs the "parameters"-field subtree handled specially (§4.2) and C/C++
// hang both the name and the parameter list off a nested "declarator".
func (n *normalizer) attachFunctionChildren(node *types.Node, ts *sitter.Node) {
	for _, p := range n.parameters(ts) {
		node.AddChild(p)
	}
	body := ts.ChildByFieldName("body")
	if body == nil {
		return
	}
	if _, mapped := n.table[body.Type()]; mapped {
		node.AddChild(n.convert(body))
	} else {
		// body wrapper node type wasn't mapped to KindBlock (unlikely); fall
		// back to converting its children directly onto this function node.
		n.convertChildrenInto(node, body)
	}
}

// attachCallChildren fills function_name/arg_count and then walks the
// argument list so nested calls are still extracted (§4.2: "post-order walk
// of body, collecting the function_name attribute of every Call node").
func (n *normalizer) attachCallChildren(node *types.Node, ts *sitter.Node) {
	fn := ts.ChildByFieldName("function")
	if fn == nil {
		fn = ts.ChildByFieldName("name") // Java method_invocation
	}
	node.SetAttr("function_name", callName(fn, n.source))

	args := ts.ChildByFieldName("arguments")
	argCount := 0
	if args != nil {
		for i := 0; i < int(args.ChildCount()); i++ {
			c := args.Child(i)
			if c != nil && c.IsNamed() {
				argCount++
			}
		}
		n.convertChildrenInto(node, args)
	}
	node.SetAttr("arg_count", strconv.Itoa(argCount))
}

// callName resolves the textual callee name, unwrapping one level of member
// access (`obj.method(...)` -> "method") so that cross-language call sets
// compare method names rather than full receiver expressions.
func callName(fn *sitter.Node, source []byte) string {
	if fn == nil {
		return ""
	}
	if prop := fn.ChildByFieldName("property"); prop != nil {
		return nodeText(prop, source)
	}
	if name := fn.ChildByFieldName("name"); name != nil {
		return nodeText(name, source)
	}
	return nodeText(fn, source)
}

// declName resolves a function/method/constructor's simple name, accounting
// for C/C++'s nested declarator shape (panbanda-omen's extractFunction
// handles the same quirk).
func (n *normalizer) declName(ts *sitter.Node) string {
	if name := ts.ChildByFieldName("name"); name != nil {
		return nodeText(name, n.source)
	}
	if decl := ts.ChildByFieldName("declarator"); decl != nil {
		if inner := decl.ChildByFieldName("declarator"); inner != nil {
			return nodeText(inner, n.source)
		}
		return nodeText(decl, n.source)
	}
	return ""
}

// returnType resolves a declared return type where the grammar exposes one
// as a direct field. C/C++ attach it as a sibling "type" node rather than a
// field of the function node itself.
func (n *normalizer) returnType(ts *sitter.Node) string {
	if rt := ts.ChildByFieldName("return_type"); rt != nil {
		return nodeText(rt, n.source)
	}
	if n.lang == types.LanguageC || n.lang == types.LanguageCpp {
		if t := ts.ChildByFieldName("type"); t != nil {
			return nodeText(t, n.source)
		}
	}
	return ""
}

// parameters extracts the ordered parameter list as Parameter NAST nodes.
func (n *normalizer) parameters(ts *sitter.Node) []*types.Node {
	params := ts.ChildByFieldName("parameters")
	if params == nil && (n.lang == types.LanguageC || n.lang == types.LanguageCpp) {
		if decl := ts.ChildByFieldName("declarator"); decl != nil {
			params = decl.ChildByFieldName("parameters")
		}
	}
	if params == nil {
		return nil
	}
	var out []*types.Node
	for i := 0; i < int(params.ChildCount()); i++ {
		c := params.Child(i)
		if c == nil || !c.IsNamed() {
			continue
		}
		if c.Type() == "self_parameter" || c.Type() == "comment" {
			continue
		}
		out = append(out, n.parameterNode(c))
	}
	return out
}

func (n *normalizer) parameterNode(ts *sitter.Node) *types.Node {
	node := types.NewNode(types.KindParameter, n.location(ts))
	name := ts.ChildByFieldName("name")
	if name == nil {
		name = ts.ChildByFieldName("pattern")
	}
	if name != nil {
		node.SetAttr("name", nodeText(name, n.source))
	} else if ts.Type() == "identifier" {
		node.SetAttr("name", nodeText(ts, n.source))
	}
	if t := ts.ChildByFieldName("type"); t != nil {
		node.SetAttr("type", nodeText(t, n.source))
	}
	return node
}

func textOfField(ts *sitter.Node, source []byte, field string) string {
	f := ts.ChildByFieldName(field)
	if f == nil {
		return ""
	}
	return nodeText(f, source)
}

func firstDeclaredName(ts *sitter.Node, source []byte) string {
	if d := ts.ChildByFieldName("declarator"); d != nil {
		if inner := d.ChildByFieldName("declarator"); inner != nil {
			return nodeText(inner, source)
		}
		return nodeText(d, source)
	}
	if n := ts.ChildByFieldName("name"); n != nil {
		return nodeText(n, source)
	}
	return ""
}

func literalKindValue(ts *sitter.Node, source []byte) (kind, value string) {
	t := ts.Type()
	text := nodeText(ts, source)
	switch {
	case t == "true" || t == "false" || t == "boolean_literal":
		return "bool", text
	case t == "null" || t == "none" || t == "null_literal" || t == "nullptr" || t == "undefined":
		return "null", text
	case strings.Contains(t, "string"):
		return "string", text
	default:
		return "number", text
	}
}

// operatorText returns the textual operator token of a binary/unary/
// assignment expression, which most grammars expose as an anonymous leaf
// child rather than a named field.
func operatorText(ts *sitter.Node, source []byte) string {
	if op := ts.ChildByFieldName("operator"); op != nil {
		return nodeText(op, source)
	}
	for i := 0; i < int(ts.ChildCount()); i++ {
		c := ts.Child(i)
		if c == nil || c.IsNamed() || c.ChildCount() > 0 {
			continue
		}
		text := nodeText(c, source)
		if text != "" && len(text) <= 3 {
			return text
		}
	}
	return ""
}
