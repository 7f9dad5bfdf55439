// Package extractor is the Function Extractor (§4.2): it walks a Normalized
// AST and emits one FunctionRecord per function/method/constructor,
// including nested functions and closures as independent records prefixed
// with their enclosing function's qualified name.
package extractor

import (
	"fmt"
	"strings"

	"github.com/standardbeagle/smart-diff/internal/types"
)

// Extract walks nast and returns every function-like record found, assigning
// dense FunctionIDs in a deterministic (pre-order, then declaration order)
// sequence.
func Extract(nast *types.Node, filePath string, lang types.Language) []*types.FunctionRecord {
	e := &extraction{filePath: filePath, lang: lang}
	e.walk(nast, nil, "")
	for i, rec := range e.records {
		rec.ID = types.FunctionID(i)
	}
	return e.records
}

type extraction struct {
	filePath string
	lang     types.Language
	records  []*types.FunctionRecord
}

// walk descends the NAST carrying the enclosing Class/Module name stack
// (qualifierStack) and the nearest enclosing function's qualified name
// (enclosingFn, "" at top level).
func (e *extraction) walk(node *types.Node, qualifierStack []string, enclosingFn string) {
	if node == nil {
		return
	}
	switch node.Kind {
	case types.KindClass, types.KindInterface, types.KindModule:
		name := node.Attr("name")
		next := qualifierStack
		if name != "" {
			next = append(append([]string{}, qualifierStack...), name)
		}
		for _, c := range node.Children {
			e.walk(c, next, enclosingFn)
		}
		return

	case types.KindFunction, types.KindMethod, types.KindConstructor:
		rec := e.buildRecord(node, qualifierStack, enclosingFn)
		e.records = append(e.records, rec)

		if enclosingFn != "" {
			// §4.2: "also recorded as a calls entry in the outer function"
			if outer := e.findRecord(enclosingFn); outer != nil {
				outer.CallNames = append(outer.CallNames, rec.QualifiedName)
			}
		}

		// Recurse into the body only, looking for nested functions; the
		// qualifier stack does not grow for nested-function prefixing -
		// nesting is tracked via EnclosingQualifiedName/CallNames instead
		// (§4.2).
		for _, c := range node.Children {
			e.walk(c, qualifierStack, rec.QualifiedName)
		}
		return

	default:
		for _, c := range node.Children {
			e.walk(c, qualifierStack, enclosingFn)
		}
	}
}

func (e *extraction) findRecord(qualifiedName string) *types.FunctionRecord {
	for _, r := range e.records {
		if r.QualifiedName == qualifiedName {
			return r
		}
	}
	return nil
}

func (e *extraction) buildRecord(node *types.Node, qualifierStack []string, enclosingFn string) *types.FunctionRecord {
	rec := types.NewFunctionRecord()
	rec.FilePath = e.filePath
	rec.Language = e.lang
	rec.EnclosingQualifiedName = enclosingFn

	name := node.Attr("name")
	anonymous := name == ""
	if anonymous {
		name = fmt.Sprintf("anonymous$%d", node.Location.StartByte)
		rec.IsAnonymous = true
	}
	rec.SimpleName = name

	prefix := strings.Join(qualifierStack, ".")
	if enclosingFn != "" {
		prefix = enclosingFn
	}
	if prefix != "" {
		rec.QualifiedName = prefix + "." + name
	} else {
		rec.QualifiedName = name
	}

	rec.Signature = buildSignature(node)
	rec.Location = types.FunctionLocation{
		FilePath:  e.filePath,
		StartLine: node.Location.Line,
		EndLine:   node.Location.Line, // refined below once body located
	}
	rec.BodyText = node.Location.OriginalText

	var body *types.Node
	for _, c := range node.Children {
		if c.Kind == types.KindBlock {
			body = c
			break
		}
	}
	if body == nil {
		// A single-expression body (arrow functions, Rust block-less items)
		// is still a subtree we can diff; fall back to the last child. A
		// declaration whose children are all parameters has no body.
		if n := len(node.Children); n > 0 && node.Children[n-1].Kind != types.KindParameter {
			body = node.Children[n-1]
		}
	}
	rec.Body = body
	if body != nil {
		rec.Location.EndLine = endLine(body)
	}

	rec.Complexity = cyclomaticComplexity(body)
	collectCalls(body, rec)
	collectTypeRefs(node, rec)

	return rec
}

func buildSignature(node *types.Node) types.Signature {
	sig := types.Signature{Modifiers: make(map[string]struct{})}
	for _, c := range node.Children {
		if c.Kind == types.KindParameter {
			sig.Parameters = append(sig.Parameters, types.Parameter{
				Name: c.Attr("name"),
				Type: c.Attr("type"),
			})
		}
	}
	sig.ReturnType = node.Attr("return_type")
	for mod := range modifierAttrs(node) {
		sig.Modifiers[mod] = struct{}{}
	}
	return sig
}

// modifierAttrs inspects the small set of boolean-ish attributes a function
// node may carry (populated by the parser when the grammar exposes them as
// separate modifier tokens). Declared as its own pass so future grammars can
// register additional modifier attributes without touching buildSignature.
func modifierAttrs(node *types.Node) map[string]struct{} {
	mods := make(map[string]struct{})
	for _, key := range []string{"static", "async", "public", "private", "protected", "const", "virtual", "override"} {
		if node.Attr(key) == "true" {
			mods[key] = struct{}{}
		}
	}
	return mods
}

func endLine(n *types.Node) int {
	if n == nil {
		return 0
	}
	maxLine := n.Location.Line
	n.Walk(func(c *types.Node) bool {
		if c.Location.Line > maxLine {
			maxLine = c.Location.Line
		}
		return true
	})
	return maxLine
}

// cyclomaticComplexity computes McCabe complexity (§4.4 cross-reference):
// one base path plus one per decision point (If, While, For, and each
// BinaryExpr whose operator is &&, ||, and or or) found in the body.
func cyclomaticComplexity(body *types.Node) int {
	complexity := 1
	if body == nil {
		return complexity
	}
	body.Walk(func(n *types.Node) bool {
		switch n.Kind {
		case types.KindIf, types.KindWhile, types.KindFor:
			complexity++
		case types.KindBinaryExpr:
			if op := n.Attr("operator"); op == "&&" || op == "||" || op == "and" || op == "or" {
				complexity++
			}
		}
		return true
	})
	return complexity
}

// collectCalls performs the post-order walk of §4.2, collecting the
// function_name attribute of every Call node into rec.CallNames.
func collectCalls(body *types.Node, rec *types.FunctionRecord) {
	if body == nil {
		return
	}
	body.PostOrder(func(n *types.Node) {
		if n.Kind == types.KindCall {
			if name := n.Attr("function_name"); name != "" {
				rec.CallNames = append(rec.CallNames, name)
			}
		}
	})
}

// collectTypeRefs gathers referenced type names from the signature and any
// variable/field declarations in the body.
func collectTypeRefs(node *types.Node, rec *types.FunctionRecord) {
	seen := make(map[string]struct{})
	add := func(t string) {
		t = strings.TrimSpace(t)
		if t == "" {
			return
		}
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		rec.TypeRefNames = append(rec.TypeRefNames, t)
	}
	add(node.Attr("return_type"))
	for _, p := range rec.Signature.Parameters {
		add(p.Type)
	}
	if rec.Body != nil {
		rec.Body.Walk(func(n *types.Node) bool {
			if n.Kind == types.KindVariableDecl || n.Kind == types.KindFieldDecl {
				add(n.Attr("type"))
			}
			return true
		})
	}
}
