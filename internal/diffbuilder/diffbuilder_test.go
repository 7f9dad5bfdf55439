package diffbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/smart-diff/internal/types"
)

func diffLeaf(kind types.NodeKind, attrs map[string]string, children ...*types.Node) *types.Node {
	n := types.NewNode(kind, types.Location{})
	for k, v := range attrs {
		n.SetAttr(k, v)
	}
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

func diffFn(body *types.Node, text, path string, line int) *types.FunctionRecord {
	rec := types.NewFunctionRecord()
	rec.Body = body
	rec.BodyText = text
	rec.FilePath = path
	rec.Location.StartLine = line
	return rec
}

func TestUnifiedDiff_RendersHunkHeader(t *testing.T) {
	a := diffFn(nil, "line one\nline two\n", "a.go", 1)
	b := diffFn(nil, "line one\nline changed\n", "a.go", 1)
	out := UnifiedDiff(a, b)
	assert.Contains(t, out, "a.go:1")
	assert.Contains(t, out, "-line two")
	assert.Contains(t, out, "+line changed")
}

func TestUnifiedDiff_IdenticalTextProducesEmptyDiff(t *testing.T) {
	a := diffFn(nil, "same\n", "a.go", 1)
	b := diffFn(nil, "same\n", "a.go", 1)
	assert.Empty(t, UnifiedDiff(a, b))
}

func TestEditScript_NilBodyReturnsEmptyScript(t *testing.T) {
	a := diffFn(nil, "", "a.go", 1)
	b := diffFn(diffLeaf(types.KindReturn, nil), "return 1;", "a.go", 1)
	script := EditScript(a, b, 10000)
	assert.Empty(t, script.Ops)
	assert.False(t, script.Fast)
}

func TestEditScript_RelabelOnAttributeChange(t *testing.T) {
	a := diffFn(diffLeaf(types.KindCall, map[string]string{"function_name": "foo"}), "foo();", "a.go", 1)
	b := diffFn(diffLeaf(types.KindCall, map[string]string{"function_name": "bar"}), "bar();", "a.go", 1)
	script := EditScript(a, b, 10000)
	require.Len(t, script.Ops, 1)
	assert.Equal(t, types.EditRelabel, script.Ops[0].Kind)
	assert.False(t, script.Fast)
}

func TestEditScript_InsertAndDeleteOnChildCountMismatch(t *testing.T) {
	aBody := diffLeaf(types.KindBlock, nil, diffLeaf(types.KindReturn, nil))
	bBody := diffLeaf(types.KindBlock, nil,
		diffLeaf(types.KindReturn, nil),
		diffLeaf(types.KindExpressionStatement, nil),
	)
	a := diffFn(aBody, "return 1;", "a.go", 1)
	b := diffFn(bBody, "return 1;\nlog();", "a.go", 1)
	script := EditScript(a, b, 10000)
	require.Len(t, script.Ops, 1)
	assert.Equal(t, types.EditInsert, script.Ops[0].Kind)

	reverse := EditScript(b, a, 10000)
	require.Len(t, reverse.Ops, 1)
	assert.Equal(t, types.EditDelete, reverse.Ops[0].Kind)
}

func TestEditScript_AboveBodyNodeCapUsesLineLevelFallback(t *testing.T) {
	a := diffFn(diffLeaf(types.KindBlock, nil, diffLeaf(types.KindReturn, nil)), "one\ntwo\n", "a.go", 1)
	b := diffFn(diffLeaf(types.KindBlock, nil, diffLeaf(types.KindReturn, nil)), "one\nthree\n", "a.go", 1)
	script := EditScript(a, b, 0)
	assert.True(t, script.Fast)
	assert.NotEmpty(t, script.Ops)
}

func TestAttrsEqual_OnlyComparesIdentityAttrs(t *testing.T) {
	a := diffLeaf(types.KindCall, map[string]string{"function_name": "foo", "extra": "x"})
	b := diffLeaf(types.KindCall, map[string]string{"function_name": "foo", "extra": "y"})
	assert.True(t, attrsEqual(a, b))
}

func TestChildPath(t *testing.T) {
	assert.Equal(t, "0", childPath("", 0))
	assert.Equal(t, "0.2", childPath("0", 2))
}
