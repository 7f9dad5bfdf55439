package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/smart-diff/internal/types"
)

func node(kind types.NodeKind, line int, attrs map[string]string, children ...*types.Node) *types.Node {
	n := types.NewNode(kind, types.Location{Line: line})
	for k, v := range attrs {
		n.SetAttr(k, v)
	}
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

func TestExtract_TopLevelFunction(t *testing.T) {
	fnNode := node(types.KindFunction, 1, map[string]string{"name": "add", "return_type": "int"},
		node(types.KindParameter, 1, map[string]string{"name": "a", "type": "int"}),
		node(types.KindParameter, 1, map[string]string{"name": "b", "type": "int"}),
		node(types.KindBlock, 2, nil,
			node(types.KindReturn, 2, nil),
		),
	)
	program := node(types.KindProgram, 0, nil, fnNode)

	recs := Extract(program, "a.c", types.LanguageC)
	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, "add", rec.SimpleName)
	assert.Equal(t, "add", rec.QualifiedName)
	assert.Equal(t, "int", rec.Signature.ReturnType)
	assert.Len(t, rec.Signature.Parameters, 2)
	assert.False(t, rec.IsAnonymous)
}

func TestExtract_MethodQualifiedByEnclosingClass(t *testing.T) {
	method := node(types.KindMethod, 2, map[string]string{"name": "run"},
		node(types.KindBlock, 3, nil),
	)
	class := node(types.KindClass, 1, map[string]string{"name": "Worker"}, method)
	program := node(types.KindProgram, 0, nil, class)

	recs := Extract(program, "a.go", types.LanguageJava)
	require.Len(t, recs, 1)
	assert.Equal(t, "Worker.run", recs[0].QualifiedName)
}

func TestExtract_NestedFunctionRecordedAsCallInOuter(t *testing.T) {
	inner := node(types.KindFunction, 3, map[string]string{"name": "inner"},
		node(types.KindBlock, 4, nil),
	)
	outer := node(types.KindFunction, 1, map[string]string{"name": "outer"},
		node(types.KindBlock, 2, nil, inner),
	)
	program := node(types.KindProgram, 0, nil, outer)

	recs := Extract(program, "a.go", types.LanguagePython)
	require.Len(t, recs, 2)

	var outerRec, innerRec *types.FunctionRecord
	for _, r := range recs {
		if r.SimpleName == "outer" {
			outerRec = r
		} else {
			innerRec = r
		}
	}
	require.NotNil(t, outerRec)
	require.NotNil(t, innerRec)
	assert.Equal(t, "outer.inner", innerRec.QualifiedName)
	assert.Contains(t, outerRec.CallNames, "outer.inner")
}

func TestExtract_AnonymousFunctionGetsSyntheticName(t *testing.T) {
	anon := node(types.KindFunction, 5, nil, node(types.KindBlock, 5, nil))
	program := node(types.KindProgram, 0, nil, anon)

	recs := Extract(program, "a.go", types.LanguageJavaScript)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].IsAnonymous)
	assert.Contains(t, recs[0].SimpleName, "anonymous$")
}

func TestCyclomaticComplexity_CountsDecisionPoints(t *testing.T) {
	body := node(types.KindBlock, 1, nil,
		node(types.KindIf, 2, nil),
		node(types.KindFor, 3, nil),
		node(types.KindBinaryExpr, 4, map[string]string{"operator": "&&"}),
	)
	assert.Equal(t, 4, cyclomaticComplexity(body))
	assert.Equal(t, 1, cyclomaticComplexity(nil))
}

func TestCollectCalls_PostOrderGathersFunctionNames(t *testing.T) {
	body := node(types.KindBlock, 1, nil,
		node(types.KindCall, 1, map[string]string{"function_name": "foo"}),
		node(types.KindCall, 1, map[string]string{"function_name": "bar"}),
	)
	rec := types.NewFunctionRecord()
	collectCalls(body, rec)
	assert.ElementsMatch(t, []string{"foo", "bar"}, rec.CallNames)
}

func TestCollectTypeRefs_DedupesAndCollectsFromSignatureAndBody(t *testing.T) {
	body := node(types.KindBlock, 1, nil,
		node(types.KindVariableDecl, 1, map[string]string{"type": "Widget"}),
		node(types.KindVariableDecl, 1, map[string]string{"type": "int"}),
	)
	fnNode := node(types.KindFunction, 1, map[string]string{"name": "make", "return_type": "Widget"},
		node(types.KindParameter, 1, map[string]string{"type": "int"}),
	)
	rec := types.NewFunctionRecord()
	rec.Signature.Parameters = []types.Parameter{{Type: "int"}}
	rec.Body = body
	collectTypeRefs(fnNode, rec)
	assert.ElementsMatch(t, []string{"Widget", "int"}, rec.TypeRefNames)
}
