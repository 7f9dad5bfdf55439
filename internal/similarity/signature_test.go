package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/smart-diff/internal/types"
)

func fn(name, returnType string, paramTypes []string, modifiers ...string) *types.FunctionRecord {
	rec := types.NewFunctionRecord()
	rec.SimpleName = name
	rec.QualifiedName = name
	rec.Signature.ReturnType = returnType
	rec.Signature.Modifiers = make(map[string]struct{})
	for _, m := range modifiers {
		rec.Signature.Modifiers[m] = struct{}{}
	}
	for _, t := range paramTypes {
		rec.Signature.Parameters = append(rec.Signature.Parameters, types.Parameter{Type: t})
	}
	return rec
}

func TestSignature_Identical(t *testing.T) {
	a := fn("divide", "int", []string{"int", "int"}, "static")
	b := fn("divide", "int", []string{"int", "int"}, "static")
	assert.Equal(t, 1.0, Signature(a, b))
}

func TestSignature_NameChangedOnly(t *testing.T) {
	a := fn("add", "int", []string{"int", "int"})
	b := fn("adds", "int", []string{"int", "int"})
	sim := Signature(a, b)
	require.Less(t, sim, 1.0)
	require.Greater(t, sim, 0.8) // single-character edit distance, everything else identical
}

func TestSignature_CrossLanguageReturnTypeEquivalence(t *testing.T) {
	a := fn("compute", "int", nil)
	b := fn("compute", "i32", nil)
	assert.Equal(t, 1.0, Signature(a, b))
}

func TestParamSimilarity_ReorderedParamsPenalized(t *testing.T) {
	a := fn("f", "void", []string{"int", "string"})
	b := fn("f", "void", []string{"string", "int"})
	sim := paramSimilarity(a.Signature.ParamTypes(), b.Signature.ParamTypes())
	assert.Less(t, sim, 1.0)
}

func TestModifierJaccard(t *testing.T) {
	assert.Equal(t, 1.0, jaccardSet(map[string]struct{}{"static": {}}, map[string]struct{}{"static": {}}))
	assert.Equal(t, 0.0, jaccardSet(map[string]struct{}{"static": {}}, map[string]struct{}{"async": {}}))
	assert.Equal(t, 1.0, jaccardSet(nil, nil))
}

func TestReturnTypeEquivalent(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"void", "None", true},
		{"bool", "boolean", true},
		{"string", "str", true},
		{"int", "string", false},
		{"List<int>", "Map<int,int>", false},
		{"", "", true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ReturnTypeEquivalent(c.a, c.b), "%s vs %s", c.a, c.b)
	}
}
