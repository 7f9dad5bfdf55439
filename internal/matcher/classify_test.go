package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/smart-diff/internal/types"
)

func record(name, file, returnType, body string) *types.FunctionRecord {
	rec := types.NewFunctionRecord()
	rec.SimpleName = name
	rec.QualifiedName = name
	rec.FilePath = file
	rec.Signature.ReturnType = returnType
	rec.Signature.Modifiers = make(map[string]struct{})
	rec.BodyText = body
	return rec
}

func TestClassify_IdenticalBytesAndLocation(t *testing.T) {
	a := record("run", "a.go", "int", "return 1;")
	b := record("run", "a.go", "int", "return 1;")
	m := classify(a, b, types.DefaultOptions())
	assert.Equal(t, types.MatchIdentical, m.Kind)
	assert.Equal(t, 1.0, m.Similarity.Overall)
	assert.Nil(t, m.EditScript)
}

func TestClassify_RenameOnlySameFileSameBody(t *testing.T) {
	a := record("run", "a.go", "int", "return 1;")
	b := record("runFast", "a.go", "int", "return 1;")
	m := classify(a, b, types.DefaultOptions())
	require.Equal(t, types.MatchRenamed, m.Kind)
	assert.True(t, m.Changes.Renamed)
	assert.False(t, m.Changes.Moved)
	assert.NotNil(t, m.EditScript)
}

func TestClassify_MoveOnlySameNameSameBody(t *testing.T) {
	a := record("run", "a.go", "int", "return 1;")
	b := record("run", "b.go", "int", "return 1;")
	m := classify(a, b, types.DefaultOptions())
	require.Equal(t, types.MatchMoved, m.Kind)
	assert.True(t, m.Changes.Moved)
	assert.False(t, m.Changes.Renamed)
}

func TestClassify_BodyChangeIsModifiedEvenWithRename(t *testing.T) {
	a := record("run", "a.go", "int", "return 1;")
	b := record("runFast", "a.go", "int", "return 2;")
	// BodyChanged comes from the body trees, so give each side its literal.
	a.Body = types.NewNode(types.KindLiteral, types.Location{})
	a.Body.SetAttr("literal_value", "1")
	b.Body = types.NewNode(types.KindLiteral, types.Location{})
	b.Body.SetAttr("literal_value", "2")
	m := classify(a, b, types.DefaultOptions())
	assert.Equal(t, types.MatchModified, m.Kind)
	assert.True(t, m.Changes.BodyChanged)
	assert.True(t, m.Changes.Renamed)
}

func TestClassify_SignatureChangeIsModified(t *testing.T) {
	a := record("run", "a.go", "int", "return 1;")
	b := record("run", "a.go", "string", "return 1;")
	m := classify(a, b, types.DefaultOptions())
	assert.Equal(t, types.MatchModified, m.Kind)
	assert.True(t, m.Changes.SignatureChanged)
}

func TestBodyHashesEqual(t *testing.T) {
	assert.True(t, bodyHashesEqual("same", "same"))
	assert.False(t, bodyHashesEqual("a", "b"))
	assert.True(t, bodyHashesEqual("", ""))
}

func TestSignaturesEqual(t *testing.T) {
	a := types.Signature{ReturnType: "int", Parameters: []types.Parameter{{Name: "x", Type: "int"}}, Modifiers: map[string]struct{}{"static": {}}}
	b := types.Signature{ReturnType: "int", Parameters: []types.Parameter{{Name: "x", Type: "int"}}, Modifiers: map[string]struct{}{"static": {}}}
	assert.True(t, signaturesEqual(a, b))

	c := b
	c.ReturnType = "string"
	assert.False(t, signaturesEqual(a, c))
}
