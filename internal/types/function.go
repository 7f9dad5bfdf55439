package types

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Parameter is one entry of a function's parameter list (§3). Name and type
// are both optional since some languages (and some partially-typed source)
// omit one or the other.
type Parameter struct {
	Name string
	Type string
}

// Signature captures everything the Similarity Engine needs about a
// function's declaration (§3).
type Signature struct {
	Parameters []Parameter
	ReturnType string // empty means unspecified/inferred
	Modifiers  map[string]struct{}
}

// HasModifier reports whether a modifier (e.g. "static", "async", "public")
// is present.
func (s Signature) HasModifier(m string) bool {
	_, ok := s.Modifiers[m]
	return ok
}

// ParamTypes returns the ordered parameter type sequence, used by the
// longest-common-subsequence parameter similarity (§4.4).
func (s Signature) ParamTypes() []string {
	out := make([]string, len(s.Parameters))
	for i, p := range s.Parameters {
		out[i] = p.Type
	}
	return out
}

// FunctionLocation pins a FunctionRecord to its file and line range (§3).
type FunctionLocation struct {
	FilePath  string
	StartLine int
	EndLine   int
}

// FunctionRecord is the extractor's unit of output and the unit of
// comparison throughout the rest of the pipeline (§3).
type FunctionRecord struct {
	ID FunctionID

	// SimpleName is the bare identifier ("divide"); QualifiedName prefixes
	// enclosing class/module names joined with "." (normalized across all
	// supported languages, §4.2).
	SimpleName    string
	QualifiedName string
	FilePath      string
	Language      Language

	Signature Signature
	Body      *Node // subtree root; nil for abstract/interface declarations
	Location  FunctionLocation
	Complexity int

	// CallNames holds every called-symbol name collected by a post-order
	// walk of Body (§4.2), as raw identifier strings; Calls holds the global
	// symbol ids of those the resolver could resolve (§4.3).
	CallNames []string
	Calls     *roaring.Bitmap // resolved symbol ids, sorted iteration (§5)
	TypeRefs  *roaring.Bitmap // resolved type-reference ids
	TypeRefNames []string

	// BodyText is the original source text of the function, including its
	// signature, used for the Identical byte-equality check and for the
	// unified text diff.
	BodyText string

	// IsAnonymous marks synthetic records created for closures/anonymous
	// functions whose id was generated rather than derived from a name
	// (§4.2).
	IsAnonymous bool

	// EnclosingQualifiedName is the qualified name of the function this
	// record is nested inside, empty for top-level functions.
	EnclosingQualifiedName string
}

// CompositeID returns the "qualified_name@file_path" identifier (§3),
// unique within one side of a comparison.
func (f *FunctionRecord) CompositeID() string {
	return fmt.Sprintf("%s@%s", f.QualifiedName, f.FilePath)
}

// NewFunctionRecord allocates a record with initialized id sets.
func NewFunctionRecord() *FunctionRecord {
	return &FunctionRecord{
		Calls:    roaring.New(),
		TypeRefs: roaring.New(),
	}
}

// SortedCalls returns the resolved call-id set as a sorted slice, satisfying
// §5's determinism requirement ("maps feeding matcher weights are sorted
// before assignment").
func (f *FunctionRecord) SortedCalls() []uint32 {
	if f.Calls == nil {
		return nil
	}
	return f.Calls.ToArray()
}

// SortedTypeRefs returns the resolved type-reference id set as a sorted
// slice.
func (f *FunctionRecord) SortedTypeRefs() []uint32 {
	if f.TypeRefs == nil {
		return nil
	}
	return f.TypeRefs.ToArray()
}
