package similarity

import "strings"

// equivalenceClasses groups return-type spellings that mean the same thing
// across the closed language set (§4.4: "a cross-language return-type
// equivalence table, not bare string equality"). Each inner slice is one
// equivalence class; membership is normalized (lower-cased, generic/array
// decorations stripped) before lookup.
var equivalenceClasses = [][]string{
	{"void", "none", "unit", "()"},
	{"int", "int32", "int64", "integer", "long", "short", "i32", "i64", "isize", "usize", "uint", "uint32", "uint64"},
	{"float", "double", "float32", "float64", "number", "f32", "f64"},
	{"bool", "boolean"},
	{"string", "str", "string", "char*", "const char*"},
	{"object", "any", "interface{}", "var"},
}

var classOf = buildClassIndex()

func buildClassIndex() map[string]int {
	idx := make(map[string]int)
	for c, members := range equivalenceClasses {
		for _, m := range members {
			idx[m] = c
		}
	}
	return idx
}

// normalizeType strips generic/array/nullable decorations so that "List<int>",
// "int[]" and "int?" all reduce to a comparable base token.
func normalizeType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	t = strings.TrimSuffix(t, "?")
	t = strings.TrimSuffix(t, "[]")
	if i := strings.IndexAny(t, "<["); i >= 0 {
		t = t[:i]
	}
	t = strings.TrimSpace(t)
	return t
}

// ReturnTypeEquivalent reports whether two declared return types are
// considered the same under the cross-language equivalence table, or are
// textually identical once normalized.
func ReturnTypeEquivalent(a, b string) bool {
	na, nb := normalizeType(a), normalizeType(b)
	if na == nb {
		return true
	}
	if na == "" || nb == "" {
		return na == nb
	}
	ca, ok1 := classOf[na]
	cb, ok2 := classOf[nb]
	return ok1 && ok2 && ca == cb
}
