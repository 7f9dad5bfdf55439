package parser

import "github.com/standardbeagle/smart-diff/internal/types"

// kindTable is a frozen grammar-node-type -> NAST NodeKind mapping for one
// language (§4.1: "The mapping table from each language's grammar-node-type
// to NAST kind is frozen and tested."). A node type absent from the table is
// dropped (trivia, punctuation, comments) per §3's invariant.
type kindTable map[string]types.NodeKind

// mappingFor returns the frozen table for a language.
func mappingFor(lang types.Language) kindTable {
	switch lang {
	case types.LanguageC:
		return cMapping
	case types.LanguageCpp:
		return cppMapping
	case types.LanguageJava:
		return javaMapping
	case types.LanguageJavaScript:
		return jsMapping
	case types.LanguageTypeScript:
		return tsMapping
	case types.LanguagePython:
		return pythonMapping
	case types.LanguageRust:
		return rustMapping
	default:
		return nil
	}
}
