package parser

import "github.com/standardbeagle/smart-diff/internal/types"

// cppMapping is the frozen C++ grammar-node-type -> NAST kind table. It
// extends cMapping with class/interface and templated-call forms that the
// C++ grammar adds on top of the C grammar.
var cppMapping = kindTable{
	"translation_unit":          types.KindProgram,
	"function_definition":       types.KindFunction,
	"class_specifier":           types.KindClass,
	"struct_specifier":          types.KindClass,
	"field_declaration_list":    types.KindBlock,
	"parameter_declaration":     types.KindParameter,
	"compound_statement":        types.KindBlock,
	"if_statement":              types.KindIf,
	"while_statement":           types.KindWhile,
	"for_statement":             types.KindFor,
	"for_range_loop":            types.KindFor,
	"return_statement":          types.KindReturn,
	"expression_statement":      types.KindExpressionStatement,
	"binary_expression":         types.KindBinaryExpr,
	"unary_expression":          types.KindUnaryExpr,
	"call_expression":           types.KindCall,
	"assignment_expression":     types.KindAssignment,
	"identifier":                types.KindIdentifier,
	"field_identifier":          types.KindIdentifier,
	"number_literal":            types.KindLiteral,
	"string_literal":            types.KindLiteral,
	"char_literal":              types.KindLiteral,
	"true":                      types.KindLiteral,
	"false":                     types.KindLiteral,
	"nullptr":                   types.KindLiteral,
	"declaration":               types.KindVariableDecl,
	"field_declaration":         types.KindFieldDecl,
	"preproc_include":           types.KindImport,
	"using_declaration":         types.KindImport,
	"ERROR":                     types.KindError,
}
