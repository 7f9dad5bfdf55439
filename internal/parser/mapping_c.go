package parser

import "github.com/standardbeagle/smart-diff/internal/types"

// cMapping is the frozen C grammar-node-type -> NAST kind table.
var cMapping = kindTable{
	"translation_unit":          types.KindProgram,
	"function_definition":       types.KindFunction,
	"struct_specifier":          types.KindClass,
	"parameter_declaration":     types.KindParameter,
	"compound_statement":        types.KindBlock,
	"if_statement":              types.KindIf,
	"while_statement":           types.KindWhile,
	"for_statement":             types.KindFor,
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
	"null":                      types.KindLiteral,
	"declaration":               types.KindVariableDecl,
	"field_declaration":         types.KindFieldDecl,
	"preproc_include":           types.KindImport,
	"ERROR":                     types.KindError,
}
