package parser

import "github.com/standardbeagle/smart-diff/internal/types"

// pythonMapping is the frozen Python grammar-node-type -> NAST kind table.
var pythonMapping = kindTable{
	"module":               types.KindProgram,
	"class_definition":     types.KindClass,
	"function_definition":  types.KindFunction,
	"parameters":           types.KindBlock,
	"identifier":           types.KindIdentifier,
	"block":                types.KindBlock,
	"if_statement":         types.KindIf,
	"while_statement":      types.KindWhile,
	"for_statement":        types.KindFor,
	"return_statement":     types.KindReturn,
	"expression_statement": types.KindExpressionStatement,
	"binary_operator":      types.KindBinaryExpr,
	"unary_operator":       types.KindUnaryExpr,
	"call":                 types.KindCall,
	"assignment":           types.KindAssignment,
	"attribute":            types.KindIdentifier,
	"integer":              types.KindLiteral,
	"float":                types.KindLiteral,
	"string":               types.KindLiteral,
	"true":                 types.KindLiteral,
	"false":                types.KindLiteral,
	"none":                 types.KindLiteral,
	"import_statement":     types.KindImport,
	"import_from_statement": types.KindImport,
	"ERROR":                types.KindError,
}
