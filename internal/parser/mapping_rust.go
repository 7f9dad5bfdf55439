package parser

import "github.com/standardbeagle/smart-diff/internal/types"

// rustMapping is the frozen Rust grammar-node-type -> NAST kind table.
var rustMapping = kindTable{
	"source_file":          types.KindProgram,
	"struct_item":          types.KindClass,
	"impl_item":            types.KindClass,
	"trait_item":           types.KindInterface,
	"mod_item":             types.KindModule,
	"function_item":        types.KindFunction,
	"parameter":            types.KindParameter,
	"self_parameter":       types.KindParameter,
	"block":                types.KindBlock,
	"if_expression":        types.KindIf,
	"while_expression":     types.KindWhile,
	"for_expression":       types.KindFor,
	"loop_expression":      types.KindWhile,
	"return_expression":    types.KindReturn,
	"expression_statement": types.KindExpressionStatement,
	"binary_expression":    types.KindBinaryExpr,
	"unary_expression":     types.KindUnaryExpr,
	"call_expression":      types.KindCall,
	"macro_invocation":     types.KindCall,
	"assignment_expression": types.KindAssignment,
	"identifier":           types.KindIdentifier,
	"field_identifier":     types.KindIdentifier,
	"integer_literal":      types.KindLiteral,
	"float_literal":        types.KindLiteral,
	"string_literal":       types.KindLiteral,
	"boolean_literal":      types.KindLiteral,
	"let_declaration":      types.KindVariableDecl,
	"field_declaration":    types.KindFieldDecl,
	"use_declaration":      types.KindImport,
	"ERROR":                types.KindError,
}
