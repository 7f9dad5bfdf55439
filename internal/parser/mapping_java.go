package parser

import "github.com/standardbeagle/smart-diff/internal/types"

// javaMapping is the frozen Java grammar-node-type -> NAST kind table.
var javaMapping = kindTable{
	"program":               types.KindProgram,
	"class_declaration":     types.KindClass,
	"interface_declaration": types.KindInterface,
	"enum_declaration":      types.KindClass,
	"method_declaration":    types.KindMethod,
	"constructor_declaration": types.KindConstructor,
	"formal_parameter":      types.KindParameter,
	"block":                 types.KindBlock,
	"if_statement":          types.KindIf,
	"while_statement":       types.KindWhile,
	"for_statement":         types.KindFor,
	"enhanced_for_statement": types.KindFor,
	"return_statement":      types.KindReturn,
	"expression_statement":  types.KindExpressionStatement,
	"binary_expression":     types.KindBinaryExpr,
	"unary_expression":      types.KindUnaryExpr,
	"method_invocation":     types.KindCall,
	"object_creation_expression": types.KindCall,
	"assignment_expression": types.KindAssignment,
	"identifier":            types.KindIdentifier,
	"field_access":          types.KindIdentifier,
	"decimal_integer_literal": types.KindLiteral,
	"decimal_floating_point_literal": types.KindLiteral,
	"string_literal":        types.KindLiteral,
	"true":                  types.KindLiteral,
	"false":                 types.KindLiteral,
	"null_literal":          types.KindLiteral,
	"local_variable_declaration": types.KindVariableDecl,
	"field_declaration":     types.KindFieldDecl,
	"import_declaration":    types.KindImport,
	"ERROR":                 types.KindError,
}
