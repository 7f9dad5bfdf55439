package parser

import "github.com/standardbeagle/smart-diff/internal/types"

// jsMapping is the frozen JavaScript grammar-node-type -> NAST kind table.
var jsMapping = kindTable{
	"program":                    types.KindProgram,
	"class_declaration":          types.KindClass,
	"class":                      types.KindClass,
	"function_declaration":       types.KindFunction,
	"function":                   types.KindFunction,
	"function_expression":        types.KindFunction,
	"generator_function_declaration": types.KindFunction,
	"arrow_function":             types.KindFunction,
	"method_definition":          types.KindMethod,
	"formal_parameters":          types.KindBlock,
	"required_parameter":         types.KindParameter,
	"identifier":                 types.KindIdentifier,
	"property_identifier":        types.KindIdentifier,
	"shorthand_property_identifier_pattern": types.KindIdentifier,
	"statement_block":            types.KindBlock,
	"if_statement":               types.KindIf,
	"while_statement":            types.KindWhile,
	"for_statement":              types.KindFor,
	"for_in_statement":           types.KindFor,
	"return_statement":           types.KindReturn,
	"expression_statement":       types.KindExpressionStatement,
	"binary_expression":          types.KindBinaryExpr,
	"unary_expression":           types.KindUnaryExpr,
	"call_expression":            types.KindCall,
	"new_expression":             types.KindCall,
	"assignment_expression":      types.KindAssignment,
	"number":                     types.KindLiteral,
	"string":                     types.KindLiteral,
	"template_string":            types.KindLiteral,
	"true":                       types.KindLiteral,
	"false":                      types.KindLiteral,
	"null":                       types.KindLiteral,
	"undefined":                  types.KindLiteral,
	"variable_declaration":       types.KindVariableDecl,
	"lexical_declaration":        types.KindVariableDecl,
	"field_definition":           types.KindFieldDecl,
	"import_statement":           types.KindImport,
	"ERROR":                      types.KindError,
}
