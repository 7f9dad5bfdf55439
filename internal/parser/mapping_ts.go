package parser

import "github.com/standardbeagle/smart-diff/internal/types"

// tsMapping is the frozen TypeScript grammar-node-type -> NAST kind table.
// It shares the bulk of jsMapping's surface and adds interface/type
// declarations the TypeScript grammar introduces on top of JavaScript.
var tsMapping = kindTable{
	"program":                    types.KindProgram,
	"class_declaration":          types.KindClass,
	"class":                      types.KindClass,
	"interface_declaration":      types.KindInterface,
	"function_declaration":       types.KindFunction,
	"function":                   types.KindFunction,
	"function_expression":        types.KindFunction,
	"generator_function_declaration": types.KindFunction,
	"arrow_function":             types.KindFunction,
	"method_definition":          types.KindMethod,
	"method_signature":           types.KindMethod,
	"formal_parameters":          types.KindBlock,
	"required_parameter":         types.KindParameter,
	"optional_parameter":         types.KindParameter,
	"identifier":                 types.KindIdentifier,
	"property_identifier":        types.KindIdentifier,
	"type_identifier":            types.KindIdentifier,
	"statement_block":            types.KindBlock,
	"if_statement":               types.KindIf,
	"while_statement":            types.KindWhile,
	"for_statement":               types.KindFor,
	"for_in_statement":            types.KindFor,
	"return_statement":            types.KindReturn,
	"expression_statement":        types.KindExpressionStatement,
	"binary_expression":           types.KindBinaryExpr,
	"unary_expression":            types.KindUnaryExpr,
	"call_expression":             types.KindCall,
	"new_expression":              types.KindCall,
	"assignment_expression":       types.KindAssignment,
	"number":                      types.KindLiteral,
	"string":                      types.KindLiteral,
	"template_string":             types.KindLiteral,
	"true":                        types.KindLiteral,
	"false":                       types.KindLiteral,
	"null":                        types.KindLiteral,
	"undefined":                   types.KindLiteral,
	"variable_declaration":        types.KindVariableDecl,
	"lexical_declaration":         types.KindVariableDecl,
	"public_field_definition":     types.KindFieldDecl,
	"import_statement":            types.KindImport,
	"ERROR":                       types.KindError,
}
