/*
File    : skyfront/ast/kind.go

Package ast defines the typed, heterogeneous tree the parser builds: one
struct per node variant, tagged with a Kind, grouped into top-level,
declarations, types, statements, and expressions.
*/
package ast

// Kind tags every concrete node type, grouped into the same
// categories as the node structs themselves.
type Kind int

const (
	KindUnit Kind = iota
	KindUse
	KindImport

	KindNamespace
	KindTemplateParam
	KindFunction
	KindVariable
	KindStruct
	KindAlias
	KindVariant
	KindVariantMember

	KindBaseType
	KindPointerType
	KindArrayType
	KindFunctionType
	KindClosureType
	KindTupleType

	KindScope
	KindIf
	KindWhile
	KindFor
	KindReturn
	KindUsing
	KindDefer
	KindMatch
	KindMatchCaseSimple
	KindMatchCaseIs
	KindBreak
	KindContinue
	KindExprStatement
	KindDeclStatement

	KindVarAccess
	KindFieldAccess
	KindArrayIndex
	KindCall
	KindSizeof
	KindUnaryOp
	KindCast
	KindIsExpr
	KindBinaryOp
	KindIfExpr
	KindAssignment
	KindIntLit
	KindFloatLit
	KindCharLit
	KindStringLit
	KindBoolLit
	KindNullLit
)

var kindNames = map[Kind]string{
	KindUnit: "Unit", KindUse: "Use", KindImport: "Import",

	KindNamespace: "Namespace", KindTemplateParam: "TemplateParam",
	KindFunction: "Function", KindVariable: "Variable", KindStruct: "Struct",
	KindAlias: "Alias", KindVariant: "Variant", KindVariantMember: "VariantMember",

	KindBaseType: "BaseType", KindPointerType: "PointerType", KindArrayType: "ArrayType",
	KindFunctionType: "FunctionType", KindClosureType: "ClosureType", KindTupleType: "TupleType",

	KindScope: "Scope", KindIf: "If", KindWhile: "While", KindFor: "For",
	KindReturn: "Return", KindUsing: "Using", KindDefer: "Defer", KindMatch: "Match",
	KindMatchCaseSimple: "MatchCaseSimple", KindMatchCaseIs: "MatchCaseIs",
	KindBreak: "Break", KindContinue: "Continue",
	KindExprStatement: "ExprStatement", KindDeclStatement: "DeclStatement",

	KindVarAccess: "VarAccess", KindFieldAccess: "FieldAccess", KindArrayIndex: "ArrayIndex",
	KindCall: "Call", KindSizeof: "Sizeof", KindUnaryOp: "UnaryOp", KindCast: "Cast",
	KindIsExpr: "IsExpr", KindBinaryOp: "BinaryOp", KindIfExpr: "IfExpr", KindAssignment: "Assignment",
	KindIntLit: "Int", KindFloatLit: "Float", KindCharLit: "Char", KindStringLit: "String",
	KindBoolLit: "Bool", KindNullLit: "Null",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
