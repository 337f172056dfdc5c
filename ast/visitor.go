package ast

// Visitor is the double-dispatch interface every tree-walking consumer
// of this package implements: one method per concrete node type,
// dispatched through each node's own Accept rather than a base-class
// switch.
type Visitor interface {
	VisitUnit(*Unit)
	VisitUse(*Use)
	VisitImport(*Import)

	VisitNamespace(*Namespace)
	VisitTemplateParam(*TemplateParam)
	VisitFunction(*Function)
	VisitVariable(*Variable)
	VisitStruct(*Struct)
	VisitAlias(*Alias)
	VisitVariant(*Variant)
	VisitVariantMember(*VariantMember)

	VisitBaseType(*BaseType)
	VisitPointerType(*PointerType)
	VisitArrayType(*ArrayType)
	VisitFunctionType(*FunctionType)
	VisitClosureType(*ClosureType)
	VisitTupleType(*TupleType)

	VisitScope(*Scope)
	VisitIf(*If)
	VisitWhile(*While)
	VisitFor(*For)
	VisitReturn(*Return)
	VisitUsing(*Using)
	VisitDefer(*Defer)
	VisitMatch(*Match)
	VisitMatchCaseSimple(*MatchCaseSimple)
	VisitMatchCaseIs(*MatchCaseIs)
	VisitBreak(*Break)
	VisitContinue(*Continue)
	VisitExprStatement(*ExprStatement)
	VisitDeclStatement(*DeclStatement)

	VisitVarAccess(*VarAccess)
	VisitFieldAccess(*FieldAccess)
	VisitArrayIndex(*ArrayIndex)
	VisitCall(*Call)
	VisitSizeof(*Sizeof)
	VisitUnaryOp(*UnaryOp)
	VisitCast(*Cast)
	VisitIsExpr(*IsExpr)
	VisitBinaryOp(*BinaryOp)
	VisitIfExpr(*IfExpr)
	VisitAssignment(*Assignment)
	VisitIntLit(*IntLit)
	VisitFloatLit(*FloatLit)
	VisitCharLit(*CharLit)
	VisitStringLit(*StringLit)
	VisitBoolLit(*BoolLit)
	VisitNullLit(*NullLit)
}
