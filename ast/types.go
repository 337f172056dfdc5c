package ast

// TypeDecl is the resolved-declaration slot a BaseType's name eventually
// points at, and Size the computed width a later pass fills in. Both are
// semantic-pass outputs; the parser never allocates a TypeDecl, so
// BaseType.Ref and VarAccess.Ref are always nil out of the parser. The
// slots are carried from the start so a downstream pass has somewhere to
// put its answer.
type TypeDecl struct {
	Size int64
}

// BaseType is a named type, optionally with template arguments:
// `dotted_name (template_args)?`.
type BaseType struct {
	Base
	Name      string
	Templates []Type

	Ref *TypeDecl // unresolved until a semantic pass runs
}

func (n *BaseType) Accept(v Visitor) { v.VisitBaseType(n) }
func (n *BaseType) typeNode()        {}

// PointerType is `T*`.
type PointerType struct {
	Base
	Inner Type
}

func (n *PointerType) Accept(v Visitor) { v.VisitPointerType(n) }
func (n *PointerType) typeNode()        {}

// ArrayType is `T[]`.
type ArrayType struct {
	Base
	Inner Type
}

func (n *ArrayType) Accept(v Visitor) { v.VisitArrayType(n) }
func (n *ArrayType) typeNode()        {}

// FunctionType is `Func (args) -> ret`, a bare function pointer shape.
type FunctionType struct {
	Base
	Args   []Type
	Return Type // nil ⇒ void
}

func (n *FunctionType) Accept(v Visitor) { v.VisitFunctionType(n) }
func (n *FunctionType) typeNode()        {}

// ClosureType is `Closure (args) -> ret`, a function value paired with
// an environment, distinct from FunctionType.
type ClosureType struct {
	Base
	Args   []Type
	Return Type
}

func (n *ClosureType) Accept(v Visitor) { v.VisitClosureType(n) }
func (n *ClosureType) typeNode()        {}

// TupleType is an anonymous product type; also used, unmodified, as a
// variant member's payload signature.
type TupleType struct {
	Base
	Elements []Type
}

func (n *TupleType) Accept(v Visitor) { v.VisitTupleType(n) }
func (n *TupleType) typeNode()        {}
