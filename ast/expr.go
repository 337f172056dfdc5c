package ast

import "github.com/akashmaji946/skyfront/token"

// VarAccess is `dotted_name (<type_list>)?`. Ref is the lexical
// resolution slot: the parser always leaves it unresolved since name
// resolution is a downstream pass.
type VarAccess struct {
	ExprBase
	Name      string
	Templates []Type

	Ref *TypeDecl // always nil out of the parser
}

func (n *VarAccess) Accept(v Visitor) { v.VisitVarAccess(n) }
func (n *VarAccess) exprNode()        {}

// FieldAccess is `expr . IDENT`.
type FieldAccess struct {
	ExprBase
	Target Expression
	Field  string
}

func (n *FieldAccess) Accept(v Visitor) { v.VisitFieldAccess(n) }
func (n *FieldAccess) exprNode()        {}

// ArrayIndex is `expr [ expr ]`.
type ArrayIndex struct {
	ExprBase
	Target Expression
	Index  Expression
}

func (n *ArrayIndex) Accept(v Visitor) { v.VisitArrayIndex(n) }
func (n *ArrayIndex) exprNode()        {}

// CallArg is one call argument: `IDENT : expr` (named) or bare `expr`.
type CallArg struct {
	Name  string // "" if positional
	Value Expression
}

// Call is `expr ( arg_list )`.
type Call struct {
	ExprBase
	Callee Expression
	Args   []CallArg
}

func (n *Call) Accept(v Visitor) { v.VisitCall(n) }
func (n *Call) exprNode()        {}

// Sizeof is `sizeof ( expr | type )`. Exactly one of Expr/TypeArg is set.
type Sizeof struct {
	ExprBase
	Expr    Expression
	TypeArg Type
}

func (n *Sizeof) Accept(v Visitor) { v.VisitSizeof(n) }
func (n *Sizeof) exprNode()        {}

// UnaryOp is a prefix operator: `+ - ! ~ * &`.
type UnaryOp struct {
	ExprBase
	Op   token.Kind
	Expr Expression
}

func (n *UnaryOp) Accept(v Visitor) { v.VisitUnaryOp(n) }
func (n *UnaryOp) exprNode()        {}

// Cast is `expr as type`.
type Cast struct {
	ExprBase
	Expr Expression
	To   Type
}

func (n *Cast) Accept(v Visitor) { v.VisitCast(n) }
func (n *Cast) exprNode()        {}

// IsExpr is `expr is TAG(expr_list)?` (outside of a match case).
type IsExpr struct {
	ExprBase
	Expr  Expression
	Tag   string
	Binds []Expression
}

func (n *IsExpr) Accept(v Visitor) { v.VisitIsExpr(n) }
func (n *IsExpr) exprNode()        {}

// BinaryOp is a left-associative infix operator at any of the cascade's
// binary precedence levels.
type BinaryOp struct {
	ExprBase
	Op    token.Kind
	Left  Expression
	Right Expression
}

func (n *BinaryOp) Accept(v Visitor) { v.VisitBinaryOp(n) }
func (n *BinaryOp) exprNode()        {}

// IfExpr is the expression-position conditional: `if (cond) then else else_`.
type IfExpr struct {
	ExprBase
	Condition Expression
	Then      Expression
	Else      Expression
}

func (n *IfExpr) Accept(v Visitor) { v.VisitIfExpr(n) }
func (n *IfExpr) exprNode()        {}

// Assignment is `target AssOp value`.
type Assignment struct {
	ExprBase
	Op     token.Kind
	Target Expression
	Value  Expression
}

func (n *Assignment) Accept(v Visitor) { v.VisitAssignment(n) }
func (n *Assignment) exprNode()        {}

// IntLit is an integer literal.
type IntLit struct {
	ExprBase
	Value    uint64
	Negative bool
	TypeName string // e.g. "int64", "u32"
}

func (n *IntLit) Accept(v Visitor) { v.VisitIntLit(n) }
func (n *IntLit) exprNode()        {}

// FloatLit is a float literal.
type FloatLit struct {
	ExprBase
	Value    float64
	TypeName string // e.g. "float64"
}

func (n *FloatLit) Accept(v Visitor) { v.VisitFloatLit(n) }
func (n *FloatLit) exprNode()        {}

// CharLit is a char literal. Malformed (empty/multi-char) literals still
// produce a node carrying the first decoded rune.
type CharLit struct {
	ExprBase
	Value rune
}

func (n *CharLit) Accept(v Visitor) { v.VisitCharLit(n) }
func (n *CharLit) exprNode()        {}

// StringLit is a string literal, already unescaped.
type StringLit struct {
	ExprBase
	Value string
}

func (n *StringLit) Accept(v Visitor) { v.VisitStringLit(n) }
func (n *StringLit) exprNode()        {}

// BoolLit is `true` or `false`.
type BoolLit struct {
	ExprBase
	Value bool
}

func (n *BoolLit) Accept(v Visitor) { v.VisitBoolLit(n) }
func (n *BoolLit) exprNode()        {}

// NullLit is the `null` literal.
type NullLit struct {
	ExprBase
}

func (n *NullLit) Accept(v Visitor) { v.VisitNullLit(n) }
func (n *NullLit) exprNode()        {}
