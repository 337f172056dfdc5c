package ast

import "github.com/akashmaji946/skyfront/token"

// Node is the base of every AST node: its kind tag, the token it was
// built from (or its leading token, for multi-token nodes), and a
// non-owning back-reference to its logical containing node.
//
// A parent back-link like this creates an ownership cycle that a strict
// single-ownership language must break with an arena or an explicit
// non-owning reference. Go's garbage collector handles reference cycles
// natively, so the straightforward approach — parent is just a plain
// Node interface value pointing at the owner — is both correct and
// idiomatic here; no arena/handle indirection is needed.
type Node interface {
	Kind() Kind
	Tok() token.Token
	Parent() Node
	SetParent(Node)
	Accept(Visitor)
}

// Base is embedded by every concrete node type to provide the common
// Node fields and methods shared across the whole node set.
type Base struct {
	kind   Kind
	token  token.Token
	parent Node
}

func NewBase(kind Kind, tok token.Token) Base {
	return Base{kind: kind, token: tok}
}

func (b *Base) Kind() Kind       { return b.kind }
func (b *Base) Tok() token.Token { return b.token }
func (b *Base) Parent() Node     { return b.parent }
func (b *Base) SetParent(p Node) { b.parent = p }

// Declaration, Statement, Type, and Expression narrow the generic Node
// sum type into dedicated grammatical categories, each via its own
// unexported marker method.
type Declaration interface {
	Node
	declNode()
}

type Statement interface {
	Node
	stmtNode()
}

type Type interface {
	Node
	typeNode()
}

type Expression interface {
	Node
	exprNode()
	// ComputedType holds the expression's type: literal nodes fill it
	// with their inherent type at parse time, every other node leaves
	// it empty for semantic passes (out of scope here) to populate.
	ComputedType() Type
	SetComputedType(Type)
}

// ExprBase adds the computed-type slot on top of Base for every
// expression node.
type ExprBase struct {
	Base
	computedType Type
}

func NewExprBase(kind Kind, tok token.Token) ExprBase {
	return ExprBase{Base: NewBase(kind, tok)}
}

func (e *ExprBase) ComputedType() Type     { return e.computedType }
func (e *ExprBase) SetComputedType(t Type) { e.computedType = t }

// SetParentOf sets child's parent to owner for every non-nil node in
// children, for use at the end of a parser production once every child
// has been constructed.
func SetParentOf(owner Node, children ...Node) {
	for _, c := range children {
		if c != nil {
			c.SetParent(owner)
		}
	}
}
