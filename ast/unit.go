package ast

import "github.com/akashmaji946/skyfront/token"

// Unit is one parsed source file: the parser's top-level output. It owns
// the source buffer every token in the tree references.
type Unit struct {
	Base

	UnitPath string // display path, e.g. the file path passed on the CLI
	Source   string // the owned source buffer

	Uses     []*Use
	Imports  []*Import
	Decls    []Declaration
}

func NewUnit(unitPath, source string) *Unit {
	return &Unit{Base: NewBase(KindUnit, token.Token{}), UnitPath: unitPath, Source: source}
}

// Path implements diag.Source.
func (u *Unit) Path() string { return u.UnitPath }

// Buffer implements diag.Source.
func (u *Unit) Buffer() string { return u.Source }

func (u *Unit) Accept(v Visitor) { v.VisitUnit(u) }

// Use is a `use <lib>/<path>` directive.
type Use struct {
	Base
	Library string
	Path    string // "" if no unit path was given
}

func (n *Use) Accept(v Visitor) { v.VisitUse(n) }

// Import is an `import <path>` directive.
type Import struct {
	Base
	Path string
}

func (n *Import) Accept(v Visitor) { v.VisitImport(n) }
