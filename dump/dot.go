/*
Package dump renders a parsed ast.Unit for human inspection: a Graphviz
DOT graph (Dumper — one Visit per node kind, double-dispatched through
each node's own Accept) and a raw-struct dump via go-spew for
compiler-developer debugging.
*/
package dump

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/skyfront/ast"
)

// Dumper walks a tree via ast.Visitor and accumulates a DOT graph. Every
// Visit method assigns itself a node id, links it to its already-visited
// children, and leaves its id in lastID for its caller to pick up — the
// Visitor interface has no return value, so lastID is the side channel a
// recursive call reads immediately after invoking Accept.
type Dumper struct {
	buf    strings.Builder
	nextID int
	lastID int
}

// NewDumper builds an empty Dumper.
func NewDumper() *Dumper {
	return &Dumper{nextID: 1}
}

// Dump renders u as a complete DOT graph source.
func Dump(u *ast.Unit) string {
	d := NewDumper()
	d.buf.WriteString("digraph AST {\n")
	d.buf.WriteString("  node [shape=box, fontname=\"monospace\"];\n")
	u.Accept(d)
	d.buf.WriteString("}\n")
	return d.buf.String()
}

func quote(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

// node emits a labeled vertex and returns its id.
func (d *Dumper) node(label string) int {
	id := d.nextID
	d.nextID++
	fmt.Fprintf(&d.buf, "  n%d [label=\"%s\"];\n", id, quote(label))
	return id
}

func (d *Dumper) edge(parent, child int, label string) {
	if child < 0 {
		return
	}
	fmt.Fprintf(&d.buf, "  n%d -> n%d [label=\"%s\"];\n", parent, child, label)
}

// visit dispatches n through Accept and returns the id it assigned
// itself, or -1 for a genuinely nil interface value. Concrete
// pointer-typed optional fields (*ast.Scope etc.) must be nil-checked by
// the caller before reaching here — a typed nil wrapped in the Node
// interface is not caught by this check.
func (d *Dumper) visit(n ast.Node) int {
	if n == nil {
		return -1
	}
	n.Accept(d)
	return d.lastID
}

func (d *Dumper) finish(id int) { d.lastID = id }

// VisitUnit implements ast.Visitor.
func (d *Dumper) VisitUnit(n *ast.Unit) {
	id := d.node(fmt.Sprintf("Unit\n%s", n.UnitPath))
	for _, u := range n.Uses {
		d.edge(id, d.visit(u), "use")
	}
	for _, imp := range n.Imports {
		d.edge(id, d.visit(imp), "import")
	}
	for _, decl := range n.Decls {
		d.edge(id, d.visit(decl), "decl")
	}
	d.finish(id)
}

func (d *Dumper) VisitUse(n *ast.Use) {
	d.finish(d.node(fmt.Sprintf("Use\n%s/%s", n.Library, n.Path)))
}

func (d *Dumper) VisitImport(n *ast.Import) {
	d.finish(d.node(fmt.Sprintf("Import\n%s", n.Path)))
}

func (d *Dumper) VisitNamespace(n *ast.Namespace) {
	id := d.node(fmt.Sprintf("Namespace\n%s", n.Name))
	for _, decl := range n.Decls {
		d.edge(id, d.visit(decl), "decl")
	}
	d.finish(id)
}

func (d *Dumper) VisitTemplateParam(n *ast.TemplateParam) {
	d.finish(d.node(fmt.Sprintf("TemplateParam\n%s", n.Name)))
}

func (d *Dumper) VisitFunction(n *ast.Function) {
	label := fmt.Sprintf("Function\n%s", n.Name)
	if n.Extern {
		label += " extern"
	}
	if n.Inline {
		label += " inline"
	}
	id := d.node(label)
	for _, t := range n.Templates {
		d.edge(id, d.visit(t), "template")
	}
	for _, a := range n.Args {
		d.edge(id, d.visit(a), "arg")
	}
	if n.Return != nil {
		d.edge(id, d.visit(n.Return), "return")
	}
	if n.Body != nil {
		d.edge(id, d.visit(n.Body), "body")
	}
	d.finish(id)
}

func (d *Dumper) VisitVariable(n *ast.Variable) {
	label := fmt.Sprintf("Variable\n%s", n.Name)
	if n.Extern {
		label += " extern"
	}
	if n.Static {
		label += " static"
	}
	if n.Inferred {
		label += " inferred"
	}
	id := d.node(label)
	if n.Type != nil {
		d.edge(id, d.visit(n.Type), "type")
	}
	if n.Initializer != nil {
		d.edge(id, d.visit(n.Initializer), "init")
	}
	d.finish(id)
}

func (d *Dumper) VisitStruct(n *ast.Struct) {
	id := d.node(fmt.Sprintf("Struct\n%s", n.Name))
	for _, t := range n.Templates {
		d.edge(id, d.visit(t), "template")
	}
	for _, f := range n.Fields {
		d.edge(id, d.visit(f), "field")
	}
	for _, nd := range n.Nested {
		d.edge(id, d.visit(nd), "nested")
	}
	d.finish(id)
}

func (d *Dumper) VisitAlias(n *ast.Alias) {
	id := d.node(fmt.Sprintf("Alias\n%s", n.Name))
	for _, t := range n.Templates {
		d.edge(id, d.visit(t), "template")
	}
	d.edge(id, d.visit(n.From), "from")
	d.finish(id)
}

func (d *Dumper) VisitVariant(n *ast.Variant) {
	id := d.node(fmt.Sprintf("Variant\n%s", n.Name))
	for _, t := range n.Templates {
		d.edge(id, d.visit(t), "template")
	}
	if n.From != nil {
		d.edge(id, d.visit(n.From), "from")
	}
	for _, m := range n.Members {
		d.edge(id, d.visit(m), "member")
	}
	for _, nd := range n.Nested {
		d.edge(id, d.visit(nd), "nested")
	}
	d.finish(id)
}

func (d *Dumper) VisitVariantMember(n *ast.VariantMember) {
	id := d.node(fmt.Sprintf("VariantMember\n%s = %d", n.Name, n.Tag))
	if n.Payload != nil {
		d.edge(id, d.visit(n.Payload), "payload")
	}
	d.finish(id)
}

func (d *Dumper) VisitBaseType(n *ast.BaseType) {
	id := d.node(fmt.Sprintf("BaseType\n%s", n.Name))
	for _, t := range n.Templates {
		d.edge(id, d.visit(t), "template")
	}
	d.finish(id)
}

func (d *Dumper) VisitPointerType(n *ast.PointerType) {
	id := d.node("PointerType")
	d.edge(id, d.visit(n.Inner), "inner")
	d.finish(id)
}

func (d *Dumper) VisitArrayType(n *ast.ArrayType) {
	id := d.node("ArrayType")
	d.edge(id, d.visit(n.Inner), "inner")
	d.finish(id)
}

func (d *Dumper) VisitFunctionType(n *ast.FunctionType) {
	id := d.node("FunctionType")
	for _, a := range n.Args {
		d.edge(id, d.visit(a), "arg")
	}
	if n.Return != nil {
		d.edge(id, d.visit(n.Return), "return")
	}
	d.finish(id)
}

func (d *Dumper) VisitClosureType(n *ast.ClosureType) {
	id := d.node("ClosureType")
	for _, a := range n.Args {
		d.edge(id, d.visit(a), "arg")
	}
	if n.Return != nil {
		d.edge(id, d.visit(n.Return), "return")
	}
	d.finish(id)
}

func (d *Dumper) VisitTupleType(n *ast.TupleType) {
	id := d.node("TupleType")
	for i, e := range n.Elements {
		d.edge(id, d.visit(e), fmt.Sprintf("elem%d", i))
	}
	d.finish(id)
}

func (d *Dumper) VisitScope(n *ast.Scope) {
	id := d.node("Scope")
	for _, s := range n.Statements {
		d.edge(id, d.visit(s), "stmt")
	}
	d.finish(id)
}

func (d *Dumper) VisitIf(n *ast.If) {
	id := d.node("If")
	d.edge(id, d.visit(n.Condition), "cond")
	d.edge(id, d.visit(n.Then), "then")
	if n.Else != nil {
		d.edge(id, d.visit(n.Else), "else")
	}
	d.finish(id)
}

func (d *Dumper) VisitWhile(n *ast.While) {
	label := "While"
	if n.Label != "" {
		label += "\n" + n.Label + ":"
	}
	id := d.node(label)
	d.edge(id, d.visit(n.Condition), "cond")
	d.edge(id, d.visit(n.Body), "body")
	d.finish(id)
}

func (d *Dumper) VisitFor(n *ast.For) {
	label := "For"
	if n.Label != "" {
		label += "\n" + n.Label + ":"
	}
	id := d.node(label)
	for _, s := range n.Init {
		d.edge(id, d.visit(s), "init")
	}
	if n.Condition != nil {
		d.edge(id, d.visit(n.Condition), "cond")
	}
	if n.Update != nil {
		d.edge(id, d.visit(n.Update), "update")
	}
	d.edge(id, d.visit(n.Body), "body")
	d.finish(id)
}

func (d *Dumper) VisitReturn(n *ast.Return) {
	id := d.node("Return")
	if n.Value != nil {
		d.edge(id, d.visit(n.Value), "value")
	}
	d.finish(id)
}

func (d *Dumper) VisitUsing(n *ast.Using) {
	id := d.node(fmt.Sprintf("Using\n%s", n.Name))
	if n.Scope != nil {
		d.edge(id, d.visit(n.Scope), "scope")
	}
	d.finish(id)
}

func (d *Dumper) VisitDefer(n *ast.Defer) {
	id := d.node("Defer")
	d.edge(id, d.visit(n.Body), "body")
	d.finish(id)
}

func (d *Dumper) VisitMatch(n *ast.Match) {
	id := d.node("Match")
	d.edge(id, d.visit(n.Scrutinee), "scrutinee")
	for i, c := range n.Cases {
		d.edge(id, d.visit(c), fmt.Sprintf("case%d", i))
	}
	if n.Else != nil {
		d.edge(id, d.visit(n.Else), "else")
	}
	d.finish(id)
}

func (d *Dumper) VisitMatchCaseSimple(n *ast.MatchCaseSimple) {
	id := d.node("MatchCaseSimple")
	d.edge(id, d.visit(n.Value), "value")
	d.edge(id, d.visit(n.Body), "body")
	d.finish(id)
}

func (d *Dumper) VisitMatchCaseIs(n *ast.MatchCaseIs) {
	id := d.node(fmt.Sprintf("MatchCaseIs\nis %s", n.Tag))
	for i, b := range n.Binds {
		d.edge(id, d.visit(b), fmt.Sprintf("bind%d", i))
	}
	d.edge(id, d.visit(n.Body), "body")
	d.finish(id)
}

func (d *Dumper) VisitBreak(n *ast.Break) {
	d.finish(d.node(fmt.Sprintf("Break\n%s", n.Label)))
}

func (d *Dumper) VisitContinue(n *ast.Continue) {
	d.finish(d.node(fmt.Sprintf("Continue\n%s", n.Label)))
}

func (d *Dumper) VisitExprStatement(n *ast.ExprStatement) {
	id := d.node("ExprStatement")
	d.edge(id, d.visit(n.Expr), "expr")
	d.finish(id)
}

func (d *Dumper) VisitDeclStatement(n *ast.DeclStatement) {
	id := d.node("DeclStatement")
	d.edge(id, d.visit(n.Decl), "decl")
	d.finish(id)
}

func (d *Dumper) VisitVarAccess(n *ast.VarAccess) {
	id := d.node(fmt.Sprintf("VarAccess\n%s", n.Name))
	for _, t := range n.Templates {
		d.edge(id, d.visit(t), "template")
	}
	d.finish(id)
}

func (d *Dumper) VisitFieldAccess(n *ast.FieldAccess) {
	id := d.node(fmt.Sprintf("FieldAccess\n.%s", n.Field))
	d.edge(id, d.visit(n.Target), "target")
	d.finish(id)
}

func (d *Dumper) VisitArrayIndex(n *ast.ArrayIndex) {
	id := d.node("ArrayIndex")
	d.edge(id, d.visit(n.Target), "target")
	d.edge(id, d.visit(n.Index), "index")
	d.finish(id)
}

func (d *Dumper) VisitCall(n *ast.Call) {
	id := d.node("Call")
	d.edge(id, d.visit(n.Callee), "callee")
	for i, a := range n.Args {
		label := fmt.Sprintf("arg%d", i)
		if a.Name != "" {
			label = a.Name
		}
		d.edge(id, d.visit(a.Value), label)
	}
	d.finish(id)
}

func (d *Dumper) VisitSizeof(n *ast.Sizeof) {
	id := d.node("Sizeof")
	if n.TypeArg != nil {
		d.edge(id, d.visit(n.TypeArg), "type")
	}
	if n.Expr != nil {
		d.edge(id, d.visit(n.Expr), "expr")
	}
	d.finish(id)
}

func (d *Dumper) VisitUnaryOp(n *ast.UnaryOp) {
	id := d.node(fmt.Sprintf("UnaryOp\n%s", n.Op))
	d.edge(id, d.visit(n.Expr), "expr")
	d.finish(id)
}

func (d *Dumper) VisitCast(n *ast.Cast) {
	id := d.node("Cast")
	d.edge(id, d.visit(n.Expr), "expr")
	d.edge(id, d.visit(n.To), "to")
	d.finish(id)
}

func (d *Dumper) VisitIsExpr(n *ast.IsExpr) {
	id := d.node(fmt.Sprintf("IsExpr\nis %s", n.Tag))
	d.edge(id, d.visit(n.Expr), "expr")
	for i, b := range n.Binds {
		d.edge(id, d.visit(b), fmt.Sprintf("bind%d", i))
	}
	d.finish(id)
}

func (d *Dumper) VisitBinaryOp(n *ast.BinaryOp) {
	id := d.node(fmt.Sprintf("BinaryOp\n%s", n.Op))
	d.edge(id, d.visit(n.Left), "left")
	d.edge(id, d.visit(n.Right), "right")
	d.finish(id)
}

func (d *Dumper) VisitIfExpr(n *ast.IfExpr) {
	id := d.node("IfExpr")
	d.edge(id, d.visit(n.Condition), "cond")
	d.edge(id, d.visit(n.Then), "then")
	d.edge(id, d.visit(n.Else), "else")
	d.finish(id)
}

func (d *Dumper) VisitAssignment(n *ast.Assignment) {
	id := d.node(fmt.Sprintf("Assignment\n%s", n.Op))
	d.edge(id, d.visit(n.Target), "target")
	d.edge(id, d.visit(n.Value), "value")
	d.finish(id)
}

func (d *Dumper) VisitIntLit(n *ast.IntLit) {
	d.finish(d.node(fmt.Sprintf("IntLit\n%d %s", n.Value, n.TypeName)))
}

func (d *Dumper) VisitFloatLit(n *ast.FloatLit) {
	d.finish(d.node(fmt.Sprintf("FloatLit\n%g %s", n.Value, n.TypeName)))
}

func (d *Dumper) VisitCharLit(n *ast.CharLit) {
	d.finish(d.node(fmt.Sprintf("CharLit\n%q", n.Value)))
}

func (d *Dumper) VisitStringLit(n *ast.StringLit) {
	d.finish(d.node(fmt.Sprintf("StringLit\n%q", n.Value)))
}

func (d *Dumper) VisitBoolLit(n *ast.BoolLit) {
	d.finish(d.node(fmt.Sprintf("BoolLit\n%t", n.Value)))
}

func (d *Dumper) VisitNullLit(n *ast.NullLit) {
	d.finish(d.node("NullLit"))
}
