package ast

// TemplateParam is a named placeholder introduced by `<...>` in a
// struct/alias/variant/function declaration.
type TemplateParam struct {
	Base
	Name string
}

func (n *TemplateParam) Accept(v Visitor) { v.VisitTemplateParam(n) }
func (n *TemplateParam) declNode()        {}

// Namespace groups child declarations under a dotted name.
type Namespace struct {
	Base
	Name  string
	Decls []Declaration
}

func (n *Namespace) Accept(v Visitor) { v.VisitNamespace(n) }
func (n *Namespace) declNode()        {}

// Variable covers both struct fields and free variable declarations
// (typed and type-inferred forms).
type Variable struct {
	Base
	Name        string
	Type        Type       // nil when type-inferred (":=")
	Initializer Expression // nil when absent
	Extern      bool
	Static      bool
	Inferred    bool // true for the ":=" form
}

func (n *Variable) Accept(v Visitor) { v.VisitVariable(n) }
func (n *Variable) declNode()        {}

// Struct declares a product type: name-and-type fields, nested type
// declarations, and template parameters.
type Struct struct {
	Base
	Name      string
	Templates []*TemplateParam
	Fields    []*Variable
	Nested    []Declaration
}

func (n *Struct) Accept(v Visitor) { v.VisitStruct(n) }
func (n *Struct) declNode()        {}

// Alias renames a type, optionally generic.
type Alias struct {
	Base
	Name      string
	Templates []*TemplateParam
	From      Type
}

func (n *Alias) Accept(v Visitor) { v.VisitAlias(n) }
func (n *Alias) declNode()        {}

// VariantMember is one case of a Variant: a name, an optional tuple
// payload, and its auto-assigned or explicit integral tag.
type VariantMember struct {
	Base
	Name    string
	Payload *TupleType // nil if the member carries no payload
	Tag     int64
}

func (n *VariantMember) Accept(v Visitor) { v.VisitVariantMember(n) }

// Variant declares a tagged-union (ADT) type.
type Variant struct {
	Base
	Name      string
	Templates []*TemplateParam
	From      Type // nil ⇒ no declared underlying base type
	Members   []*VariantMember
	Nested    []Declaration
}

func (n *Variant) Accept(v Visitor) { v.VisitVariant(n) }
func (n *Variant) declNode()        {}

// Function covers both the extern and non-extern declaration forms.
type Function struct {
	Base
	Name      string
	Extern    bool
	Inline    bool
	Templates []*TemplateParam
	Args      []*Variable
	Return    Type  // nil ⇒ void
	Body      *Scope // nil for extern functions
}

func (n *Function) Accept(v Visitor) { v.VisitFunction(n) }
func (n *Function) declNode()        {}
