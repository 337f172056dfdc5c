package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/skyfront/ast"
	"github.com/akashmaji946/skyfront/diag"
	"github.com/akashmaji946/skyfront/lexer"
	"github.com/akashmaji946/skyfront/token"
)

// parseOK parses src and requires no diagnostics were reported.
func parseOK(t *testing.T, src string) *ast.Unit {
	t.Helper()
	sink := diag.NewCollectingSink()
	sc := lexer.NewScanner("test.sky", src, sink)
	unit := ParseUnit("test.sky", src, sc, sink)
	require.False(t, sink.HasErrors(), "unexpected diagnostics for %q: %v", src, sink.Diagnostics)
	return unit
}

func TestParseUnit_HelloUseImport(t *testing.T) {
	unit := parseOK(t, "use core/io\nimport mymod\n")
	require.Len(t, unit.Uses, 1)
	assert.Equal(t, "core", unit.Uses[0].Library)
	assert.Equal(t, "/io", unit.Uses[0].Path)
	require.Len(t, unit.Imports, 1)
	assert.Equal(t, "mymod", unit.Imports[0].Path)
	assert.Empty(t, unit.Decls)
}

func TestParseUnit_Empty(t *testing.T) {
	unit := parseOK(t, "")
	assert.Empty(t, unit.Uses)
	assert.Empty(t, unit.Imports)
	assert.Empty(t, unit.Decls)
}

func TestParseStruct_WithTemplates(t *testing.T) {
	unit := parseOK(t, "Pair : struct <A, B> { first : A; second : B }")
	require.Len(t, unit.Decls, 1)
	s, ok := unit.Decls[0].(*ast.Struct)
	require.True(t, ok)
	assert.Equal(t, "Pair", s.Name)
	require.Len(t, s.Templates, 2)
	assert.Equal(t, "A", s.Templates[0].Name)
	assert.Equal(t, "B", s.Templates[1].Name)
	require.Len(t, s.Fields, 2)
	assert.Equal(t, "first", s.Fields[0].Name)
	assert.Equal(t, "second", s.Fields[1].Name)
}

func TestParseVariant_AutoTagging(t *testing.T) {
	unit := parseOK(t, "Color : variant from int32 { Red; Green = 5; Blue }")
	require.Len(t, unit.Decls, 1)
	v, ok := unit.Decls[0].(*ast.Variant)
	require.True(t, ok)
	require.Len(t, v.Members, 3)
	assert.Equal(t, "Red", v.Members[0].Name)
	assert.EqualValues(t, 0, v.Members[0].Tag)
	assert.Equal(t, "Green", v.Members[1].Name)
	assert.EqualValues(t, 5, v.Members[1].Tag)
	assert.Equal(t, "Blue", v.Members[2].Name)
	assert.EqualValues(t, 6, v.Members[2].Tag)
}

func TestParseFunction_WithBody(t *testing.T) {
	unit := parseOK(t, "f : func (x : int32, y : int32) -> int32 { return x + y }")
	require.Len(t, unit.Decls, 1)
	fn, ok := unit.Decls[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "f", fn.Name)
	require.Len(t, fn.Args, 2)
	assert.Equal(t, "x", fn.Args[0].Name)
	assert.Equal(t, "y", fn.Args[1].Name)
	require.NotNil(t, fn.Return)
	require.NotNil(t, fn.Body)
	require.Len(t, fn.Body.Statements, 1)
	ret, ok := fn.Body.Statements[0].(*ast.Return)
	require.True(t, ok)
	bin, ok := ret.Value.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, bin.Op)
}

func TestParseExpression_Precedence(t *testing.T) {
	// A bare assignment expression is not a declaration, so exercise it
	// directly through the expression entry point.
	sink := diag.NewCollectingSink()
	sc := lexer.NewScanner("test.sky", "a = b + c * d", sink)
	p := New("test.sky", "a = b + c * d", sc, sink)
	expr := p.parseExpression()
	require.False(t, sink.HasErrors())

	assign, ok := expr.(*ast.Assignment)
	require.True(t, ok)
	assert.Equal(t, token.ASSIGN, assign.Op)

	outer, ok := assign.Value.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, outer.Op)

	inner, ok := outer.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, token.ASTERISK, inner.Op)
}

func TestParseMatch_WithIsAndElse(t *testing.T) {
	src := `match (e) { case is Some(x) { return x } case 0 { return 0 } else { return -1 } }`
	sink := diag.NewCollectingSink()
	sc := lexer.NewScanner("test.sky", src, sink)
	p := New("test.sky", src, sc, sink)
	stmt := p.parseStatement()
	require.False(t, sink.HasErrors())

	m, ok := stmt.(*ast.Match)
	require.True(t, ok)
	require.Len(t, m.Cases, 2)

	isCase, ok := m.Cases[0].(*ast.MatchCaseIs)
	require.True(t, ok)
	assert.Equal(t, "Some", isCase.Tag)
	require.Len(t, isCase.Binds, 1)

	simpleCase, ok := m.Cases[1].(*ast.MatchCaseSimple)
	require.True(t, ok)
	lit, ok := simpleCase.Value.(*ast.IntLit)
	require.True(t, ok)
	assert.EqualValues(t, 0, lit.Value)

	require.NotNil(t, m.Else)
}

func TestParseFunction_ExternCannotDefineTemplates(t *testing.T) {
	sink := diag.NewCollectingSink()
	sc := lexer.NewScanner("test.sky", "f : extern func <T> () -> T", sink)
	p := New("test.sky", "f : extern func <T> () -> T", sc, sink)
	fn := p.tryFunction()
	assert.Nil(t, fn)
	require.True(t, sink.HasErrors())
	found := false
	for _, d := range sink.Diagnostics {
		if d.Message == "extern functions cannot define templates" {
			found = true
		}
	}
	assert.True(t, found, "expected the extern+templates diagnostic, got %v", sink.Diagnostics)
}

func TestParseCharLit_MultiCharacterStillProducesNode(t *testing.T) {
	sink := diag.NewCollectingSink()
	sc := lexer.NewScanner("test.sky", "'ab'", sink)
	p := New("test.sky", "'ab'", sc, sink)
	expr := p.parseExpression()
	require.True(t, sink.HasErrors())
	lit, ok := expr.(*ast.CharLit)
	require.True(t, ok)
	assert.Equal(t, 'a', lit.Value)
}

func TestParseLiterals_CarryInherentType(t *testing.T) {
	tests := []struct {
		src      string
		typeName string
	}{
		{"42", "int64"},
		{"42u32", "u32"},
		{"3.14", "float64"},
		{"3.14f32", "f32"},
		{"'a'", "char"},
		{`"hi"`, "string"},
		{"true", "bool"},
		{"null", "null"},
	}
	for _, tt := range tests {
		sink := diag.NewCollectingSink()
		sc := lexer.NewScanner("test.sky", tt.src, sink)
		p := New("test.sky", tt.src, sc, sink)
		expr := p.parseExpression()
		require.False(t, sink.HasErrors(), "input %q: %v", tt.src, sink.Diagnostics)
		require.NotNil(t, expr, "input %q", tt.src)
		ct := expr.ComputedType()
		require.NotNil(t, ct, "input %q", tt.src)
		bt, ok := ct.(*ast.BaseType)
		require.True(t, ok, "input %q", tt.src)
		assert.Equal(t, tt.typeName, bt.Name, "input %q", tt.src)
		assert.Equal(t, ast.Node(expr), bt.Parent(), "input %q", tt.src)
	}
}

func TestParseLiterals_NonLiteralSlotStaysEmpty(t *testing.T) {
	sink := diag.NewCollectingSink()
	src := "a + 1"
	sc := lexer.NewScanner("test.sky", src, sink)
	p := New("test.sky", src, sc, sink)
	expr := p.parseExpression()
	require.False(t, sink.HasErrors())
	bin, ok := expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Nil(t, bin.ComputedType())
	assert.Nil(t, bin.Left.ComputedType())
	require.NotNil(t, bin.Right.ComputedType())
}

func TestParseIntLit_SuffixOverflowReported(t *testing.T) {
	sink := diag.NewCollectingSink()
	src := "300u8"
	sc := lexer.NewScanner("test.sky", src, sink)
	p := New("test.sky", src, sc, sink)
	expr := p.parseExpression()
	require.True(t, sink.HasErrors())
	lit, ok := expr.(*ast.IntLit)
	require.True(t, ok)
	// The recovery node falls back to the default literal type.
	assert.Equal(t, "int64", lit.TypeName)
	require.NotNil(t, lit.ComputedType())
}

func TestParseIntLit_BareZeroIsDecimal(t *testing.T) {
	sink := diag.NewCollectingSink()
	sc := lexer.NewScanner("test.sky", "0", sink)
	p := New("test.sky", "0", sc, sink)
	expr := p.parseExpression()
	require.False(t, sink.HasErrors())
	lit, ok := expr.(*ast.IntLit)
	require.True(t, ok)
	assert.EqualValues(t, 0, lit.Value)
}

func TestParseScope_TrailingExprStatementNoSeparator(t *testing.T) {
	unit := parseOK(t, "f : func () { x }")
	fn := unit.Decls[0].(*ast.Function)
	require.Len(t, fn.Body.Statements, 1)
	_, ok := fn.Body.Statements[0].(*ast.ExprStatement)
	assert.True(t, ok)
}

// A `<` that fails to close as template args falls back to the
// relational operator.
func TestParseExpression_LessThanFallsBackToRelational(t *testing.T) {
	sink := diag.NewCollectingSink()
	sc := lexer.NewScanner("test.sky", "a < b", sink)
	p := New("test.sky", "a < b", sc, sink)
	expr := p.parseExpression()
	require.False(t, sink.HasErrors())
	bin, ok := expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, token.LESS, bin.Op)
}

func TestParseStruct_SpanCoversFields(t *testing.T) {
	unit := parseOK(t, "Pair : struct { first : int32 }")
	s := unit.Decls[0].(*ast.Struct)
	field := s.Fields[0]
	assert.LessOrEqual(t, s.Tok().Span.StartOffset, field.Tok().Span.StartOffset)
	assert.GreaterOrEqual(t, s.Tok().Span.StartOffset+s.Tok().Span.Length,
		field.Tok().Span.StartOffset+field.Tok().Span.Length)
}

func TestParseStruct_ParentLinkage(t *testing.T) {
	unit := parseOK(t, "Pair : struct { first : int32 }")
	s := unit.Decls[0].(*ast.Struct)
	field := s.Fields[0]
	assert.Equal(t, ast.Node(s), field.Parent())
}

func TestParseScope_OrderingPreserved(t *testing.T) {
	unit := parseOK(t, "f : func () { a; b; c }")
	fn := unit.Decls[0].(*ast.Function)
	require.Len(t, fn.Body.Statements, 3)
	names := []string{}
	for _, s := range fn.Body.Statements {
		es := s.(*ast.ExprStatement)
		va := es.Expr.(*ast.VarAccess)
		names = append(names, va.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestTryVariableDecl_RewindsOnNoMatch(t *testing.T) {
	sink := diag.NewCollectingSink()
	src := "42"
	sc := lexer.NewScanner("test.sky", src, sink)
	p := New("test.sky", src, sc, sink)
	before := p.save()
	v := p.tryVariableDecl()
	assert.Nil(t, v)
	assert.Equal(t, before.pos, p.pos)
}

func TestParseVariable_ExternCannotHaveInitializer(t *testing.T) {
	sink := diag.NewCollectingSink()
	src := "x : extern int32 = 1"
	sc := lexer.NewScanner("test.sky", src, sink)
	p := New("test.sky", src, sc, sink)
	v := p.tryVariableDecl()
	assert.Nil(t, v)
	require.True(t, sink.HasErrors())
}

func TestParseVariable_Modifiers(t *testing.T) {
	unit := parseOK(t, "x : extern static int32")
	require.Len(t, unit.Decls, 1)
	v, ok := unit.Decls[0].(*ast.Variable)
	require.True(t, ok)
	assert.True(t, v.Extern)
	assert.True(t, v.Static)
	require.NotNil(t, v.Type)
	assert.Nil(t, v.Initializer)
}

func TestParseVariable_InferredRejectsExtern(t *testing.T) {
	sink := diag.NewCollectingSink()
	src := "x := extern 1"
	sc := lexer.NewScanner("test.sky", src, sink)
	p := New("test.sky", src, sc, sink)
	v := p.tryVariableDecl()
	require.NotNil(t, v)
	assert.False(t, v.Extern)
	assert.True(t, v.Inferred)
	require.True(t, sink.HasErrors())
}

func TestParseVariable_InferredStatic(t *testing.T) {
	unit := parseOK(t, "x := static 1")
	v := unit.Decls[0].(*ast.Variable)
	assert.True(t, v.Static)
	assert.True(t, v.Inferred)
	assert.Nil(t, v.Type)
	require.NotNil(t, v.Initializer)
}

func TestParseVariant_NewlineSeparatedMembers(t *testing.T) {
	unit := parseOK(t, "Color : variant {\n\tRed\n\tGreen\n}")
	v := unit.Decls[0].(*ast.Variant)
	require.Len(t, v.Members, 2)
	assert.Nil(t, v.From)
}

func TestParseVariant_NestedTypeDecl(t *testing.T) {
	unit := parseOK(t, "Shape : variant { Inner : alias from int32; Circle; Square }")
	v := unit.Decls[0].(*ast.Variant)
	require.Len(t, v.Nested, 1)
	_, ok := v.Nested[0].(*ast.Alias)
	assert.True(t, ok)
	require.Len(t, v.Members, 2)
}

func TestParseFunction_ExternCannotHaveBody(t *testing.T) {
	sink := diag.NewCollectingSink()
	src := "f : extern func () { }"
	sc := lexer.NewScanner("test.sky", src, sink)
	p := New("test.sky", src, sc, sink)
	fn := p.tryFunction()
	assert.Nil(t, fn)
	require.True(t, sink.HasErrors())
}

func TestParseSizeof_ExpressionOperandReportsNothing(t *testing.T) {
	sink := diag.NewCollectingSink()
	src := "sizeof(x + 1)"
	sc := lexer.NewScanner("test.sky", src, sink)
	p := New("test.sky", src, sc, sink)
	expr := p.parseExpression()
	require.False(t, sink.HasErrors(), "diagnostics: %v", sink.Diagnostics)
	sz, ok := expr.(*ast.Sizeof)
	require.True(t, ok)
	assert.Nil(t, sz.TypeArg)
	require.NotNil(t, sz.Expr)
}

func TestParseSizeof_TypeOperand(t *testing.T) {
	sink := diag.NewCollectingSink()
	src := "sizeof(int32*)"
	sc := lexer.NewScanner("test.sky", src, sink)
	p := New("test.sky", src, sc, sink)
	expr := p.parseExpression()
	require.False(t, sink.HasErrors())
	sz, ok := expr.(*ast.Sizeof)
	require.True(t, ok)
	require.NotNil(t, sz.TypeArg)
	_, ok = sz.TypeArg.(*ast.PointerType)
	assert.True(t, ok)
}

func TestParseVarAccess_TemplateArgs(t *testing.T) {
	sink := diag.NewCollectingSink()
	src := "make<int32, f32>(3)"
	sc := lexer.NewScanner("test.sky", src, sink)
	p := New("test.sky", src, sc, sink)
	expr := p.parseExpression()
	require.False(t, sink.HasErrors())
	call, ok := expr.(*ast.Call)
	require.True(t, ok)
	va, ok := call.Callee.(*ast.VarAccess)
	require.True(t, ok)
	require.Len(t, va.Templates, 2)
}

func TestParseNamespace_DottedName(t *testing.T) {
	unit := parseOK(t, "namespace a.b { x : int32 }")
	require.Len(t, unit.Decls, 1)
	ns, ok := unit.Decls[0].(*ast.Namespace)
	require.True(t, ok)
	assert.Equal(t, "a.b", ns.Name)
	require.Len(t, ns.Decls, 1)
}

func TestParseAlias_WithTemplates(t *testing.T) {
	unit := parseOK(t, "Names : alias <T> from T[]")
	a, ok := unit.Decls[0].(*ast.Alias)
	require.True(t, ok)
	require.Len(t, a.Templates, 1)
	_, ok = a.From.(*ast.ArrayType)
	assert.True(t, ok)
}

func TestParseType_PostfixRightAssociative(t *testing.T) {
	// T*[] is array-of-pointer.
	unit := parseOK(t, "x : T*[]")
	v := unit.Decls[0].(*ast.Variable)
	arr, ok := v.Type.(*ast.ArrayType)
	require.True(t, ok)
	_, ok = arr.Inner.(*ast.PointerType)
	assert.True(t, ok)
}

func TestParseType_FuncAndClosure(t *testing.T) {
	unit := parseOK(t, "f : Func (int32) -> int32\ng : Closure () -> bool")
	require.Len(t, unit.Decls, 2)
	fv := unit.Decls[0].(*ast.Variable)
	ft, ok := fv.Type.(*ast.FunctionType)
	require.True(t, ok)
	require.Len(t, ft.Args, 1)
	require.NotNil(t, ft.Return)
	gv := unit.Decls[1].(*ast.Variable)
	_, ok = gv.Type.(*ast.ClosureType)
	assert.True(t, ok)
}

func TestParseStatements_LoopsAndJumps(t *testing.T) {
	src := `f : func () {
	outer: while (a) {
		for (i := 0; i < 10; i = i + 1) {
			if (done) { break outer }
			continue
		}
	}
	defer { close() }
	using a.b
}`
	unit := parseOK(t, src)
	fn := unit.Decls[0].(*ast.Function)
	require.Len(t, fn.Body.Statements, 3)

	wh, ok := fn.Body.Statements[0].(*ast.While)
	require.True(t, ok)
	assert.Equal(t, "outer", wh.Label)

	inner := wh.Body.(*ast.Scope)
	fo, ok := inner.Statements[0].(*ast.For)
	require.True(t, ok)
	require.Len(t, fo.Init, 1)
	require.NotNil(t, fo.Condition)
	require.NotNil(t, fo.Update)

	body := fo.Body.(*ast.Scope)
	ifs, ok := body.Statements[0].(*ast.If)
	require.True(t, ok)
	br := ifs.Then.(*ast.Scope).Statements[0].(*ast.Break)
	assert.Equal(t, "outer", br.Label)
	_, ok = body.Statements[1].(*ast.Continue)
	assert.True(t, ok)

	_, ok = fn.Body.Statements[1].(*ast.Defer)
	assert.True(t, ok)
	us, ok := fn.Body.Statements[2].(*ast.Using)
	require.True(t, ok)
	assert.Equal(t, "a.b", us.Name)
	assert.Nil(t, us.Scope)
}

func TestParseExpression_CastAndIs(t *testing.T) {
	sink := diag.NewCollectingSink()
	src := "x as int32 is Some(y)"
	sc := lexer.NewScanner("test.sky", src, sink)
	p := New("test.sky", src, sc, sink)
	expr := p.parseExpression()
	require.False(t, sink.HasErrors())
	is, ok := expr.(*ast.IsExpr)
	require.True(t, ok)
	assert.Equal(t, "Some", is.Tag)
	require.Len(t, is.Binds, 1)
	_, ok = is.Expr.(*ast.Cast)
	assert.True(t, ok)
}

func TestParseExpression_NamespacedIsTagRejected(t *testing.T) {
	sink := diag.NewCollectingSink()
	src := "x is Option.Some"
	sc := lexer.NewScanner("test.sky", src, sink)
	p := New("test.sky", src, sc, sink)
	expr := p.parseExpression()
	require.True(t, sink.HasErrors())
	_, ok := expr.(*ast.IsExpr)
	assert.True(t, ok)
}

func TestParseCall_NamedAndPositionalArgs(t *testing.T) {
	sink := diag.NewCollectingSink()
	src := "f(1, y: 2, 3)"
	sc := lexer.NewScanner("test.sky", src, sink)
	p := New("test.sky", src, sc, sink)
	expr := p.parseExpression()
	require.False(t, sink.HasErrors())
	call, ok := expr.(*ast.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 3)
	assert.Equal(t, "", call.Args[0].Name)
	assert.Equal(t, "y", call.Args[1].Name)
	assert.Equal(t, "", call.Args[2].Name)
}

func TestParseIfExpr_AsInitializer(t *testing.T) {
	unit := parseOK(t, "x := if (c) 1 else 2")
	v := unit.Decls[0].(*ast.Variable)
	ie, ok := v.Initializer.(*ast.IfExpr)
	require.True(t, ok)
	require.NotNil(t, ie.Then)
	require.NotNil(t, ie.Else)
}
