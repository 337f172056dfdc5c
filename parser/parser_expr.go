package parser

import (
	"github.com/akashmaji946/skyfront/ast"
	"github.com/akashmaji946/skyfront/token"
)

// precedenceLevels lists the cascade's binary levels from loosest to
// tightest. parseBinaryLevel walks the list
// recursively, so adding or reordering a level never touches the
// per-operator parsing logic.
var precedenceLevels = []int{
	token.PrecLogicalOr,
	token.PrecLogicalAnd,
	token.PrecBitOr,
	token.PrecBitXor,
	token.PrecBitAnd,
	token.PrecEquality,
	token.PrecRelational,
	token.PrecShift,
	token.PrecAdditive,
	token.PrecMultiplicative,
}

// parseExpression is the cascade's entry point: assignment is the
// loosest-binding production, everything else nests underneath it.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseAssignment()
}

// assignment ← if_expr ( ws AssOp ws assignment )?
//
// The right-hand side recurses into parseAssignment rather than
// if_expr, making chained assignment (a = b = c) right-associative —
// the usual reading of a single-token lookahead assignment operator.
func (p *Parser) parseAssignment() ast.Expression {
	left := p.parseIfExpr()
	if left == nil {
		return nil
	}
	m := p.save()
	p.ws()
	opTok := p.cur()
	if !token.IsAssignOp(opTok.Kind) {
		p.rewind(m)
		return left
	}
	p.advance()
	p.ws()
	right := p.parseAssignment()
	if right == nil {
		p.errorAt(p.cur(), "expected right-hand side of assignment")
		p.rewind(m)
		return left
	}
	n := &ast.Assignment{
		ExprBase: ast.NewExprBase(ast.KindAssignment, left.Tok().Concat(right.Tok())),
		Op:       opTok.Kind, Target: left, Value: right,
	}
	ast.SetParentOf(n, left, right)
	return n
}

// if_expr ← "if" ws "(" ws expression ws ")" ws if_branch mws "else" ws if_branch
//         | logical_or
//
// An if-expression's branches are Expression-typed (ast.IfExpr.Then/Else),
// so a brace-delimited branch is accepted only as sugar for a single
// wrapped expression (`{ expr }`), not a full statement scope.
func (p *Parser) parseIfExpr() ast.Expression {
	if !p.check(token.IF) {
		return p.parseLogicalOr()
	}
	m := p.save()
	start := p.advance()
	p.ws()
	if _, ok := p.expect(token.LEFT_PAREN, "'(' after 'if'"); !ok {
		p.rewind(m)
		return p.parseLogicalOr()
	}
	p.ws()
	cond := p.parseExpression()
	if cond == nil {
		p.rewind(m)
		return p.parseLogicalOr()
	}
	p.ws()
	if _, ok := p.expect(token.RIGHT_PAREN, "')'"); !ok {
		p.rewind(m)
		return p.parseLogicalOr()
	}
	p.commit()

	p.ws()
	then := p.parseIfExprBranch()
	if then == nil {
		p.errorAt(p.cur(), "expected then-branch expression")
		p.rewind(m)
		return nil
	}
	if !p.mws() {
		p.rewind(m)
		return nil
	}
	if _, ok := p.expect(token.ELSE, "'else'"); !ok {
		p.rewind(m)
		return nil
	}
	p.ws()
	elseBranch := p.parseIfExprBranch()
	if elseBranch == nil {
		p.errorAt(p.cur(), "expected else-branch expression")
		p.rewind(m)
		return nil
	}

	n := &ast.IfExpr{
		ExprBase:  ast.NewExprBase(ast.KindIfExpr, start.Concat(elseBranch.Tok())),
		Condition: cond, Then: then, Else: elseBranch,
	}
	ast.SetParentOf(n, cond, then, elseBranch)
	return n
}

// parseIfExprBranch accepts a bare expression, or `{ expression }` as an
// expression wrapped in a scope with nothing else in it.
func (p *Parser) parseIfExprBranch() ast.Expression {
	if !p.check(token.LEFT_BRACE) {
		return p.parseExpression()
	}
	m := p.save()
	p.advance()
	p.ws()
	e := p.parseExpression()
	if e == nil {
		p.rewind(m)
		return nil
	}
	p.ws()
	if !p.check(token.RIGHT_BRACE) {
		p.rewind(m)
		return nil
	}
	p.advance()
	return e
}

func (p *Parser) parseLogicalOr() ast.Expression { return p.parseBinaryLevel(0) }

// parseBinaryLevel implements every left-associative binary level in one
// recursive function, keyed off precedenceLevels, instead of one
// hand-written production per operator group.
func (p *Parser) parseBinaryLevel(idx int) ast.Expression {
	if idx >= len(precedenceLevels) {
		return p.parseCastIs()
	}
	level := precedenceLevels[idx]
	left := p.parseBinaryLevel(idx + 1)
	if left == nil {
		return nil
	}
	for {
		m := p.save()
		p.ws()
		opTok := p.cur()
		if token.BinaryPrecedence(opTok.Kind) != level {
			p.rewind(m)
			break
		}
		p.advance()
		p.ws()
		right := p.parseBinaryLevel(idx + 1)
		if right == nil {
			p.errorAt(p.cur(), "expected right-hand operand after %s", opTok.Kind)
			p.rewind(m)
			break
		}
		n := &ast.BinaryOp{
			ExprBase: ast.NewExprBase(ast.KindBinaryOp, left.Tok().Concat(right.Tok())),
			Op:       opTok.Kind, Left: left, Right: right,
		}
		ast.SetParentOf(n, left, right)
		left = n
	}
	return left
}

// cast_is ← prefix ( ws ( "as" ws type | "is" mws IDENT ( ws "(" expr_list ")" )? ) )*
func (p *Parser) parseCastIs() ast.Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}
	for {
		m := p.save()
		p.ws()
		switch {
		case p.check(token.AS):
			p.advance()
			p.ws()
			t := p.parseType()
			if t == nil {
				p.errorAt(p.cur(), "expected type after 'as'")
				p.rewind(m)
				return left
			}
			n := &ast.Cast{ExprBase: ast.NewExprBase(ast.KindCast, left.Tok().Concat(t.Tok())), Expr: left, To: t}
			ast.SetParentOf(n, left, t)
			left = n

		case p.check(token.IS):
			p.advance()
			if !p.mws() {
				p.rewind(m)
				return left
			}
			if !p.check(token.IDENTIFIER) {
				p.errorAt(p.cur(), "expected tag identifier after 'is'")
				p.rewind(m)
				return left
			}
			tagTok := p.advance()
			last := p.rejectNamespacedTag(tagTok)
			var binds []ast.Expression
			mm := p.save()
			p.ws()
			if p.check(token.LEFT_PAREN) {
				p.advance()
				binds = p.parseExprList(token.RIGHT_PAREN)
				p.ws()
				if rp, ok := p.expect(token.RIGHT_PAREN, "')'"); ok {
					last = rp
				} else {
					p.rewind(mm)
					binds = nil
				}
			} else {
				p.rewind(mm)
			}
			n := &ast.IsExpr{
				ExprBase: ast.NewExprBase(ast.KindIsExpr, left.Tok().Concat(last)),
				Expr:     left, Tag: p.text(tagTok), Binds: binds,
			}
			ast.SetParentOf(n, left)
			for _, b := range binds {
				ast.SetParentOf(n, b)
			}
			left = n

		default:
			p.rewind(m)
			return left
		}
	}
}

// rejectNamespacedTag reports a diagnostic when a `case
// is`/`is` tag is namespaced (`Foo.Bar` or `Foo::Bar`) instead of a bare
// identifier, consuming the offending segments so the cursor still lands
// past the whole tag. Returns the last token consumed as part of the tag.
func (p *Parser) rejectNamespacedTag(tagTok token.Token) token.Token {
	last := tagTok
	if p.check(token.DOT) || p.check(token.DOUBLE_COLON) {
		p.errorAt(p.cur(), "namespaced identifier not allowed as a tag in 'is'")
		for p.check(token.DOT) || p.check(token.DOUBLE_COLON) {
			p.advance()
			if p.check(token.IDENTIFIER) {
				last = p.advance()
			}
		}
	}
	return last
}

func isPrefixOp(k token.Kind) bool {
	switch k {
	case token.PLUS, token.MINUS, token.BANG, token.TILDE, token.ASTERISK, token.AMPERSAND:
		return true
	}
	return false
}

// prefix ← ( '+' | '-' | '!' | '~' | '*' | '&' ) ws prefix | sizeof_expr | postfix
func (p *Parser) parsePrefix() ast.Expression {
	if p.check(token.SIZEOF) {
		return p.parseSizeof()
	}
	if isPrefixOp(p.cur().Kind) {
		opTok := p.advance()
		p.ws()
		operand := p.parsePrefix()
		if operand == nil {
			p.errorAt(p.cur(), "expected operand after %s", opTok.Kind)
			return nil
		}
		n := &ast.UnaryOp{ExprBase: ast.NewExprBase(ast.KindUnaryOp, opTok.Concat(operand.Tok())), Op: opTok.Kind, Expr: operand}
		ast.SetParentOf(n, operand)
		return n
	}
	return p.parsePostfix()
}

// sizeof_expr ← "sizeof" ws "(" ws ( type | expression ) ws ")"
//
// Type is tried first since most types (a bare dotted_name) also parse as
// a valid var_access expression; only the trailing ")" disambiguates.
func (p *Parser) parseSizeof() ast.Expression {
	start := p.advance() // SIZEOF
	p.ws()
	if _, ok := p.expect(token.LEFT_PAREN, "'(' after 'sizeof'"); !ok {
		return nil
	}
	p.ws()

	m := p.save()
	if t := p.parseType(); t != nil {
		p.ws()
		if p.check(token.RIGHT_PAREN) {
			end := p.advance()
			n := &ast.Sizeof{ExprBase: ast.NewExprBase(ast.KindSizeof, start.Concat(end)), TypeArg: t}
			ast.SetParentOf(n, t)
			return n
		}
	}
	p.rewind(m)

	e := p.parseExpression()
	if e == nil {
		p.errorAt(p.cur(), "expected type or expression in 'sizeof(...)'")
		return nil
	}
	p.ws()
	end, ok := p.expect(token.RIGHT_PAREN, "')'")
	if !ok {
		return nil
	}
	n := &ast.Sizeof{ExprBase: ast.NewExprBase(ast.KindSizeof, start.Concat(end)), Expr: e}
	ast.SetParentOf(n, e)
	return n
}

// postfix ← atom ( ws ( '.' IDENT | '[' expression ']' | '(' arg_list ')' ) )*
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parseAtom()
	if expr == nil {
		return nil
	}
	for {
		m := p.save()
		p.ws()
		switch {
		case p.check(token.DOT):
			p.advance()
			if !p.check(token.IDENTIFIER) {
				p.rewind(m)
				return expr
			}
			fieldTok := p.advance()
			n := &ast.FieldAccess{
				ExprBase: ast.NewExprBase(ast.KindFieldAccess, expr.Tok().Concat(fieldTok)),
				Target:   expr, Field: p.text(fieldTok),
			}
			ast.SetParentOf(n, expr)
			expr = n

		case p.check(token.LEFT_BRACKET):
			p.advance()
			p.ws()
			idx := p.parseExpression()
			if idx == nil {
				p.errorAt(p.cur(), "expected index expression")
				p.rewind(m)
				return expr
			}
			p.ws()
			end, ok := p.expect(token.RIGHT_BRACKET, "']'")
			if !ok {
				p.rewind(m)
				return expr
			}
			n := &ast.ArrayIndex{
				ExprBase: ast.NewExprBase(ast.KindArrayIndex, expr.Tok().Concat(end)),
				Target:   expr, Index: idx,
			}
			ast.SetParentOf(n, expr, idx)
			expr = n

		case p.check(token.LEFT_PAREN):
			p.advance()
			args, end, ok := p.parseCallArgs()
			if !ok {
				p.rewind(m)
				return expr
			}
			n := &ast.Call{ExprBase: ast.NewExprBase(ast.KindCall, expr.Tok().Concat(end)), Callee: expr, Args: args}
			ast.SetParentOf(n, expr)
			for _, a := range args {
				ast.SetParentOf(n, a.Value)
			}
			expr = n

		default:
			p.rewind(m)
			return expr
		}
	}
}

// arg_list ← ( call_arg ( ',' call_arg )* )?
// call_arg ← ( IDENT ws ':' ws )? expression
func (p *Parser) parseCallArgs() ([]ast.CallArg, token.Token, bool) {
	var args []ast.CallArg
	p.ws()
	if p.check(token.RIGHT_PAREN) {
		return args, p.advance(), true
	}
	for {
		name := ""
		m := p.save()
		if p.check(token.IDENTIFIER) {
			nameTok := p.advance()
			p.ws()
			if p.check(token.COLON) {
				p.advance()
				p.ws()
				name = p.text(nameTok)
			} else {
				p.rewind(m)
			}
		}
		val := p.parseExpression()
		if val == nil {
			p.errorAt(p.cur(), "expected call argument")
			return args, token.Token{}, false
		}
		args = append(args, ast.CallArg{Name: name, Value: val})
		p.ws()
		if !p.check(token.COMMA) {
			break
		}
		p.advance()
		p.ws()
	}
	p.ws()
	end, ok := p.expect(token.RIGHT_PAREN, "')'")
	if !ok {
		return args, token.Token{}, false
	}
	return args, end, true
}

// expr_list is the comma-separated expression form used by call sites
// other than a call's own argument list (the binds of an `is` expression
// and of a `case is` match arm).
func (p *Parser) parseExprList(terminator token.Kind) []ast.Expression {
	var out []ast.Expression
	p.ws()
	if p.check(terminator) {
		return out
	}
	for {
		e := p.parseExpression()
		if e == nil {
			return out
		}
		out = append(out, e)
		p.ws()
		if !p.check(token.COMMA) {
			break
		}
		p.advance()
		p.ws()
	}
	return out
}

// atom ← INT | FLOAT | CHAR | STRING | BOOL | NULL | '(' expression ')' | var_access
func (p *Parser) parseAtom() ast.Expression {
	switch p.cur().Kind {
	case token.INT:
		return p.parseIntLit()
	case token.FLOAT:
		return p.parseFloatLit()
	case token.CHAR:
		return p.parseCharLit()
	case token.STRING:
		return p.parseStringLit()
	case token.BOOL:
		tok := p.advance()
		n := &ast.BoolLit{ExprBase: ast.NewExprBase(ast.KindBoolLit, tok), Value: p.text(tok) == "true"}
		p.setInherentType(n, tok, "bool")
		return n
	case token.NULL:
		tok := p.advance()
		n := &ast.NullLit{ExprBase: ast.NewExprBase(ast.KindNullLit, tok)}
		p.setInherentType(n, tok, "null")
		return n
	case token.LEFT_PAREN:
		return p.parseParenExpr()
	case token.IDENTIFIER:
		return p.parseVarAccess()
	default:
		return nil
	}
}

// parseParenExpr is pure grouping: no dedicated AST node, the inner
// expression is returned unwrapped.
func (p *Parser) parseParenExpr() ast.Expression {
	m := p.save()
	p.advance() // (
	p.ws()
	e := p.parseExpression()
	if e == nil {
		p.rewind(m)
		return nil
	}
	p.ws()
	if _, ok := p.expect(token.RIGHT_PAREN, "')'"); !ok {
		p.rewind(m)
		return nil
	}
	return e
}

// setInherentType fills a literal's computed-type slot with the type the
// literal carries inherently (its suffix-selected numeric type, or the
// fixed char/string/bool/null type), anchored at the literal's own token.
// Non-literal expressions leave the slot empty for downstream passes.
func (p *Parser) setInherentType(e ast.Expression, tok token.Token, name string) {
	t := &ast.BaseType{Base: ast.NewBase(ast.KindBaseType, tok), Name: name}
	ast.SetParentOf(e, t)
	e.SetComputedType(t)
}

func (p *Parser) parseIntLit() ast.Expression {
	tok := p.advance()
	n := &ast.IntLit{ExprBase: ast.NewExprBase(ast.KindIntLit, tok), TypeName: "int64"}
	v, err := token.DecodeInt(p.text(tok), tok.Base)
	if err != nil {
		p.errorAt(tok, "%v", err)
	} else {
		n.Value, n.Negative, n.TypeName = v.Value, v.Negative, v.TypeName
	}
	p.setInherentType(n, tok, n.TypeName)
	return n
}

func (p *Parser) parseFloatLit() ast.Expression {
	tok := p.advance()
	n := &ast.FloatLit{ExprBase: ast.NewExprBase(ast.KindFloatLit, tok), TypeName: "float64"}
	v, err := token.DecodeFloat(p.text(tok))
	if err != nil {
		p.errorAt(tok, "%v", err)
	} else {
		n.Value, n.TypeName = v.Value, v.TypeName
	}
	p.setInherentType(n, tok, n.TypeName)
	return n
}

// parseCharLit strips the literal's surrounding quotes (lexer spans for
// CHAR include them, see scan_string.go) before decoding. A malformed
// literal (empty, multi-character) still produces a node carrying
// whatever rune was decoded.
func (p *Parser) parseCharLit() ast.Expression {
	tok := p.advance()
	raw := p.text(tok)
	inner := raw
	if len(inner) >= 2 && inner[0] == '\'' && inner[len(inner)-1] == '\'' {
		inner = inner[1 : len(inner)-1]
	}
	r, consumed, err := token.UnescapeChar(inner)
	switch {
	case err != nil:
		p.errorAt(tok, "invalid char literal: %v", err)
	case consumed < len(inner):
		p.errorAt(tok, "multi-character char literal")
	}
	n := &ast.CharLit{ExprBase: ast.NewExprBase(ast.KindCharLit, tok), Value: r}
	p.setInherentType(n, tok, "char")
	return n
}

func (p *Parser) parseStringLit() ast.Expression {
	tok := p.advance()
	raw := p.text(tok)
	inner := raw
	if len(inner) >= 2 && inner[0] == '"' && inner[len(inner)-1] == '"' {
		inner = inner[1 : len(inner)-1]
	}
	val, err := token.UnescapeString(inner)
	if err != nil {
		p.errorAt(tok, "invalid string literal: %v", err)
	}
	n := &ast.StringLit{ExprBase: ast.NewExprBase(ast.KindStringLit, tok), Value: val}
	p.setInherentType(n, tok, "string")
	return n
}

// var_access ← dotted_name ( ws '<' type_list '>' )?
func (p *Parser) parseVarAccess() ast.Expression {
	first := p.cur()
	name, last, ok := p.parseDottedName()
	if !ok {
		return nil
	}

	var templates []ast.Type
	m := p.save()
	p.ws()
	if p.check(token.LESS) {
		p.advance()
		list := p.parseTypeList(token.GREATER)
		p.ws()
		if p.check(token.GREATER) && len(list) > 0 {
			templates = list
			last = p.advance()
		} else {
			p.rewind(m)
		}
	} else {
		p.rewind(m)
	}

	n := &ast.VarAccess{ExprBase: ast.NewExprBase(ast.KindVarAccess, first.Concat(last)), Name: name, Templates: templates}
	for _, t := range templates {
		ast.SetParentOf(n, t)
	}
	return n
}
