package parser

import (
	"github.com/akashmaji946/skyfront/ast"
	"github.com/akashmaji946/skyfront/token"
)

// parseScope ← '{' (stmtSep | statement)* '}'
func (p *Parser) parseScope() *ast.Scope {
	if !p.check(token.LEFT_BRACE) {
		return nil
	}
	start := p.advance()
	p.commit()

	var stmts []ast.Statement
	for {
		p.stmtSep()
		if p.check(token.RIGHT_BRACE) || p.check(token.END) {
			break
		}
		s := p.parseStatement()
		if s == nil {
			p.errorAt(p.cur(), "expected statement, got %s", p.cur().Kind)
			p.advance()
			continue
		}
		stmts = append(stmts, s)
	}
	end, _ := p.expect(token.RIGHT_BRACE, "'}'")

	n := &ast.Scope{Base: ast.NewBase(ast.KindScope, start.Concat(end)), Statements: stmts}
	for _, s := range stmts {
		ast.SetParentOf(n, s)
	}
	return n
}

// statement ← scope | if | while | for | return | using | defer | match
//
//	| break | continue | nested_declaration | expression
//
// The statement separator following whatever alternative matches is not
// consumed here: parseScope's loop eats it before asking for the next
// statement, so every alternative's span ends exactly at its own content.
func (p *Parser) parseStatement() ast.Statement {
	if s := p.parseScope(); s != nil {
		return s
	}
	if s := p.tryIf(); s != nil {
		return s
	}
	if s := p.tryWhile(); s != nil {
		return s
	}
	if s := p.tryFor(); s != nil {
		return s
	}
	if s := p.tryReturn(); s != nil {
		return s
	}
	if s := p.tryUsing(); s != nil {
		return s
	}
	if s := p.tryDefer(); s != nil {
		return s
	}
	if s := p.tryMatch(); s != nil {
		return s
	}
	if s := p.tryBreak(); s != nil {
		return s
	}
	if s := p.tryContinue(); s != nil {
		return s
	}
	if d := p.tryDeclaration(); d != nil {
		n := &ast.DeclStatement{Base: ast.NewBase(ast.KindDeclStatement, d.Tok()), Decl: d}
		ast.SetParentOf(n, d)
		return n
	}
	if e := p.parseExpression(); e != nil {
		n := &ast.ExprStatement{Base: ast.NewBase(ast.KindExprStatement, e.Tok()), Expr: e}
		ast.SetParentOf(n, e)
		return n
	}
	return nil
}

// if ← "if" ws '(' ws expression ws ')' ws statement (mws "else" ws statement)?
func (p *Parser) tryIf() *ast.If {
	if !p.check(token.IF) {
		return nil
	}
	entry := p.save()
	start := p.advance()
	p.commit()
	p.ws()
	if _, ok := p.expect(token.LEFT_PAREN, "'(' after 'if'"); !ok {
		p.rewind(entry)
		return nil
	}
	p.ws()
	cond := p.parseExpression()
	if cond == nil {
		p.errorAt(p.cur(), "expected if condition")
		p.rewind(entry)
		return nil
	}
	p.ws()
	if _, ok := p.expect(token.RIGHT_PAREN, "')'"); !ok {
		p.rewind(entry)
		return nil
	}
	p.ws()
	then := p.parseStatement()
	if then == nil {
		p.errorAt(p.cur(), "expected then-branch statement")
		p.rewind(entry)
		return nil
	}

	last := then.Tok()
	var elseStmt ast.Statement
	m := p.save()
	if isWSToken(p.cur().Kind) {
		p.ws()
		if p.check(token.ELSE) {
			p.advance()
			p.ws()
			elseStmt = p.parseStatement()
			if elseStmt == nil {
				p.errorAt(p.cur(), "expected else-branch statement")
			} else {
				last = elseStmt.Tok()
			}
		} else {
			p.rewind(m)
		}
	}

	n := &ast.If{Base: ast.NewBase(ast.KindIf, start.Concat(last)), Condition: cond, Then: then, Else: elseStmt}
	ast.SetParentOf(n, cond, then, elseStmt)
	return n
}

// tryLoopLabel speculatively consumes a `IDENT ws ':' ws` label prefix,
// shared by while and for. The caller rewinds the whole production
// (label included) if the keyword it expects next doesn't follow.
func (p *Parser) tryLoopLabel() string {
	m := p.save()
	if !p.check(token.IDENTIFIER) {
		return ""
	}
	labelTok := p.advance()
	p.ws()
	if !p.check(token.COLON) {
		p.rewind(m)
		return ""
	}
	p.advance()
	p.ws()
	return p.text(labelTok)
}

// while ← (IDENT ws ':' ws)? "while" ws '(' ws expression ws ')' ws statement
func (p *Parser) tryWhile() *ast.While {
	m := p.save()
	label := p.tryLoopLabel()
	if !p.check(token.WHILE) {
		p.rewind(m)
		return nil
	}
	start := p.advance()
	p.commit()
	p.ws()
	if _, ok := p.expect(token.LEFT_PAREN, "'(' after 'while'"); !ok {
		p.rewind(m)
		return nil
	}
	p.ws()
	cond := p.parseExpression()
	if cond == nil {
		p.errorAt(p.cur(), "expected while condition")
		p.rewind(m)
		return nil
	}
	p.ws()
	if _, ok := p.expect(token.RIGHT_PAREN, "')'"); !ok {
		p.rewind(m)
		return nil
	}
	p.ws()
	body := p.parseStatement()
	if body == nil {
		p.errorAt(p.cur(), "expected while body statement")
		p.rewind(m)
		return nil
	}
	n := &ast.While{Base: ast.NewBase(ast.KindWhile, start.Concat(body.Tok())), Label: label, Condition: cond, Body: body}
	ast.SetParentOf(n, cond, body)
	return n
}

// for_init ← (for_init_item (',' ws for_init_item)*)?
// for_init_item ← variable_decl (no trailing separator) | expression
func (p *Parser) parseForInit() []ast.Statement {
	var out []ast.Statement
	p.ws()
	if p.check(token.SEMICOLON) {
		return out
	}
	for {
		p.ws()
		if v := p.parseVariableDeclCore(false); v != nil {
			n := &ast.DeclStatement{Base: ast.NewBase(ast.KindDeclStatement, v.Tok()), Decl: v}
			ast.SetParentOf(n, v)
			out = append(out, n)
		} else if e := p.parseExpression(); e != nil {
			n := &ast.ExprStatement{Base: ast.NewBase(ast.KindExprStatement, e.Tok()), Expr: e}
			ast.SetParentOf(n, e)
			out = append(out, n)
		} else {
			break
		}
		p.ws()
		if !p.check(token.COMMA) {
			break
		}
		p.advance()
	}
	return out
}

// for ← (IDENT ws ':' ws)? "for" ws '(' for_init ';' ws expression? ws ';'
//
//	ws expression? ws ')' ws statement
func (p *Parser) tryFor() *ast.For {
	m := p.save()
	label := p.tryLoopLabel()
	if !p.check(token.FOR) {
		p.rewind(m)
		return nil
	}
	start := p.advance()
	p.commit()
	p.ws()
	if _, ok := p.expect(token.LEFT_PAREN, "'(' after 'for'"); !ok {
		p.rewind(m)
		return nil
	}
	init := p.parseForInit()
	p.ws()
	if _, ok := p.expect(token.SEMICOLON, "';'"); !ok {
		p.rewind(m)
		return nil
	}
	p.ws()
	var cond ast.Expression
	if !p.check(token.SEMICOLON) {
		cond = p.parseExpression()
	}
	p.ws()
	if _, ok := p.expect(token.SEMICOLON, "';'"); !ok {
		p.rewind(m)
		return nil
	}
	p.ws()
	var update ast.Expression
	if !p.check(token.RIGHT_PAREN) {
		update = p.parseExpression()
	}
	p.ws()
	if _, ok := p.expect(token.RIGHT_PAREN, "')'"); !ok {
		p.rewind(m)
		return nil
	}
	p.ws()
	body := p.parseStatement()
	if body == nil {
		p.errorAt(p.cur(), "expected for body statement")
		p.rewind(m)
		return nil
	}

	n := &ast.For{Base: ast.NewBase(ast.KindFor, start.Concat(body.Tok())), Label: label, Init: init, Condition: cond, Update: update, Body: body}
	ast.SetParentOf(n, body, cond, update)
	for _, s := range init {
		ast.SetParentOf(n, s)
	}
	return n
}

// return ← "return" (ws expression)?
func (p *Parser) tryReturn() *ast.Return {
	if !p.check(token.RETURN) {
		return nil
	}
	start := p.advance()
	p.commit()
	last := start

	m := p.save()
	p.ws()
	val := p.parseExpression()
	if val == nil {
		p.rewind(m)
	} else {
		last = val.Tok()
	}

	n := &ast.Return{Base: ast.NewBase(ast.KindReturn, start.Concat(last)), Value: val}
	ast.SetParentOf(n, val)
	return n
}

// using ← "using" mws dotted_name (ws scope)?
func (p *Parser) tryUsing() *ast.Using {
	if !p.check(token.USING) {
		return nil
	}
	entry := p.save()
	start := p.advance()
	p.commit()
	if !p.mws() {
		p.rewind(entry)
		return nil
	}
	name, last, ok := p.parseDottedName()
	if !ok {
		p.errorAt(p.cur(), "expected name after 'using'")
		p.rewind(entry)
		return nil
	}

	var scope *ast.Scope
	m := p.save()
	p.ws()
	if p.check(token.LEFT_BRACE) {
		scope = p.parseScope()
		if scope != nil {
			last = scope.Tok()
		}
	} else {
		p.rewind(m)
	}

	n := &ast.Using{Base: ast.NewBase(ast.KindUsing, start.Concat(last)), Name: name, Scope: scope}
	if scope != nil {
		ast.SetParentOf(n, scope)
	}
	return n
}

// defer ← "defer" ws scope
func (p *Parser) tryDefer() *ast.Defer {
	if !p.check(token.DEFER) {
		return nil
	}
	entry := p.save()
	start := p.advance()
	p.commit()
	p.ws()
	body := p.parseScope()
	if body == nil {
		p.errorAt(p.cur(), "expected scope after 'defer'")
		p.rewind(entry)
		return nil
	}
	n := &ast.Defer{Base: ast.NewBase(ast.KindDefer, start.Concat(body.Tok())), Body: body}
	ast.SetParentOf(n, body)
	return n
}

// trySameLineLabel consumes an optional label for break/continue: only
// plain WHITESPACE separates the keyword from its label, never a NEWLINE
// — a label on the following line belongs to some other statement.
func (p *Parser) trySameLineLabel() (string, token.Token, bool) {
	m := p.save()
	for p.cur().Kind == token.WHITESPACE {
		p.advance()
	}
	if !p.check(token.IDENTIFIER) {
		p.rewind(m)
		return "", token.Token{}, false
	}
	tok := p.advance()
	return p.text(tok), tok, true
}

// break ← "break" (WHITESPACE IDENT)?
func (p *Parser) tryBreak() *ast.Break {
	if !p.check(token.BREAK) {
		return nil
	}
	start := p.advance()
	p.commit()
	last := start
	label := ""
	if l, tok, ok := p.trySameLineLabel(); ok {
		label = l
		last = tok
	}
	return &ast.Break{Base: ast.NewBase(ast.KindBreak, start.Concat(last)), Label: label}
}

// continue ← "continue" (WHITESPACE IDENT)?
func (p *Parser) tryContinue() *ast.Continue {
	if !p.check(token.CONTINUE) {
		return nil
	}
	start := p.advance()
	p.commit()
	last := start
	label := ""
	if l, tok, ok := p.trySameLineLabel(); ok {
		label = l
		last = tok
	}
	return &ast.Continue{Base: ast.NewBase(ast.KindContinue, start.Concat(last)), Label: label}
}

// match ← "match" ws '(' ws expression ws ')' ws '{' ws case* (ws "else" ws scope)? ws '}'
func (p *Parser) tryMatch() *ast.Match {
	if !p.check(token.MATCH) {
		return nil
	}
	entry := p.save()
	start := p.advance()
	p.commit()
	p.ws()
	if _, ok := p.expect(token.LEFT_PAREN, "'(' after 'match'"); !ok {
		p.rewind(entry)
		return nil
	}
	p.ws()
	scrutinee := p.parseExpression()
	if scrutinee == nil {
		p.errorAt(p.cur(), "expected match scrutinee expression")
		p.rewind(entry)
		return nil
	}
	p.ws()
	if _, ok := p.expect(token.RIGHT_PAREN, "')'"); !ok {
		p.rewind(entry)
		return nil
	}
	p.ws()
	if _, ok := p.expect(token.LEFT_BRACE, "'{'"); !ok {
		p.rewind(entry)
		return nil
	}

	var cases []ast.MatchCase
	var elseScope *ast.Scope
	p.ws()
	for p.check(token.CASE) {
		c := p.parseMatchCase()
		if c == nil {
			break
		}
		cases = append(cases, c)
		p.ws()
	}
	if p.check(token.ELSE) {
		p.advance()
		p.ws()
		elseScope = p.parseScope()
		if elseScope == nil {
			p.errorAt(p.cur(), "expected scope after 'else'")
		}
	}
	p.ws()
	end, _ := p.expect(token.RIGHT_BRACE, "'}'")

	n := &ast.Match{Base: ast.NewBase(ast.KindMatch, start.Concat(end)), Scrutinee: scrutinee, Cases: cases, Else: elseScope}
	ast.SetParentOf(n, scrutinee)
	if elseScope != nil {
		ast.SetParentOf(n, elseScope)
	}
	for _, c := range cases {
		ast.SetParentOf(n, c)
	}
	return n
}

// case ← "case" mws "is" mws IDENT (ws '(' expr_list ')')? ws scope
//
//	| "case" mws expression ws scope
func (p *Parser) parseMatchCase() ast.MatchCase {
	if !p.check(token.CASE) {
		return nil
	}
	entry := p.save()
	start := p.advance()
	p.commit()
	if !p.mws() {
		p.rewind(entry)
		return nil
	}

	m := p.save()
	if p.check(token.IS) {
		p.advance()
		if p.mws() && p.check(token.IDENTIFIER) {
			tagTok := p.advance()
			p.rejectNamespacedTag(tagTok)

			var binds []ast.Expression
			mm := p.save()
			p.ws()
			if p.check(token.LEFT_PAREN) {
				p.advance()
				binds = p.parseExprList(token.RIGHT_PAREN)
				p.ws()
				p.expect(token.RIGHT_PAREN, "')'")
			} else {
				p.rewind(mm)
			}

			p.ws()
			body := p.parseScope()
			if body == nil {
				p.errorAt(p.cur(), "expected scope for 'case is' body")
				p.rewind(entry)
				return nil
			}
			n := &ast.MatchCaseIs{
				Base: ast.NewBase(ast.KindMatchCaseIs, start.Concat(body.Tok())),
				Tag:  p.text(tagTok), Binds: binds, Body: body,
			}
			for _, b := range binds {
				ast.SetParentOf(n, b)
			}
			ast.SetParentOf(n, body)
			return n
		}
		p.rewind(m)
	}

	expr := p.parseExpression()
	if expr == nil {
		p.errorAt(p.cur(), "expected case expression")
		p.rewind(entry)
		return nil
	}
	p.ws()
	body := p.parseScope()
	if body == nil {
		p.errorAt(p.cur(), "expected scope for case body")
		p.rewind(entry)
		return nil
	}
	n := &ast.MatchCaseSimple{Base: ast.NewBase(ast.KindMatchCaseSimple, start.Concat(body.Tok())), Value: expr, Body: body}
	ast.SetParentOf(n, expr, body)
	return n
}
