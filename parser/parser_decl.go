package parser

import (
	"github.com/akashmaji946/skyfront/ast"
	"github.com/akashmaji946/skyfront/token"
)

// tryTemplateParams parses an optional `< IDENT (, IDENT)* >` clause.
func (p *Parser) tryTemplateParams() []*ast.TemplateParam {
	if !p.check(token.LESS) {
		return nil
	}
	m := p.save()
	p.advance()
	var params []*ast.TemplateParam
	p.ws()
	for p.check(token.IDENTIFIER) {
		tok := p.advance()
		params = append(params, &ast.TemplateParam{Base: ast.NewBase(ast.KindTemplateParam, tok), Name: p.text(tok)})
		p.ws()
		if !p.check(token.COMMA) {
			break
		}
		p.advance()
		p.ws()
	}
	p.ws()
	if !p.check(token.GREATER) || len(params) == 0 {
		p.rewind(m)
		return nil
	}
	p.advance()
	return params
}

// namespace ← "namespace" mws dotted_name ws '{' (declaration | ws)* '}'
func (p *Parser) tryNamespace() *ast.Namespace {
	m := p.save()
	if !p.check(token.NAMESPACE) {
		return nil
	}
	start := p.advance()
	p.commit()
	if !p.mws() {
		p.rewind(m)
		return nil
	}
	name, _, ok := p.parseDottedName()
	if !ok {
		p.errorAt(p.cur(), "expected namespace name")
		p.rewind(m)
		return nil
	}
	p.ws()
	if _, ok := p.expect(token.LEFT_BRACE, "'{'"); !ok {
		p.rewind(m)
		return nil
	}

	var decls []ast.Declaration
	for {
		p.ws()
		if p.check(token.RIGHT_BRACE) || p.check(token.END) {
			break
		}
		d := p.tryDeclaration()
		if d == nil {
			p.errorAt(p.cur(), "expected declaration inside namespace, got %s", p.cur().Kind)
			p.advance()
			continue
		}
		decls = append(decls, d)
		p.stmtSep()
	}
	end, _ := p.expect(token.RIGHT_BRACE, "'}'")

	n := &ast.Namespace{Base: ast.NewBase(ast.KindNamespace, start.Concat(end)), Name: name, Decls: decls}
	for _, d := range decls {
		ast.SetParentOf(n, d)
	}
	return n
}

// tryNameColon speculatively consumes the shared `IDENT ws ':' ws` prefix
// that struct/alias/variant declarations share with a plain variable
// declaration. On success the caller owns m and must rewind it itself if
// the keyword that should follow doesn't match.
func (p *Parser) tryNameColon() (nameTok token.Token, m mark, ok bool) {
	m = p.save()
	if !p.check(token.IDENTIFIER) {
		return token.Token{}, m, false
	}
	nameTok = p.advance()
	p.ws()
	if !p.check(token.COLON) {
		p.rewind(m)
		return token.Token{}, m, false
	}
	p.advance()
	p.ws()
	return nameTok, m, true
}

// struct_decl ← IDENT ws ':' ws "struct" templates? ws '{' (type_decl | field) stmtSep* '}'
func (p *Parser) tryStruct() *ast.Struct {
	nameTok, m, ok := p.tryNameColon()
	if !ok {
		return nil
	}
	if !p.check(token.STRUCT) {
		p.rewind(m)
		return nil
	}
	p.advance()
	p.commit()
	p.ws()
	templates := p.tryTemplateParams()
	p.ws()
	if _, ok := p.expect(token.LEFT_BRACE, "'{'"); !ok {
		p.rewind(m)
		return nil
	}

	var fields []*ast.Variable
	var nested []ast.Declaration
	for {
		p.ws()
		if p.check(token.RIGHT_BRACE) || p.check(token.END) {
			break
		}
		if d := p.tryTypeDecl(); d != nil {
			nested = append(nested, d)
			p.stmtSep()
			continue
		}
		f := p.tryField()
		if f == nil {
			p.errorAt(p.cur(), "expected field declaration, got %s", p.cur().Kind)
			p.advance()
			continue
		}
		fields = append(fields, f)
	}
	end, _ := p.expect(token.RIGHT_BRACE, "'}'")

	n := &ast.Struct{Base: ast.NewBase(ast.KindStruct, nameTok.Concat(end)), Name: p.text(nameTok), Templates: templates, Fields: fields, Nested: nested}
	for _, t := range templates {
		ast.SetParentOf(n, t)
	}
	for _, f := range fields {
		ast.SetParentOf(n, f)
	}
	for _, d := range nested {
		ast.SetParentOf(n, d)
	}
	return n
}

// field ← IDENT ws ':' ws type — no initializer, no modifiers; the
// trailing separator is consumed here so the struct body loop doesn't
// need to special-case it.
func (p *Parser) tryField() *ast.Variable {
	m := p.save()
	if !p.check(token.IDENTIFIER) {
		return nil
	}
	nameTok := p.advance()
	p.ws()
	if !p.check(token.COLON) {
		p.rewind(m)
		return nil
	}
	p.advance()
	p.commit()
	p.ws()
	typ := p.parseType()
	if typ == nil {
		p.errorAt(p.cur(), "expected field type")
		p.rewind(m)
		return nil
	}
	p.stmtSep()

	n := &ast.Variable{Base: ast.NewBase(ast.KindVariable, nameTok.Concat(typ.Tok())), Name: p.text(nameTok), Type: typ}
	ast.SetParentOf(n, typ)
	return n
}

// alias_decl ← IDENT ws ':' ws "alias" templates? ws "from" mws type
func (p *Parser) tryAlias() *ast.Alias {
	nameTok, m, ok := p.tryNameColon()
	if !ok {
		return nil
	}
	if !p.check(token.ALIAS) {
		p.rewind(m)
		return nil
	}
	p.advance()
	p.commit()
	p.ws()
	templates := p.tryTemplateParams()
	p.ws()
	if _, ok := p.expect(token.FROM, "'from'"); !ok {
		p.rewind(m)
		return nil
	}
	if !p.mws() {
		p.rewind(m)
		return nil
	}
	from := p.parseType()
	if from == nil {
		p.errorAt(p.cur(), "expected aliased type")
		p.rewind(m)
		return nil
	}

	n := &ast.Alias{Base: ast.NewBase(ast.KindAlias, nameTok.Concat(from.Tok())), Name: p.text(nameTok), Templates: templates, From: from}
	for _, t := range templates {
		ast.SetParentOf(n, t)
	}
	ast.SetParentOf(n, from)
	return n
}

// variant_decl ← IDENT ws ':' ws "variant" templates? (mws "from" mws type)? ws
//
//	'{' ( type_decl | member stmtSep )* '}'
//
// Members are separated by stmtSep (e.g. `Red; Green = 5; Blue`);
// nested type declarations may appear anywhere between them, the same
// interleaving Struct's body allows.
func (p *Parser) tryVariant() *ast.Variant {
	nameTok, m, ok := p.tryNameColon()
	if !ok {
		return nil
	}
	if !p.check(token.VARIANT) {
		p.rewind(m)
		return nil
	}
	p.advance()
	p.commit()
	p.ws()
	templates := p.tryTemplateParams()

	var from ast.Type
	mf := p.save()
	p.ws()
	if p.check(token.FROM) {
		p.advance()
		if p.mws() {
			from = p.parseType()
		}
	}
	if from == nil {
		p.rewind(mf)
	}

	p.ws()
	if _, ok := p.expect(token.LEFT_BRACE, "'{'"); !ok {
		p.rewind(m)
		return nil
	}

	var members []*ast.VariantMember
	var nested []ast.Declaration
	var nextTag int64
	for {
		p.ws()
		if p.check(token.RIGHT_BRACE) || p.check(token.END) {
			break
		}
		if d := p.tryTypeDecl(); d != nil {
			nested = append(nested, d)
			p.stmtSep()
			continue
		}
		mem := p.parseVariantMember(nextTag)
		if mem == nil {
			p.errorAt(p.cur(), "expected variant member")
			p.advance()
			continue
		}
		members = append(members, mem)
		nextTag = mem.Tag + 1
		if !p.stmtSep() {
			break
		}
	}
	end, _ := p.expect(token.RIGHT_BRACE, "'}'")

	n := &ast.Variant{
		Base:      ast.NewBase(ast.KindVariant, nameTok.Concat(end)),
		Name:      p.text(nameTok),
		Templates: templates,
		From:      from,
		Members:   members,
		Nested:    nested,
	}
	for _, t := range templates {
		ast.SetParentOf(n, t)
	}
	ast.SetParentOf(n, from)
	for _, mem := range members {
		ast.SetParentOf(n, mem)
	}
	for _, d := range nested {
		ast.SetParentOf(n, d)
	}
	return n
}

// member ← IDENT (ws '(' type (',' type)* ')')? (ws '=' ws INT)?
//
// Both optional clauses probe with a saved mark and rewind to before
// their leading whitespace on no-match, so a member's trailing
// separator is left for the caller's stmtSep.
func (p *Parser) parseVariantMember(autoTag int64) *ast.VariantMember {
	if !p.check(token.IDENTIFIER) {
		return nil
	}
	nameTok := p.advance()
	last := nameTok

	var payload *ast.TupleType
	mp := p.save()
	p.ws()
	if p.check(token.LEFT_PAREN) {
		lp := p.advance()
		elems := p.parseTypeList(token.RIGHT_PAREN)
		rp, _ := p.expect(token.RIGHT_PAREN, "')'")
		payload = &ast.TupleType{Base: ast.NewBase(ast.KindTupleType, lp.Concat(rp)), Elements: elems}
		for _, e := range elems {
			ast.SetParentOf(payload, e)
		}
		last = rp
	} else {
		p.rewind(mp)
	}

	tag := autoTag
	mt := p.save()
	p.ws()
	if p.check(token.ASSIGN) {
		p.advance()
		p.ws()
		if p.check(token.INT) {
			tagTok := p.advance()
			if v, err := tokenDecodeIntLiteral(p.text(tagTok), tagTok.Base); err == nil {
				tag = int64(v)
			}
			last = tagTok
		} else {
			p.errorAt(p.cur(), "expected integer literal for variant tag")
			p.rewind(mt)
		}
	} else {
		p.rewind(mt)
	}

	n := &ast.VariantMember{Base: ast.NewBase(ast.KindVariantMember, nameTok.Concat(last)), Name: p.text(nameTok), Payload: payload, Tag: tag}
	if payload != nil {
		ast.SetParentOf(n, payload)
	}
	return n
}

// func_decl ← IDENT ws ':' ws
//
//	( "extern" mws "func" ws template_params? ws arglist_optional_names ws ("->" ws type)?
//	| "inline"? ws "func" ws template_params? ws arglist_mandatory_names ws ("->" ws type)? ws scope )
//
// Function shares its IDENT-colon prefix with Struct/Variant/Alias, and
// also with Variable's typed form — which can itself start with "extern"
// (an extern variable). The two are told apart only by whether "extern"
// is immediately followed by "func"; a mismatch anywhere in this
// lookahead rewinds all the way back to before the name, letting
// tryVariableDecl reparse the same prefix.
func (p *Parser) tryFunction() *ast.Function {
	nameTok, m, ok := p.tryNameColon()
	if !ok {
		return nil
	}

	extern := false
	if p.check(token.EXTERN) {
		mm := p.save()
		p.advance()
		if p.mws() && p.check(token.FUNC) {
			extern = true
		} else {
			p.rewind(mm)
		}
	}
	inline := false
	if !extern && p.check(token.INLINE) {
		mm := p.save()
		p.advance()
		p.ws()
		if p.check(token.FUNC) {
			inline = true
		} else {
			p.rewind(mm)
		}
	}
	if !p.check(token.FUNC) {
		p.rewind(m)
		return nil
	}
	start := p.advance()
	p.commit()
	p.ws()
	templates := p.tryTemplateParams()

	if extern && len(templates) > 0 {
		p.errorAt(start, "extern functions cannot define templates")
		p.rewind(m)
		return nil
	}

	p.ws()
	if _, ok := p.expect(token.LEFT_PAREN, "'('"); !ok {
		p.rewind(m)
		return nil
	}
	var args []*ast.Variable
	if extern {
		args = p.parseParamListOptionalNames()
	} else {
		args = p.parseParamList()
	}
	p.ws()
	rp, ok := p.expect(token.RIGHT_PAREN, "')'")
	if !ok {
		p.rewind(m)
		return nil
	}

	last := rp
	var ret ast.Type
	p.ws()
	if p.check(token.ARROW) {
		p.advance()
		p.ws()
		ret = p.parseType()
		if ret != nil {
			last = ret.Tok()
		}
	}

	var body *ast.Scope
	p.ws()
	if extern {
		if p.check(token.LEFT_BRACE) {
			p.errorAt(p.cur(), "extern functions cannot have a body")
			p.rewind(m)
			return nil
		}
		p.stmtSep()
	} else {
		body = p.parseScope()
		if body == nil {
			p.errorAt(p.cur(), "expected function body")
		} else {
			last = body.Tok()
		}
	}

	n := &ast.Function{
		Base:      ast.NewBase(ast.KindFunction, nameTok.Concat(last)),
		Name:      p.text(nameTok),
		Extern:    extern,
		Inline:    inline,
		Templates: templates,
		Args:      args,
		Return:    ret,
		Body:      body,
	}
	for _, t := range templates {
		ast.SetParentOf(n, t)
	}
	for _, a := range args {
		ast.SetParentOf(n, a)
	}
	ast.SetParentOf(n, ret)
	if body != nil {
		ast.SetParentOf(n, body)
	}
	return n
}

// parseParamList ← (param (',' param)*)?, param ← IDENT ws ':' ws type
func (p *Parser) parseParamList() []*ast.Variable {
	var out []*ast.Variable
	p.ws()
	if p.check(token.RIGHT_PAREN) {
		return out
	}
	for {
		p.ws()
		nameTok, ok := p.expect(token.IDENTIFIER, "parameter name")
		if !ok {
			return out
		}
		p.ws()
		if _, ok := p.expect(token.COLON, "':'"); !ok {
			return out
		}
		p.ws()
		typ := p.parseType()
		last := nameTok
		if typ != nil {
			last = typ.Tok()
		}
		v := &ast.Variable{Base: ast.NewBase(ast.KindVariable, nameTok.Concat(last)), Name: p.text(nameTok), Type: typ}
		ast.SetParentOf(v, typ)
		out = append(out, v)
		p.ws()
		if !p.check(token.COMMA) {
			break
		}
		p.advance()
	}
	return out
}

// parseParamListOptionalNames is parseParamList's extern-function variant:
// each parameter may be a bare type with no leading `IDENT :`.
func (p *Parser) parseParamListOptionalNames() []*ast.Variable {
	var out []*ast.Variable
	p.ws()
	if p.check(token.RIGHT_PAREN) {
		return out
	}
	for {
		p.ws()
		name := ""
		first := p.cur()
		if p.check(token.IDENTIFIER) {
			m := p.save()
			nameTok := p.advance()
			p.ws()
			if p.check(token.COLON) {
				p.advance()
				p.ws()
				name = p.text(nameTok)
				first = nameTok
			} else {
				p.rewind(m)
			}
		}
		typ := p.parseType()
		if typ == nil {
			return out
		}
		v := &ast.Variable{Base: ast.NewBase(ast.KindVariable, first.Concat(typ.Tok())), Name: name, Type: typ}
		ast.SetParentOf(v, typ)
		out = append(out, v)
		p.ws()
		if !p.check(token.COMMA) {
			break
		}
		p.advance()
	}
	return out
}

// parseVarModifiers consumes the `extern`/`static` modifiers that follow a
// variable declaration's ':' or ':=', each preceded by mandatory
// whitespace. A repeated modifier is reported but doesn't abort the
// declaration; so is `extern` in the inferred (`:=`) form, where only
// `static` is permitted.
func (p *Parser) parseVarModifiers(allowExtern bool) (extern, static bool) {
	for {
		m := p.save()
		if !isWSToken(p.cur().Kind) {
			return
		}
		p.ws()
		switch {
		case p.check(token.EXTERN):
			tok := p.advance()
			switch {
			case !allowExtern:
				p.errorAt(tok, "'extern' is not permitted in a ':=' declaration")
			case extern:
				p.errorAt(tok, "duplicate 'extern' modifier")
			default:
				extern = true
			}
		case p.check(token.STATIC):
			tok := p.advance()
			if static {
				p.errorAt(tok, "duplicate 'static' modifier")
			}
			static = true
		default:
			p.rewind(m)
			return
		}
	}
}

// variable_decl ← IDENT ws
//
//	( ':' ws modifiers ws type (ws '=' ws expression)?
//	| ":=" ws modifiers ws expression )
//
// consumeSep controls whether the trailing statement separator is eaten
// here; callers that embed a variable declaration in a context with its
// own separator rules (a for-loop's init clause) pass false.
func (p *Parser) parseVariableDeclCore(consumeSep bool) *ast.Variable {
	m := p.save()
	if !p.check(token.IDENTIFIER) {
		return nil
	}
	nameTok := p.advance()
	p.ws()

	if p.check(token.WALRUS) {
		p.advance()
		p.commit()
		_, static := p.parseVarModifiers(false)
		p.ws()
		init := p.parseExpression()
		if init == nil {
			p.errorAt(p.cur(), "expected initializer expression")
			p.rewind(m)
			return nil
		}
		if consumeSep {
			p.stmtSep()
		}
		n := &ast.Variable{
			Base: ast.NewBase(ast.KindVariable, nameTok.Concat(init.Tok())), Name: p.text(nameTok),
			Initializer: init, Static: static, Inferred: true,
		}
		ast.SetParentOf(n, init)
		return n
	}

	if !p.check(token.COLON) {
		p.rewind(m)
		return nil
	}
	p.advance()
	p.commit()
	extern, static := p.parseVarModifiers(true)
	p.ws()
	typ := p.parseType()
	if typ == nil {
		p.errorAt(p.cur(), "expected variable type")
		p.rewind(m)
		return nil
	}
	last := typ.Tok()

	if extern {
		hasInit := func() bool {
			mm := p.save()
			p.ws()
			has := p.check(token.ASSIGN)
			p.rewind(mm)
			return has
		}()
		if hasInit {
			p.errorAt(p.cur(), "extern variables cannot have an initializer")
			p.rewind(m)
			return nil
		}
	}

	p.ws()
	var init ast.Expression
	if p.check(token.ASSIGN) {
		p.advance()
		p.ws()
		init = p.parseExpression()
		if init != nil {
			last = init.Tok()
		}
	}
	if consumeSep {
		p.stmtSep()
	}

	n := &ast.Variable{Base: ast.NewBase(ast.KindVariable, nameTok.Concat(last)), Name: p.text(nameTok), Type: typ, Initializer: init, Extern: extern, Static: static}
	ast.SetParentOf(n, typ, init)
	return n
}

func (p *Parser) tryVariableDecl() *ast.Variable {
	return p.parseVariableDeclCore(true)
}
