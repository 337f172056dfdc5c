package parser

import (
	"github.com/akashmaji946/skyfront/ast"
	"github.com/akashmaji946/skyfront/token"
)

// parseUnit implements: unit ← (use | import | ws)* (declaration | ws)* END
func (p *Parser) parseUnit() {
	for {
		p.ws()
		if p.check(token.END) {
			return
		}
		if use := p.tryUse(); use != nil {
			p.unit.Uses = append(p.unit.Uses, use)
			ast.SetParentOf(p.unit, use)
			continue
		}
		if imp := p.tryImport(); imp != nil {
			p.unit.Imports = append(p.unit.Imports, imp)
			ast.SetParentOf(p.unit, imp)
			continue
		}
		break
	}

	for {
		p.ws()
		if p.check(token.END) {
			return
		}
		decl := p.tryDeclaration()
		if decl == nil {
			p.errorAt(p.cur(), "expected declaration, got %s", p.cur().Kind)
			p.advance()
			continue
		}
		p.unit.Decls = append(p.unit.Decls, decl)
		ast.SetParentOf(p.unit, decl)
	}
}

// use ← "use" mws USE_LIB (UNIT_PATH)?
func (p *Parser) tryUse() *ast.Use {
	m := p.save()
	if !p.check(token.USE) {
		return nil
	}
	start := p.advance()
	p.commit()

	if !p.mws() {
		p.rewind(m)
		return nil
	}
	if !p.check(token.USE_LIB) {
		p.errorAt(p.cur(), "expected library name after 'use'")
		p.rewind(m)
		return nil
	}
	libTok := p.advance()
	last := libTok

	path := ""
	if p.check(token.UNIT_PATH) {
		pathTok := p.advance()
		path = p.text(pathTok)
		last = pathTok
	}

	return &ast.Use{
		Base:    ast.NewBase(ast.KindUse, start.Concat(last)),
		Library: p.text(libTok),
		Path:    path,
	}
}

// import ← "import" mws UNIT_PATH
func (p *Parser) tryImport() *ast.Import {
	m := p.save()
	if !p.check(token.IMPORT) {
		return nil
	}
	start := p.advance()
	p.commit()

	if !p.mws() {
		p.rewind(m)
		return nil
	}
	if !p.check(token.UNIT_PATH) {
		p.errorAt(p.cur(), "expected unit path after 'import'")
		p.rewind(m)
		return nil
	}
	pathTok := p.advance()

	return &ast.Import{
		Base: ast.NewBase(ast.KindImport, start.Concat(pathTok)),
		Path: p.text(pathTok),
	}
}

// declaration ← namespace | type_decl | func_decl | variable_decl
func (p *Parser) tryDeclaration() ast.Declaration {
	if ns := p.tryNamespace(); ns != nil {
		return ns
	}
	if d := p.tryTypeDecl(); d != nil {
		return d
	}
	if fn := p.tryFunction(); fn != nil {
		return fn
	}
	if v := p.tryVariableDecl(); v != nil {
		return v
	}
	return nil
}

// type_decl ← struct_decl | variant_decl | alias_decl
func (p *Parser) tryTypeDecl() ast.Declaration {
	if s := p.tryStruct(); s != nil {
		return s
	}
	if v := p.tryVariant(); v != nil {
		return v
	}
	if a := p.tryAlias(); a != nil {
		return a
	}
	return nil
}
