package parser

import (
	"github.com/akashmaji946/skyfront/ast"
	"github.com/akashmaji946/skyfront/token"
)

// parseType implements the type grammar:
//
//	type         ← primary_type ('*' | '[' ']')*
//	primary_type ← FUNC_TYPE ('(' type_list? ')')? ('->' type)?
//	             | CLOSURE_TYPE ('(' type_list? ')')? ('->' type)?
//	             | '(' (type (',' type)*)? ')'
//	             | dotted_name ('<' type_list '>')?
func (p *Parser) parseType() ast.Type {
	base := p.parsePrimaryType()
	if base == nil {
		return nil
	}
	for {
		p.ws()
		m := p.save()
		if p.check(token.ASTERISK) {
			start := p.advance()
			base = &ast.PointerType{Base: ast.NewBase(ast.KindPointerType, start), Inner: base}
			ast.SetParentOf(base, base.(*ast.PointerType).Inner)
			continue
		}
		if p.check(token.LEFT_BRACKET) {
			start := p.advance()
			p.ws()
			if !p.check(token.RIGHT_BRACKET) {
				p.rewind(m)
				break
			}
			end := p.advance()
			base = &ast.ArrayType{Base: ast.NewBase(ast.KindArrayType, start.Concat(end)), Inner: base}
			ast.SetParentOf(base, base.(*ast.ArrayType).Inner)
			continue
		}
		p.rewind(m)
		break
	}
	return base
}

func (p *Parser) parsePrimaryType() ast.Type {
	p.ws()

	if p.check(token.FUNC_TYPE) || p.check(token.CLOSURE_TYPE) {
		isClosure := p.check(token.CLOSURE_TYPE)
		start := p.advance()
		end := start

		// Both the parameter list and the return type are optional; a
		// bare `Func` is a valid (if unhelpful) type.
		var args []ast.Type
		ma := p.save()
		p.ws()
		if p.check(token.LEFT_PAREN) {
			p.advance()
			args = p.parseTypeList(token.RIGHT_PAREN)
			p.ws()
			rp, ok := p.expect(token.RIGHT_PAREN, "')'")
			if !ok {
				return nil
			}
			end = rp
		} else {
			p.rewind(ma)
		}

		var ret ast.Type
		mr := p.save()
		p.ws()
		if p.check(token.ARROW) {
			p.advance()
			p.ws()
			ret = p.parseType()
			if ret != nil {
				end = ret.Tok()
			}
		} else {
			p.rewind(mr)
		}
		if isClosure {
			n := &ast.ClosureType{Base: ast.NewBase(ast.KindClosureType, start.Concat(end)), Args: args, Return: ret}
			for _, a := range args {
				ast.SetParentOf(n, a)
			}
			ast.SetParentOf(n, ret)
			return n
		}
		n := &ast.FunctionType{Base: ast.NewBase(ast.KindFunctionType, start.Concat(end)), Args: args, Return: ret}
		for _, a := range args {
			ast.SetParentOf(n, a)
		}
		ast.SetParentOf(n, ret)
		return n
	}

	if p.check(token.LEFT_PAREN) {
		m := p.save()
		start := p.advance()
		p.ws()
		elems := p.parseTypeList(token.RIGHT_PAREN)
		p.ws()
		if !p.check(token.RIGHT_PAREN) {
			p.rewind(m)
			return nil
		}
		end := p.advance()
		n := &ast.TupleType{Base: ast.NewBase(ast.KindTupleType, start.Concat(end)), Elements: elems}
		for _, e := range elems {
			ast.SetParentOf(n, e)
		}
		return n
	}

	if p.check(token.IDENTIFIER) {
		first := p.advance()
		name := p.text(first)
		last := first
		for p.check(token.DOT) {
			m := p.save()
			p.advance()
			if !p.check(token.IDENTIFIER) {
				p.rewind(m)
				break
			}
			seg := p.advance()
			name += "." + p.text(seg)
			last = seg
		}

		var templates []ast.Type
		if p.check(token.LESS) {
			m := p.save()
			p.advance()
			list := p.parseTypeList(token.GREATER)
			p.ws()
			if p.check(token.GREATER) && len(list) > 0 {
				templates = list
				last = p.advance()
			} else {
				p.rewind(m)
			}
		}

		n := &ast.BaseType{Base: ast.NewBase(ast.KindBaseType, first.Concat(last)), Name: name, Templates: templates, Ref: nil}
		for _, t := range templates {
			ast.SetParentOf(n, t)
		}
		return n
	}

	return nil
}

// parseTypeList parses a comma-separated list of types up to (but not
// consuming) a token of kind terminator.
func (p *Parser) parseTypeList(terminator token.Kind) []ast.Type {
	var out []ast.Type
	p.ws()
	if p.check(terminator) {
		return out
	}
	for {
		t := p.parseType()
		if t == nil {
			return out
		}
		out = append(out, t)
		p.ws()
		if !p.check(token.COMMA) {
			break
		}
		p.advance()
		p.ws()
	}
	return out
}
