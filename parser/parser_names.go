package parser

import "github.com/akashmaji946/skyfront/token"

// parseDottedName parses `IDENT (. IDENT)*` with no whitespace permitted
// around the dots, the dotted_name shape used for namespace names,
// using-statement targets, and base types.
func (p *Parser) parseDottedName() (name string, last token.Token, ok bool) {
	if !p.check(token.IDENTIFIER) {
		return "", token.Token{}, false
	}
	first := p.advance()
	name = p.text(first)
	last = first
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
	return name, last, true
}
