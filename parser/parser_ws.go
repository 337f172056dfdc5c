package parser

import "github.com/akashmaji946/skyfront/token"

func isWSToken(k token.Kind) bool { return k == token.WHITESPACE || k == token.NEWLINE }

// ws consumes zero or more WHITESPACE/NEWLINE tokens, the
// optional-whitespace-or-newline shorthand used between nearly every
// grammatical element.
func (p *Parser) ws() {
	for isWSToken(p.cur().Kind) {
		p.advance()
	}
}

// mws consumes one or more WHITESPACE/NEWLINE tokens, reporting an error
// if none are present. Used where the grammar writes "mws" (e.g. after
// "use", or between an alias's "from" and its type). Returns false (and reports) on
// failure; callers in a still-speculative production should treat that
// as a signal to rewind rather than calling errorAt again themselves.
func (p *Parser) mws() bool {
	if !isWSToken(p.cur().Kind) {
		p.errorAt(p.cur(), "expected whitespace, got %s", p.cur().Kind)
		return false
	}
	p.ws()
	return true
}

// stmtSep consumes the statement separator: (whitespace | newline |
// semicolon)+.
func (p *Parser) stmtSep() bool {
	found := false
	for isWSToken(p.cur().Kind) || p.cur().Kind == token.SEMICOLON {
		p.advance()
		found = true
	}
	return found
}

// expect consumes the current token if it matches kind, reporting an
// error anchored there otherwise. Intended for use after a production has
// already committed, so the error reflects a real structural mismatch
// rather than a speculative one.
func (p *Parser) expect(kind token.Kind, what string) (token.Token, bool) {
	if p.cur().Kind != kind {
		p.errorAt(p.cur(), "expected %s", what)
		return token.Token{}, false
	}
	return p.advance(), true
}
