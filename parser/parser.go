/*
File    : skyfront/parser/parser.go

Package parser implements a recursive-descent, speculative parser:
every production that may fail saves the cursor on entry and rewinds
to it on a non-committed failure; once a
production has consumed its committing prefix, further failures are
reported to the diagnostic sink but the cursor still rewinds so the
caller can try its next alternative.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/skyfront/ast"
	"github.com/akashmaji946/skyfront/diag"
	"github.com/akashmaji946/skyfront/lexer"
	"github.com/akashmaji946/skyfront/token"
)

// Parser holds a cursor over a pre-scanned token stream. Productions
// may look arbitrarily far ahead and rewind, so the whole stream is
// materialized up front rather than pulled token-by-token from the
// lexer.
type Parser struct {
	unit   *ast.Unit
	tokens []token.Token
	pos    int
	sink   diag.Sink

	// committed records whether the current production has consumed its
	// committing prefix; save/rewind store and restore it with the
	// cursor. No code reads it to decide whether to report: each
	// production reports its own failures through errorAt/expect.
	committed bool
}

// New builds a Parser over the token stream next_token repeatedly
// produces from sc, stopping at (and keeping) the terminal END token.
func New(unitPath, source string, sc *lexer.Scanner, sink diag.Sink) *Parser {
	var toks []token.Token
	for {
		tok := sc.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.END {
			break
		}
	}
	return &Parser{
		unit:   ast.NewUnit(unitPath, source),
		tokens: toks,
		sink:   sink,
	}
}

// mark and rewind implement the save/try/rewind cursor discipline
// every speculative production relies on.
type mark struct {
	pos       int
	committed bool
}

func (p *Parser) save() mark {
	return mark{pos: p.pos, committed: p.committed}
}

func (p *Parser) rewind(m mark) {
	p.pos = m.pos
	p.committed = m.committed
}

// commit marks the current production as having consumed a
// distinguishing prefix: subsequent mismatches become reported errors
// instead of silent NoMatch.
func (p *Parser) commit() { p.committed = true }

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // END
	}
	return p.tokens[p.pos]
}

func (p *Parser) at(offset int) token.Token {
	i := p.pos + offset
	if i < 0 {
		i = 0
	}
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) advance() token.Token {
	tok := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind token.Kind) bool { return p.cur().Kind == kind }

// text returns the source text of tok.
func (p *Parser) text(tok token.Token) string { return tok.Text(p.unit.Source) }

// reportAt reports a diagnostic anchored at tok. Used both for
// committed-production structural failures and for semantic constraint
// violations discovered mid-parse.
func (p *Parser) reportAt(tok token.Token, level diag.Level, format string, args ...interface{}) {
	if p.sink == nil {
		return
	}
	p.sink.ReportAt(p.unit, tok, fmt.Sprintf(format, args...), level)
}

func (p *Parser) errorAt(tok token.Token, format string, args ...interface{}) {
	p.reportAt(tok, diag.Error, format, args...)
}

// ParseUnit is the parser's single entry point: consume the whole token
// stream and produce the translation unit.
func ParseUnit(unitPath, source string, sc *lexer.Scanner, sink diag.Sink) *ast.Unit {
	p := New(unitPath, source, sc, sink)
	p.parseUnit()
	return p.unit
}
