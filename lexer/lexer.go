/*
File    : skyfront/lexer/lexer.go

Package lexer implements the conditional (mode-switching) scanner: a
single exported operation, NextToken, that walks the source buffer one
token at a time while tracking which sublexer ("condition") is active.
*/
package lexer

import (
	"github.com/akashmaji946/skyfront/diag"
	"github.com/akashmaji946/skyfront/token"
)

// condition names the active sublexer: code, string literal, either
// comment form, or one of the two use-directive states.
type condition int

const (
	condCode condition = iota
	condString
	condSingleLineComment
	condMultiLineComment
	condUseLib
	condUnitPath
)

// Scanner tokenizes one source buffer. It owns no goroutines and blocks
// on nothing; NextToken is safe to call in a tight loop until it returns
// an END token, which it then returns idempotently forever after.
type Scanner struct {
	path string // unit path, used only for diagnostics
	src  string
	pos  int
	line int
	col  int

	condition condition
	// pendingUseLib is set the instant a "use" keyword token is emitted;
	// the mandatory whitespace token that must follow it is still
	// produced normally, but once consumed the condition switches to
	// USE_LIB instead of staying in CODE.
	pendingUseLib bool
	// pendingImportPath plays the same role for "import", which names a
	// unit path directly with no intervening library name.
	pendingImportPath bool

	sink diag.Sink

	done bool // true once END has been produced at least once
}

// NewScanner builds a Scanner over src. path is purely cosmetic (used in
// diagnostic headers); sink receives lexical errors as they're found.
func NewScanner(path, src string, sink diag.Sink) *Scanner {
	return &Scanner{path: path, src: src, pos: 0, line: 1, col: 1, sink: sink}
}

// Path implements diag.Source.
func (s *Scanner) Path() string { return s.path }

// Buffer implements diag.Source.
func (s *Scanner) Buffer() string { return s.src }

func (s *Scanner) atEnd() bool { return s.pos >= len(s.src) }

func (s *Scanner) peekAt(offset int) byte {
	i := s.pos + offset
	if i < 0 || i >= len(s.src) {
		return 0
	}
	return s.src[i]
}

func (s *Scanner) current() byte { return s.peekAt(0) }

func (s *Scanner) peek() byte { return s.peekAt(1) }

// advance consumes one byte, updating line/column. Newlines are NOT
// tracked here (callers that consume a newline byte update line/col
// themselves as part of building the NEWLINE token) so that callers
// scanning a known-not-newline run can call advance in a loop freely.
func (s *Scanner) advance() {
	s.pos++
	s.col++
}

func (s *Scanner) here() token.Position { return token.Position{Line: s.line, Column: s.col} }

func (s *Scanner) spanFrom(start int) token.Span {
	return token.Span{StartOffset: start, Length: s.pos - start}
}

func (s *Scanner) tokenAt(kind token.Kind, pos token.Position, start int) token.Token {
	return token.Token{Kind: kind, Position: pos, Span: s.spanFrom(start)}
}

// NextToken returns the next token in the stream. After the first END is
// produced, every subsequent call returns another (zero-length) END.
func (s *Scanner) NextToken() token.Token {
	if s.done {
		return s.endToken()
	}
	for {
		var tok token.Token
		var produced bool

		switch s.condition {
		case condSingleLineComment:
			tok, produced = s.scanSingleLineComment()
		case condMultiLineComment:
			tok, produced = s.scanMultiLineComment()
		case condUseLib:
			tok, produced = s.scanUseLib(), true
		case condUnitPath:
			tok, produced = s.scanUnitPath(), true
		default:
			tok, produced = s.scanCode()
		}

		if produced {
			if tok.Kind == token.END {
				s.done = true
			}
			return tok
		}
	}
}

func (s *Scanner) endToken() token.Token {
	return token.Token{Kind: token.END, Position: s.here(), Span: token.Span{StartOffset: len(s.src), Length: 0}}
}

func (s *Scanner) errorf(kind errorKind, pos token.Position, format string, args ...any) {
	reportLexError(s, kind, pos, format, args...)
}
