package lexer

import (
	"fmt"

	"github.com/akashmaji946/skyfront/diag"
	"github.com/akashmaji946/skyfront/token"
)

// errorKind names one of the scanner's four lexical error kinds.
type errorKind int

const (
	unknownError errorKind = iota
	stringNewlineError
	stringEndError
	multiLineCommEndError
)

func reportLexError(s *Scanner, kind errorKind, pos token.Position, format string, args ...any) {
	if s.sink == nil {
		return
	}
	message := fmt.Sprintf(format, args...)
	tok := token.Token{Kind: token.ILLEGAL, Position: pos, Span: token.Span{StartOffset: s.pos, Length: 1}}
	s.sink.ReportAt(s, tok, message, diag.Error)
	_ = kind
}
