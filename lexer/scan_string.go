package lexer

import "github.com/akashmaji946/skyfront/token"

// scanString recognizes a double-quoted string literal. The returned
// token's span covers the surrounding quotes; token.UnescapeString on
// the inner text (Text(buffer) with the quotes trimmed) decodes escapes.
//
// This is the STRING condition: entered on seeing `"`, exited on the
// matching `"`. Unlike the comment conditions it never needs more than
// one NextToken call's worth of work, so it's implemented as a direct
// scan rather than round-tripping through the condition dispatch loop.
func (s *Scanner) scanString() token.Token {
	pos := s.here()
	start := s.pos
	s.advance() // opening quote

	for {
		if s.atEnd() {
			s.errorf(stringEndError, pos, "unterminated string literal")
			break
		}
		c := s.current()
		if c == '"' {
			s.advance()
			break
		}
		if c == '\n' {
			s.errorf(stringNewlineError, pos, "unescaped newline in string literal")
			break
		}
		if c == '\\' && !s.atEnd() {
			s.advance()
			if !s.atEnd() {
				s.advance()
			}
			continue
		}
		s.advance()
	}

	return s.tokenAt(token.STRING, pos, start)
}

// scanChar recognizes a single-quoted character literal. Multi-character
// literals are not rejected here (the parser validates exactly one
// logical character was decoded and still produces a recovery node
// from the first character).
func (s *Scanner) scanChar() token.Token {
	pos := s.here()
	start := s.pos
	s.advance() // opening quote

	for {
		if s.atEnd() {
			s.errorf(stringEndError, pos, "unterminated char literal")
			break
		}
		c := s.current()
		if c == '\'' {
			s.advance()
			break
		}
		if c == '\n' {
			s.errorf(stringNewlineError, pos, "unescaped newline in char literal")
			break
		}
		if c == '\\' && !s.atEnd() {
			s.advance()
			if !s.atEnd() {
				s.advance()
			}
			continue
		}
		s.advance()
	}

	return s.tokenAt(token.CHAR, pos, start)
}

func (s *Scanner) scanSingleLineComment() (token.Token, bool) {
	for !s.atEnd() && s.current() != '\n' {
		s.advance()
	}
	if s.atEnd() {
		s.condition = condCode
		return token.Token{}, false
	}
	s.condition = condCode
	return s.scanNewline(), true
}

func (s *Scanner) scanMultiLineComment() (token.Token, bool) {
	pos := s.here()
	for {
		if s.atEnd() {
			s.errorf(multiLineCommEndError, pos, "unterminated multi-line comment")
			s.condition = condCode
			return token.Token{}, false
		}
		if s.current() == '\n' {
			s.line++
			s.col = 1
			s.pos++
			continue
		}
		if s.current() == '*' && s.peek() == '/' {
			s.advance()
			s.advance()
			s.condition = condCode
			return token.Token{}, false
		}
		s.advance()
	}
}
