package lexer

import "github.com/akashmaji946/skyfront/token"

// scanUseLib recognizes the library-name token after "use" plus its
// mandatory whitespace. Per the condition table, the sublexer then peeks
// one more character: a following `/` starts a UNIT_PATH, otherwise
// control returns to CODE.
func (s *Scanner) scanUseLib() token.Token {
	pos := s.here()
	start := s.pos

	if s.atEnd() || !isIdentStart(s.current()) {
		s.errorf(unknownError, pos, "expected library name after 'use'")
		s.condition = condCode
		return s.tokenAt(token.ILLEGAL, pos, start)
	}

	for !s.atEnd() && isIdentPart(s.current()) {
		s.advance()
	}

	if s.current() == '/' {
		s.condition = condUnitPath
	} else {
		s.condition = condCode
	}
	return s.tokenAt(token.USE_LIB, pos, start)
}

// scanUnitPath recognizes a `/segment/segment...` unit path, used both
// by `use <lib>/<path>` and directly by `import <path>`.
func (s *Scanner) scanUnitPath() token.Token {
	pos := s.here()
	start := s.pos

	for !s.atEnd() && isUnitPathByte(s.current()) {
		s.advance()
	}

	s.condition = condCode
	if s.pos == start {
		s.errorf(unknownError, pos, "expected unit path")
		return s.tokenAt(token.ILLEGAL, pos, start)
	}
	return s.tokenAt(token.UNIT_PATH, pos, start)
}

func isUnitPathByte(c byte) bool {
	return c == '/' || c == '.' || isIdentPart(c)
}
