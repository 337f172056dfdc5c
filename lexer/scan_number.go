package lexer

import "github.com/akashmaji946/skyfront/token"

var intSuffixes = []string{"s8", "s16", "s32", "s64", "u8", "u16", "u32", "u64"}
var floatSuffixes = []string{"f16", "f32", "f64"}

func isBaseDigit(c byte, base int) bool {
	switch base {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return c >= '0' && c <= '7'
	case 16:
		return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	default:
		return isDigit(c)
	}
}

// scanNumber recognizes an integer or float literal: optional base
// prefix, digit run with `_` separators, and an optional
// width/signedness suffix. A `.` followed by a digit switches it to a
// float literal (base prefixes are decimal-only there).
func (s *Scanner) scanNumber() token.Token {
	pos := s.here()
	start := s.pos

	base := 10
	if s.current() == '0' && (s.peek() == 'x' || s.peek() == 'X') {
		base = 16
		s.advance()
		s.advance()
	} else if s.current() == '0' && (s.peek() == 'o' || s.peek() == 'O') {
		base = 8
		s.advance()
		s.advance()
	} else if s.current() == '0' && (s.peek() == 'b' || s.peek() == 'B') {
		base = 2
		s.advance()
		s.advance()
	}

	s.consumeDigitRun(base)

	if base == 10 && s.current() == '.' && isDigit(s.peek()) {
		s.advance() // '.'
		s.consumeDigitRun(10)
		s.consumeSuffix(floatSuffixes)
		tok := s.tokenAt(token.FLOAT, pos, start)
		return tok
	}

	s.consumeSuffix(intSuffixes)
	tok := s.tokenAt(token.INT, pos, start)
	tok.Base = base
	return tok
}

func (s *Scanner) consumeDigitRun(base int) {
	for !s.atEnd() && (isBaseDigit(s.current(), base) || s.current() == '_') {
		s.advance()
	}
}

// consumeSuffix greedily matches the longest candidate suffix at the
// current position (so "s16" isn't cut short at "s1").
func (s *Scanner) consumeSuffix(candidates []string) {
	best := ""
	for _, cand := range candidates {
		if s.hasPrefixAt(cand) && len(cand) > len(best) {
			best = cand
		}
	}
	for i := 0; i < len(best); i++ {
		s.advance()
	}
}

func (s *Scanner) hasPrefixAt(text string) bool {
	for i := 0; i < len(text); i++ {
		if s.peekAt(i) != text[i] {
			return false
		}
	}
	// The suffix must not bleed into a longer identifier, e.g. "u32x".
	return !isIdentPart(s.peekAt(len(text)))
}
