package parser

import "github.com/akashmaji946/skyfront/token"

// tokenDecodeIntLiteral decodes tok's literal text (base already recorded on
// the token by the lexer) into its numeric value, for callers — like a
// variant member's explicit tag — that only need the raw value.
func tokenDecodeIntLiteral(literal string, base int) (uint64, error) {
	if base == 0 {
		base = 10
	}
	v, err := token.DecodeInt(literal, base)
	if err != nil {
		return 0, err
	}
	return v.Value, nil
}
