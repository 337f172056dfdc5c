package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIdent(t *testing.T) {
	assert.Equal(t, STRUCT, LookupIdent("struct"))
	assert.Equal(t, FUNC_TYPE, LookupIdent("Func"))
	assert.Equal(t, SHL, LookupIdent("shl"))
	assert.Equal(t, IDENTIFIER, LookupIdent("structs"))
	assert.Equal(t, IDENTIFIER, LookupIdent("x"))
}

func TestSpanCover(t *testing.T) {
	a := Span{StartOffset: 4, Length: 3}
	b := Span{StartOffset: 10, Length: 5}
	c := a.Cover(b)
	assert.Equal(t, 4, c.StartOffset)
	assert.Equal(t, 15, c.End())
	// Cover is symmetric.
	assert.Equal(t, c, b.Cover(a))
}

func TestTokenConcatKeepsKindAndPosition(t *testing.T) {
	first := Token{Kind: STRUCT, Position: Position{Line: 1, Column: 1}, Span: Span{StartOffset: 0, Length: 6}}
	last := Token{Kind: RIGHT_BRACE, Position: Position{Line: 3, Column: 1}, Span: Span{StartOffset: 20, Length: 1}}
	joined := first.Concat(last)
	assert.Equal(t, STRUCT, joined.Kind)
	assert.Equal(t, first.Position, joined.Position)
	assert.Equal(t, 0, joined.Span.StartOffset)
	assert.Equal(t, 21, joined.Span.End())
}

func TestDecodeInt(t *testing.T) {
	tests := []struct {
		literal  string
		base     int
		value    uint64
		typeName string
		signed   bool
	}{
		{"0", 10, 0, "int64", true},
		{"1_000", 10, 1000, "int64", true},
		{"0xFF", 16, 255, "int64", true},
		{"0o17", 8, 15, "int64", true},
		{"0b101", 2, 5, "int64", true},
		{"42s8", 10, 42, "s8", true},
		{"42u32", 10, 42, "u32", false},
	}
	for _, tt := range tests {
		v, err := DecodeInt(tt.literal, tt.base)
		require.NoError(t, err, "literal %q", tt.literal)
		assert.Equal(t, tt.value, v.Value, "literal %q", tt.literal)
		assert.Equal(t, tt.typeName, v.TypeName, "literal %q", tt.literal)
		assert.Equal(t, tt.signed, v.Signed, "literal %q", tt.literal)
	}
}

func TestDecodeInt_NegativeUnsignedRejected(t *testing.T) {
	_, err := DecodeInt("-1u8", 10)
	require.Error(t, err)
}

func TestDecodeInt_OverflowRejected(t *testing.T) {
	_, err := DecodeInt("99999999999999999999", 10)
	require.Error(t, err)
}

func TestDecodeInt_SuffixWidthOverflowRejected(t *testing.T) {
	for _, literal := range []string{"300u8", "65536u16", "4294967296u32", "128s8", "32768s16", "-129s8"} {
		_, err := DecodeInt(literal, 10)
		assert.Error(t, err, "literal %q", literal)
	}

	// Boundary values of each width still decode.
	v, err := DecodeInt("255u8", 10)
	require.NoError(t, err)
	assert.EqualValues(t, 255, v.Value)
	v, err = DecodeInt("127s8", 10)
	require.NoError(t, err)
	assert.EqualValues(t, 127, v.Value)
	v, err = DecodeInt("-128s8", 10)
	require.NoError(t, err)
	assert.True(t, v.Negative)
}

func TestDecodeFloat(t *testing.T) {
	v, err := DecodeFloat("3.14")
	require.NoError(t, err)
	assert.InDelta(t, 3.14, v.Value, 1e-9)
	assert.Equal(t, "float64", v.TypeName)

	v, err = DecodeFloat("1_0.5f32")
	require.NoError(t, err)
	assert.InDelta(t, 10.5, v.Value, 1e-9)
	assert.Equal(t, "f32", v.TypeName)
}

func TestUnescapeString(t *testing.T) {
	tests := []struct {
		raw     string
		decoded string
	}{
		{`hello`, "hello"},
		{`a\nb`, "a\nb"},
		{`tab\there`, "tab\there"},
		{`quote\"q`, `quote"q`},
		{`nul\0end`, "nul\x00end"},
		{`hex\x41!`, "hexA!"},
		{`oct\101!`, "octA!"},
		// Unrecognized escapes keep the backslash and the character.
		{`odd\qend`, `odd\qend`},
	}
	for _, tt := range tests {
		got, err := UnescapeString(tt.raw)
		require.NoError(t, err, "raw %q", tt.raw)
		assert.Equal(t, tt.decoded, got, "raw %q", tt.raw)
	}
}

func TestUnescapeChar(t *testing.T) {
	r, consumed, err := UnescapeChar("a")
	require.NoError(t, err)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 1, consumed)

	r, consumed, err = UnescapeChar(`\n`)
	require.NoError(t, err)
	assert.Equal(t, '\n', r)
	assert.Equal(t, 2, consumed)

	_, _, err = UnescapeChar("")
	require.Error(t, err)
}
