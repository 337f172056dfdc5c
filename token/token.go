/*
File    : skyfront/token/token.go

Package token defines the token model shared by the lexer and the parser:
the Token value itself, the enumeration of token kinds, source positions
and byte spans, and the assignment-operator set and binary precedence
table the parser's expression cascade consults.
*/
package token

import "fmt"

// Kind enumerates every distinguishable token the lexer can produce,
// grouped into structural, keywords, operators, literals,
// identifier/context-specific, and the END sentinel.
type Kind int

const (
	ILLEGAL Kind = iota
	END          // sentinel terminating the token stream
	WHITESPACE   // run of spaces/tabs, emitted as a single token
	NEWLINE      // \n or \r\n, collapsed to one token

	// Structural tokens
	SEMICOLON
	COMMA
	COLON
	DOUBLE_COLON
	ELLIPSIS
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET
	DOT
	ARROW

	// Keywords
	MATCH
	CASE
	IS
	ALIAS
	FROM
	STRUCT
	VARIANT
	IF
	ELSE
	WHILE
	FOR
	BREAK
	CONTINUE
	FUNC
	OPERATOR
	DEFER
	USING
	NAMESPACE
	RETURN
	INLINE
	EXTERN
	STATIC
	USE
	IMPORT
	VERSION
	UNARY
	BINARY
	SIZEOF
	AS
	FUNC_TYPE    // Func
	CLOSURE_TYPE // Closure

	// Operators
	PLUS
	MINUS
	ASTERISK
	SLASH
	PERCENT
	BANG
	NOT_EQUALS
	EQUALS
	PLUS_ASSIGN
	MINUS_ASSIGN
	ASTERISK_ASSIGN
	SLASH_ASSIGN
	PERCENT_ASSIGN
	LESS
	GREATER
	LESS_EQUALS
	GREATER_EQUALS
	PIPE
	OR
	AND
	AMPERSAND
	TILDE
	ASSIGN
	CARET
	SHR
	SHL
	SAR
	SAL
	AMPERSAND_ASSIGN
	CARET_ASSIGN
	PIPE_ASSIGN
	WALRUS // :=

	// Literals
	STRING
	INT
	FLOAT
	CHAR
	BOOL
	NULL

	// Identifier and context-specific tokens
	IDENTIFIER
	USE_LIB
	UNIT_PATH
)

// names gives the human-readable/diagnostic spelling for each kind; a
// kind missing here renders as "<kind N>".
var names = map[Kind]string{
	ILLEGAL:    "<illegal>",
	END:        "<eof>",
	WHITESPACE: "<whitespace>",
	NEWLINE:    "<newline>",

	SEMICOLON:     ";",
	COMMA:         ",",
	COLON:         ":",
	DOUBLE_COLON:  "::",
	ELLIPSIS:      "...",
	LEFT_PAREN:    "(",
	RIGHT_PAREN:   ")",
	LEFT_BRACE:    "{",
	RIGHT_BRACE:   "}",
	LEFT_BRACKET:  "[",
	RIGHT_BRACKET: "]",
	DOT:           ".",
	ARROW:         "->",

	MATCH:        "match",
	CASE:         "case",
	IS:           "is",
	ALIAS:        "alias",
	FROM:         "from",
	STRUCT:       "struct",
	VARIANT:      "variant",
	IF:           "if",
	ELSE:         "else",
	WHILE:        "while",
	FOR:          "for",
	BREAK:        "break",
	CONTINUE:     "continue",
	FUNC:         "func",
	OPERATOR:     "operator",
	DEFER:        "defer",
	USING:        "using",
	NAMESPACE:    "namespace",
	RETURN:       "return",
	INLINE:       "inline",
	EXTERN:       "extern",
	STATIC:       "static",
	USE:          "use",
	IMPORT:       "import",
	VERSION:      "version",
	UNARY:        "unary",
	BINARY:       "binary",
	SIZEOF:       "sizeof",
	AS:           "as",
	FUNC_TYPE:    "Func",
	CLOSURE_TYPE: "Closure",

	PLUS:             "+",
	MINUS:            "-",
	ASTERISK:         "*",
	SLASH:            "/",
	PERCENT:          "%",
	BANG:             "!",
	NOT_EQUALS:       "!=",
	EQUALS:           "==",
	PLUS_ASSIGN:      "+=",
	MINUS_ASSIGN:     "-=",
	ASTERISK_ASSIGN:  "*=",
	SLASH_ASSIGN:     "/=",
	PERCENT_ASSIGN:   "%=",
	LESS:             "<",
	GREATER:          ">",
	LESS_EQUALS:      "<=",
	GREATER_EQUALS:   ">=",
	PIPE:             "|",
	OR:               "||",
	AND:              "&&",
	AMPERSAND:        "&",
	TILDE:            "~",
	ASSIGN:           "=",
	CARET:            "^",
	SHR:              "shr",
	SHL:              "shl",
	SAR:              "sar",
	SAL:              "sal",
	AMPERSAND_ASSIGN: "&=",
	CARET_ASSIGN:     "^=",
	PIPE_ASSIGN:      "|=",
	WALRUS:           ":=",

	STRING: "string",
	INT:    "int",
	FLOAT:  "float",
	CHAR:   "char",
	BOOL:   "bool",
	NULL:   "null",

	IDENTIFIER: "identifier",
	USE_LIB:    "<use-lib>",
	UNIT_PATH:  "<unit-path>",
}

// keywords maps a scanned identifier's literal text to its keyword kind.
// Only present here if the literal names a reserved word; LookupIdent
// falls back to IDENTIFIER for everything else.
var keywords = map[string]Kind{
	"match":     MATCH,
	"case":      CASE,
	"is":        IS,
	"alias":     ALIAS,
	"from":      FROM,
	"struct":    STRUCT,
	"variant":   VARIANT,
	"if":        IF,
	"else":      ELSE,
	"while":     WHILE,
	"for":       FOR,
	"break":     BREAK,
	"continue":  CONTINUE,
	"func":      FUNC,
	"operator":  OPERATOR,
	"defer":     DEFER,
	"using":     USING,
	"namespace": NAMESPACE,
	"return":    RETURN,
	"inline":    INLINE,
	"extern":    EXTERN,
	"static":    STATIC,
	"use":       USE,
	"import":    IMPORT,
	"version":   VERSION,
	"unary":     UNARY,
	"binary":    BINARY,
	"sizeof":    SIZEOF,
	"as":        AS,
	"Func":      FUNC_TYPE,
	"Closure":   CLOSURE_TYPE,
	"true":      BOOL,
	"false":     BOOL,
	"null":      NULL,

	// Shift operators are spelled as words but behave as operator
	// tokens, not declaration keywords.
	"shr": SHR,
	"shl": SHL,
	"sar": SAR,
	"sal": SAL,
}

// LookupIdent returns the keyword Kind for literal if it names a reserved
// word, or IDENTIFIER otherwise.
func LookupIdent(literal string) Kind {
	if kind, ok := keywords[literal]; ok {
		return kind
	}
	return IDENTIFIER
}

// String renders the diagnostic spelling of a token kind, e.g. for
// "expected X, got Y" messages.
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("<kind %d>", int(k))
}

// Position is a 1-based line/column location in a source buffer.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a byte range into a Unit's owned source buffer, used for
// zero-copy text extraction and for AST node source ranges.
type Span struct {
	StartOffset int
	Length      int
}

func (s Span) End() int { return s.StartOffset + s.Length }

// Cover returns the smallest span covering both s and other. Both spans
// must reference the same buffer; used to build a multi-token AST node's
// source range from its first and last token.
func (s Span) Cover(other Span) Span {
	start := s.StartOffset
	if other.StartOffset < start {
		start = other.StartOffset
	}
	end := s.End()
	if other.End() > end {
		end = other.End()
	}
	return Span{StartOffset: start, Length: end - start}
}

// Token is a single lexical unit: its kind, its source position, and the
// byte span into the owning Unit's buffer it was scanned from. Tokens do
// not copy text — Text(buffer) slices the buffer lazily.
type Token struct {
	Kind     Kind
	Position Position
	Span     Span

	// Base is populated only for INT tokens: the numeric base the digit
	// run was scanned in (2, 8, 10, or 16), needed to decode the literal
	// without rescanning the source.
	Base int
}

// Text extracts the token's literal text from the buffer it was scanned
// from. Valid for the lifetime of the Unit owning buffer (see ast.Unit).
func (t Token) Text(buffer string) string {
	if t.Span.StartOffset < 0 || t.Span.End() > len(buffer) {
		return ""
	}
	return buffer[t.Span.StartOffset:t.Span.End()]
}

// Concat returns a token spanning the combined byte range of t and other,
// keeping t's kind and position. This is the parser's primary tool for
// building an AST node's source range out of two tokens it has already
// consumed (e.g. the opening and closing token of a bracketed production).
func (t Token) Concat(other Token) Token {
	return Token{
		Kind:     t.Kind,
		Position: t.Position,
		Span:     t.Span.Cover(other.Span),
		Base:     t.Base,
	}
}

func (t Token) String() string {
	return fmt.Sprintf("Token{%s @ %s}", t.Kind, t.Position)
}

// Precedence levels for the expression cascade. Level 0 is "not an
// operator"; higher numbers bind tighter.
const (
	_ = iota
	PrecAssign
	PrecLogicalOr
	PrecLogicalAnd
	PrecBitOr
	PrecBitXor
	PrecBitAnd
	PrecEquality
	PrecRelational
	PrecShift
	PrecAdditive
	PrecMultiplicative
)

// assignOps is the set of tokens recognized as assignment operators by the
// lowest-precedence level of the expression cascade.
var assignOps = map[Kind]bool{
	ASSIGN:           true,
	PLUS_ASSIGN:      true,
	MINUS_ASSIGN:     true,
	ASTERISK_ASSIGN:  true,
	SLASH_ASSIGN:     true,
	PERCENT_ASSIGN:   true,
	AMPERSAND_ASSIGN: true,
	CARET_ASSIGN:     true,
	PIPE_ASSIGN:      true,
}

// IsAssignOp reports whether k is one of the nine assignment operators.
func IsAssignOp(k Kind) bool { return assignOps[k] }

// binaryPrecedence maps each binary operator token to its cascade level.
var binaryPrecedence = map[Kind]int{
	OR: PrecLogicalOr,

	AND: PrecLogicalAnd,

	PIPE: PrecBitOr,

	CARET: PrecBitXor,

	AMPERSAND: PrecBitAnd,

	EQUALS:     PrecEquality,
	NOT_EQUALS: PrecEquality,

	LESS:           PrecRelational,
	GREATER:        PrecRelational,
	LESS_EQUALS:    PrecRelational,
	GREATER_EQUALS: PrecRelational,

	SHL: PrecShift,
	SHR: PrecShift,
	SAL: PrecShift,
	SAR: PrecShift,

	PLUS:  PrecAdditive,
	MINUS: PrecAdditive,

	ASTERISK: PrecMultiplicative,
	SLASH:    PrecMultiplicative,
	PERCENT:  PrecMultiplicative,
}

// BinaryPrecedence returns the cascade level for a binary operator token,
// or 0 if k is not a binary operator recognized by the cascade.
func BinaryPrecedence(k Kind) int {
	return binaryPrecedence[k]
}
