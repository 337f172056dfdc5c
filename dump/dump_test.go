package dump

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/skyfront/diag"
	"github.com/akashmaji946/skyfront/lexer"
	"github.com/akashmaji946/skyfront/parser"
)

func parseForDump(t *testing.T, src string) string {
	t.Helper()
	sink := diag.NewCollectingSink()
	sc := lexer.NewScanner("test.sky", src, sink)
	unit := parser.ParseUnit("test.sky", src, sc, sink)
	require.False(t, sink.HasErrors(), "diagnostics: %v", sink.Diagnostics)
	return Dump(unit)
}

func TestDump_FunctionGraph(t *testing.T) {
	dot := parseForDump(t, "f : func (x : int32) -> int32 { return x }")
	assert.True(t, strings.HasPrefix(dot, "digraph AST {"))
	assert.Contains(t, dot, "Function\\nf")
	assert.Contains(t, dot, "[label=\"arg\"]")
	assert.Contains(t, dot, "[label=\"body\"]")
	assert.Contains(t, dot, "Return")
}

func TestDump_NodeIDsAreUnique(t *testing.T) {
	dot := parseForDump(t, "a : int32\nb : int32")
	seen := map[string]bool{}
	for _, line := range strings.Split(dot, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "n") || !strings.Contains(line, "[label=") || strings.Contains(line, "->") {
			continue
		}
		id := line[:strings.Index(line, " ")]
		assert.False(t, seen[id], "duplicate vertex %s", id)
		seen[id] = true
	}
	assert.GreaterOrEqual(t, len(seen), 5)
}

func TestSpew_IncludesFieldValues(t *testing.T) {
	sink := diag.NewCollectingSink()
	src := "x : int32 = 1"
	sc := lexer.NewScanner("test.sky", src, sink)
	unit := parser.ParseUnit("test.sky", src, sc, sink)
	out := Spew(unit)
	assert.Contains(t, out, "Variable")
	assert.Contains(t, out, "Name")
}
