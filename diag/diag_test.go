package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/skyfront/token"
)

type fakeSource struct {
	path string
	src  string
}

func (f fakeSource) Path() string   { return f.path }
func (f fakeSource) Buffer() string { return f.src }

func TestRenderCaret_MidLine(t *testing.T) {
	src := "x : int32 = oops\n"
	start := strings.Index(src, "oops")
	line, offset := RenderCaret(src, start, 4)
	// The space after "x" is 11 characters before the token, so the
	// window starts just past it.
	assert.Equal(t, ": int32 = oops", line)
	assert.Equal(t, 10, offset)
}

func TestRenderCaret_SecondLine(t *testing.T) {
	src := "first\nsecond bad\n"
	start := strings.Index(src, "bad")
	line, offset := RenderCaret(src, start, 3)
	assert.Equal(t, "second bad", line)
	assert.Equal(t, 7, offset)
}

func TestCollectingSink_RecordsLocation(t *testing.T) {
	sink := NewCollectingSink()
	src := fakeSource{path: "test.sky", src: "bad token"}
	tok := token.Token{
		Kind:     token.IDENTIFIER,
		Position: token.Position{Line: 1, Column: 1},
		Span:     token.Span{StartOffset: 0, Length: 3},
	}
	sink.ReportAt(src, tok, "something is off", Error)
	sink.Report("general note", Warning)

	require.Len(t, sink.Diagnostics, 2)
	assert.True(t, sink.Diagnostics[0].HasLocation)
	assert.Equal(t, "test.sky", sink.Diagnostics[0].Path)
	assert.False(t, sink.Diagnostics[1].HasLocation)
	assert.True(t, sink.HasErrors())
}

func TestConsoleSink_CountsAndWrites(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, false)
	src := fakeSource{path: "test.sky", src: "bad"}
	tok := token.Token{
		Kind:     token.IDENTIFIER,
		Position: token.Position{Line: 1, Column: 1},
		Span:     token.Span{StartOffset: 0, Length: 3},
	}
	sink.ReportAt(src, tok, "nope", Error)
	sink.Report("heads up", Warning)

	assert.Equal(t, 1, sink.ErrorCount)
	assert.Equal(t, 1, sink.WarningCount)
	out := buf.String()
	assert.Contains(t, out, "test.sky")
	assert.Contains(t, out, "nope")
	assert.Contains(t, out, "~~~")
}
