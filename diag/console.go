package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/akashmaji946/skyfront/token"
)

// ConsoleSink writes diagnostics to an io.Writer, coloring the level tag
// and the caret line when the writer is a terminal. One *color.Color per
// severity rather than ANSI codes formatted inline.
type ConsoleSink struct {
	out       io.Writer
	errColor  *color.Color
	warnColor *color.Color
	dimColor  *color.Color

	ErrorCount   int
	WarningCount int
}

// NewConsoleSink builds a sink writing to out. Coloring is disabled when
// isTerminal is false; NewStderrSink computes isTerminal via go-isatty,
// the same guard fatih/color applies to os.Stdout by default.
func NewConsoleSink(out io.Writer, isTerminal bool) *ConsoleSink {
	errColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow, color.Bold)
	dimColor := color.New(color.FgGreen)
	if !isTerminal {
		errColor.DisableColor()
		warnColor.DisableColor()
		dimColor.DisableColor()
	}
	return &ConsoleSink{out: out, errColor: errColor, warnColor: warnColor, dimColor: dimColor}
}

// NewStderrSink builds a ConsoleSink over os.Stderr-compatible writers,
// auto-detecting terminal-ness before deciding whether to emit ANSI
// escapes.
func NewStderrSink(out io.Writer, fd uintptr) *ConsoleSink {
	return NewConsoleSink(out, isatty.IsTerminal(fd))
}

func (s *ConsoleSink) levelColor(level Level) *color.Color {
	if level == Warning {
		return s.warnColor
	}
	return s.errColor
}

func (s *ConsoleSink) countLevel(level Level) {
	if level == Warning {
		s.WarningCount++
	} else {
		s.ErrorCount++
	}
}

// Report implements diag.Sink.
func (s *ConsoleSink) Report(message string, level Level) {
	s.countLevel(level)
	tag := s.levelColor(level).Sprint(level.String())
	fmt.Fprintf(s.out, "%s: %s\n", tag, message)
}

// ReportAt implements diag.Sink, rendering the clang-style caret window
// described in RenderCaret beneath the message.
func (s *ConsoleSink) ReportAt(src Source, tok token.Token, message string, level Level) {
	s.countLevel(level)
	tag := s.levelColor(level).Sprint(level.String())
	fmt.Fprintf(s.out, "In unit %s:%s, %s: \n%s\n", src.Path(), tok.Position, tag, message)

	line, offset := RenderCaret(src.Buffer(), tok.Span.StartOffset, tok.Span.Length)
	fmt.Fprintln(s.out, line)
	caret := strings.Repeat(" ", offset) + s.dimColor.Sprint(strings.Repeat("~", max(tok.Span.Length, 1)))
	fmt.Fprintln(s.out, caret)
}
