/*
Package diag defines the diagnostic sink the lexer and parser report
through: two operations, a bare message and a token-anchored message
with a rendered source window.
*/
package diag

import (
	"fmt"

	"github.com/akashmaji946/skyfront/token"
)

// Level distinguishes a diagnostic that should fail a run from one that
// is merely advisory.
type Level int

const (
	Error Level = iota
	Warning
)

func (l Level) String() string {
	if l == Warning {
		return "warning"
	}
	return "error"
}

// Source is the minimal view of a parsed unit a sink needs to render a
// token-anchored diagnostic: its display path and its owned buffer.
type Source interface {
	Path() string
	Buffer() string
}

// Sink is the diagnostic collaborator named by the lexer and parser.
// Callers never abort on Report/ReportAt; the caller decides whether to
// keep going, matching the "report and rewind" propagation policy.
type Sink interface {
	Report(message string, level Level)
	ReportAt(src Source, tok token.Token, message string, level Level)
}

// Diagnostic is one recorded report, used by sinks that buffer instead
// of printing immediately (CollectingSink). ConsoleSink prints each
// report at once and keeps only per-level counts.
type Diagnostic struct {
	Message string
	Level   Level

	HasLocation bool
	Path        string
	Position    token.Position
	Window      string // rendered clang-style caret view, empty if HasLocation is false
}

func (d Diagnostic) String() string {
	if !d.HasLocation {
		return fmt.Sprintf("%s: %s", d.Level, d.Message)
	}
	return fmt.Sprintf("In unit %s:%s, %s: \n%s\n%s", d.Path, d.Position, d.Level, d.Message, d.Window)
}
