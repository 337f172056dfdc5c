package diag

import "github.com/akashmaji946/skyfront/token"

// CollectingSink buffers every report instead of printing it, carrying
// level and (when present) a rendered location for assertions in tests.
type CollectingSink struct {
	Diagnostics []Diagnostic
}

func NewCollectingSink() *CollectingSink {
	return &CollectingSink{}
}

func (s *CollectingSink) Report(message string, level Level) {
	s.Diagnostics = append(s.Diagnostics, Diagnostic{Message: message, Level: level})
}

func (s *CollectingSink) ReportAt(src Source, tok token.Token, message string, level Level) {
	line, offset := RenderCaret(src.Buffer(), tok.Span.StartOffset, tok.Span.Length)
	_ = offset
	s.Diagnostics = append(s.Diagnostics, Diagnostic{
		Message:     message,
		Level:       level,
		HasLocation: true,
		Path:        src.Path(),
		Position:    tok.Position,
		Window:      line,
	})
}

// HasErrors reports whether any Error-level diagnostic was collected.
func (s *CollectingSink) HasErrors() bool {
	for _, d := range s.Diagnostics {
		if d.Level == Error {
			return true
		}
	}
	return false
}
