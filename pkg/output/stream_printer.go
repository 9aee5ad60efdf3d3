package output

import (
	"io"

	"github.com/Veraticus/numlines/pkg/types"
)

// StreamPrinter writes every match as soon as it arrives.
type StreamPrinter struct {
	w      io.Writer
	suffix string
}

// NewStreamPrinter creates a printer that writes each match followed by suffix.
func NewStreamPrinter(w io.Writer, suffix string) *StreamPrinter {
	return &StreamPrinter{w: w, suffix: suffix}
}

// HandleMatch writes the match text.
func (p *StreamPrinter) HandleMatch(m types.Match) error {
	if _, err := io.WriteString(p.w, m.Text+p.suffix); err != nil {
		return err
	}
	return nil
}

// Flush is a no-op; nothing is buffered.
func (p *StreamPrinter) Flush() error {
	return nil
}
