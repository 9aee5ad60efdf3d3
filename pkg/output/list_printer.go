package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/numlines/pkg/types"
)

// ListPrinter collects matches and prints them as one bracketed list.
type ListPrinter struct {
	w     io.Writer
	texts []string
}

// NewListPrinter creates a list printer.
func NewListPrinter(w io.Writer) *ListPrinter {
	return &ListPrinter{w: w, texts: []string{}}
}

// HandleMatch records the match.
func (p *ListPrinter) HandleMatch(m types.Match) error {
	p.texts = append(p.texts, m.Text)
	return nil
}

// Flush prints the collected matches.
func (p *ListPrinter) Flush() error {
	_, err := fmt.Fprintln(p.w, p.texts)
	return err
}

// JoinedPrinter collects matches and prints them space-separated on one line.
type JoinedPrinter struct {
	w     io.Writer
	texts []string
}

// NewJoinedPrinter creates a joined printer.
func NewJoinedPrinter(w io.Writer) *JoinedPrinter {
	return &JoinedPrinter{w: w}
}

// HandleMatch records the match.
func (p *JoinedPrinter) HandleMatch(m types.Match) error {
	p.texts = append(p.texts, m.Text)
	return nil
}

// Flush prints the collected matches.
func (p *JoinedPrinter) Flush() error {
	_, err := io.WriteString(p.w, strings.Join(p.texts, " ")+"\n")
	return err
}
