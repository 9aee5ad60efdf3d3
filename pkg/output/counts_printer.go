package output

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/Veraticus/numlines/pkg/types"
)

type tally struct {
	text  string
	count int
	first int
}

// CountsPrinter counts distinct matches and prints the most frequent first.
type CountsPrinter struct {
	w       io.Writer
	tallies map[string]*tally
	seen    int
}

// NewCountsPrinter creates a counts printer.
func NewCountsPrinter(w io.Writer) *CountsPrinter {
	return &CountsPrinter{
		w:       w,
		tallies: make(map[string]*tally),
	}
}

// HandleMatch counts the match.
func (p *CountsPrinter) HandleMatch(m types.Match) error {
	t, ok := p.tallies[m.Text]
	if !ok {
		t = &tally{text: m.Text, first: p.seen}
		p.tallies[m.Text] = t
	}
	t.count++
	p.seen++
	return nil
}

// Flush prints one "text count" line per distinct match. Equal counts keep
// the order of first appearance.
func (p *CountsPrinter) Flush() error {
	sorted := make([]*tally, 0, len(p.tallies))
	for _, t := range p.tallies {
		sorted = append(sorted, t)
	}
	slices.SortFunc(sorted, func(a, b *tally) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.first, b.first)
	})

	for _, t := range sorted {
		if _, err := fmt.Fprintf(p.w, "%s %d\n", t.text, t.count); err != nil {
			return err
		}
	}
	return nil
}
