// Package status prints a short run summary for interactive users.
package status

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/Veraticus/numlines/pkg/interfaces"
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Reporter writes a one-line summary of a run, normally to stderr.
// A disabled reporter writes nothing.
type Reporter struct {
	mu       sync.Mutex
	writer   io.Writer
	enabled  bool
	okStyle  lipgloss.Style
	errStyle lipgloss.Style
}

// Ensure Reporter implements StatusReporter
var _ interfaces.StatusReporter = (*Reporter)(nil)

// NewReporter creates a new status reporter
func NewReporter(writer io.Writer, enabled bool) *Reporter {
	r := &Reporter{
		writer:  writer,
		enabled: enabled && writer != nil,
	}
	if r.enabled {
		renderer := lipgloss.NewRenderer(writer)
		r.okStyle = renderer.NewStyle().Foreground(lipgloss.Color("2"))
		r.errStyle = renderer.NewStyle().Foreground(lipgloss.Color("1"))
	}
	return r
}

// Enabled reports whether the reporter produces output
func (r *Reporter) Enabled() bool {
	return r.enabled
}

// ReportSuccess reports how many matches were found in input
func (r *Reporter) ReportSuccess(input string, count int) {
	noun := "matches"
	if count == 1 {
		noun = "match"
	}
	r.print(r.okStyle, fmt.Sprintf("✓ %d %s in %s", count, noun, input))
}

// ReportFailure reports a failed run
func (r *Reporter) ReportFailure(err error) {
	if err == nil {
		return
	}
	r.print(r.errStyle, "✗ "+err.Error())
}

func (r *Reporter) print(style lipgloss.Style, text string) {
	if !r.enabled {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	// Best effort; the summary is informational
	_, _ = fmt.Fprintln(r.writer, style.Render(text))
}
