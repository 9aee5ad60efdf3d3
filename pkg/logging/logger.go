// Package logging provides the stderr logger used by numlines.
package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/Veraticus/numlines/pkg/interfaces"
)

// ConsoleLogger writes log messages to a writer, normally stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	w       io.Writer
	verbose bool
	mu      sync.Mutex
}

var _ interfaces.Logger = (*ConsoleLogger)(nil)

// NewConsoleLogger creates a new ConsoleLogger.
// Verbose() calls are no-ops unless verbose is true.
func NewConsoleLogger(w io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		w:       w,
		verbose: verbose,
	}
}

// Verbose logs diagnostic details when verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("numlines: ", format, args)
}

// Info logs informational messages.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write("Error: ", format, args)
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(l.w, prefix+format+"\n", args...)
	} else {
		fmt.Fprint(l.w, prefix+format+"\n")
	}
}

// NullLogger discards everything.
type NullLogger struct{}

// NewNullLogger creates a logger that writes nothing.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (NullLogger) Verbose(string, ...interface{}) {}
func (NullLogger) Info(string, ...interface{})    {}
func (NullLogger) Error(string, ...interface{})   {}
