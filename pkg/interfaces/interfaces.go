// Package interfaces defines the core interfaces used throughout the application.
package interfaces

import (
	"iter"

	"github.com/Veraticus/numlines/pkg/types"
)

// MatchSource produces matches from a piece of text.
type MatchSource interface {
	Matches(text string) iter.Seq[types.Match]
}

// MatchHandler consumes matches in document order.
type MatchHandler interface {
	HandleMatch(m types.Match) error
	Flush() error
}

// StatusReporter reports the outcome of a run.
type StatusReporter interface {
	Enabled() bool
	ReportSuccess(input string, count int)
	ReportFailure(err error)
}

// Logger writes diagnostic messages.
type Logger interface {
	Verbose(format string, args ...interface{})
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}
