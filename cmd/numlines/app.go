package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Veraticus/numlines/pkg/config"
	"github.com/Veraticus/numlines/pkg/interfaces"
	"github.com/Veraticus/numlines/pkg/logging"
	"github.com/Veraticus/numlines/pkg/output"
	"github.com/Veraticus/numlines/pkg/scanner"
	"github.com/Veraticus/numlines/pkg/source"
	"github.com/Veraticus/numlines/pkg/status"
)

// Streams are the standard streams the application talks to
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config         *config.Config
	Reader         *source.Reader
	Scanner        *scanner.Scanner
	Printer        interfaces.MatchHandler
	StatusReporter interfaces.StatusReporter
	Logger         interfaces.Logger
	out            *bufio.Writer
}

// NewDependencies creates all dependencies with the given configuration
func NewDependencies(cfg *config.Config, streams Streams) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Reader: source.NewReader(streams.In),
		Logger: logging.NewConsoleLogger(streams.Err, cfg.Verbose),
		out:    bufio.NewWriter(streams.Out),
	}

	deps.Scanner = scanner.New(cfg.Patterns)

	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	deps.Printer, err = output.NewPrinter(format, deps.out)
	if err != nil {
		return nil, err
	}

	// The summary is only for people watching a terminal
	statusEnabled := !cfg.Quiet && isTerminal(streams.Err)
	deps.StatusReporter = status.NewReporter(streams.Err, statusEnabled)

	return deps, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && status.IsTerminal(f)
}

// Application represents the main application
type Application struct {
	deps    *Dependencies
	matches int
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// Run reads the configured input and writes every match to the output
func (a *Application) Run() error {
	cfg := a.deps.Config
	logger := a.deps.Logger

	logger.Verbose("reading %s", cfg.Input)
	text, err := a.deps.Reader.ReadAll(cfg.Input)
	if err != nil {
		return a.fail(err)
	}
	logger.Verbose("read %d bytes, scanning with patterns: %s", len(text), patternNames(a.deps.Scanner))

	a.matches = 0
	for m := range a.deps.Scanner.Matches(text) {
		if err := a.deps.Printer.HandleMatch(m); err != nil {
			return a.fail(fmt.Errorf("failed to write match: %w", err))
		}
		a.matches++
	}

	if err := a.deps.Printer.Flush(); err != nil {
		return a.fail(fmt.Errorf("failed to write output: %w", err))
	}
	if err := a.deps.out.Flush(); err != nil {
		return a.fail(fmt.Errorf("failed to write output: %w", err))
	}

	logger.Verbose("found %d matches", a.matches)
	a.deps.StatusReporter.ReportSuccess(cfg.Input, a.matches)
	return nil
}

// fail reports err once: on the status line when it is shown, otherwise
// through the logger.
func (a *Application) fail(err error) error {
	if a.deps.StatusReporter.Enabled() {
		a.deps.StatusReporter.ReportFailure(err)
	} else {
		a.deps.Logger.Error("%v", err)
	}
	return err
}

// MatchCount returns the number of matches written by the last run
func (a *Application) MatchCount() int {
	return a.matches
}

func patternNames(s *scanner.Scanner) string {
	patterns := s.GetPatterns()
	names := make([]string, len(patterns))
	for i, p := range patterns {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}
