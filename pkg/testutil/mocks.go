package testutil

import (
	"sync"

	"github.com/Veraticus/numlines/pkg/interfaces"
	"github.com/Veraticus/numlines/pkg/types"
)

// MockMatchHandler is a thread-safe mock implementation of interfaces.MatchHandler for testing
type MockMatchHandler struct {
	mu         sync.Mutex
	matches    []types.Match
	attempts   []types.Match // Track all handle attempts
	handleErr  error
	flushErr   error
	flushCount int
}

var _ interfaces.MatchHandler = (*MockMatchHandler)(nil)

// NewMockMatchHandler creates a new mock match handler
func NewMockMatchHandler() *MockMatchHandler {
	return &MockMatchHandler{
		matches:  []types.Match{},
		attempts: []types.Match{},
	}
}

// HandleMatch implements the MatchHandler interface
func (m *MockMatchHandler) HandleMatch(match types.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.attempts = append(m.attempts, match)
	if m.handleErr != nil {
		return m.handleErr
	}

	m.matches = append(m.matches, match)
	return nil
}

// Flush implements the MatchHandler interface
func (m *MockMatchHandler) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushCount++
	return m.flushErr
}

// GetMatches returns a copy of successfully handled matches
func (m *MockMatchHandler) GetMatches() []types.Match {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]types.Match, len(m.matches))
	copy(result, m.matches)
	return result
}

// GetTexts returns the text of every successfully handled match
func (m *MockMatchHandler) GetTexts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]string, len(m.matches))
	for i, match := range m.matches {
		result[i] = match.Text
	}
	return result
}

// GetAttempts returns a copy of all attempted matches (including failures)
func (m *MockMatchHandler) GetAttempts() []types.Match {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]types.Match, len(m.attempts))
	copy(result, m.attempts)
	return result
}

// GetFlushCount returns how many times Flush was called
func (m *MockMatchHandler) GetFlushCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushCount
}

// SetError sets the error to return on HandleMatch calls
func (m *MockMatchHandler) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handleErr = err
}

// SetFlushError sets the error to return on Flush calls
func (m *MockMatchHandler) SetFlushError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushErr = err
}

// MockStatusReporter is a mock implementation of interfaces.StatusReporter for testing
type MockStatusReporter struct {
	mu        sync.Mutex
	enabled   bool
	successes []Success
	failures  []error
}

// Success records a ReportSuccess call
type Success struct {
	Input string
	Count int
}

var _ interfaces.StatusReporter = (*MockStatusReporter)(nil)

// NewMockStatusReporter creates a new mock status reporter
func NewMockStatusReporter(enabled bool) *MockStatusReporter {
	return &MockStatusReporter{enabled: enabled}
}

// Enabled implements the StatusReporter interface
func (m *MockStatusReporter) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// ReportSuccess implements the StatusReporter interface
func (m *MockStatusReporter) ReportSuccess(input string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.successes = append(m.successes, Success{Input: input, Count: count})
}

// ReportFailure implements the StatusReporter interface
func (m *MockStatusReporter) ReportFailure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, err)
}

// GetSuccesses returns a copy of the recorded successes
func (m *MockStatusReporter) GetSuccesses() []Success {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]Success, len(m.successes))
	copy(result, m.successes)
	return result
}

// GetFailures returns a copy of the recorded failures
func (m *MockStatusReporter) GetFailures() []error {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]error, len(m.failures))
	copy(result, m.failures)
	return result
}
