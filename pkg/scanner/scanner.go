// Package scanner finds pattern matches in text. Its default pattern selects
// lines made entirely of decimal digits.
package scanner

import (
	"cmp"
	"iter"
	"regexp"
	"slices"
	"strings"

	"github.com/Veraticus/numlines/pkg/interfaces"
	"github.com/Veraticus/numlines/pkg/types"
)

const (
	// NumberLineName is the name of the built-in digit-line pattern.
	NumberLineName = "number_line"
	// NumberLineRegex matches a non-empty line of ASCII digits. ^ and $ are
	// line anchors, so the surrounding newlines are never part of a match.
	NumberLineRegex = `(?m)^[0-9]+$`
	// ValueGroup names the capture group that becomes the match text when a
	// pattern defines it, e.g. (?P<value>...).
	ValueGroup = "value"
)

var numberLineRE = regexp.MustCompile(NumberLineRegex)

// NumberLinePattern returns the built-in digit-line pattern, compiled and enabled.
func NumberLinePattern() types.Pattern {
	p := types.Pattern{
		Name:        NumberLineName,
		Regex:       NumberLineRegex,
		Description: "lines consisting only of decimal digits",
		Enabled:     true,
	}
	p.SetCompiledRegex(numberLineRE)
	return p
}

// Scanner applies a fixed set of patterns to text
type Scanner struct {
	patterns []types.Pattern
}

var _ interfaces.MatchSource = (*Scanner)(nil)

// New creates a scanner over the enabled, compiled patterns.
func New(patterns []types.Pattern) *Scanner {
	enabled := make([]types.Pattern, 0, len(patterns))
	for _, p := range patterns {
		if p.Enabled && p.CompiledRegex() != nil {
			enabled = append(enabled, p)
		}
	}

	return &Scanner{
		patterns: enabled,
	}
}

// NewNumberLineScanner creates a scanner that only looks for digit lines.
func NewNumberLineScanner() *Scanner {
	return New([]types.Pattern{NumberLinePattern()})
}

// Matches returns the matches in text, ordered by position. Matches of
// different patterns at the same position keep pattern order. A pattern
// with a group named ValueGroup reports only that group's text and offset.
//
// The sequence holds no state between iterations: ranging over it again
// scans the text again and yields the same matches.
func (s *Scanner) Matches(text string) iter.Seq[types.Match] {
	return func(yield func(types.Match) bool) {
		var hits []types.Match
		for _, pattern := range s.patterns {
			re := pattern.CompiledRegex()
			group := re.SubexpIndex(ValueGroup)
			if group < 0 {
				group = 0
			}
			for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
				start, end := loc[2*group], loc[2*group+1]
				if start < 0 {
					// value group did not take part in this match
					continue
				}
				hits = append(hits, types.Match{
					PatternName: pattern.Name,
					Text:        text[start:end],
					Position:    start,
				})
			}
		}
		if len(s.patterns) > 1 {
			slices.SortStableFunc(hits, func(a, b types.Match) int {
				return cmp.Compare(a.Position, b.Position)
			})
		}

		line, last := 1, 0
		for _, hit := range hits {
			line += strings.Count(text[last:hit.Position], "\n")
			last = hit.Position
			hit.Line = line
			if !yield(hit) {
				return
			}
		}
	}
}

// Scan returns the text of every match, in order.
func (s *Scanner) Scan(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for m := range s.Matches(text) {
			if !yield(m.Text) {
				return
			}
		}
	}
}

// Collect returns all match texts as a slice.
func (s *Scanner) Collect(text string) []string {
	return slices.Collect(s.Scan(text))
}

// GetPatterns returns the active patterns
func (s *Scanner) GetPatterns() []types.Pattern {
	return s.patterns
}
