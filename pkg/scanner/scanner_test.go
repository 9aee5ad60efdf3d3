package scanner

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Veraticus/numlines/pkg/types"
)

func TestNumberLineScanner_Scan(t *testing.T) {
	s := NewNumberLineScanner()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty input", text: "", want: nil},
		{name: "single number without newline", text: "42", want: []string{"42"}},
		{name: "single number with newline", text: "42\n", want: []string{"42"}},
		{name: "mixed content", text: "abc\n123\n\n456", want: []string{"123", "456"}},
		{name: "digits mixed with letters", text: "12a\n34", want: []string{"34"}},
		{name: "only newlines", text: "\n\n\n", want: nil},
		{name: "leading zeros kept", text: "007\n0\n", want: []string{"007", "0"}},
		{name: "spaces disqualify a line", text: " 1\n2 \n3", want: []string{"3"}},
		{name: "signs and decimals are not digits", text: "-1\n+2\n3.5\n1e3", want: nil},
		{name: "carriage return is part of the line", text: "12\r\n34", want: []string{"34"}},
		{name: "non-ASCII digits are ignored", text: "١٢٣\n٤\n5", want: []string{"5"}},
		{name: "leading newline", text: "\n99", want: []string{"99"}},
		{name: "consecutive number lines", text: "1\n22\n333\n", want: []string{"1", "22", "333"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Collect(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Collect(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestNumberLineScanner_CountMatchesDigitLines(t *testing.T) {
	s := NewNumberLineScanner()
	digitLine := regexp.MustCompile(`^[0-9]+$`)

	inputs := []string{
		"",
		"\n",
		"1",
		"1\n2\n3",
		"a\nb\n12\n\n13x\nx13\n0000\n",
		"\n\n7\n\n",
		"line one\n2\nline three\n44\n",
	}

	for _, text := range inputs {
		want := 0
		for _, line := range strings.Split(text, "\n") {
			if digitLine.MatchString(line) {
				want++
			}
		}
		got := len(s.Collect(text))
		if got != want {
			t.Errorf("text %q: expected %d matches but got %d", text, want, got)
		}
	}
}

func TestNumberLineScanner_Restartable(t *testing.T) {
	s := NewNumberLineScanner()
	text := "10\nx\n20\n30"
	seq := s.Scan(text)

	var first, second []string
	for m := range seq {
		first = append(first, m)
	}
	for m := range seq {
		second = append(second, m)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second iteration differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"10", "20", "30"}, first); diff != "" {
		t.Errorf("unexpected matches (-want +got):\n%s", diff)
	}
}

func TestNumberLineScanner_EarlyBreak(t *testing.T) {
	s := NewNumberLineScanner()

	var got []string
	for m := range s.Scan("1\n2\n3\n4") {
		got = append(got, m)
		if len(got) == 2 {
			break
		}
	}

	if diff := cmp.Diff([]string{"1", "2"}, got); diff != "" {
		t.Errorf("unexpected matches (-want +got):\n%s", diff)
	}
}

func TestNumberLineScanner_MatchesNeverContainNewlines(t *testing.T) {
	s := NewNumberLineScanner()
	text := "\n1\n\n22\n333\n\n"

	for m := range s.Matches(text) {
		if strings.Contains(m.Text, "\n") {
			t.Errorf("match %q contains a newline", m.Text)
		}
		if text[m.Position:m.Position+len(m.Text)] != m.Text {
			t.Errorf("match %q does not sit at position %d", m.Text, m.Position)
		}
	}
}

func TestNumberLineScanner_Matches(t *testing.T) {
	s := NewNumberLineScanner()

	var got []types.Match
	for m := range s.Matches("abc\n123\n\n456") {
		got = append(got, m)
	}

	want := []types.Match{
		{PatternName: NumberLineName, Text: "123", Position: 4, Line: 2},
		{PatternName: NumberLineName, Text: "456", Position: 9, Line: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Matches mismatch (-want +got):\n%s", diff)
	}
}

func compiled(t *testing.T, patterns []types.Pattern) []types.Pattern {
	t.Helper()
	for i := range patterns {
		if err := patterns[i].Compile(); err != nil {
			t.Fatalf("failed to compile pattern %s: %v", patterns[i].Name, err)
		}
	}
	return patterns
}

func TestScanner_MultiplePatterns(t *testing.T) {
	patterns := compiled(t, []types.Pattern{
		NumberLinePattern(),
		{
			Name:    "year",
			Regex:   `\b(?:19|20)\d{2}\b`,
			Enabled: true,
		},
		{
			Name:    "disabled",
			Regex:   `abc`,
			Enabled: false,
		},
	})

	s := New(patterns)
	if len(s.GetPatterns()) != 2 {
		t.Fatalf("expected 2 active patterns but got %d", len(s.GetPatterns()))
	}

	var got []types.Match
	for m := range s.Matches("abc in 1999\n2024\n7") {
		got = append(got, m)
	}

	// 2024 matches both patterns at the same offset; pattern order decides.
	want := []types.Match{
		{PatternName: "year", Text: "1999", Position: 7, Line: 1},
		{PatternName: NumberLineName, Text: "2024", Position: 12, Line: 2},
		{PatternName: "year", Text: "2024", Position: 12, Line: 2},
		{PatternName: NumberLineName, Text: "7", Position: 17, Line: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Matches mismatch (-want +got):\n%s", diff)
	}
}

func TestScanner_NoPatterns(t *testing.T) {
	s := New(nil)

	if got := s.Collect("1\n2\n3"); len(got) != 0 {
		t.Errorf("expected no results but got %v", got)
	}
}

func TestScanner_SkipsUncompiledPatterns(t *testing.T) {
	s := New([]types.Pattern{
		{Name: "no_regex", Enabled: true},
		{Name: "not_compiled", Regex: `\d+`, Enabled: true},
	})

	if len(s.GetPatterns()) != 0 {
		t.Errorf("expected 0 active patterns but got %d", len(s.GetPatterns()))
	}
}

func TestScanner_ValueGroup(t *testing.T) {
	patterns := compiled(t, []types.Pattern{
		{
			Name:    "domain",
			Regex:   `https?://(?:www\.)?(?P<value>[a-z0-9.-]+\.[a-z]{2,6})`,
			Enabled: true,
		},
		{
			Name:    "optional",
			Regex:   `id=(?P<value>[0-9]+)?;`,
			Enabled: true,
		},
	})

	var got []types.Match
	for m := range New(patterns).Matches("a https://www.example.com/x\nid=;id=7;") {
		got = append(got, m)
	}

	// The empty id= has no value and is skipped.
	want := []types.Match{
		{PatternName: "domain", Text: "example.com", Position: 14, Line: 1},
		{PatternName: "optional", Text: "7", Position: 35, Line: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Matches mismatch (-want +got):\n%s", diff)
	}
}
