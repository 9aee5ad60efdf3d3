package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/numlines/pkg/types"
)

// Record is the YAML form of a match.
type Record struct {
	Pattern string `yaml:"pattern"`
	Text    string `yaml:"text"`
	Line    int    `yaml:"line"`
	Offset  int    `yaml:"offset"`
}

// YAMLPrinter collects matches and encodes them as a YAML sequence.
type YAMLPrinter struct {
	w       io.Writer
	records []Record
}

// NewYAMLPrinter creates a YAML printer.
func NewYAMLPrinter(w io.Writer) *YAMLPrinter {
	return &YAMLPrinter{w: w, records: []Record{}}
}

// HandleMatch records the match.
func (p *YAMLPrinter) HandleMatch(m types.Match) error {
	p.records = append(p.records, Record{
		Pattern: m.PatternName,
		Text:    m.Text,
		Line:    m.Line,
		Offset:  m.Position,
	})
	return nil
}

// Flush encodes the collected records.
func (p *YAMLPrinter) Flush() error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(p.records); err != nil {
		return err
	}
	return enc.Close()
}
