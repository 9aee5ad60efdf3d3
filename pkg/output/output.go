// Package output writes scanned matches in one of several formats.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/numlines/pkg/interfaces"
)

// Format names an output layout.
type Format string

const (
	// FormatRaw writes each match with no separator.
	FormatRaw Format = "raw"
	// FormatLines writes each match followed by a newline.
	FormatLines Format = "lines"
	// FormatList writes all matches as a bracketed list, e.g. [123 456].
	FormatList Format = "list"
	// FormatJoined writes all matches on one space-separated line.
	FormatJoined Format = "joined"
	// FormatCounts writes each distinct match with its number of occurrences.
	FormatCounts Format = "counts"
	// FormatYAML writes a YAML sequence of match records.
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for format names that have no printer.
var ErrUnknownFormat = errors.New("unknown output format")

var formats = []Format{FormatRaw, FormatLines, FormatList, FormatJoined, FormatCounts, FormatYAML}

// Formats returns the names of all supported formats.
func Formats() []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	for _, f := range formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (use one of %s)", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
}

// NewPrinter creates the printer for format, writing to w.
func NewPrinter(format Format, w io.Writer) (interfaces.MatchHandler, error) {
	switch format {
	case FormatRaw:
		return NewStreamPrinter(w, ""), nil
	case FormatLines:
		return NewStreamPrinter(w, "\n"), nil
	case FormatList:
		return NewListPrinter(w), nil
	case FormatJoined:
		return NewJoinedPrinter(w), nil
	case FormatCounts:
		return NewCountsPrinter(w), nil
	case FormatYAML:
		return NewYAMLPrinter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
