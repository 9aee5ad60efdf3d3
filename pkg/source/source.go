// Package source reads the text to be scanned.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Stdin is the input path that selects standard input.
const Stdin = "-"

// ErrInputUnavailable is returned when the input cannot be opened or read.
var ErrInputUnavailable = errors.New("input unavailable")

// Reader loads whole inputs into memory.
type Reader struct {
	stdin io.Reader
}

// NewReader creates a reader that uses stdin for the "-" path.
func NewReader(stdin io.Reader) *Reader {
	return &Reader{stdin: stdin}
}

// ReadAll returns the full contents of path as a string.
func (r *Reader) ReadAll(path string) (string, error) {
	if path == Stdin {
		if r.stdin == nil {
			return "", fmt.Errorf("%w: %s: no standard input", ErrInputUnavailable, path)
		}
		data, err := io.ReadAll(r.stdin)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrInputUnavailable, path, err)
		}
		return string(data), nil
	}

	// #nosec G304 - reading the user-selected input file is the point of the tool
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	return string(data), nil
}

// ReadAll reads path, using os.Stdin for "-".
func ReadAll(path string) (string, error) {
	return NewReader(os.Stdin).ReadAll(path)
}
