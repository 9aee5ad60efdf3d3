// Package types contains shared data structures used across the application.
package types

import (
	"regexp"
)

// Match is a single pattern hit inside the scanned text.
type Match struct {
	PatternName string
	Text        string
	Position    int // byte offset of the first character
	Line        int // 1-based line number
}

// Pattern represents a configurable pattern
type Pattern struct {
	Name        string         `yaml:"name"`
	Regex       string         `yaml:"regex"`
	Description string         `yaml:"description"`
	Enabled     bool           `yaml:"enabled"`
	compiled    *regexp.Regexp `yaml:"-"`
}

// CompiledRegex returns the compiled regular expression
func (p *Pattern) CompiledRegex() *regexp.Regexp {
	return p.compiled
}

// SetCompiledRegex sets the compiled regular expression
func (p *Pattern) SetCompiledRegex(re *regexp.Regexp) {
	p.compiled = re
}

// Compile compiles Regex and stores the result. Patterns without a regex
// are left uncompiled.
func (p *Pattern) Compile() error {
	if p.Regex == "" {
		return nil
	}
	re, err := regexp.Compile(p.Regex)
	if err != nil {
		return err
	}
	p.compiled = re
	return nil
}
