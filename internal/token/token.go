// Package token defines the token classes and source positions used by the
// reader.
package token

import (
	"strings"
	"unicode"
)

// Type describes the class of the next token in the input.
type Type string

// Token types
const (
	EOF    Type = "EOF"
	LPAREN Type = "("
	RPAREN Type = ")"
	QUOTE  Type = "'"
	PERIOD Type = "."
	ATOM   Type = "ATOM"
)

// Position points to a particular location in an input string.
type Position struct {
	Char      int    // byte offset within the file
	LineStart int    // byte offset of the start of the current line
	Line      int    // 0-indexed line number
	Column    int    // 0-indexed column number
	File      string // filename
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// IsValid returns true if this position has been set.
func (p Position) IsValid() bool {
	return p.File != "" || p.Line > 0 || p.Column > 0 || p.Char > 0
}

// NoPos is the zero value Position, representing an invalid/unset position.
var NoPos = Position{}

// PositionAt computes the position of byte offset within input. Columns are
// counted in runes.
func PositionAt(input string, offset int, file string) Position {
	if offset > len(input) {
		offset = len(input)
	}
	if offset < 0 {
		offset = 0
	}
	prefix := input[:offset]
	lineStart := strings.LastIndexByte(prefix, '\n') + 1
	return Position{
		Char:      offset,
		LineStart: lineStart,
		Line:      strings.Count(prefix, "\n"),
		Column:    len([]rune(prefix[lineStart:])),
		File:      file,
	}
}

// LineAt returns the full text of the line containing pos.
func LineAt(input string, pos Position) string {
	if pos.LineStart > len(input) {
		return ""
	}
	line := input[pos.LineStart:]
	if end := strings.IndexByte(line, '\n'); end >= 0 {
		line = line[:end]
	}
	return strings.TrimRight(line, "\r")
}

// IsDelimiter reports whether r terminates an atom.
func IsDelimiter(r rune) bool {
	switch r {
	case '(', ')', ';':
		return true
	}
	return unicode.IsSpace(r)
}
