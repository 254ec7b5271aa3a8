// Package parser reads s-expressions from source text.
//
// A Reader consumes its input left to right, one form per call to Read, and
// allocates every node it creates in the supplied object.Arena. Input after
// a complete form is left unconsumed, so a Reader can be called repeatedly
// to read a sequence of top-level forms.
//
// Atoms are recognized by trying, in order, an integer pattern, a decimal
// float pattern and a symbol pattern. A numeric pattern only matches when it
// is followed by a delimiter, so "1+" reads as a symbol.
//
// Inside a list, a '.' after the first element always starts the dotted
// tail, so "(a .b)" reads as (a . b). Anywhere else a '.' begins an atom.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/secdlisp/secd/errors"
	"github.com/secdlisp/secd/internal/token"
	"github.com/secdlisp/secd/object"
)

// QuoteSymbol is the head of the list that the ' shorthand expands to.
const QuoteSymbol = "quote"

// DefaultMaxDepth is the default maximum nesting depth for reading.
const DefaultMaxDepth = 500

var (
	intPattern    = regexp.MustCompile(`^[+-]?[0-9]+`)
	floatPattern  = regexp.MustCompile(`^[+-]?[0-9]*\.[0-9]+`)
	symbolPattern = regexp.MustCompile(`^[^\s\v\x{85}\p{Z}();]+`)
)

// Option is a configuration function for a Reader.
type Option func(*Reader)

// WithFilename sets the file name reported in errors.
func WithFilename(filename string) Option {
	return func(r *Reader) {
		r.filename = filename
	}
}

// WithMaxDepth sets the maximum nesting depth of lists and quotes.
// This prevents stack overflow on deeply nested input.
// The default is 500.
func WithMaxDepth(depth int) Option {
	return func(r *Reader) {
		r.maxDepth = depth
	}
}

// Reader reads forms from an input string into an arena.
type Reader struct {
	input    string
	pos      int
	arena    *object.Arena
	filename string
	depth    int
	maxDepth int
}

// New returns a Reader over input that allocates into arena.
func New(input string, arena *object.Arena, options ...Option) *Reader {
	r := &Reader{
		input:    input,
		arena:    arena,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Read parses exactly one form from input. This is shorthand for creating a
// Reader and calling Read on it once.
func Read(input string, arena *object.Arena, options ...Option) (object.Handle, error) {
	return New(input, arena, options...).Read()
}

// Remaining returns the input that has not been consumed yet.
func (r *Reader) Remaining() string {
	return r.input[r.pos:]
}

// Position returns the position of the read cursor.
func (r *Reader) Position() token.Position {
	return token.PositionAt(r.input, r.pos, r.filename)
}

// AtEOF reports whether only whitespace and comments remain.
func (r *Reader) AtEOF() bool {
	return r.peek() == token.EOF
}

// ReadAll reads forms until the input is exhausted. On error it returns the
// forms read so far along with the error.
func (r *Reader) ReadAll() ([]object.Handle, error) {
	var forms []object.Handle
	for !r.AtEOF() {
		form, err := r.Read()
		if err != nil {
			return forms, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}

// Read parses exactly one form and advances past it.
func (r *Reader) Read() (object.Handle, error) {
	if r.arena.Closed() {
		return object.Handle{}, errors.NewInvalidReference("arena closed")
	}
	switch r.peek() {
	case token.EOF:
		return r.fail(errors.ErrUnexpectedEOF)
	case token.QUOTE:
		return r.readQuote()
	case token.LPAREN:
		return r.readList()
	case token.RPAREN:
		// A closing paren where a form should start means the form is missing
		return r.fail(errors.ErrUnexpectedEOF)
	default:
		return r.readAtom()
	}
}

func (r *Reader) readQuote() (object.Handle, error) {
	if err := r.enter(); err != nil {
		return object.Handle{}, err
	}
	defer r.leave()
	r.pos++ // skip '\''
	datum, err := r.Read()
	if err != nil {
		return object.Handle{}, err
	}
	return r.arena.List(r.arena.Symbol(QuoteSymbol), datum), nil
}

// readList reads a proper or dotted list. The first cell is allocated as
// soon as the first element is known, and each subsequent cell is linked in
// by patching the previous cell's rest.
func (r *Reader) readList() (object.Handle, error) {
	if err := r.enter(); err != nil {
		return object.Handle{}, err
	}
	defer r.leave()
	r.pos++ // skip '('

	switch r.peek() {
	case token.EOF:
		return r.fail(errors.ErrUnexpectedEOF)
	case token.RPAREN:
		r.pos++
		return r.arena.Nil(), nil
	}
	first, err := r.Read()
	if err != nil {
		return object.Handle{}, err
	}
	head := r.arena.Cons(first, r.arena.Nil())
	last := head

	for {
		switch r.peek() {
		case token.EOF:
			return r.fail(errors.ErrUnexpectedEOF)
		case token.RPAREN:
			r.pos++
			return head, nil
		case token.PERIOD:
			r.pos++
			tail, err := r.Read()
			if err != nil {
				return object.Handle{}, err
			}
			switch r.peek() {
			case token.EOF:
				return r.fail(errors.ErrUnexpectedEOF)
			case token.RPAREN:
				r.pos++
				if err := r.patch(last, tail); err != nil {
					return object.Handle{}, err
				}
				return head, nil
			default:
				c, _ := utf8.DecodeRuneInString(r.input[r.pos:])
				return r.failChar(c)
			}
		default:
			item, err := r.Read()
			if err != nil {
				return object.Handle{}, err
			}
			cell := r.arena.Cons(item, r.arena.Nil())
			if err := r.patch(last, cell); err != nil {
				return object.Handle{}, err
			}
			last = cell
		}
	}
}

func (r *Reader) patch(cell, rest object.Handle) error {
	node, err := r.arena.Resolve(cell)
	if err != nil {
		return err
	}
	return node.SetRest(rest)
}

func (r *Reader) readAtom() (object.Handle, error) {
	rest := r.input[r.pos:]
	if m := intPattern.FindString(rest); m != "" && r.delimitedAt(r.pos+len(m)) {
		value, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return r.fail(fmt.Errorf("%w %q", errors.ErrInvalidNumber, m))
		}
		r.pos += len(m)
		return r.arena.AllocInt(value), nil
	}
	if m := floatPattern.FindString(rest); m != "" && r.delimitedAt(r.pos+len(m)) {
		value, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return r.fail(fmt.Errorf("%w %q", errors.ErrInvalidNumber, m))
		}
		r.pos += len(m)
		return r.arena.AllocFloat(value), nil
	}
	m := symbolPattern.FindString(rest)
	r.pos += len(m)
	return r.arena.Symbol(m), nil
}

// peek skips whitespace and comments and classifies the next token without
// consuming it.
func (r *Reader) peek() token.Type {
	r.skipWhitespace()
	if r.pos >= len(r.input) {
		return token.EOF
	}
	switch r.input[r.pos] {
	case '(':
		return token.LPAREN
	case ')':
		return token.RPAREN
	case '\'':
		return token.QUOTE
	case '.':
		return token.PERIOD
	}
	return token.ATOM
}

func (r *Reader) skipWhitespace() {
	for r.pos < len(r.input) {
		c, size := utf8.DecodeRuneInString(r.input[r.pos:])
		switch {
		case unicode.IsSpace(c):
			r.pos += size
		case c == ';':
			for r.pos < len(r.input) && r.input[r.pos] != '\n' {
				r.pos++
			}
		default:
			return
		}
	}
}

// delimitedAt reports whether offset is the end of input or a delimiter.
func (r *Reader) delimitedAt(offset int) bool {
	if offset >= len(r.input) {
		return true
	}
	c, _ := utf8.DecodeRuneInString(r.input[offset:])
	return token.IsDelimiter(c)
}

func (r *Reader) enter() error {
	r.depth++
	if r.depth > r.maxDepth {
		r.depth--
		_, err := r.fail(fmt.Errorf("%w (%d)", errors.ErrMaxDepth, r.maxDepth))
		return err
	}
	return nil
}

func (r *Reader) leave() {
	r.depth--
}

func (r *Reader) fail(cause error) (object.Handle, error) {
	pos := r.Position()
	return object.Handle{}, NewParserError(ErrorOpts{
		Cause:      cause,
		File:       r.filename,
		Position:   pos,
		SourceCode: token.LineAt(r.input, pos),
	})
}

func (r *Reader) failChar(c rune) (object.Handle, error) {
	return r.fail(&errors.UnexpectedCharError{Char: c})
}
