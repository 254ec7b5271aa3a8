package parser

import (
	"fmt"

	"github.com/secdlisp/secd/errors"
	"github.com/secdlisp/secd/internal/token"
)

// ErrorOpts is a struct that holds a variety of error data.
// Cause is required; the other fields add location context.
type ErrorOpts struct {
	ErrType    string
	Cause      error
	File       string
	Position   token.Position
	SourceCode string
}

// NewParserError returns a new BaseParserError populated with the given
// error data.
func NewParserError(opts ErrorOpts) *BaseParserError {
	if opts.ErrType == "" {
		opts.ErrType = "read error"
	}
	return &BaseParserError{
		errType:    opts.ErrType,
		cause:      opts.Cause,
		file:       opts.File,
		position:   opts.Position,
		sourceCode: opts.SourceCode,
	}
}

// ParserError is an interface that all reader errors implement.
type ParserError interface {
	Type() string
	Cause() error
	File() string
	Position() token.Position
	SourceCode() string
	Error() string
	errors.FriendlyError
	errors.FormattableError
}

// BaseParserError is the simplest implementation of ParserError. It wraps one
// of the reader's error kinds (unexpected end of input, unexpected character,
// invalid number, nesting depth) with the position where it was detected.
type BaseParserError struct {
	// Type of the error, e.g. "read error"
	errType string
	// The wrapped error
	cause error
	// File where the error occurred
	file string
	// Position of the error in the input string
	position token.Position
	// Relevant line of source code text
	sourceCode string
}

func (e *BaseParserError) Error() string {
	msg := e.cause.Error()
	if e.file != "" {
		return fmt.Sprintf("%s: %s (%s:%d:%d)", e.errType, msg,
			e.file, e.position.LineNumber(), e.position.ColumnNumber())
	}
	return fmt.Sprintf("%s: %s (%d:%d)", e.errType, msg,
		e.position.LineNumber(), e.position.ColumnNumber())
}

func (e *BaseParserError) FriendlyErrorMessage() string {
	return errors.NewFormatter(false).Format(e.ToFormatted())
}

// ToFormatted converts the parser error to a FormattedError for display.
func (e *BaseParserError) ToFormatted() *errors.FormattedError {
	return &errors.FormattedError{
		Code:       errors.CodeOf(e.cause),
		Kind:       e.errType,
		Message:    e.cause.Error(),
		Filename:   e.file,
		Line:       e.position.LineNumber(),
		Column:     e.position.ColumnNumber(),
		SourceLine: e.sourceCode,
	}
}

func (e *BaseParserError) Type() string {
	return e.errType
}

func (e *BaseParserError) Cause() error {
	return e.cause
}

func (e *BaseParserError) File() string {
	return e.file
}

func (e *BaseParserError) Position() token.Position {
	return e.position
}

func (e *BaseParserError) SourceCode() string {
	return e.sourceCode
}

func (e *BaseParserError) Unwrap() error {
	return e.cause
}
