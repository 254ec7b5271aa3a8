// Package errors defines the error taxonomy shared by the reader, the
// expression model, and the compiler.
//
// Every error raised by this module matches one of the sentinel kinds below
// via errors.Is, and the typed errors carry the details needed for
// diagnostics (the offending character, the observed data type, the expected
// arity range). None of these errors are retried internally: the first one
// encountered unwinds the operation and is surfaced to the caller.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Sentinel error kinds. Typed errors in this package report which kind they
// belong to through an Is method.
var (
	// ErrUnexpectedEOF means the input ended where a token, a closing
	// parenthesis, or a dotted tail was expected.
	ErrUnexpectedEOF = stderrors.New("unexpected end of input")

	// ErrUnexpectedChar means a character appeared where a different one
	// was mandatory.
	ErrUnexpectedChar = stderrors.New("unexpected character")

	// ErrInvalidNumber means a numeric token could not be represented.
	ErrInvalidNumber = stderrors.New("invalid number literal")

	// ErrMaxDepth means the reader exceeded its nesting limit.
	ErrMaxDepth = stderrors.New("maximum nesting depth exceeded")

	// ErrInvalidReference means a handle could not be resolved against its
	// arena. This indicates a logic fault, never a malformed program.
	ErrInvalidReference = stderrors.New("invalid reference")

	// ErrWrongTypeArgument means an operation was applied to an expression
	// of the wrong shape.
	ErrWrongTypeArgument = stderrors.New("wrong type argument")

	// ErrWrongNumberOfArguments means a special form received too few or
	// too many arguments.
	ErrWrongNumberOfArguments = stderrors.New("wrong number of arguments")

	// ErrUnsupportedForm means the compiler has no lowering for an
	// expression shape.
	ErrUnsupportedForm = stderrors.New("unsupported form")

	// ErrEmptyInput signals a blank line to an interactive loop.
	ErrEmptyInput = stderrors.New("empty input")
)

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// FriendlyError is an interface for errors that have a human friendly message
// in addition to a the lower level default error message.
type FriendlyError interface {
	Error() string
	FriendlyErrorMessage() string
}

// FormattableError is an interface for errors that can be formatted with
// the diagnostic formatter.
type FormattableError interface {
	Error() string
	ToFormatted() *FormattedError
}

// InvalidReferenceError is returned when a handle does not resolve. Reason
// describes why, e.g. "arena closed" or "foreign handle".
type InvalidReferenceError struct {
	Reason string
}

func (e *InvalidReferenceError) Error() string {
	if e.Reason == "" {
		return ErrInvalidReference.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidReference, e.Reason)
}

func (e *InvalidReferenceError) Is(target error) bool {
	return target == ErrInvalidReference
}

// NewInvalidReference returns an InvalidReferenceError with the given reason.
func NewInvalidReference(format string, args ...any) *InvalidReferenceError {
	return &InvalidReferenceError{Reason: fmt.Sprintf(format, args...)}
}

// WrongTypeArgumentError is returned when an accessor or mutator is applied
// to an expression of the wrong shape.
type WrongTypeArgumentError struct {
	Operation string
	Expected  Shape
	Actual    DataType
	Value     string
}

func (e *WrongTypeArgumentError) Error() string {
	return fmt.Sprintf("%s: %s expected %s, got %s %s",
		ErrWrongTypeArgument, e.Operation, e.Expected, e.Actual, e.Value)
}

func (e *WrongTypeArgumentError) Is(target error) bool {
	return target == ErrWrongTypeArgument
}

// WrongNumberOfArgumentsError is returned when a form's argument count falls
// outside [Min, Max].
type WrongNumberOfArgumentsError struct {
	Form   string
	Min    int
	Max    int
	Actual int
}

func (e *WrongNumberOfArgumentsError) Error() string {
	var takes string
	switch {
	case e.Min == e.Max:
		takes = fmt.Sprintf("exactly %d", e.Min)
	case e.Min+1 == e.Max:
		takes = fmt.Sprintf("%d or %d", e.Min, e.Max)
	default:
		takes = fmt.Sprintf("between %d and %d", e.Min, e.Max)
	}
	return fmt.Sprintf("%s: %s takes %s %s (%d given)",
		ErrWrongNumberOfArguments, e.Form, takes, pluralize("argument", e.Max != 1), e.Actual)
}

func (e *WrongNumberOfArgumentsError) Is(target error) bool {
	return target == ErrWrongNumberOfArguments
}

// UnexpectedCharError is returned by the reader when Char appeared where
// something else was mandatory.
type UnexpectedCharError struct {
	Char rune
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnexpectedChar, e.Char)
}

func (e *UnexpectedCharError) Is(target error) bool {
	return target == ErrUnexpectedChar
}

// UnsupportedFormError is returned by the compiler for expression shapes it
// cannot lower.
type UnsupportedFormError struct {
	Form   string
	Reason string
}

func (e *UnsupportedFormError) Error() string {
	return fmt.Sprintf("%s %s: %s", ErrUnsupportedForm, e.Form, e.Reason)
}

func (e *UnsupportedFormError) Is(target error) bool {
	return target == ErrUnsupportedForm
}

func pluralize(s string, do bool) string {
	if do {
		return s + "s"
	}
	return s
}
