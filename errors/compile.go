package errors

import (
	"strings"
)

// CompileError reports a failure to lower an expression, wrapping the cause
// raised by the expression model or the compiler itself.
type CompileError struct {
	Code        ErrorCode
	Message     string
	Form        string // rendering of the form being compiled
	Suggestions []Suggestion
	Cause       error
}

// NewCompileError wraps cause, deriving the error code and message from it.
func NewCompileError(form string, cause error) *CompileError {
	return &CompileError{
		Code:    CodeOf(cause),
		Message: cause.Error(),
		Form:    form,
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	var b strings.Builder
	b.WriteString("compile error: ")
	b.WriteString(e.Message)
	if e.Form != "" {
		b.WriteString(" in ")
		b.WriteString(e.Form)
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *CompileError) Unwrap() error {
	return e.Cause
}

// FriendlyErrorMessage returns a human-friendly error message.
func (e *CompileError) FriendlyErrorMessage() string {
	return NewFormatter(false).Format(e.ToFormatted())
}

// ToFormatted converts to the FormattedError type for display.
func (e *CompileError) ToFormatted() *FormattedError {
	fe := &FormattedError{
		Code:    e.Code,
		Kind:    "compile error",
		Message: e.Message,
		Hint:    FormatSuggestions(e.Suggestions),
	}
	if e.Form != "" {
		fe.Note = "while compiling " + e.Form
	}
	return fe
}
