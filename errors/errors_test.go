package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		code     ErrorCode
	}{
		{"invalid reference", NewInvalidReference("arena closed"), ErrInvalidReference, E3001},
		{"wrong type", &WrongTypeArgumentError{Operation: "first", Expected: ShapePair}, ErrWrongTypeArgument, E2003},
		{"wrong number", &WrongNumberOfArgumentsError{Form: "if", Min: 2, Max: 3}, ErrWrongNumberOfArguments, E2001},
		{"unexpected char", &UnexpectedCharError{Char: 'x'}, ErrUnexpectedChar, E1002},
		{"unsupported", &UnsupportedFormError{Form: "foo"}, ErrUnsupportedForm, E2002},
		{"wrapped eof", fmt.Errorf("reading: %w", ErrUnexpectedEOF), ErrUnexpectedEOF, E1001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, Is(tt.err, tt.sentinel))
			require.Equal(t, tt.code, CodeOf(tt.err))
		})
	}
	require.Equal(t, ErrorCode(""), CodeOf(fmt.Errorf("other")))
	require.Equal(t, ErrorCode(""), CodeOf(nil))
}

func TestWrongNumberOfArgumentsMessage(t *testing.T) {
	err := &WrongNumberOfArgumentsError{Form: "if", Min: 2, Max: 3, Actual: 1}
	require.Equal(t, "wrong number of arguments: if takes 2 or 3 arguments (1 given)", err.Error())

	err = &WrongNumberOfArgumentsError{Form: "quote", Min: 1, Max: 1, Actual: 2}
	require.Equal(t, "wrong number of arguments: quote takes exactly 1 argument (2 given)", err.Error())

	err = &WrongNumberOfArgumentsError{Form: "f", Min: 1, Max: 4, Actual: 6}
	require.Equal(t, "wrong number of arguments: f takes between 1 and 4 arguments (6 given)", err.Error())
}

func TestWrongTypeArgumentMessage(t *testing.T) {
	err := &WrongTypeArgumentError{
		Operation: "first",
		Expected:  ShapePair,
		Actual:    DataType{Shape: ShapeAtom, Kind: KindInt},
		Value:     "42",
	}
	require.Equal(t, "wrong type argument: first expected Pair, got Atom(Int) 42", err.Error())
	require.Equal(t, KindInt, err.Actual.Kind)
}

func TestDataTypeString(t *testing.T) {
	require.Equal(t, "Pair", DataType{Shape: ShapePair}.String())
	require.Equal(t, "Atom(Float)", DataType{Shape: ShapeAtom, Kind: KindFloat}.String())
	require.Equal(t, "Atom(Symbol)", DataType{Shape: ShapeAtom, Kind: KindSymbol}.String())
	require.Equal(t, "Unknown", Shape(0).String())
}

func TestErrorCodeCategory(t *testing.T) {
	require.Equal(t, "read", E1001.Category())
	require.Equal(t, "compile", E2002.Category())
	require.Equal(t, "arena", E3001.Category())
	require.Equal(t, "unknown", ErrorCode("X").Category())
	require.Equal(t, "unsupported form", E2002.Description())
	require.Equal(t, "unknown error", ErrorCode("E9999").Description())
}

func TestSuggestSimilar(t *testing.T) {
	got := SuggestSimilar("iff", []string{"if", "quote"})
	require.Len(t, got, 1)
	require.Equal(t, "if", got[0].Value)
	require.Equal(t, "did you mean 'if'?", FormatSuggestions(got))

	require.Empty(t, SuggestSimilar("lambda", []string{"if", "quote"}))
	require.Empty(t, SuggestSimilar("", []string{"if"}))

	got = SuggestSimilar("quot", []string{"quote", "quota", "if"})
	require.Equal(t, "did you mean one of: 'quota', 'quote'?", FormatSuggestions(got))
}

func TestCompileErrorFormatting(t *testing.T) {
	cause := &WrongNumberOfArgumentsError{Form: "if", Min: 2, Max: 3, Actual: 1}
	err := NewCompileError("(if 1)", cause)
	require.Equal(t, E2001, err.Code)
	require.True(t, Is(err, ErrWrongNumberOfArguments))
	require.Equal(t, "compile error: wrong number of arguments: if takes 2 or 3 arguments (1 given) in (if 1)", err.Error())

	out := err.FriendlyErrorMessage()
	require.True(t, strings.HasPrefix(out, "compile error[E2001]: wrong number of arguments"))
	require.Contains(t, out, "note: while compiling (if 1)")
}

func TestFormatterSourceCaret(t *testing.T) {
	out := NewFormatter(false).Format(&FormattedError{
		Code:       E1002,
		Kind:       "read error",
		Message:    "unexpected character 'x'",
		Filename:   "t.lisp",
		Line:       1,
		Column:     9,
		SourceLine: "(1 2 . 3 x)",
	})
	lines := strings.Split(out, "\n")
	require.Equal(t, "read error[E1002]: unexpected character 'x'", lines[0])
	require.Equal(t, "  --> t.lisp:1:9", lines[1])
	require.Equal(t, "   |", lines[2])
	require.Equal(t, " 1 | (1 2 . 3 x)", lines[3])
	require.Equal(t, "   |         ^", lines[4])
}

func TestFormatMultiple(t *testing.T) {
	f := NewFormatter(false)
	require.Equal(t, "", f.FormatMultiple(nil))
	out := f.FormatMultiple([]*FormattedError{
		{Message: "first"},
		{Message: "second"},
	})
	require.Contains(t, out, "error[1/2]: first")
	require.Contains(t, out, "error[2/2]: second")
	require.Contains(t, out, "found 2 errors")
}

func TestFriendly(t *testing.T) {
	plain := fmt.Errorf("plain")
	require.Equal(t, "plain", Friendly(plain, false))

	wrapped := fmt.Errorf("outer: %w", NewCompileError("x", &UnsupportedFormError{Form: "x", Reason: "variable references are not supported"}))
	require.Contains(t, Friendly(wrapped, false), "compile error[E2002]")
}
