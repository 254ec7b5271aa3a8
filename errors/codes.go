package errors

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E1xxx: Read errors
//   - E2xxx: Compile errors
//   - E3xxx: Arena errors
type ErrorCode string

const (
	// Read errors (E1xxx)
	E1001 ErrorCode = "E1001" // Unexpected end of input
	E1002 ErrorCode = "E1002" // Unexpected character
	E1003 ErrorCode = "E1003" // Invalid number literal
	E1004 ErrorCode = "E1004" // Maximum nesting depth exceeded

	// Compile errors (E2xxx)
	E2001 ErrorCode = "E2001" // Wrong number of arguments
	E2002 ErrorCode = "E2002" // Unsupported form
	E2003 ErrorCode = "E2003" // Wrong type argument

	// Arena errors (E3xxx)
	E3001 ErrorCode = "E3001" // Invalid reference
)

var codeDescriptions = map[ErrorCode]string{
	E1001: "unexpected end of input",
	E1002: "unexpected character",
	E1003: "invalid number literal",
	E1004: "maximum nesting depth exceeded",

	E2001: "wrong number of arguments",
	E2002: "unsupported form",
	E2003: "wrong type argument",

	E3001: "invalid reference",
}

var codeSentinels = []struct {
	code ErrorCode
	err  error
}{
	{E1001, ErrUnexpectedEOF},
	{E1002, ErrUnexpectedChar},
	{E1003, ErrInvalidNumber},
	{E1004, ErrMaxDepth},
	{E2001, ErrWrongNumberOfArguments},
	{E2002, ErrUnsupportedForm},
	{E2003, ErrWrongTypeArgument},
	{E3001, ErrInvalidReference},
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '1':
		return "read"
	case '2':
		return "compile"
	case '3':
		return "arena"
	default:
		return "unknown"
	}
}

// CodeOf returns the code of the first sentinel kind err matches, or the
// empty code if err belongs to none of them.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	for _, entry := range codeSentinels {
		if Is(err, entry.err) {
			return entry.code
		}
	}
	return ""
}
