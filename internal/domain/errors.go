package domain

import "fmt"

// ErrorPrefix starts every error message placed in the buffer.
const ErrorPrefix = "Error: "

// ErrorKind is the closed set of calculator failures. Each kind is itself an
// error whose text is the message shown to the user.
type ErrorKind int

const (
	// NoError is the zero value; it is never returned as an error.
	NoError ErrorKind = iota
	// DivisionByZero is reported for "/" with a zero right operand.
	DivisionByZero
	// ModuloByZero is reported for "%" with a zero right operand.
	ModuloByZero
	// InvalidExpression covers every syntactic or structural failure.
	InvalidExpression
	// MathError is reported for infinite or NaN results.
	MathError
	// Overflow is reported when the formatted result is too wide to display.
	Overflow
)

// Sentinel errors, usable with errors.Is.
var (
	ErrDivisionByZero    error = DivisionByZero
	ErrModuloByZero      error = ModuloByZero
	ErrInvalidExpression error = InvalidExpression
	ErrMathError         error = MathError
	ErrOverflow          error = Overflow
)

var errorMessages = [...]string{
	NoError:           "",
	DivisionByZero:    "Divide by 0",
	ModuloByZero:      "Modulo by 0",
	InvalidExpression: "Invalid Input",
	MathError:         "Math Error",
	Overflow:          "Number too large",
}

// Message returns the bare message without ErrorPrefix.
func (k ErrorKind) Message() string {
	if k < 0 || int(k) >= len(errorMessages) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return errorMessages[k]
}

// Error returns the text the buffer shows, e.g. "Error: Divide by 0".
func (k ErrorKind) Error() string { return ErrorPrefix + k.Message() }

// String returns a short identifier for logs and JSON.
func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "none"
	case DivisionByZero:
		return "division_by_zero"
	case ModuloByZero:
		return "modulo_by_zero"
	case InvalidExpression:
		return "invalid_expression"
	case MathError:
		return "math_error"
	case Overflow:
		return "overflow"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// MarshalText encodes the kind by its String name.
func (k ErrorKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(errorMessages) {
		return nil, fmt.Errorf("unknown error kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText mirrors MarshalText. An empty input decodes to NoError.
func (k *ErrorKind) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*k = NoError
		return nil
	}
	for i := range errorMessages {
		if ErrorKind(i).String() == string(text) {
			*k = ErrorKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown error kind %q", text)
}
