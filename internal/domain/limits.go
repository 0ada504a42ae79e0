package domain

import "strings"

const (
	// MaxDisplayLength is the maximum number of characters the buffer may hold.
	MaxDisplayLength = 20

	// DefaultPrecision is the number of fractional digits used when formatting
	// non-integral results before trailing zeros are stripped.
	DefaultPrecision = 10

	// Operators lists every binary operator character accepted by the engine.
	Operators = "+-*/%"
)

// IsOperator reports whether c is one of the binary operator characters.
func IsOperator(c byte) bool {
	return strings.IndexByte(Operators, c) >= 0
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool { return c >= '0' && c <= '9' }
