package expr

import (
	"math"
	"strconv"
	"strings"
)

// Bounds of the int64 range as float64: [-2^63, 2^63).
const (
	minExactInt = -(1 << 63)
	maxExactInt = 1 << 63
)

// Format renders v for display. Integral values inside the int64 range are
// printed without a fractional part; anything else is printed with precision
// fractional digits, then trailing zeros and a dangling point are removed.
func Format(v float64, precision int) string {
	if v == math.Trunc(v) && v >= minExactInt && v < maxExactInt {
		return strconv.FormatInt(int64(v), 10)
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.IndexByte(s, '.') < 0 {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
