package expr_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calc/internal/expr"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name      string
		v         float64
		precision int
		want      string
	}{
		{"integer", 14, 10, "14"},
		{"negative integer", -42, 10, "-42"},
		{"negative zero", math.Copysign(0, -1), 10, "0"},
		{"half", 2.5, 10, "2.5"},
		{"negative fraction", -2.5, 10, "-2.5"},
		{"float noise", 0.1 + 0.2, 10, "0.3"},
		{"repeating", 1.0 / 3, 10, "0.3333333333"},
		{"rounds up", 2.0 / 3, 10, "0.6666666667"},
		{"below precision", 1e-11, 10, "0"},
		{"beyond int64", 1e20, 10, "100000000000000000000"},
		{"short precision", 3.14159, 2, "3.14"},
		{"no fraction digits", 2.7, 0, "3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, expr.Format(tc.v, tc.precision))
		})
	}
}

func TestFormat_NoSpuriousDigits(t *testing.T) {
	values := []float64{0, 1, -1, 100, 1e15, -1e15, 0.5, 0.25, 1.0 / 7, 123.456, -0.001, 1e19, 9.5e18}

	for _, v := range values {
		s := expr.Format(v, 10)
		if v == math.Trunc(v) {
			assert.NotContains(t, s, ".", "integral value %v formatted as %q", v, s)
		}
		if strings.Contains(s, ".") {
			assert.False(t, strings.HasSuffix(s, "0"), "trailing zero in %q", s)
			assert.False(t, strings.HasSuffix(s, "."), "dangling point in %q", s)
		}
		// Formatting the formatted value again changes nothing.
		assert.Equal(t, s, expr.Format(mustParse(t, s), 10))
	}
}

func mustParse(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)
	return v
}
