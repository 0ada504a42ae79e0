package expr

import (
	"math"

	"calc/internal/domain"
)

// Evaluator runs the full tokenize, postfix, evaluate and format pipeline.
// The zero value uses the default display width and precision.
type Evaluator struct {
	maxLength int
	precision int
	set       bool
}

// New returns an Evaluator that rejects results wider than maxLength and
// formats fractions with precision digits. Non-positive maxLength and
// negative precision fall back to the defaults.
func New(maxLength, precision int) *Evaluator {
	if maxLength <= 0 {
		maxLength = domain.MaxDisplayLength
	}
	if precision < 0 {
		precision = domain.DefaultPrecision
	}
	return &Evaluator{maxLength: maxLength, precision: precision, set: true}
}

// Default returns an Evaluator with the standard 20 character display and
// 10 fractional digits.
func Default() *Evaluator { return New(domain.MaxDisplayLength, domain.DefaultPrecision) }

// Evaluate computes text and returns the formatted result. The error, if any,
// is a domain.ErrorKind.
func (e *Evaluator) Evaluate(text string) (string, error) {
	if text == "" || domain.IsOperator(text[len(text)-1]) {
		return "", domain.ErrInvalidExpression
	}

	toks, err := Tokenize(text)
	if err != nil {
		return "", err
	}
	v, err := EvalPostfix(ToPostfix(toks))
	if err != nil {
		return "", err
	}

	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "", domain.ErrMathError
	}
	maxLength, precision := e.limits()
	out := Format(v, precision)
	if len(out) > maxLength {
		return "", domain.ErrOverflow
	}
	return out, nil
}

func (e *Evaluator) limits() (maxLength, precision int) {
	if e == nil || !e.set {
		return domain.MaxDisplayLength, domain.DefaultPrecision
	}
	return e.maxLength, e.precision
}
