package expr

import (
	"math"

	"calc/internal/domain"
)

// precedence tiers; a higher value binds tighter.
var precedence = map[byte]int{
	'+': 1,
	'-': 1,
	'*': 2,
	'/': 2,
	'%': 2,
}

// ToPostfix converts infix tokens to postfix order with the shunting-yard
// algorithm. Unbalanced parentheses are tolerated: a stray ")" stops at the
// bottom of the stack and a leftover "(" is dropped.
func ToPostfix(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	var stack []Token

	for _, t := range tokens {
		switch t.Kind {
		case TokNumber:
			out = append(out, t)

		case TokOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokOperator || precedence[top.Op] < precedence[t.Op] {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)

		case TokLeftParen:
			stack = append(stack, t)

		case TokRightParen:
			for len(stack) > 0 && stack[len(stack)-1].Kind != TokLeftParen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokOperator {
			out = append(out, top)
		}
	}
	return out
}

// EvalPostfix evaluates a postfix token stream. Each operator takes the most
// recently pushed value as its right operand. A zero divisor fails with
// DivisionByZero or ModuloByZero at the point it is met; a stack that
// underflows or does not end with exactly one value fails with
// InvalidExpression.
func EvalPostfix(postfix []Token) (float64, error) {
	stack := make([]float64, 0, len(postfix))

	for _, t := range postfix {
		switch t.Kind {
		case TokNumber:
			stack = append(stack, t.Value)

		case TokOperator:
			n := len(stack)
			if n < 2 {
				return 0, domain.ErrInvalidExpression
			}
			a, b := stack[n-2], stack[n-1]
			stack = stack[:n-2]

			v, err := apply(t.Op, a, b)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)

		default:
			return 0, domain.ErrInvalidExpression
		}
	}

	if len(stack) != 1 {
		return 0, domain.ErrInvalidExpression
	}
	return stack[0], nil
}

func apply(op byte, a, b float64) (float64, error) {
	switch op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		if b == 0 {
			return 0, domain.ErrDivisionByZero
		}
		return a / b, nil
	case '%':
		if b == 0 {
			return 0, domain.ErrModuloByZero
		}
		// math.Mod truncates, so the result takes the sign of a.
		return math.Mod(a, b), nil
	}
	return 0, domain.ErrInvalidExpression
}
