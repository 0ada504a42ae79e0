// Package expr evaluates the calculator's infix expressions.
//
// Evaluation is a fixed pipeline:
//
//  1. Tokenize splits the text into numbers, operators and parentheses. A
//     "-" at the start or right after another operator is fused into the
//     number that follows it.
//  2. ToPostfix reorders tokens with the shunting-yard algorithm. All five
//     operators are left-associative; "*", "/" and "%" bind tighter than
//     "+" and "-".
//  3. EvalPostfix runs the postfix stream on a float64 operand stack.
//  4. Format renders the result: integral values without a fractional part,
//     everything else with trailing zeros stripped.
//
// Every failure is a domain.ErrorKind; nothing in this package panics on
// malformed input.
package expr
