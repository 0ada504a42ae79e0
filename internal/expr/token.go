package expr

import (
	"errors"
	"strconv"

	"calc/internal/domain"
)

// TokenKind classifies a token.
type TokenKind int

const (
	TokNumber TokenKind = iota
	TokOperator
	TokLeftParen
	TokRightParen
)

// Token is a lexical unit of an expression. Value is set for numbers and Op
// for operators; Text always holds the source characters.
type Token struct {
	Kind  TokenKind
	Text  string
	Value float64
	Op    byte
}

func (t Token) String() string { return t.Text }

// Tokenize splits text into tokens, scanning left to right. Characters that
// cannot start a token are skipped.
func Tokenize(text string) ([]Token, error) {
	var toks []Token
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case domain.IsDigit(c) || c == '.':
			start := i
			i = scanNumber(text, i)
			tok, err := number(text[start:i])
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)

		case c == '-' && signPosition(toks):
			start := i
			i = scanNumber(text, i+1)
			if i == start+1 {
				// no digits follow, so this is a plain minus
				toks = append(toks, operator('-'))
				continue
			}
			tok, err := number(text[start:i])
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)

		case domain.IsOperator(c):
			toks = append(toks, operator(c))
			i++

		case c == '(':
			toks = append(toks, Token{Kind: TokLeftParen, Text: "("})
			i++

		case c == ')':
			toks = append(toks, Token{Kind: TokRightParen, Text: ")"})
			i++

		default:
			i++
		}
	}
	return toks, nil
}

// signPosition reports whether a "-" read now is a unary sign: it opens the
// expression or follows another operator.
func signPosition(toks []Token) bool {
	return len(toks) == 0 || toks[len(toks)-1].Kind == TokOperator
}

// scanNumber returns the index just past the run of digits and points that
// starts at i.
func scanNumber(text string, i int) int {
	for i < len(text) && (domain.IsDigit(text[i]) || text[i] == '.') {
		i++
	}
	return i
}

func number(text string) (Token, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Out-of-range literals still carry ±Inf (or 0); the evaluator reports
		// those as a math error instead of a syntax error.
		if !errors.Is(err, strconv.ErrRange) {
			return Token{}, domain.ErrInvalidExpression
		}
	}
	return Token{Kind: TokNumber, Text: text, Value: v}, nil
}

func operator(op byte) Token {
	return Token{Kind: TokOperator, Text: string(op), Op: op}
}
