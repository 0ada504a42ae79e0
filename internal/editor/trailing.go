package editor

import "calc/internal/domain"

// TrailingNumber returns the number at the end of text and the offset where
// it starts. The number is the longest suffix of digits holding at most one
// ".", optionally preceded by a "-" that opens the text or follows an
// operator. The number must itself open the text or follow an operator;
// otherwise TrailingNumber returns ("", len(text)).
//
// The result may be empty or a lone "-" (a sign waiting for digits).
func TrailingNumber(text string) (string, int) {
	end := len(text)
	i := end
	dot := false
	for i > 0 {
		c := text[i-1]
		if domain.IsDigit(c) {
			i--
			continue
		}
		if c == '.' && !dot {
			dot = true
			i--
			continue
		}
		break
	}

	if i > 0 && text[i-1] == '-' && (i == 1 || domain.IsOperator(text[i-2])) {
		i--
	}
	if i > 0 && !domain.IsOperator(text[i-1]) {
		return "", end
	}
	return text[i:], i
}

// endsWithOperator reports whether the last character of text is an operator.
func endsWithOperator(text string) bool {
	return text != "" && domain.IsOperator(text[len(text)-1])
}
