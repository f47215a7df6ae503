package calculator

import (
	"regexp"
	"unicode/utf8"
)

// repeatedOp matches two of * / ^ in a row, ignoring spaces between them.
var repeatedOp = regexp.MustCompile(`[*/^]\s*[*/^]`)

// Validate checks the raw text of an expression before it is tokenized. It
// returns an *ExpressionError if the parentheses are unbalanced or if any two
// of *, /, and ^ follow each other. Runs of + and - are legal; they fold into a
// single operator.
func Validate(expr string) error {
	depth, col := 0, 0
	for _, r := range expr {
		col++
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return &ExpressionError{Col: col, Reason: "close bracket ) with no open bracket"}
			}
		}
	}
	if depth != 0 {
		return &ExpressionError{Reason: "open bracket ( with no close bracket"}
	}
	if loc := repeatedOp.FindStringIndex(expr); loc != nil {
		col := utf8.RuneCountInString(expr[:loc[0]]) + 1
		return &ExpressionError{Col: col, Reason: "repeated operator " + expr[loc[0]:loc[1]]}
	}
	return nil
}
