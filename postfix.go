package calculator

// Postfix is an expression in postfix (reverse Polish) order. Evaluating it
// consumes two operands per operator and leaves exactly one value, unless the
// input was ill-formed.
type Postfix []Token

func (p Postfix) String() string {
	return joinTokens(p)
}

// ToPostfix converts a token sequence in infix order to postfix order using
// an operator stack. Operators of equal precedence are left-associative,
// including ^, so "2 ^ 2 ^ 3" becomes "2 2 ^ 3 ^". Negation applies to the
// whole operand or group after it before any binary operator does, so
// "8 / -(2)" becomes "8 2 neg /". Parentheses are not emitted.
//
// Unbalanced parentheses produce an *ExpressionError. Other malformations,
// like a missing operand, are left for evaluation to find.
func ToPostfix(infix []Token) (Postfix, error) {
	out := make(Postfix, 0, len(infix))
	var stack []Token
	for _, tok := range infix {
		switch tok.Kind {
		case TokenNum, TokenIdent:
			out = append(out, tok)
		case TokenOpen, TokenNeg:
			stack = append(stack, tok)
		case TokenClose:
			for {
				if len(stack) == 0 {
					return nil, &ExpressionError{Col: tok.Pos, Reason: "close bracket ) with no open bracket"}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenOpen {
					break
				}
				out = append(out, top)
			}
		case TokenOp:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == TokenOpen || stackPrec(top) < tok.Op.prec() {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		default:
			panic("calculator: invalid token kind " + tok.Kind.String())
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokenOpen {
			return nil, &ExpressionError{Col: top.Pos, Reason: "open bracket ( with no close bracket"}
		}
		out = append(out, top)
	}
	return out, nil
}

// stackPrec is the precedence of an operator on the conversion stack.
func stackPrec(tok Token) int {
	if tok.Kind == TokenNeg {
		return precNeg
	}
	return tok.Op.prec()
}
