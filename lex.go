package calculator

import (
	"errors"
	"io"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	col int
	// operand is whether the next token takes the place of an operand, i.e.
	// at the start of input or after an open bracket or operator. Signs in
	// operand position belong to the operand.
	operand bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:     src,
		operand: true,
	}
}

// readRune reads a rune from the src and updates the lexer's column.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's column.
// Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. At the end of the input, the
// result is an empty token with io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		tok := Token{Pos: l.col}
		switch {
		case unicode.IsSpace(r):
			continue
		case isDigit(r), unicode.IsLetter(r):
			l.unreadRune()
			return l.scanWord(tok, false)
		case r == '+', r == '-':
			l.unreadRune()
			neg, err := l.scanSigns()
			if err != nil {
				return tok, err
			}
			if !l.operand {
				tok.Kind = TokenOp
				tok.Op = OpAdd
				if neg {
					tok.Op = OpSub
				}
				l.operand = true
				return tok, nil
			}
			// Sign of an operand. Look at what it applies to.
			r, err := l.readRune()
			switch {
			case err == nil:
				l.unreadRune()
			case !errors.Is(err, io.EOF):
				return tok, err
			}
			// An absorbed sign starts the operand token.
			switch {
			case err == nil && isDigit(r):
				return l.scanWord(tok, neg)
			case neg:
				// A name or group is negated as a unit.
				tok.Kind = TokenNeg
				return tok, nil
			case err == nil && unicode.IsLetter(r):
				return l.scanWord(tok, false)
			default:
				continue
			}
		case r == '(':
			tok.Kind = TokenOpen
			l.operand = true
			return tok, nil
		case r == ')':
			tok.Kind = TokenClose
			l.operand = false
			return tok, nil
		case r == '*', r == '/', r == '^':
			tok.Kind = TokenOp
			tok.Op = Operator(r)
			l.operand = true
			return tok, nil
		default:
			return tok, l.error(tok.Pos, "invalid character "+strconv.QuoteRune(r))
		}
	}
}

// scanWord scans a run of letters and digits, which must be entirely one or
// the other. If neg is true, the run must be a number, and it is negated.
func (l *lexer) scanWord(tok Token, neg bool) (Token, error) {
	var letters, digits bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return tok, err
		}
		if isDigit(r) {
			digits = true
		} else if unicode.IsLetter(r) {
			letters = true
		} else {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	l.operand = false
	switch {
	case letters && digits:
		return tok, l.error(tok.Pos, "invalid token "+strconv.Quote(l.buf.String()))
	case digits:
		tok.Kind = TokenNum
		tok.Num, _ = new(big.Int).SetString(l.buf.String(), 10)
		if neg {
			tok.Num.Neg(tok.Num)
		}
	default:
		tok.Kind = TokenIdent
		tok.Name = l.buf.String()
	}
	return tok, nil
}

// scanSigns consumes a run of + and - with any spaces between them and
// reports whether the run holds an odd number of minus signs.
func (l *lexer) scanSigns() (bool, error) {
	neg := false
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return neg, nil
			}
			return neg, err
		}
		switch {
		case r == '-':
			neg = !neg
		case r == '+', unicode.IsSpace(r):
			// continue the run
		default:
			l.unreadRune()
			return neg, nil
		}
	}
}

func (l *lexer) error(col int, reason string) error {
	return &ExpressionError{
		Col:    col,
		Reason: reason,
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Tokenize splits an expression into tokens. Runs of + and - fold into a
// single operator, which is - if the run has an odd number of minus signs and
// + otherwise. A sign where an operand is expected is part of the operand.
func Tokenize(expr string) ([]Token, error) {
	scan := lex(strings.NewReader(expr))
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}
