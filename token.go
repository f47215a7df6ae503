package calculator

import (
	"math/big"
	"strconv"
	"strings"
)

// Token is a lexical element of an expression.
type Token struct {
	// Kind is the token type. Exactly one of Num, Name, and Op is meaningful
	// for a given kind.
	Kind TokenKind
	// Num is the value of a TokenNum. It must not be modified.
	Num *big.Int
	// Name is the identifier of a TokenIdent.
	Name string
	// Op is the operator of a TokenOp.
	Op Operator
	// Pos is the column of the first rune of the token, starting at 1.
	Pos int
}

// TokenKind identifies the type of a Token.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenNum is an integer, possibly with a sign absorbed from the input.
	TokenNum
	// TokenIdent is a variable name.
	TokenIdent
	// TokenOp is a binary operator.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
	// TokenNeg negates the operand or group that follows it. It binds tighter
	// than any binary operator.
	TokenNeg
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token

func (t Token) String() string {
	switch t.Kind {
	case TokenNum:
		return t.Num.String()
	case TokenIdent:
		return t.Name
	case TokenOp:
		return t.Op.String()
	case TokenOpen:
		return "("
	case TokenClose:
		return ")"
	case TokenNeg:
		return "neg"
	default:
		return "<" + t.Kind.String() + "@" + strconv.Itoa(t.Pos) + ">"
	}
}

// Operator is a binary arithmetic operator.
type Operator byte

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
	OpPow Operator = '^'
)

// Operators contains the runes which are operators in expressions.
const Operators = "+-*/^"

func (op Operator) String() string {
	return string(rune(op))
}

// Operator precedences. Parentheses bind tightest of all, but they only
// delimit the scope of the operator stack and are never compared.
const (
	precNeg = 4
	precPow = 3
	precMul = 2
	precAdd = 1
)

// prec returns the binding strength of a binary operator. Higher binds tighter.
func (op Operator) prec() int {
	switch op {
	case OpPow:
		return precPow
	case OpMul, OpDiv:
		return precMul
	case OpAdd, OpSub:
		return precAdd
	default:
		panic("calculator: invalid operator " + strconv.Quote(op.String()))
	}
}

// joinTokens renders tokens separated by spaces.
func joinTokens(toks []Token) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}
