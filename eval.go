package calculator

import (
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// estPrec is the precision of result size estimates.
const estPrec = 64

var ln2 = bigfloat.Log(new(big.Float).SetPrec(estPrec), new(big.Float).SetPrec(estPrec).SetInt64(2))

// EvalPostfix evaluates an expression in postfix order. Names are looked up in
// the session's store. If the expression does not leave exactly one value,
// the result is an *ExpressionError.
func (s *Session) EvalPostfix(p Postfix) (*big.Int, error) {
	s.stack = s.stack[:0]
	for _, tok := range p {
		switch tok.Kind {
		case TokenNum:
			s.push().Set(tok.Num)
		case TokenIdent:
			v := s.store.vars[tok.Name]
			if v == nil {
				return nil, &UnknownVariableError{Name: tok.Name, Col: tok.Pos}
			}
			s.push().Set(v)
		case TokenOp:
			if len(s.stack) < 2 {
				return nil, &ExpressionError{Col: tok.Pos, Reason: "missing operand for " + strconv.Quote(tok.Op.String())}
			}
			r := s.pop()
			l := s.top()
			if err := s.apply(tok, l, r); err != nil {
				return nil, err
			}
		case TokenNeg:
			if len(s.stack) < 1 {
				return nil, &ExpressionError{Col: tok.Pos, Reason: "missing operand for negation"}
			}
			v := s.top()
			v.Neg(v)
		default:
			return nil, &ExpressionError{Col: tok.Pos, Reason: "unexpected " + tok.Kind.String() + " token in postfix expression"}
		}
	}
	switch len(s.stack) {
	case 0:
		return nil, &ExpressionError{Reason: "no expression"}
	case 1:
		return new(big.Int).Set(s.pop()), nil
	default:
		return nil, &ExpressionError{Reason: "missing operator between " + strconv.Itoa(len(s.stack)) + " values"}
	}
}

// apply sets l to l op r.
func (s *Session) apply(tok Token, l, r *big.Int) error {
	switch tok.Op {
	case OpAdd:
		l.Add(l, r)
	case OpSub:
		l.Sub(l, r)
	case OpMul:
		l.Mul(l, r)
	case OpDiv:
		if r.Sign() == 0 {
			return &ArithmeticError{Col: tok.Pos, Op: tok.Op}
		}
		// Quo truncates toward zero.
		l.Quo(l, r)
	case OpPow:
		return s.pow(tok, l, r)
	default:
		panic("calculator: invalid operator " + strconv.Quote(tok.Op.String()))
	}
	return nil
}

// pow sets l to l^r. A negative exponent gives the reciprocal truncated
// toward zero.
func (s *Session) pow(tok Token, l, r *big.Int) error {
	if r.Sign() < 0 {
		switch {
		case l.Sign() == 0:
			return &ArithmeticError{Col: tok.Pos, Op: tok.Op}
		case l.IsInt64() && l.Int64() == 1:
			// 1 to any power is 1.
		case l.IsInt64() && l.Int64() == -1:
			if r.Bit(0) == 0 {
				l.SetInt64(1)
			}
		default:
			l.SetInt64(0)
		}
		return nil
	}
	if s.cfg.MaxPowBits > 0 && l.CmpAbs(big.NewInt(1)) > 0 {
		lim := new(big.Float).SetInt64(s.cfg.MaxPowBits)
		if powBits(l, r).Cmp(lim) > 0 {
			return &ArithmeticError{Col: tok.Pos, Op: tok.Op, Overflow: true}
		}
	}
	l.Exp(l, r, nil)
	return nil
}

// powBits estimates the number of bits in l^r as r*log2|l|. |l| must be
// greater than 1.
func powBits(l, r *big.Int) *big.Float {
	x := new(big.Float).SetPrec(estPrec).SetInt(l)
	x.Abs(x)
	z := bigfloat.Log(new(big.Float).SetPrec(estPrec), x)
	z.Quo(z, ln2)
	return z.Mul(z, new(big.Float).SetPrec(estPrec).SetInt(r))
}

// push ensures a settable value on the stack.
func (s *Session) push() *big.Int {
	if len(s.stack) < cap(s.stack) {
		s.stack = s.stack[:len(s.stack)+1]
		if s.stack[len(s.stack)-1] == nil {
			s.stack[len(s.stack)-1] = new(big.Int)
		}
	} else {
		s.stack = append(s.stack, new(big.Int))
	}
	return s.stack[len(s.stack)-1]
}

// pop removes the top from the stack and returns it. The returned value may be
// modified by future evaluations.
func (s *Session) pop() *big.Int {
	r := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (s *Session) top() *big.Int {
	return s.stack[len(s.stack)-1]
}
