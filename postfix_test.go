package calculator

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestToPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		rpn  string
	}{
		{"num", "1", "1"},
		{"ident", "x", "x"},
		{"add", "1 + 2", "1 2 +"},
		{"add-left", "1 + 2 + 3", "1 2 + 3 +"},
		{"sub-left", "1 - 2 - 3", "1 2 - 3 -"},
		{"mul-first", "1 + 2 * 3", "1 2 3 * +"},
		{"mul-after", "1 * 2 + 3", "1 2 * 3 +"},
		{"div-left", "8 / 4 / 2", "8 4 / 2 /"},
		{"muldiv", "8 / 4 * 2", "8 4 / 2 *"},
		{"pow-first", "2 * 3 ^ 2", "2 3 2 ^ *"},
		{"pow-left", "2 ^ 2 ^ 3", "2 2 ^ 3 ^"},
		{"parens", "8 * (3 + 2)", "8 3 2 + *"},
		{"nested", "((1 + 2) * (3 - x)) ^ 2", "1 2 + 3 x - * 2 ^"},
		{"folded", "3 --- 4", "3 4 -"},
		{"signed", "3 - -4", "3 4 +"},
		{"neg-num", "-3 * 2", "-3 2 *"},
		{"neg-ident", "-a ^ 2", "a neg 2 ^"},
		{"neg-divisor", "8 / -a", "8 a neg /"},
		{"neg-group", "8 / -(2)", "8 2 neg /"},
		{"neg-group-mul", "-(1 + 2) * 3", "1 2 + neg 3 *"},
		{"neg-nested", "-(-(a))", "a neg neg"},
		{"neg-exponent", "2 ^ -a", "2 a neg ^"},
		{"mixed", "a * 4 / b - (2 + 3 * 2)", "a 4 * b / 2 3 2 * + -"},
		{"empty-parens", "()", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("%q failed to tokenize: %v", c.src, err)
			}
			p, err := ToPostfix(toks)
			if err != nil {
				t.Fatalf("%q failed to convert: %v", c.src, err)
			}
			if got := p.String(); got != c.rpn {
				t.Errorf("%q: want %q, got %q\n%s", c.src, c.rpn, got, spew.Sdump(toks))
			}
		})
	}
}

func TestToPostfixBrackets(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
	}{
		{"unopened", "1 + 2)", 6},
		{"unclosed", "(1 + 2", 1},
		{"reversed", ")1(", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("%q failed to tokenize: %v", c.src, err)
			}
			p, err := ToPostfix(toks)
			if err == nil {
				t.Fatalf("%q: no error, got %v", c.src, p)
			}
			var e *ExpressionError
			if !errors.As(err, &e) {
				t.Fatalf("%q: want *ExpressionError, got %#v", c.src, err)
			}
			if e.Col != c.col {
				t.Errorf("%q: want error at %d, got %d", c.src, c.col, e.Col)
			}
		})
	}
}
