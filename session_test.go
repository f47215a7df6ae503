package calculator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calculator "github.com/nikalinov/Smart-Calculator"
)

func newSession(t *testing.T, opts ...calculator.Option) *calculator.Session {
	t.Helper()
	s, err := calculator.NewSession(opts...)
	require.NoError(t, err)
	return s
}

// run processes lines in order and returns the printed value or error message
// of each line, or "" for lines that print nothing.
func run(t *testing.T, s *calculator.Session, lines ...string) []string {
	t.Helper()
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		r, err := s.Process(line)
		switch {
		case err != nil:
			out = append(out, err.Error())
		case r.Value != nil:
			out = append(out, r.Value.String())
		default:
			out = append(out, "")
		}
	}
	return out
}

func TestProcessKinds(t *testing.T) {
	cases := []struct {
		line string
		kind calculator.LineKind
	}{
		{"", calculator.LineEmpty},
		{"   ", calculator.LineEmpty},
		{"42", calculator.LineNumber},
		{"a = 1", calculator.LineAssignment},
		{"a", calculator.LineVariable},
		{"/help", calculator.LineCommand},
		{"a + 1", calculator.LineExpression},
	}
	s := newSession(t)
	for _, c := range cases {
		r, err := s.Process(c.line)
		require.NoError(t, err, c.line)
		assert.Equal(t, c.kind, r.Kind, c.line)
	}
}

func TestProcessLiterals(t *testing.T) {
	s := newSession(t)
	for _, n := range []string{"0", "1", "42", "1234567890123456789012345678901234567890"} {
		assert.Equal(t, []string{n}, run(t, s, n))
	}
	assert.Equal(t, []string{"-17", "7"}, run(t, s, "-17", "007"))
}

func TestProcessVariables(t *testing.T) {
	s := newSession(t)
	got := run(t, s,
		"a = 4",
		"b = a",
		"a = 5",
		"b",
		"a",
		" a ",
		"c",
	)
	assert.Equal(t, []string{"", "", "", "4", "5", "5", "Unknown variable"}, got)
}

func TestProcessAssignment(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  []string
	}{
		{"literal", []string{"x = 12", "x"}, []string{"", "12"}},
		{"negative", []string{"x = -12", "x"}, []string{"", "-12"}},
		{"no-spaces", []string{"x=3", "x"}, []string{"", "3"}},
		{"double-eq", []string{"x = = 3", "x"}, []string{"", "3"}},
		{"overwrite", []string{"x = 1", "x = 2", "x"}, []string{"", "", "2"}},
		{"copy", []string{"y = 1", "x = y", "y = 2", "x", "y"}, []string{"", "", "", "1", "2"}},
		{"case", []string{"A = 1", "a"}, []string{"", "Unknown variable"}},
		{"spaced-name", []string{"ab = 3", "a b"}, []string{"", "3"}},
		{"bad-ident", []string{"a1 = 5"}, []string{"Invalid identifier"}},
		{"bad-ident-command", []string{"/a = 5"}, []string{"Invalid identifier"}},
		{"bad-value", []string{"a = 5b"}, []string{"Invalid assignment"}},
		{"double-neg", []string{"a = --5"}, []string{"Invalid assignment"}},
		{"expr-value", []string{"a = 1 + 2"}, []string{"Invalid assignment"}},
		{"chain", []string{"a = b = 3"}, []string{"Invalid assignment"}},
		{"no-value", []string{"a ="}, []string{"Invalid assignment"}},
		{"no-name", []string{"= 5"}, []string{"Invalid assignment"}},
		{"arity-first", []string{"a1 = 5 6"}, []string{"Invalid assignment"}},
		{"unknown-value", []string{"a = y"}, []string{"Unknown variable"}},
		{"failure-keeps", []string{"a = 3", "a = 5x", "a"}, []string{"", "Invalid assignment", "3"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newSession(t)
			assert.Equal(t, c.want, run(t, s, c.lines...))
		})
	}
}

func TestProcessErrorTypes(t *testing.T) {
	s := newSession(t)
	_, err := s.Process("a1 = 2")
	var ie *calculator.IdentifierError
	require.True(t, errors.As(err, &ie), "%#v", err)
	assert.Equal(t, "a1", ie.Name)

	_, err = s.Process("a = 2 3")
	assert.True(t, errors.As(err, new(*calculator.AssignmentError)), "%#v", err)

	_, err = s.Process("q")
	var ue *calculator.UnknownVariableError
	require.True(t, errors.As(err, &ue), "%#v", err)
	assert.Equal(t, "q", ue.Name)

	_, err = s.Process("/quit")
	var ce *calculator.CommandError
	require.True(t, errors.As(err, &ce), "%#v", err)
	assert.Equal(t, "/quit", ce.Command)
	assert.Contains(t, ce.Detail(), "/quit")
}

func TestProcessCommands(t *testing.T) {
	cases := []struct {
		line string
		cmd  calculator.Command
		err  bool
	}{
		{"/exit", calculator.CmdExit, false},
		{"/help", calculator.CmdHelp, false},
		{"/exit  ", calculator.CmdExit, false},
		{"/Exit", calculator.CmdNone, true},
		{"/", calculator.CmdNone, true},
		{"/vars", calculator.CmdNone, true},
	}
	s := newSession(t)
	for _, c := range cases {
		r, err := s.Process(c.line)
		if c.err {
			assert.EqualError(t, err, "Unknown command", c.line)
			continue
		}
		require.NoError(t, err, c.line)
		assert.Equal(t, calculator.LineCommand, r.Kind)
		assert.Equal(t, c.cmd, r.Command, c.line)
	}
}

func TestProcessExpressions(t *testing.T) {
	s := newSession(t)
	got := run(t, s,
		"a = 3",
		"b = 2",
		"8 * (3 + 2)",
		"2 ^ 2 ^ 3",
		"3 - -4",
		"3 --- 4",
		"3 ---- 4",
		"a * 4 / b - (2 + 3 * 2)",
		"(1+2",
		"1 * * 2",
		"1 + y",
		"1 / (a - 3)",
	)
	want := []string{"", "", "40", "64", "7", "-1", "7", "-2",
		"Invalid expression", "Invalid expression", "Unknown variable", "Division by zero"}
	assert.Equal(t, want, got)

	r, err := s.Process("8 * (3 + 2)")
	require.NoError(t, err)
	assert.Equal(t, "8 3 2 + *", r.Postfix.String())
}

func TestNewSessionVars(t *testing.T) {
	s := newSession(t,
		calculator.WithConfig(calculator.Config{Vars: []string{"a = 2"}}),
		calculator.SetVar("b", "a ^ 3"),
	)
	assert.Equal(t, []string{"2", "8"}, run(t, s, "a", "b"))
	assert.Equal(t, []string{"a", "b"}, s.Store().Names())

	_, err := calculator.NewSession(calculator.SetVar("x1", "2"))
	assert.True(t, errors.As(err, new(*calculator.IdentifierError)), "%#v", err)

	_, err = calculator.NewSession(calculator.SetVar("x", "y"))
	assert.True(t, errors.As(err, new(*calculator.UnknownVariableError)), "%#v", err)
	assert.Contains(t, err.Error(), "setting x")

	_, err = calculator.NewSession(calculator.WithConfig(calculator.Config{Vars: []string{"nope"}}))
	assert.Error(t, err)
}

func TestNewSessionOptionOrder(t *testing.T) {
	s := newSession(t, calculator.MaxPowBits(16), calculator.WithConfig(calculator.Config{MaxPowBits: 4}))
	assert.EqualValues(t, 16, s.Config().MaxPowBits)

	s = newSession(t)
	assert.EqualValues(t, calculator.DefaultMaxPowBits, s.Config().MaxPowBits)
}

func TestParseBinding(t *testing.T) {
	name, value, err := calculator.ParseBinding(" x = 1 + 2 ")
	require.NoError(t, err)
	assert.Equal(t, "x", name)
	assert.Equal(t, "1 + 2", value)

	_, _, err = calculator.ParseBinding("x")
	assert.Error(t, err)
}
