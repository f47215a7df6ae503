package calculator

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

// Session holds the variables of one interactive session and processes lines
// against them. It is not safe to use a Session concurrently.
type Session struct {
	store *Store
	cfg   Config
	stack []*big.Int
}

// Option is an option used when creating a session.
type Option interface {
	sessionOption()
}

type (
	varopt struct {
		name  string
		value string
	}
	bitsopt int64
	cfgopt  Config
)

func (varopt) sessionOption()  {}
func (bitsopt) sessionOption() {}
func (cfgopt) sessionOption()  {}

// SetVar binds a variable when the session is created. The value is an
// expression, evaluated with the variables bound before it.
func SetVar(name, value string) Option {
	return varopt{name, value}
}

// MaxPowBits limits the estimated size in bits of the result of ^. Zero or
// less means no limit.
func MaxPowBits(bits int64) Option {
	return bitsopt(bits)
}

// WithConfig uses a configuration for the session, including its variable
// bindings. Other options override it regardless of order.
func WithConfig(cfg Config) Option {
	return cfgopt(cfg)
}

// NewSession creates a session with an empty variable store, then applies
// options to it. Bindings from the configuration are made first, then those
// from SetVar in order.
func NewSession(opts ...Option) (*Session, error) {
	s := Session{store: NewStore(), cfg: DefaultConfig()}
	// First, find the configuration, so that other options apply on top of
	// it. Loop backward so we use the last one.
	for i := len(opts) - 1; i >= 0; i-- {
		if c, ok := opts[i].(cfgopt); ok {
			s.cfg = Config(c)
			break
		}
	}
	var binds []varopt
	for _, b := range s.cfg.Vars {
		name, value, err := ParseBinding(b)
		if err != nil {
			return nil, err
		}
		binds = append(binds, varopt{name, value})
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			binds = append(binds, opt)
		case bitsopt:
			s.cfg.MaxPowBits = int64(opt)
		case cfgopt:
			// Already done. Do nothing.
		default:
			panic("calculator: unknown option type")
		}
	}
	for _, b := range binds {
		v, err := s.Eval(b.value)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", b.name, err)
		}
		if err := s.store.Set(b.name, v); err != nil {
			return nil, fmt.Errorf("setting %s: %w", b.name, err)
		}
	}
	return &s, nil
}

// ParseBinding splits a variable definition of the form "name=value".
func ParseBinding(s string) (name, value string, err error) {
	d := strings.SplitN(s, "=", 2)
	if len(d) != 2 {
		return "", "", fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
	}
	return strings.TrimSpace(d[0]), strings.TrimSpace(d[1]), nil
}

// Config returns the session's configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Store returns the session's variables.
func (s *Session) Store() *Store {
	return s.store
}

// Command is a meta-command.
type Command int

const (
	CmdNone Command = iota
	// CmdExit ends the session.
	CmdExit
	// CmdHelp asks for a description of the calculator.
	CmdHelp
)

// ParseCommand recognizes a meta-command line. Anything other than /exit or
// /help is a *CommandError.
func ParseCommand(line string) (Command, error) {
	switch strings.TrimSpace(line) {
	case "/exit":
		return CmdExit, nil
	case "/help":
		return CmdHelp, nil
	default:
		return CmdNone, &CommandError{Command: line}
	}
}

// Result is the outcome of processing a line.
type Result struct {
	// Kind is the kind of the line.
	Kind LineKind
	// Value is the value of a number, variable, or expression line. It is nil
	// for other kinds.
	Value *big.Int
	// Command is the meta-command of a command line.
	Command Command
	// Postfix is the postfix form of an expression line.
	Postfix Postfix
}

// Process classifies a line and handles it: numbers and variables produce
// their values, assignments update the store, commands are recognized but not
// executed, and expressions are evaluated. A number line yields its canonical
// value rather than the text typed, so "007" gives 7 and "-0" gives 0. A
// failure aborts only this line and leaves the store unchanged.
func (s *Session) Process(line string) (Result, error) {
	r := Result{Kind: Classify(line)}
	var err error
	switch r.Kind {
	case LineEmpty:
		// do nothing
	case LineNumber:
		r.Value, _ = new(big.Int).SetString(line, 10)
	case LineVariable:
		r.Value, err = s.store.Lookup(strings.ReplaceAll(line, " ", ""))
	case LineAssignment:
		err = s.assign(line)
	case LineCommand:
		r.Command, err = ParseCommand(line)
	case LineExpression:
		r.Postfix, r.Value, err = s.eval(line)
	default:
		panic("calculator: invalid line kind " + r.Kind.String())
	}
	if err != nil {
		return Result{Kind: r.Kind}, err
	}
	return r, nil
}

// assign handles an assignment line. '=' separates fields just as spaces do,
// and there must be exactly two fields.
func (s *Session) assign(line string) error {
	f := strings.FieldsFunc(line, func(r rune) bool {
		return r == '=' || unicode.IsSpace(r)
	})
	if len(f) != 2 {
		return &AssignmentError{Reason: fmt.Sprintf("assignment needs a name and a value, got %d fields", len(f))}
	}
	return s.store.Assign(f[0], f[1])
}

// Eval evaluates an arithmetic expression against the session's variables.
func (s *Session) Eval(expr string) (*big.Int, error) {
	_, v, err := s.eval(expr)
	return v, err
}

func (s *Session) eval(expr string) (Postfix, *big.Int, error) {
	if err := Validate(expr); err != nil {
		return nil, nil, err
	}
	toks, err := Tokenize(expr)
	if err != nil {
		return nil, nil, err
	}
	p, err := ToPostfix(toks)
	if err != nil {
		return nil, nil, err
	}
	v, err := s.EvalPostfix(p)
	if err != nil {
		return p, nil, err
	}
	return p, v, nil
}

// EvalString is a shortcut to evaluate an expression in a new session.
func EvalString(expr string, opts ...Option) (*big.Int, error) {
	s, err := NewSession(opts...)
	if err != nil {
		return nil, err
	}
	return s.Eval(expr)
}
