package calculator

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// HelpText is printed for the /help command.
const HelpText = `A calculator with variables! Available operations:
- typing a number or a variable to see its value,
- assigning a number or a variable's value with "name = value",
- entering an expression with (), +, -, *, / and ^,
- using both numbers and assigned variables in expressions.
Variable names are made of letters only. Division truncates toward zero.
Numbers are printed in canonical form, so 007 prints 7.
Type /exit to quit.`

// Farewell is printed for the /exit command.
const Farewell = "Bye!"

// REPL reads lines, processes them with a session, and prints the results.
type REPL struct {
	sess *Session
	out  io.Writer
	errc *color.Color
	done bool
}

// NewREPL creates a read loop writing to out. Errors are coloured if the
// session's configuration asks for it or out is a terminal.
func NewREPL(sess *Session, out io.Writer) *REPL {
	r := REPL{sess: sess, out: out}
	if sess.cfg.Color || isTerminal(out) {
		r.errc = color.New(color.FgRed)
		r.errc.EnableColor()
	}
	return &r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// Run processes lines from in until /exit or the end of input. Errors in a
// line are printed and do not stop the loop. The returned error is from
// reading or writing only.
func (r *REPL) Run(in io.Reader) error {
	if err := r.banner(); err != nil {
		return err
	}
	sc := bufio.NewScanner(in)
	for !r.done {
		if p := r.sess.cfg.Prompt; p != "" {
			if _, err := io.WriteString(r.out, p); err != nil {
				return err
			}
		}
		if !sc.Scan() {
			return sc.Err()
		}
		if err := r.Line(sc.Text()); err != nil {
			return err
		}
	}
	return nil
}

// banner lists the variables bound before the first line in verbose mode.
func (r *REPL) banner() error {
	st := r.sess.store
	if !r.sess.cfg.Verbose || st.Len() == 0 {
		return nil
	}
	_, err := fmt.Fprintf(r.out, "Variables: %s\n", strings.Join(st.Names(), ", "))
	return err
}

// Line processes a single line and prints its result.
func (r *REPL) Line(line string) error {
	res, err := r.sess.Process(line)
	if err != nil {
		return r.printErr(err)
	}
	switch res.Kind {
	case LineNumber, LineVariable, LineExpression:
		if r.sess.cfg.Echo && res.Postfix != nil {
			if _, err := fmt.Fprintf(r.out, "%v : ", res.Postfix); err != nil {
				return err
			}
		}
		_, err = fmt.Fprintln(r.out, res.Value)
	case LineCommand:
		switch res.Command {
		case CmdExit:
			r.done = true
			_, err = fmt.Fprintln(r.out, Farewell)
		case CmdHelp:
			_, err = fmt.Fprintln(r.out, HelpText)
		}
	}
	return err
}

// Done returns whether the session has been ended by /exit.
func (r *REPL) Done() bool {
	return r.done
}

func (r *REPL) printErr(err error) error {
	msg := err.Error()
	if d, ok := err.(Detailer); ok && r.sess.cfg.Verbose {
		msg += " (" + d.Detail() + ")"
	}
	if r.errc != nil {
		_, err = r.errc.Fprintln(r.out, msg)
		return err
	}
	_, err = fmt.Fprintln(r.out, msg)
	return err
}
