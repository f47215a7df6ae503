package calculator

import "strconv"

// Each error type's Error method returns the fixed one-line message shown to
// the user. Detail gives the reason, with a position where there is one.

// CommandError is an error indicating a meta-command that is not understood.
type CommandError struct {
	// Command is the line that was not understood.
	Command string
}

func (err *CommandError) Error() string {
	return "Unknown command"
}

func (err *CommandError) Detail() string {
	return "unknown command " + strconv.Quote(err.Command)
}

// ExpressionError is an error indicating an expression that cannot be
// evaluated: unbalanced parentheses, repeated operators, invalid tokens, or a
// malformed operator/operand sequence. It implements InputError.
type ExpressionError struct {
	// Col is the position of the offending input, or 0 if the expression as a
	// whole is at fault.
	Col int
	// Reason describes the problem.
	Reason string
}

func (err *ExpressionError) Error() string {
	return "Invalid expression"
}

func (err *ExpressionError) Detail() string {
	return errpos(err.Col, err.Reason)
}

func (err *ExpressionError) Pos() int {
	return err.Col
}

// IdentifierError is an error indicating an assignment to a name that is not
// purely alphabetic.
type IdentifierError struct {
	// Name is the invalid identifier.
	Name string
}

func (err *IdentifierError) Error() string {
	return "Invalid identifier"
}

func (err *IdentifierError) Detail() string {
	return "invalid identifier " + strconv.Quote(err.Name)
}

// AssignmentError is an error indicating an assignment with the wrong number
// of parts or a value that is neither an integer nor an identifier.
type AssignmentError struct {
	// Reason describes the problem.
	Reason string
}

func (err *AssignmentError) Error() string {
	return "Invalid assignment"
}

func (err *AssignmentError) Detail() string {
	return err.Reason
}

// UnknownVariableError is an error from a lookup for a variable that has not
// been assigned.
type UnknownVariableError struct {
	// Name is the name that was missing.
	Name string
	// Col is the position of the name in an expression, or 0 outside of one.
	Col int
}

func (err *UnknownVariableError) Error() string {
	return "Unknown variable"
}

func (err *UnknownVariableError) Detail() string {
	return errpos(err.Col, "undefined variable "+strconv.Quote(err.Name))
}

func (err *UnknownVariableError) Pos() int {
	return err.Col
}

// ArithmeticError is an error indicating an operation without an integer
// result: division by zero, or a power too large to compute. It implements
// InputError.
type ArithmeticError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator.
	Op Operator
	// Overflow is true if the result would exceed the session's size limit.
	// Otherwise, the error is a division by zero.
	Overflow bool
}

func (err *ArithmeticError) Error() string {
	if err.Overflow {
		return "Result too large"
	}
	return "Division by zero"
}

func (err *ArithmeticError) Detail() string {
	if err.Overflow {
		return errpos(err.Col, "result of "+strconv.Quote(err.Op.String())+" exceeds size limit")
	}
	return errpos(err.Col, "division by zero in "+strconv.Quote(err.Op.String()))
}

func (err *ArithmeticError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error, or 0 if the
	// error has no single position.
	Pos() int
}

// Detailer is implemented by every error this package returns.
type Detailer interface {
	error
	// Detail returns a description of the error which is more specific than
	// the message from Error.
	Detail() string
}

var (
	_ InputError = (*ExpressionError)(nil)
	_ InputError = (*UnknownVariableError)(nil)
	_ InputError = (*ArithmeticError)(nil)

	_ Detailer = (*CommandError)(nil)
	_ Detailer = (*ExpressionError)(nil)
	_ Detailer = (*IdentifierError)(nil)
	_ Detailer = (*AssignmentError)(nil)
	_ Detailer = (*UnknownVariableError)(nil)
	_ Detailer = (*ArithmeticError)(nil)
)
