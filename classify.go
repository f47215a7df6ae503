package calculator

import (
	"strconv"
	"strings"
)

// LineKind is the kind of a line of input.
type LineKind int

const (
	// LineEmpty is a line with nothing but whitespace.
	LineEmpty LineKind = iota
	// LineNumber is an integer literal with an optional leading minus.
	LineNumber
	// LineVariable is a variable name, possibly with spaces inside.
	LineVariable
	// LineAssignment is any line containing '='.
	LineAssignment
	// LineCommand is a line beginning with '/'.
	LineCommand
	// LineExpression is anything else.
	LineExpression
)

var lineKindNames = [...]string{"Empty", "Number", "Variable", "Assignment", "Command", "Expression"}

func (k LineKind) String() string {
	if k < 0 || int(k) >= len(lineKindNames) {
		return "LineKind(" + strconv.Itoa(int(k)) + ")"
	}
	return lineKindNames[k]
}

// Classify determines the kind of a line. The checks are made in order: empty,
// number, variable, assignment, command, and finally expression.
func Classify(line string) LineKind {
	switch {
	case strings.TrimSpace(line) == "":
		return LineEmpty
	case IsLiteral(line):
		return LineNumber
	case IsIdentifier(strings.ReplaceAll(line, " ", "")):
		return LineVariable
	case strings.Contains(line, "="):
		return LineAssignment
	case line[0] == '/':
		return LineCommand
	default:
		return LineExpression
	}
}
