// Package calculator implements an arbitrary-precision integer calculator with
// variables.
//
// A line of input is a number, a variable name, an assignment such as
// "a = 4" or "b = a", a command like "/help", or an expression using
// + - * / ^ and parentheses. Runs of signs fold together, so "3 - -4" is 7
// and "3 --- 4" is -1. Every operator is left-associative, including ^:
// "2 ^ 2 ^ 3" is 64. Division truncates toward zero.
//
// Expressions are checked on the raw text, tokenized, converted to postfix
// order and evaluated against the variables of a Session.
//
package calculator
