package calculator

import (
	"math/big"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Store maps identifiers to integer values. Every stored identifier is purely
// alphabetic. Entries are created or overwritten by assignment and never
// deleted. A Store is not safe for concurrent use.
type Store struct {
	vars map[string]*big.Int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{vars: make(map[string]*big.Int)}
}

// Lookup returns a copy of the value of a variable, or an
// *UnknownVariableError if there is no such variable.
func (s *Store) Lookup(name string) (*big.Int, error) {
	v := s.vars[name]
	if v == nil {
		return nil, &UnknownVariableError{Name: name}
	}
	return new(big.Int).Set(v), nil
}

// Set binds a variable to a copy of v.
func (s *Store) Set(name string, v *big.Int) error {
	if !IsIdentifier(name) {
		return &IdentifierError{Name: name}
	}
	s.vars[name] = new(big.Int).Set(v)
	return nil
}

// ValidateAssignment checks an assignment of the text value to ident without
// performing it. The value must be an integer literal with an optional
// leading minus, or the name of a variable which already exists.
func (s *Store) ValidateAssignment(ident, value string) error {
	if !IsIdentifier(ident) {
		return &IdentifierError{Name: ident}
	}
	if IsLiteral(value) {
		return nil
	}
	if !IsIdentifier(value) {
		return &AssignmentError{Reason: "value " + strconv.Quote(value) + " is neither an integer nor an identifier"}
	}
	if s.vars[value] == nil {
		return &UnknownVariableError{Name: value}
	}
	return nil
}

// Assign binds ident to the value of the text value, either an integer literal
// or the current value of another variable. Later changes to that variable do
// not affect ident.
func (s *Store) Assign(ident, value string) error {
	if err := s.ValidateAssignment(ident, value); err != nil {
		return err
	}
	if IsLiteral(value) {
		s.vars[ident], _ = new(big.Int).SetString(value, 10)
		return nil
	}
	s.vars[ident] = new(big.Int).Set(s.vars[value])
	return nil
}

// Names returns the names of all variables in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of variables.
func (s *Store) Len() int {
	return len(s.vars)
}

// IsIdentifier returns whether s is a valid variable name: non-empty and made
// only of letters.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsLiteral returns whether s is an integer literal: an optional minus sign
// followed by one or more decimal digits.
func IsLiteral(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}
