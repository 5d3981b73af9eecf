// Released under an MIT license. See LICENSE.

// Package token is shared by the frac lexer and parser.
package token

import (
	"strconv"
	"unicode"
)

// Class is a token's type.
//
// Operators and the query marker use their own rune as their class.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	source Pos
	value  string
}

type token = T

// Token classes.
const (
	Error Class = iota

	Fraction Class = unicode.MaxRune + iota
	Mixed
	Whole

	Query Class = '?'
)

// Pos is the source location of a token.
type Pos struct {
	Char int    // Character position (column).
	Line int    // Line number (row).
	Name string // Label for the source of this token.
}

func (p Pos) String() string {
	return p.Name + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Char)
}

// New creates a new token.
func New(class Class, value string, source Pos) *token {
	return &token{
		class:  class,
		source: source,
		value:  value,
	}
}

// Operator returns true if c is one of the arithmetic operators.
func (c Class) Operator() bool {
	switch c {
	case '+', '-', '*', '/':
		return true
	}

	return false
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case Fraction:
		return "Fraction"
	case Mixed:
		return "Mixed"
	case Whole:
		return "Whole"
	}

	return strconv.QuoteRune(rune(c))
}

// Class returns the token's class.
func (t *token) Class() Class {
	return t.class
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Source returns the source location for this token.
func (t *token) Source() Pos {
	return t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		t.source.String() + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}
