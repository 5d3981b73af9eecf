// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for frac expressions.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// Operands are scanned by ordered choice: a mixed fraction (1_2/3) is tried
// first, then a fraction (2/3), then a whole number (3). The fraction bar
// must touch the digits on both sides; "1 / 2" is a division.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/frac/internal/reader/token"
)

// T holds the state of the scanner.
type T struct {
	expected []string // Completion candidates.

	bytes string // Line being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	runes int    // Runes scanned on the current line.
	state action // Current action.

	source token.Pos

	tokens []*token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	return &T{
		source: token.Pos{
			Name: label,
		},
	}
}

// Expected returns the list of expected strings. (Command completion).
func (l *T) Expected() []string {
	return l.expected
}

// Scan passes a line to the lexer for scanning. Any tokens left over
// from the previous line are discarded.
func (l *T) Scan(line string) {
	l.bytes = line
	l.expected = nil
	l.first = 0
	l.index = 0
	l.runes = 0
	l.state = skipWhitespace
	l.tokens = nil

	l.source.Char = 1
	l.source.Line++
}

// Source returns the location of the next token to be scanned.
func (l *T) Source() token.Pos {
	return l.source
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil at the end of the line.
func (l *T) Token() *token.T {
	for {
		if len(l.tokens) > 0 {
			t := l.tokens[0]
			l.tokens = l.tokens[1:]

			return t
		}

		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}
}

type action func(*T) action

const eof = -1

var operators = []string{" + ", " - ", " * ", " / "} //nolint:gochecknoglobals

func (l *T) accept(w int) {
	l.runes++
	l.index += w
}

func (l *T) backup(index, runes int) {
	l.index = index
	l.runes = runes
}

func (l *T) emit(c token.Class) {
	l.tokens = append(l.tokens, token.New(c, l.Text(), l.source))
	l.skip()
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.source.Char = l.runes + 1
	l.first = l.index
}

// digits accepts a run of decimal digits and reports how many it accepted.
func (l *T) digits() int {
	n := 0

	for {
		r, w := l.peek()
		if !isDigit(r) {
			return n
		}

		l.accept(w)
		n++
	}
}

// T states.

func afterOperand(l *T) action {
	l.expected = operators
	return skipWhitespace
}

func scanError(l *T) action {
	for {
		r, w := l.peek()
		if r == eof || isSpace(r) {
			l.emit(token.Error)
			return skipWhitespace
		}

		l.accept(w)
	}
}

func scanOperand(l *T) action {
	l.digits()

	index, runes := l.index, l.runes

	r, w := l.peek()
	switch r {
	case '_':
		l.accept(w)

		if l.digits() > 0 && l.next() == '/' && l.digits() > 0 {
			l.emit(token.Mixed)
			return afterOperand
		}
	case '/':
		l.accept(w)

		if l.digits() > 0 {
			l.emit(token.Fraction)
			return afterOperand
		}
	}

	l.backup(index, runes)
	l.emit(token.Whole)

	return afterOperand
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			if l.expected == nil {
				l.expected = []string{"? "}
			}

			return nil
		case isSpace(r):
			l.accept(w)
			l.skip()

			continue
		}

		l.expected = []string{}

		switch r {
		case '?', '+', '-', '*', '/':
			l.accept(w)
			l.emit(token.Class(r))

			return skipWhitespace
		}

		if isDigit(r) {
			return scanOperand
		}

		return scanError
	}
}

// Helper functions.

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isSpace(r rune) bool {
	return r != eof && unicode.IsSpace(r)
}
