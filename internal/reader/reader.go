// Released under an MIT license. See LICENSE.

// Package reader encapsulates the frac lexer and parser.
package reader

import (
	"github.com/michaelmacinnis/frac/internal/reader/lexer"
	"github.com/michaelmacinnis/frac/internal/reader/parser"
)

// T (reader) turns lines of text into parsed expressions.
type T struct {
	s *lexer.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{s: lexer.New(name)}
}

// Scan parses a single line.
func (r *reader) Scan(line string) (*parser.Expression, error) {
	r.s.Scan(line)

	return parser.New(r.s.Source(), r.s.Token).Parse()
}
