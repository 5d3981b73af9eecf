// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for frac expressions.
//
//	<line>     ::= Query <operand> (<operator> <operand>)+ .
//	<operand>  ::= Mixed | Fraction | Whole .
//	<operator> ::= '+' | '-' | '*' | '/' .
package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/frac/internal/reader/token"
	"github.com/michaelmacinnis/frac/internal/type/frac"
)

// Parse errors.
var (
	ErrMissingQueryMarker  = errors.New("query symbol '?' missing")
	ErrInvalidFirstOperand = errors.New("first operand incorrectly specified")
	ErrInvalidExpression   = errors.New("invalid expression found")
)

// Error is a parse error at a specific location.
type Error struct {
	Kind   error     // One of the parse errors above or frac.ErrOverflow.
	Source token.Pos // Location of the offending token.
	Text   string    // Offending text. Empty at the end of a line.
}

func (e *Error) Error() string {
	s := "end of line"
	if e.Text != "" {
		s = adapted.CanonicalString(e.Text)
	}

	return e.Source.String() + ": " + e.Kind.Error() + ": unexpected " + s
}

// Unwrap returns the kind of parse error.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Operand is a number as written. Missing parts are zero.
type Operand struct {
	Whole       int64
	Numerator   int64
	Denominator int64
	Text        string
}

// Frac creates a new fraction with the value of the operand o.
func (o Operand) Frac() *frac.T {
	return frac.New(o.Whole, o.Numerator, o.Denominator)
}

// Pair is an operator and the operand that follows it.
type Pair struct {
	Operator token.Class
	Operand  Operand
}

// Expression is a parsed line: a first operand followed by one or more pairs.
type Expression struct {
	First Operand
	Rest  []Pair
}

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	last  token.Pos       // Location of the most recent token.
	token *token.T        // Token lookahead.
}

// New creates a new parser that reads tokens by calling item.
// The item function should return nil at the end of a line.
// Errors on a line without tokens are reported at source.
func New(source token.Pos, item func() *token.T) *T {
	return &T{item: item, last: source}
}

// Parse consumes the tokens for one line and returns the expression.
func (p *T) Parse() (e *Expression, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if perr, ok := r.(*Error); ok {
			e, err = nil, perr

			return
		}

		panic(r)
	}()

	return p.line(), nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) fail(kind error) {
	t := p.peek()
	if t == nil {
		panic(&Error{Kind: kind, Source: p.last})
	}

	panic(&Error{Kind: kind, Source: t.Source(), Text: t.Value()})
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()
	if t != nil {
		p.last = t.Source()
		p.last.Char += len(t.Value())
	}

	p.token = t
	p.ahead = 1

	return t
}

// T state functions.

// <line> ::= Query <operand> (<operator> <operand>)+ .
func (p *T) line() *Expression {
	if !p.peek().Is(token.Query) {
		p.fail(ErrMissingQueryMarker)
	}

	p.consume()

	e := &Expression{First: p.operand(ErrInvalidFirstOperand)}

	for p.peek() != nil {
		t := p.peek()
		if !t.Class().Operator() {
			p.fail(ErrInvalidExpression)
		}

		p.consume()

		e.Rest = append(e.Rest, Pair{
			Operator: t.Class(),
			Operand:  p.operand(ErrInvalidExpression),
		})
	}

	if len(e.Rest) == 0 {
		p.fail(ErrInvalidExpression)
	}

	return e
}

// <operand> ::= Mixed | Fraction | Whole .
func (p *T) operand(kind error) Operand {
	t := p.peek()
	if !t.Is(token.Mixed, token.Fraction, token.Whole) {
		p.fail(kind)
	}

	o := Operand{Text: t.Value()}

	s := t.Value()
	if w, rest, found := strings.Cut(s, "_"); found {
		o.Whole = p.integer(w)
		s = rest
	}

	if n, d, found := strings.Cut(s, "/"); found {
		o.Numerator = p.integer(n)
		o.Denominator = p.integer(d)
	} else {
		o.Whole = p.integer(s)
	}

	if o.Denominator == 0 {
		o.Denominator = 1
	}

	p.consume()

	return o
}

func (p *T) integer(s string) int64 {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		p.fail(frac.ErrOverflow)
	}

	return i
}
