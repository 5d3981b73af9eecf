// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed frac expressions.
//
// Operators are applied strictly from left to right. There is no
// precedence: 1 + 2 * 3 is 9.
package engine

import (
	"github.com/michaelmacinnis/frac/internal/reader/parser"
	"github.com/michaelmacinnis/frac/internal/reader/token"
	"github.com/michaelmacinnis/frac/internal/type/frac"
)

type operation func(acc, operand *frac.T) error

//nolint:gochecknoglobals
var operations = map[token.Class]operation{
	'+': (*frac.T).Add,
	'-': (*frac.T).Subtract,
	'*': (*frac.T).Multiply,
	'/': (*frac.T).Divide,
}

// Apply applies the operator op to the accumulator acc and the operand f.
// Both must be flat.
func Apply(acc *frac.T, op token.Class, f *frac.T) error {
	o, ok := operations[op]
	if !ok {
		panic("'" + op.String() + "' is not an operator")
	}

	if err := o(acc, f); err != nil {
		return err
	}

	acc.Reduce()

	return nil
}

// Evaluate folds the expression e into a single fraction.
func Evaluate(e *parser.Expression) (*frac.T, error) {
	acc := e.First.Frac()
	if err := acc.Convert(); err != nil {
		return nil, err
	}

	for _, p := range e.Rest {
		f := p.Operand.Frac()
		if err := f.Convert(); err != nil {
			return nil, err
		}

		if err := Apply(acc, p.Operator, f); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
