// Released under an MIT license. See LICENSE.

// Package frac provides the calculator's mixed fraction type.
//
// A fraction is either in mixed form, with a whole part and a non-negative
// fractional remainder, or in flat form, where the whole part is zero and
// the sign and magnitude are carried by the numerator. Arithmetic is only
// defined on flat values; Convert moves a value from mixed to flat form and
// Simplify moves it back.
package frac

import (
	"errors"
	"strconv"
)

// Errors returned by arithmetic on fractions.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("integer overflow")
)

// T (frac) is a signed mixed fraction.
type T struct {
	whole int64
	num   int64
	den   int64
}

type frac = T

// New creates a new fraction. The fields are stored verbatim.
func New(whole, num, den int64) *T {
	return &frac{whole: whole, num: num, den: den}
}

// Whole returns the whole part of the fraction f.
func (f *frac) Whole() int64 {
	return f.whole
}

// Numerator returns the numerator of the fraction f.
func (f *frac) Numerator() int64 {
	return f.num
}

// Denominator returns the denominator of the fraction f.
func (f *frac) Denominator() int64 {
	return f.den
}

// Flat returns true if f has no whole part.
func (f *frac) Flat() bool {
	return f.whole == 0
}

// Convert folds the whole part of f into its numerator.
//
// A negative whole part negates the whole value, so -2_1/3 becomes -7/3.
func (f *frac) Convert() error {
	if f.whole == 0 {
		return nil
	}

	w, err := mul(f.den, f.whole)
	if err != nil {
		return err
	}

	if f.whole > 0 {
		f.num, err = add(f.num, w)
	} else {
		var n int64

		n, err = neg(f.num)
		if err == nil {
			f.num, err = add(w, n)
		}
	}

	if err != nil {
		return err
	}

	f.whole = 0

	return nil
}

// Add adds the flat fraction o to the flat fraction f.
func (f *frac) Add(o *T) error {
	flat(f, o)

	d, err := mul(f.den, o.den)
	if err != nil {
		return err
	}

	a, err := mul(o.den, f.num)
	if err != nil {
		return err
	}

	b, err := mul(f.den, o.num)
	if err != nil {
		return err
	}

	n, err := add(a, b)
	if err != nil {
		return err
	}

	f.num, f.den = n, d

	return nil
}

// Subtract subtracts the flat fraction o from the flat fraction f.
// Unlike the other operations, o is left unchanged.
func (f *frac) Subtract(o *T) error {
	flat(f, o)

	n, err := o.Negate()
	if err != nil {
		return err
	}

	return f.Add(n)
}

// Multiply multiplies the flat fraction f by the flat fraction o.
func (f *frac) Multiply(o *T) error {
	flat(f, o)

	n, err := mul(f.num, o.num)
	if err != nil {
		return err
	}

	d, err := mul(f.den, o.den)
	if err != nil {
		return err
	}

	f.num, f.den = n, d

	return nil
}

// Divide divides the flat fraction f by the flat fraction o.
func (f *frac) Divide(o *T) error {
	flat(f, o)

	if o.num == 0 {
		return ErrDivisionByZero
	}

	n, err := mul(f.num, o.den)
	if err != nil {
		return err
	}

	d, err := mul(f.den, o.num)
	if err != nil {
		return err
	}

	if d < 0 {
		if n, err = neg(n); err != nil {
			return err
		}

		if d, err = neg(d); err != nil {
			return err
		}
	}

	f.num, f.den = n, d

	return nil
}

// Negate returns a new fraction with the opposite sign of f.
func (f *frac) Negate() (*T, error) {
	c := *f

	var err error
	if c.whole != 0 {
		c.whole, err = neg(c.whole)
	} else {
		c.num, err = neg(c.num)
	}

	if err != nil {
		return nil, err
	}

	return &c, nil
}

// Reduce divides the numerator and denominator of f by their greatest
// common divisor without extracting a whole part.
func (f *frac) Reduce() {
	g := gcd(abs(f.num), abs(f.den))
	if g > 1 {
		f.num /= g
		f.den /= g
	}
}

// Simplify reduces f to lowest terms and moves any whole number
// component into the whole part.
func (f *frac) Simplify() error {
	if f.whole != 0 && f.den > 0 && abs(f.num) >= f.den {
		// Improper remainder on a mixed value. Flatten it first so
		// the whole part accumulates rather than being replaced.
		if err := f.Convert(); err != nil {
			return err
		}
	}

	g := gcd(abs(f.num), abs(f.den))
	if g > 1 {
		f.num /= g
		f.den /= g

		if f.den == 1 {
			var err error
			if f.whole >= 0 {
				f.whole, err = add(f.whole, f.num)
			} else {
				f.whole, err = add(f.whole, -f.num)
			}

			if err != nil {
				return err
			}

			f.num = 0
		}
	}

	if f.num != 0 && f.den > 0 && abs(f.num) >= f.den {
		w, err := add(f.whole, f.num/f.den)
		if err != nil {
			return err
		}

		f.whole = w
		f.num = abs(f.num % f.den)
	}

	return nil
}

// Format simplifies f and returns its canonical text.
func (f *frac) Format() (string, error) {
	if err := f.Simplify(); err != nil {
		return "", err
	}

	return f.String(), nil
}

// String returns the text of f as it currently stands.
func (f *frac) String() string {
	n := strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.den, 10)

	switch {
	case f.num == 0:
		return strconv.FormatInt(f.whole, 10)
	case f.whole == 0:
		return n
	}

	return strconv.FormatInt(f.whole, 10) + "_" + n
}

func flat(fs ...*T) {
	for _, f := range fs {
		if !f.Flat() {
			panic("'" + f.String() + "' is not a flat fraction")
		}
	}
}
