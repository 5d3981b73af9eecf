// Released under an MIT license. See LICENSE.

package frac

import (
	"math"
	"math/bits"
)

func abs(a int64) int64 {
	if a < 0 {
		return -a
	}

	return a
}

// add returns a+b or ErrOverflow. As with neg, math.MinInt64 is out of range.
func add(a, b int64) (int64, error) {
	c := a + b
	if (c > a) != (b > 0) || c == math.MinInt64 {
		return 0, ErrOverflow
	}

	return c, nil
}

// mul returns a*b or ErrOverflow. A result of math.MinInt64 is an overflow.
func mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	neg := (a < 0) != (b < 0)

	hi, lo := bits.Mul64(magnitude(a), magnitude(b))
	if hi != 0 {
		return 0, ErrOverflow
	}

	if neg {
		if lo >= 1<<63 {
			return 0, ErrOverflow
		}

		return int64(-lo), nil //nolint:gosec
	}

	if lo > math.MaxInt64 {
		return 0, ErrOverflow
	}

	return int64(lo), nil
}

// neg returns -a or ErrOverflow.
func neg(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, ErrOverflow
	}

	return -a, nil
}

// gcd returns the greatest common divisor of a and b. A zero
// operand yields 1 so that callers never reduce by it.
func gcd(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 1
	}

	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func magnitude(a int64) uint64 {
	if a < 0 {
		return uint64(-(a + 1)) + 1 //nolint:gosec
	}

	return uint64(a)
}
