package engine

import (
	"testing"

	"github.com/michaelmacinnis/frac/internal/reader"
	"github.com/michaelmacinnis/frac/internal/reader/parser"
	"github.com/michaelmacinnis/frac/internal/type/frac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluate(t *testing.T, line string) (string, error) {
	t.Helper()

	e, err := reader.New("test").Scan(line)
	if err != nil {
		return "", err
	}

	f, err := Evaluate(e)
	if err != nil {
		return "", err
	}

	return f.Format()
}

func TestEvaluate(t *testing.T) {
	for _, tt := range []struct {
		line, want string
	}{
		{"? 1/2 + 1/3", "5/6"},
		{"? 3_1/2 - 1_1/2", "2"},
		{"? 2/3 * 3/4", "1/2"},
		{"? 1/2 / 1/4", "2"},
		{"? 1 + 2 * 3", "9"},
		{"? 1 - 2 * 3", "-3"},
		{"?1/2+1/2", "1"},
		{"? 1 * 1", "1"},
		{"? 5/3 + 0", "1_2/3"},
		{"? 1/4 - 1", "-3/4"},
		{"? 1 - 3_1/3", "-2_1/3"},
		{"? 1 - 3_1/3 + 1/3", "-2"},
		{"? 2_3/4 * 2", "5_1/2"},
		{"? 7 / 2 / 2", "1_3/4"},
		{"? 1/0 + 1", "2"},
		{"? 0 * 5", "0"},
		{"? 1/3 + 1/3 + 1/3 + 1/3 + 1/3 + 1/3", "2"},
		{"? 0 - 9223372036854775807", "-9223372036854775807"},
	} {
		got, err := evaluate(t, tt.line)
		require.NoError(t, err, "line %q", tt.line)
		assert.Equal(t, tt.want, got, "line %q", tt.line)
	}
}

func TestEvaluateErrors(t *testing.T) {
	for _, tt := range []struct {
		line string
		kind error
	}{
		{"1/2", parser.ErrMissingQueryMarker},
		{"? abc", parser.ErrInvalidFirstOperand},
		{"? 1/2 +", parser.ErrInvalidExpression},
		{"? 1 / 0", frac.ErrDivisionByZero},
		{"? 1/2 / 0/3", frac.ErrDivisionByZero},
		{"? 9223372036854775807 * 2", frac.ErrOverflow},
		{"? 9223372036854775807_1/2 + 1", frac.ErrOverflow},
		{"? 0 - 9223372036854775807 - 1", frac.ErrOverflow},
		{"? 0 - 4611686018427387904 * 2", frac.ErrOverflow},
	} {
		_, err := evaluate(t, tt.line)
		assert.ErrorIs(t, err, tt.kind, "line %q", tt.line)
	}
}

func TestApplyReduces(t *testing.T) {
	acc := frac.New(0, 1, 2)
	require.NoError(t, Apply(acc, '+', frac.New(0, 1, 2)))

	assert.Equal(t, int64(1), acc.Numerator())
	assert.Equal(t, int64(1), acc.Denominator())
}

func TestApplyUnknownOperator(t *testing.T) {
	assert.Panics(t, func() {
		_ = Apply(frac.New(0, 1, 2), '%', frac.New(0, 1, 2))
	})
}
