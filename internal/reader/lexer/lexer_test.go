package lexer

import (
	"testing"

	"github.com/michaelmacinnis/frac/internal/reader/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperands(t *testing.T) {
	h := setup(t, "Operands")

	h.scan("? 3_1/2 2/3 7",
		h.at(1).literal("?"),
		h.at(3).other(token.Mixed, "3_1/2"),
		h.at(9).other(token.Fraction, "2/3"),
		h.at(13).other(token.Whole, "7"),
		nil,
	)
}

func TestOperators(t *testing.T) {
	h := setup(t, "Operators")

	h.scan("?1+2-3*4/5",
		h.at(1).literal("?"),
		h.at(2).other(token.Whole, "1"),
		h.at(3).literal("+"),
		h.at(4).other(token.Whole, "2"),
		h.at(5).literal("-"),
		h.at(6).other(token.Whole, "3"),
		h.at(7).literal("*"),
		h.at(8).other(token.Fraction, "4/5"),
		nil,
	)
}

func TestDivisionNeedsSpace(t *testing.T) {
	h := setup(t, "DivisionNeedsSpace")

	h.scan("? 1 / 2 1/ 2 1 /2",
		h.at(1).literal("?"),
		h.at(3).other(token.Whole, "1"),
		h.at(5).literal("/"),
		h.at(7).other(token.Whole, "2"),
		h.at(9).other(token.Whole, "1"),
		h.at(10).literal("/"),
		h.at(12).other(token.Whole, "2"),
		h.at(14).other(token.Whole, "1"),
		h.at(16).literal("/"),
		h.at(17).other(token.Whole, "2"),
		nil,
	)
}

func TestMixedBacktracks(t *testing.T) {
	h := setup(t, "MixedBacktracks")

	h.scan("? 1_2 + 3_/4",
		h.at(1).literal("?"),
		h.at(3).other(token.Whole, "1"),
		h.at(4).other(token.Error, "_2"),
		h.at(7).literal("+"),
		h.at(9).other(token.Whole, "3"),
		h.at(10).other(token.Error, "_/4"),
		nil,
	)
}

func TestMixedThenDivide(t *testing.T) {
	h := setup(t, "MixedThenDivide")

	h.scan("?1_2/3/4",
		h.at(1).literal("?"),
		h.at(2).other(token.Mixed, "1_2/3"),
		h.at(7).literal("/"),
		h.at(8).other(token.Whole, "4"),
		nil,
	)
}

func TestGarbage(t *testing.T) {
	h := setup(t, "Garbage")

	h.scan("  ? abc 12xyz",
		h.at(3).literal("?"),
		h.at(5).other(token.Error, "abc"),
		h.at(9).other(token.Whole, "12"),
		h.at(11).other(token.Error, "xyz"),
		nil,
	)
}

func TestUnicodeSpace(t *testing.T) {
	h := setup(t, "UnicodeSpace")

	h.scan("?\v1\f+\u00a02\u2003x",
		h.at(1).literal("?"),
		h.at(3).other(token.Whole, "1"),
		h.at(5).literal("+"),
		h.at(7).other(token.Whole, "2"),
		h.at(9).other(token.Error, "x"),
		nil,
	)
}

func TestSource(t *testing.T) {
	l := New("Source")

	l.Scan("")
	assert.Equal(t, token.Pos{Char: 1, Line: 1, Name: "Source"}, l.Source())
	assert.Nil(t, l.Token())

	l.Scan("  ")
	assert.Equal(t, token.Pos{Char: 1, Line: 2, Name: "Source"}, l.Source())
}

func TestLines(t *testing.T) {
	l := New("Lines")

	l.Scan("? 1 + 2 extra")
	require.NotNil(t, l.Token())

	// Leftover tokens are discarded and the line number advances.
	l.Scan("?")

	tok := l.Token()
	require.NotNil(t, tok)
	assert.Equal(t, token.Pos{Char: 1, Line: 2, Name: "Lines"}, tok.Source())
	assert.Nil(t, l.Token())
}

func TestExpected(t *testing.T) {
	for _, tt := range []struct {
		line string
		want []string
	}{
		{"", []string{"? "}},
		{"  ", []string{"? "}},
		{"? 1/2", []string{" + ", " - ", " * ", " / "}},
		{"? 1/2 +", []string{}},
		{"?", []string{}},
	} {
		l := New("Expected")
		l.Scan(tt.line)

		for l.Token() != nil { //nolint:revive
		}

		assert.Equal(t, tt.want, l.Expected(), "line %q", tt.line)
	}
}

type harness struct {
	char  int
	lexer *T
	name  string
	t     *testing.T
}

func setup(t *testing.T, label string) *harness {
	return &harness{
		lexer: New(label),
		name:  label,
		t:     t,
	}
}

func (h *harness) at(char int) *harness {
	h.char = char
	return h
}

func (h *harness) expect(tokens ...*token.T) {
	for _, e := range tokens {
		a := h.lexer.Token()

		switch {
		case a == nil && e == nil:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case *a != *e:
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

func (h *harness) literal(s string) *token.T {
	return h.other(token.Class(s[0]), s)
}

func (h *harness) other(id token.Class, s string) *token.T {
	return token.New(id, s, token.Pos{Char: h.char, Line: 1, Name: h.name})
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.lexer.Scan(s)
	h.expect(tokens...)
}
