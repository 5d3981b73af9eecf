// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for frac.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/frac/internal/system/options"
)

// Banner is printed before the first line is read.
const Banner = `Enter a math expression using whole numbers, fractions and operators.  Begin with '?' symbol.
Valid operators are +, -, *, /.
Valid operands are whole numbers (x), mixed fractions (x_x/x), and proper/improper fractions (x/x).
`

// ErrAborted is returned by a Source when the current line was abandoned.
var ErrAborted = errors.New("line aborted")

// Source supplies lines of input. Line returns io.EOF when there are no more.
type Source interface {
	Line() (string, error)
	Close() error
}

// Run starts frac as configured by the options package and returns the
// exit status.
func Run() int {
	if c := options.Command(); c != "" {
		return New("command", Lines(strings.NewReader(c)), os.Stdout, false).Run()
	}

	var (
		err error
		src Source
	)

	if options.Interactive() {
		src, err = Terminal()
		if err != nil {
			println(err.Error())
			return 1
		}
	} else {
		src = Lines(os.Stdin)
	}

	if !options.Quiet() {
		PrintBanner(os.Stdout, options.KeepGoing())
	}

	return New("stdin", src, os.Stdout, options.KeepGoing()).Run()
}

// PrintBanner writes the usage instructions to w.
func PrintBanner(w io.Writer, keepGoing bool) {
	s := "If '?' symbol is omitted, or syntax error occurs, program ends."
	if keepGoing {
		s = "If '?' symbol is omitted, or syntax error occurs, the line is ignored."
	}

	fmt.Fprint(w, Banner, s, "\n")
}
