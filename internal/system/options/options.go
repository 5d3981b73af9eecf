// Released under an MIT license. See LICENSE.

// Package options parses frac's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "frac 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	keepGoing   bool
	quiet       bool
	usage       = `frac

Usage:
  frac [-ikq] [-c EXPRESSION]
  frac -h
  frac -v

Options:
  -c, --command=EXPRESSION  Evaluate EXPRESSION and exit.
  -i, --interactive         Invert interactive mode.
  -k, --keep-going          Keep reading after an invalid line.
  -q, --quiet               Do not print the usage banner.
  -h, --help                Display this help.
  -v, --version             Print frac version.

If frac's stdin is a TTY and no command was given, line editing and history
are enabled. Otherwise, lines are read from stdin as they are.
`
)

// Command returns the expression passed with -c, if any.
func Command() string {
	return command
}

// Interactive returns true if lines should be read with line editing.
func Interactive() bool {
	return interactive
}

// KeepGoing returns true if the session should continue after an error.
func KeepGoing() bool {
	return keepGoing
}

// Quiet returns true if the usage banner should be suppressed.
func Quiet() bool {
	return quiet
}

// Parse parses the command-line arguments argv (without the program name).
// On -h, -v, or invalid arguments it prints usage and exits.
func Parse(argv []string) {
	opts, err := docopt.ParseArgs(usage, argv, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	set(opts, isatty.IsTerminal(os.Stdin.Fd()))
}

func set(opts docopt.Opts, terminal bool) {
	command, _ = opts.String("--command")
	keepGoing, _ = opts.Bool("--keep-going")
	quiet, _ = opts.Bool("--quiet")

	interactive = command == "" && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}
