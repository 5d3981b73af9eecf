// Released under an MIT license. See LICENSE.

package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/michaelmacinnis/frac/internal/engine"
	"github.com/michaelmacinnis/frac/internal/reader"
)

// Session reads, evaluates and reports one line at a time.
//
// Its states are reading, evaluating, reporting and terminated (nil).
// After a failed line the session terminates unless keepGoing is set.
type Session struct {
	keepGoing bool
	out       io.Writer
	reader    *reader.T
	source    Source

	line   string
	result string
	err    error
	status int
}

type action func(*Session) action

// New creates a new session labelled name that reads lines from src and
// writes results to out.
func New(name string, src Source, out io.Writer, keepGoing bool) *Session {
	return &Session{
		keepGoing: keepGoing,
		out:       out,
		reader:    reader.New(name),
		source:    src,
	}
}

// Run drives the session until it terminates and returns the exit status.
// The status is 1 if any line failed.
func (s *Session) Run() int {
	for state := reading; state != nil; {
		state = state(s)
	}

	if err := s.source.Close(); err != nil {
		println(err.Error())
	}

	return s.status
}

// Session states.

func evaluating(s *Session) action {
	e, err := s.reader.Scan(s.line)
	if err != nil {
		s.err = err
		return reporting
	}

	f, err := engine.Evaluate(e)
	if err != nil {
		s.err = err
		return reporting
	}

	s.result, s.err = f.Format()

	return reporting
}

func reading(s *Session) action {
	line, err := s.source.Line()

	switch {
	case err == nil:
		s.line = line
		return evaluating
	case errors.Is(err, ErrAborted):
		return reading
	case errors.Is(err, io.EOF):
		return nil
	}

	// Input errors end the session regardless of keepGoing.
	fmt.Fprintln(s.out, err)

	s.status = 1

	return nil
}

func reporting(s *Session) action {
	if s.err == nil {
		fmt.Fprintln(s.out, "= "+s.result)
		return reading
	}

	fmt.Fprintln(s.out, s.err)

	s.err = nil
	s.status = 1

	if s.keepGoing {
		return reading
	}

	return nil
}
