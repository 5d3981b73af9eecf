// Released under an MIT license. See LICENSE.

package ui

import (
	"bufio"
	"io"

	"github.com/michaelmacinnis/frac/internal/reader/lexer"
	"github.com/michaelmacinnis/frac/internal/system/history"
	"github.com/peterh/liner"
)

type lines struct {
	*bufio.Scanner
}

// Lines returns a Source that reads lines from r.
func Lines(r io.Reader) Source {
	return &lines{bufio.NewScanner(r)}
}

func (l *lines) Close() error {
	return nil
}

func (l *lines) Line() (string, error) {
	if l.Scan() {
		return l.Text(), nil
	}

	if err := l.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

type cli struct {
	*liner.State
}

// Terminal returns a Source that reads lines from the terminal with line
// editing, completion and history.
func Terminal() (Source, error) {
	if _, err := liner.TerminalMode(); err != nil {
		return nil, err
	}

	c := &cli{liner.NewLiner()}

	if err := history.Load(c.ReadHistory); err != nil {
		println("Error reading history: " + err.Error())
	}

	c.SetCtrlCAborts(true)
	c.SetWordCompleter(complete)

	return c, nil
}

func (c *cli) Close() error {
	if err := history.Save(c.WriteHistory); err != nil {
		println("Error writing history: " + err.Error())
	}

	return c.State.Close()
}

func (c *cli) Line() (string, error) {
	line, err := c.Prompt("> ")

	switch err {
	case nil:
		c.AppendHistory(line)
		return line, nil
	case liner.ErrPromptAborted:
		return "", ErrAborted
	}

	return "", err
}

func complete(line string, pos int) (head string, cs []string, tail string) {
	head = line[:pos]
	tail = line[pos:]

	l := lexer.New("complete")

	l.Scan(head)

	for l.Token() != nil { //nolint:revive
	}

	return head, l.Expected(), tail
}
