// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive line history.
package history

import (
	"io"
	"os"
	"path/filepath"
)

const name = ".frac_history"

// Load calls read with the contents of the history file.
// A missing history file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save calls write to replace the contents of the history file.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Path returns the location of the history file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, name), nil
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	p, err := Path()
	if err != nil {
		return nil, err
	}

	return op(p)
}
