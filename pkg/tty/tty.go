// ABOUTME: Terminal discovery helpers: is-a-terminal checks, controlling tty, size
// ABOUTME: Thin wrappers over golang.org/x/term; the raw package does not depend on them

// Package tty finds and inspects terminal devices.
package tty

import (
	"fmt"

	"golang.org/x/term"
)

// Fder is anything backed by a file descriptor, such as *os.File.
type Fder interface {
	Fd() uintptr
}

// IsTTY reports whether f refers to a terminal.
func IsTTY(f Fder) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Size returns the width and height of the terminal behind f in cells.
func Size(f Fder) (cols, rows int, err error) {
	cols, rows, err = term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return cols, rows, nil
}
