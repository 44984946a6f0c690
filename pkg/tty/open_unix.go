// ABOUTME: Controlling-terminal lookup on unix via /dev/tty
// ABOUTME: Open returns the process's terminal even when stdio is redirected

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package tty

import (
	"fmt"
	"os"
)

// Path is the controlling terminal of the current process.
const Path = "/dev/tty"

// Open opens the controlling terminal for reading and writing. Unlike
// os.Stdin and os.Stdout it still reaches the terminal when standard
// streams are redirected.
func Open() (*os.File, error) {
	f, err := os.OpenFile(Path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening controlling terminal: %w", err)
	}
	return f, nil
}
