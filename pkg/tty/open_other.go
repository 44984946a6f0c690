// ABOUTME: Controlling-terminal lookup fallback for targets without /dev/tty
// ABOUTME: Open returns termios.ErrUnsupported

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos)

package tty

import (
	"fmt"
	"os"

	"github.com/mauromedda/rawterm/pkg/termios"
)

// Open is not available on this platform.
func Open() (*os.File, error) {
	return nil, fmt.Errorf("opening controlling terminal: %w", termios.ErrUnsupported)
}
