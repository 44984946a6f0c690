// ABOUTME: Terminal attribute backend: read, write and derive raw-mode snapshots
// ABOUTME: The concrete Termios/Target types are chosen per target by build constraints

// Package termios reads and writes terminal attribute snapshots and derives
// their raw-mode variant.
//
// Exactly one backend is compiled per target: unix ioctls, the windows
// console API, or a host terminal object under js/wasm. Every backend
// exposes the same three operations:
//
//	Get(t Target) (*Termios, error)
//	Set(t Target, ios *Termios) error
//	MakeRaw(ios *Termios)
//
// A snapshot returned by Get is always complete: passing it back to Set
// reproduces the device's prior configuration, not only the fields raw mode
// touches.
package termios

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned on targets that have no attribute backend.
var ErrUnsupported = errors.New("terminal attributes not supported on this platform")

func readErr(err error) error {
	return fmt.Errorf("reading terminal attributes: %w", err)
}

func writeErr(err error) error {
	return fmt.Errorf("writing terminal attributes: %w", err)
}
