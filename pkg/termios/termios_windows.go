// ABOUTME: Windows console backend: the snapshot is the handle's console mode word
// ABOUTME: Input and output handles get different raw variants since their mode bits overlap

//go:build windows

package termios

import (
	"golang.org/x/sys/windows"
)

// Termios is the console mode of a console handle. Input reports whether
// the mode belongs to an input buffer; input and output modes reuse the
// same bit values with different meanings.
type Termios struct {
	Mode  uint32
	Input bool
}

// Target is anything that can be borrowed as a console handle.
type Target interface {
	Fd() uintptr
}

// Clone returns an independent copy of ios.
func (ios *Termios) Clone() *Termios {
	c := *ios
	return &c
}

// Get reads the console mode of the handle behind t.
func Get(t Target) (*Termios, error) {
	h := windows.Handle(t.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return nil, readErr(err)
	}
	return &Termios{Mode: mode, Input: isInputHandle(h)}, nil
}

// isInputHandle reports whether h is a console input buffer. Only input
// buffers have pending input events.
func isInputHandle(h windows.Handle) bool {
	var n uint32
	return windows.GetNumberOfConsoleInputEvents(h, &n) == nil
}

// Set applies ios to the handle behind t.
func Set(t Target, ios *Termios) error {
	if err := windows.SetConsoleMode(windows.Handle(t.Fd()), ios.Mode); err != nil {
		return writeErr(err)
	}
	return nil
}

const rawInputOff = windows.ENABLE_ECHO_INPUT | windows.ENABLE_PROCESSED_INPUT | windows.ENABLE_LINE_INPUT

// MakeRaw derives the raw variant of ios in place.
//
// On an input buffer it disables line input, echo and Ctrl-C processing
// and enables VT input sequences. On a screen buffer with VT processing on
// it stops "\n" from returning the carriage; other output modes are left
// as they are, because clearing processed output would also turn off VT
// sequence handling.
func MakeRaw(ios *Termios) {
	if ios.Input {
		ios.Mode &^= rawInputOff
		ios.Mode |= windows.ENABLE_VIRTUAL_TERMINAL_INPUT
		return
	}
	if ios.Mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		ios.Mode |= windows.DISABLE_NEWLINE_AUTO_RETURN
	}
}

// IsRaw reports whether ios already carries the mode MakeRaw produces.
func IsRaw(ios *Termios) bool {
	if ios.Input {
		return ios.Mode&rawInputOff == 0 && ios.Mode&windows.ENABLE_VIRTUAL_TERMINAL_INPUT != 0
	}
	if ios.Mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return ios.Mode&windows.DISABLE_NEWLINE_AUTO_RETURN != 0
	}
	return true
}
