// ABOUTME: Raw mode guard: captures terminal attributes, enters raw mode, restores once
// ABOUTME: Terminal forwards reads and writes to the device it owns until released

// Package raw switches a terminal into raw mode and guarantees the original
// mode comes back.
//
// Raw mode means input is delivered byte by byte without line buffering,
// typed characters are not echoed, control characters such as Ctrl-C arrive
// as plain bytes instead of raising signals, and output is written
// unmodified (a bare "\n" does not return the carriage).
//
// Typical use:
//
//	t, err := raw.IntoRawMode(os.Stdout)
//	if err != nil {
//		return err
//	}
//	defer t.Close()
//	fmt.Fprint(t, "Hey there.\r\n")
//
// A Terminal owns its device until Close or IntoInner. Only one Terminal
// may wrap a given device at a time.
package raw

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/mauromedda/rawterm/internal/log"
	"github.com/mauromedda/rawterm/pkg/termios"
)

// ControlSequenceTimeout is how long to wait for the rest of an escape
// sequence after an ESC byte.
const ControlSequenceTimeout = 100 * time.Millisecond

// ErrReleased is returned by operations on a Terminal that has been closed
// or unwrapped.
var ErrReleased = errors.New("raw: terminal released")

// Device is a writable terminal handle whose attributes can be read and
// written. *os.File satisfies it on native targets; *termios.HostDevice
// satisfies it under js/wasm.
type Device interface {
	io.Writer
	termios.Target
}

// Terminal holds a device in raw mode and the attributes it had before.
type Terminal struct {
	be   backend
	prev *termios.Termios

	// mu is held across every attribute change, so a release can never
	// interleave with a suspend or activate.
	mu  sync.Mutex
	out Device // nil once released
}

// IntoRawMode captures the attributes of d, switches d into raw mode and
// returns a Terminal that restores the captured attributes on Close.
//
// If reading the attributes fails, d is left untouched. If applying the raw
// attributes fails, the error is returned and no Terminal exists to undo a
// partial change.
func IntoRawMode(d Device) (*Terminal, error) {
	return enter(d, native{})
}

func enter(d Device, be backend) (*Terminal, error) {
	prev, err := be.get(d)
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}

	ios := be.clone(prev)
	be.makeRaw(ios)
	if err := be.set(d, ios); err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}

	log.Debug("raw mode on")
	return &Terminal{be: be, prev: prev, out: d}, nil
}

// SuspendRawMode temporarily puts the device back into its original mode.
// The Terminal stays usable; ActivateRawMode switches back.
func (t *Terminal) SuspendRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.out == nil {
		return ErrReleased
	}
	if err := t.be.set(t.out, t.prev); err != nil {
		return fmt.Errorf("suspending raw mode: %w", err)
	}
	return nil
}

// ActivateRawMode re-reads the device attributes and applies their raw
// variant. Calling it while already in raw mode changes nothing.
func (t *Terminal) ActivateRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.out == nil {
		return ErrReleased
	}
	ios, err := t.be.get(t.out)
	if err != nil {
		return fmt.Errorf("activating raw mode: %w", err)
	}
	t.be.makeRaw(ios)
	if err := t.be.set(t.out, ios); err != nil {
		return fmt.Errorf("activating raw mode: %w", err)
	}
	return nil
}

// IntoInner restores the original attributes and hands the device back.
// A failed restore is logged and otherwise ignored. The Terminal is inert
// afterwards; IntoInner on an inert Terminal returns nil.
func (t *Terminal) IntoInner() Device {
	return t.release()
}

// Close restores the original attributes unless the Terminal was already
// released. It is meant to be deferred right after IntoRawMode and is safe
// to call more than once; only the first call writes to the device.
//
// Close always returns nil. A failed restore (for example because the
// device has been closed) is logged at debug level, so that teardown never
// fails. Close does not close the device.
func (t *Terminal) Close() error {
	t.release()
	return nil
}

func (t *Terminal) release() Device {
	t.mu.Lock()
	defer t.mu.Unlock()

	d := t.out
	if d == nil {
		return nil
	}
	t.out = nil

	if err := t.be.set(d, t.prev); err != nil {
		log.Debug("restoring terminal attributes: %v", err)
		return d
	}
	log.Debug("raw mode off")
	return d
}

func (t *Terminal) device() (Device, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.out == nil {
		return nil, ErrReleased
	}
	return t.out, nil
}

// Device returns the wrapped device, or nil once released.
func (t *Terminal) Device() Device {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.out
}

// Write writes p to the device unchanged.
func (t *Terminal) Write(p []byte) (int, error) {
	d, err := t.device()
	if err != nil {
		return 0, err
	}
	return d.Write(p)
}

// Flush flushes the device if it buffers output (has a Flush() error
// method); otherwise it does nothing.
func (t *Terminal) Flush() error {
	d, err := t.device()
	if err != nil {
		return err
	}
	if f, ok := d.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Read reads from the device if it is also an io.Reader.
func (t *Terminal) Read(p []byte) (int, error) {
	d, err := t.device()
	if err != nil {
		return 0, err
	}
	r, ok := d.(io.Reader)
	if !ok {
		return 0, fmt.Errorf("raw: %T is not readable", d)
	}
	return r.Read(p)
}
