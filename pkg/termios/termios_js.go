// ABOUTME: Host-object backend for js/wasm: snapshots are opaque host values
// ABOUTME: Only the clone and makeRaw methods are ever invoked on a snapshot

//go:build js && wasm

package termios

import (
	"errors"
	"fmt"
	"syscall/js"
)

// Termios is a handle to a host-side terminal configuration object. Its
// fields are never inspected from Go. A Termios obtained from Get or Clone
// never aliases the host terminal's live configuration.
type Termios struct {
	v js.Value
}

// Target is a host terminal that can hand out and accept configuration
// objects.
type Target interface {
	GetTermios() (js.Value, error)
	SetTermios(js.Value) error
}

// FromValue wraps a host configuration object.
func FromValue(v js.Value) *Termios {
	return &Termios{v: v}
}

// Value returns the wrapped host object.
func (ios *Termios) Value() js.Value {
	return ios.v
}

// Clone asks the host for an independent copy of ios. Host assignment is by
// reference, so this is the only way to keep an original that later
// mutations cannot reach. It panics if the host object has no working clone
// method.
func (ios *Termios) Clone() *Termios {
	c, err := call(ios.v, "clone")
	if err != nil {
		panic(fmt.Sprintf("termios: host clone failed: %v", err))
	}
	return &Termios{v: c}
}

// Get reads the current configuration of the host terminal and returns a
// copy of it.
func Get(t Target) (*Termios, error) {
	v, err := t.GetTermios()
	if err != nil {
		return nil, readErr(err)
	}
	if v.IsUndefined() || v.IsNull() {
		return nil, readErr(errors.New("host returned no configuration"))
	}
	c, err := call(v, "clone")
	if err != nil {
		return nil, readErr(err)
	}
	return &Termios{v: c}, nil
}

// Set pushes a clone of ios to the host terminal, so ios itself never
// becomes the host's live configuration.
func Set(t Target, ios *Termios) error {
	c, err := call(ios.v, "clone")
	if err != nil {
		return writeErr(err)
	}
	if err := t.SetTermios(c); err != nil {
		return writeErr(err)
	}
	return nil
}

// MakeRaw asks the host to turn ios into its raw-mode variant in place.
// Host failures are ignored; the snapshot is left as the host left it.
func MakeRaw(ios *Termios) {
	_, _ = call(ios.v, "makeRaw")
}

// call invokes a named method on v, turning a thrown host exception into an
// error.
func call(v js.Value, method string, args ...any) (res js.Value, err error) {
	if v.Type() != js.TypeObject {
		return js.Undefined(), fmt.Errorf("%s: host value is %s, not an object", method, v.Type())
	}
	if v.Get(method).Type() != js.TypeFunction {
		return js.Undefined(), fmt.Errorf("%s: host object has no such method", method)
	}
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("%s: %w", method, e)
				return
			}
			err = fmt.Errorf("%s: %v", method, r)
		}
	}()
	return v.Call(method, args...), nil
}
