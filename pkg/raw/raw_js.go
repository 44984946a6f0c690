// ABOUTME: Host-terminal forwarding so a Terminal is itself a Device under js/wasm
// ABOUTME: Released Terminals report ErrReleased

//go:build js && wasm

package raw

import "syscall/js"

// GetTermios forwards to the wrapped host terminal.
func (t *Terminal) GetTermios() (js.Value, error) {
	d, err := t.device()
	if err != nil {
		return js.Undefined(), err
	}
	return d.GetTermios()
}

// SetTermios forwards to the wrapped host terminal.
func (t *Terminal) SetTermios(v js.Value) error {
	d, err := t.device()
	if err != nil {
		return err
	}
	return d.SetTermios(v)
}
