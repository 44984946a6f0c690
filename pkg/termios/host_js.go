// ABOUTME: HostDevice adapts a host terminal object into an io.Writer and Target
// ABOUTME: The host object must expose write, getTermios and setTermios

//go:build js && wasm

package termios

import (
	"fmt"
	"syscall/js"
)

// HostDevice is a terminal living in the host environment, such as a
// browser terminal emulator. The wrapped object must provide:
//
//	write(Uint8Array)
//	getTermios() -> configuration object
//	setTermios(configuration object)
//
// Configuration objects must provide clone() and makeRaw().
type HostDevice struct {
	v js.Value
}

// NewHostDevice wraps the host terminal object v.
func NewHostDevice(v js.Value) *HostDevice {
	return &HostDevice{v: v}
}

// Write sends p to the host terminal.
func (d *HostDevice) Write(p []byte) (int, error) {
	buf := js.Global().Get("Uint8Array").New(len(p))
	js.CopyBytesToJS(buf, p)
	if _, err := call(d.v, "write", buf); err != nil {
		return 0, fmt.Errorf("writing to host terminal: %w", err)
	}
	return len(p), nil
}

// GetTermios returns the host terminal's live configuration object.
func (d *HostDevice) GetTermios() (js.Value, error) {
	return call(d.v, "getTermios")
}

// SetTermios replaces the host terminal's configuration object.
func (d *HostDevice) SetTermios(v js.Value) error {
	_, err := call(d.v, "setTermios", v)
	return err
}
