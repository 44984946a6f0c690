// ABOUTME: Host-terminal methods for the in-memory test device under js/wasm
// ABOUTME: Lets fakeDevice satisfy termios.Target

//go:build js && wasm

package raw

import "syscall/js"

func (d *fakeDevice) GetTermios() (js.Value, error) { return js.Undefined(), nil }

func (d *fakeDevice) SetTermios(js.Value) error { return nil }
