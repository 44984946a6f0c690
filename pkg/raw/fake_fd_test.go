// ABOUTME: Descriptor method for the in-memory test device on native targets
// ABOUTME: Lets fakeDevice satisfy termios.Target

//go:build !(js && wasm)

package raw

func (d *fakeDevice) Fd() uintptr { return 42 }
