// ABOUTME: Descriptor forwarding so a Terminal is itself a Device on native targets
// ABOUTME: Released Terminals report an invalid descriptor

//go:build !(js && wasm)

package raw

// Fd returns the device's descriptor, so a Terminal can itself be wrapped
// or passed to other terminal helpers. It returns ^uintptr(0) once
// released, like (*os.File).Fd on a closed file.
func (t *Terminal) Fd() uintptr {
	d := t.Device()
	if d == nil {
		return ^uintptr(0)
	}
	return d.Fd()
}
