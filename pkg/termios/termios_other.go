// ABOUTME: Attribute backend stub for targets without terminal support
// ABOUTME: Get and Set return ErrUnsupported; MakeRaw does nothing

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos || windows || (js && wasm))

package termios

// Termios is empty on targets without an attribute backend.
type Termios struct{}

// Target is anything that can be borrowed as a file descriptor.
type Target interface {
	Fd() uintptr
}

// Clone returns an independent copy of ios.
func (ios *Termios) Clone() *Termios {
	return &Termios{}
}

// Get always fails with ErrUnsupported.
func Get(Target) (*Termios, error) {
	return nil, readErr(ErrUnsupported)
}

// Set always fails with ErrUnsupported.
func Set(Target, *Termios) error {
	return writeErr(ErrUnsupported)
}

// MakeRaw does nothing.
func MakeRaw(*Termios) {}

// IsRaw always reports false.
func IsRaw(*Termios) bool { return false }
