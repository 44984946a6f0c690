// ABOUTME: Native termios backend built on golang.org/x/sys/unix ioctls
// ABOUTME: Snapshots are plain value copies of unix.Termios

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package termios

import (
	"golang.org/x/sys/unix"
)

// Termios is a complete line-discipline snapshot of a terminal.
type Termios struct {
	unix.Termios
}

// Target is anything that can be borrowed as a file descriptor for
// attribute operations. *os.File satisfies it.
type Target interface {
	Fd() uintptr
}

// Clone returns an independent copy of ios.
func (ios *Termios) Clone() *Termios {
	c := *ios
	return &c
}

// Get reads the current attributes of the terminal behind t.
func Get(t Target) (*Termios, error) {
	raw, err := unix.IoctlGetTermios(int(t.Fd()), ioctlReadTermios)
	if err != nil {
		return nil, readErr(err)
	}
	return &Termios{Termios: *raw}, nil
}

// Set applies ios to the terminal behind t immediately.
func Set(t Target, ios *Termios) error {
	// Copy so the ioctl never sees (or writes through) the caller's snapshot.
	c := ios.Termios
	if err := unix.IoctlSetTermios(int(t.Fd()), ioctlWriteTermios, &c); err != nil {
		return writeErr(err)
	}
	return nil
}

const (
	rawIflagOff = unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	rawLflagOff = unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
)

// MakeRaw turns ios into its raw-mode variant in place: no canonical input,
// no echo, no signal characters, no output processing, 8-bit characters and
// reads that return as soon as one byte is available.
func MakeRaw(ios *Termios) {
	ios.Iflag &^= rawIflagOff
	ios.Oflag &^= unix.OPOST
	ios.Lflag &^= rawLflagOff
	ios.Cflag &^= unix.CSIZE | unix.PARENB
	ios.Cflag |= unix.CS8
	ios.Cc[unix.VMIN] = 1
	ios.Cc[unix.VTIME] = 0
}

// IsRaw reports whether ios already carries the raw-mode settings MakeRaw
// applies.
func IsRaw(ios *Termios) bool {
	return ios.Iflag&rawIflagOff == 0 &&
		ios.Oflag&unix.OPOST == 0 &&
		ios.Lflag&rawLflagOff == 0 &&
		ios.Cflag&(unix.CSIZE|unix.PARENB) == unix.CS8 &&
		ios.Cc[unix.VMIN] == 1 &&
		ios.Cc[unix.VTIME] == 0
}
