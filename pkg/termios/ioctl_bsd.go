// ABOUTME: ioctl request numbers for termios on BSD-derived systems
// ABOUTME: darwin and the BSDs use TIOCGETA/TIOCSETA

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package termios

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETA
)
