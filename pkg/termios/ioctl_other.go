// ABOUTME: ioctl request numbers for termios on System V style systems
// ABOUTME: linux, aix, solaris and zos use TCGETS/TCSETS

//go:build aix || linux || solaris || zos

package termios

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETS
)
