// ABOUTME: Job-control suspend fallback for platforms without SIGTSTP
// ABOUTME: Always reports the operation as unsupported

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos) && !(js && wasm)

package main

import "github.com/mauromedda/rawterm/pkg/termios"

// stopProcess is unavailable without job control.
func stopProcess() error {
	return termios.ErrUnsupported
}
