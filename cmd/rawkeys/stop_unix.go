// ABOUTME: Job-control suspend for rawkeys on unix
// ABOUTME: Sends SIGTSTP to the own process; execution resumes on SIGCONT

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package main

import "golang.org/x/sys/unix"

// stopProcess sends SIGTSTP to the process and returns after SIGCONT.
func stopProcess() error {
	return unix.Kill(unix.Getpid(), unix.SIGTSTP)
}
