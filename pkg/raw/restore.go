// ABOUTME: RestoreOnPanic and RecoverGoroutine put the terminal back when a panic escapes
// ABOUTME: Intended to be deferred in goroutines that run while raw mode is on

package raw

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// Restorer is what the panic helpers need from a raw-mode owner; *Terminal
// satisfies it.
type Restorer interface {
	io.Writer
	Close() error
}

var showCursor = []byte("\033[?25h")

// RestoreOnPanic should be deferred at the top of main (or any goroutine
// that owns the terminal). On panic it shows the cursor, restores the
// terminal through r, prints the panic value and stack trace, then exits
// with code 1.
func RestoreOnPanic(r Restorer) {
	rec := recover()
	if rec == nil {
		return
	}

	restore(r)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", rec, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that run while the terminal is in raw mode. Unlike RestoreOnPanic it does
// not exit, leaving shutdown to the main goroutine.
func RecoverGoroutine(r Restorer) {
	rec := recover()
	if rec == nil {
		return
	}

	restore(r)
	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", rec, debug.Stack())
}

func restore(r Restorer) {
	// Best-effort: the cursor may have been hidden by the crashed code.
	_, _ = r.Write(showCursor)
	_ = r.Close()
}
