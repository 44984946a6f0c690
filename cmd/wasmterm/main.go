// ABOUTME: wasm entry point exposing raw mode to a browser-hosted terminal
// ABOUTME: Registers rawMode(terminal) on the global object and blocks forever

//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/mauromedda/rawterm/pkg/raw"
	"github.com/mauromedda/rawterm/pkg/termios"
)

func main() {
	c := make(chan struct{})
	registerCallbacks()
	<-c
}

// rawMode puts the host terminal passed as the first argument into raw mode.
// It returns {restore, suspend, activate, error}; restore puts the terminal
// back and may be called more than once.
func rawMode(_ js.Value, args []js.Value) any {
	result := js.Global().Get("Object").New()
	if len(args) < 1 {
		result.Set("error", "rawMode: missing terminal argument")
		return result
	}

	term, err := raw.IntoRawMode(termios.NewHostDevice(args[0]))
	if err != nil {
		result.Set("error", err.Error())
		return result
	}
	fmt.Fprint(term, "raw mode on\r\n")

	result.Set("restore", js.FuncOf(func(js.Value, []js.Value) any {
		_ = term.Close()
		return nil
	}))
	result.Set("suspend", js.FuncOf(func(js.Value, []js.Value) any {
		return errString(term.SuspendRawMode())
	}))
	result.Set("activate", js.FuncOf(func(js.Value, []js.Value) any {
		return errString(term.ActivateRawMode())
	}))
	return result
}

func errString(err error) any {
	if err != nil {
		return err.Error()
	}
	return nil
}

func registerCallbacks() {
	js.Global().Set("rawMode", js.FuncOf(rawMode))
}
