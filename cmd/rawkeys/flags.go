// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --config, --tty, --debug, --no-hex and --version

//go:build !(js && wasm)

package main

import "flag"

type cliArgs struct {
	config  string
	tty     string
	debug   bool
	noHex   bool
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.config, "config", "", "Settings file to use instead of ~/.rawkeys and ./.rawkeys")
	flag.StringVar(&args.tty, "tty", "", "Terminal device to use (default: the controlling terminal)")
	flag.BoolVar(&args.debug, "debug", false, "Log raw-mode transitions to stderr")
	flag.BoolVar(&args.noHex, "no-hex", false, "Hide the hex dump column")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
