// ABOUTME: rawkeys shows the bytes each key sends while the terminal is in raw mode
// ABOUTME: Loads settings, opens the terminal, enters raw mode and runs the key loop

//go:build !(js && wasm)

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/rawterm/internal/config"
	"github.com/mauromedda/rawterm/internal/log"
	"github.com/mauromedda/rawterm/pkg/raw"
	"github.com/mauromedda/rawterm/pkg/tty"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("rawkeys %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadSettings(args cliArgs) (*config.Settings, error) {
	if args.config != "" {
		return config.LoadFile(args.config)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return config.Load(cwd)
}

func openDevice(path string) (*os.File, error) {
	if path == "" {
		return tty.Open()
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}

// run performs the initialization sequence and the key loop.
func run(args cliArgs) error {
	settings, err := loadSettings(args)
	if err != nil {
		return err
	}
	if args.tty != "" {
		settings.TTY = args.tty
	}
	if args.noHex {
		off := false
		settings.ShowHex = &off
	}

	lvl, err := log.ParseLevel(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if args.debug {
		lvl = log.LevelDebug
	}
	log.SetLevel(lvl)

	keys, err := newKeymap(settings)
	if err != nil {
		return err
	}

	dev, err := openDevice(settings.TTY)
	if err != nil {
		return err
	}
	defer dev.Close()

	if !tty.IsTTY(dev) {
		return fmt.Errorf("%s is not a terminal", dev.Name())
	}

	term, err := raw.IntoRawMode(dev)
	if err != nil {
		return err
	}
	defer term.Close()
	defer raw.RestoreOnPanic(term)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	s := &session{
		term:    term,
		keys:    keys,
		showHex: settings.ShowHex == nil || *settings.ShowHex,
	}
	s.banner(dev)

	return s.pump(ctx, term, dev)
}

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

func (s *session) banner(dev *os.File) {
	fmt.Fprintf(s.term, "%s\r\n", titleStyle.Render("rawkeys "+version))
	fmt.Fprintf(s.term, "press %s to quit, %s to suspend\r\n", s.keys.quitName, s.keys.suspendName)

	cols, _, err := tty.Size(dev)
	if err != nil || cols <= 0 {
		cols = 40
	}
	rule := make([]byte, cols)
	for i := range rule {
		rule[i] = '-'
	}
	fmt.Fprintf(s.term, "%s\r\n", rule)
}
