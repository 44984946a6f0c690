// ABOUTME: Key loop for rawkeys: reads chunks, coalesces escape sequences, handles quit and suspend
// ABOUTME: pump wires the reader and the loop together and tears both down on exit

//go:build !(js && wasm)

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/rawterm/internal/config"
	"github.com/mauromedda/rawterm/internal/keyview"
	"github.com/mauromedda/rawterm/internal/log"
	"github.com/mauromedda/rawterm/pkg/raw"
)

const ctrlC = 0x03

var (
	errQuit     = errors.New("quit")
	errPanicked = errors.New("goroutine panicked")
)

// rawTerminal is the part of *raw.Terminal the key loop uses.
type rawTerminal interface {
	io.Writer
	SuspendRawMode() error
	ActivateRawMode() error
}

type keymap struct {
	quit, suspend         byte
	quitName, suspendName string
}

func newKeymap(s *config.Settings) (keymap, error) {
	quit, err := config.ParseKey(s.QuitKey)
	if err != nil {
		return keymap{}, fmt.Errorf("quit_key: %w", err)
	}
	suspend, err := config.ParseKey(s.SuspendKey)
	if err != nil {
		return keymap{}, fmt.Errorf("suspend_key: %w", err)
	}
	return keymap{
		quit:        quit,
		suspend:     suspend,
		quitName:    s.QuitKey,
		suspendName: s.SuspendKey,
	}, nil
}

type session struct {
	term    rawTerminal
	keys    keymap
	showHex bool

	// stop suspends the process until it is continued; nil uses the
	// platform default.
	stop func() error
}

// readChunks forwards everything read from r to out until r fails or is
// closed. Closing the device is the normal way to stop it.
func readChunks(ctx context.Context, r io.Reader, out chan<- []byte) error {
	defer close(out)

	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			select {
			case out <- chunk:
			case <-ctx.Done():
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return fmt.Errorf("reading terminal: %w", err)
		}
	}
}

// pump runs the reader and the key loop until the loop ends. Whatever way
// the loop ends, r is restored and dev closed so that a reader blocked in
// Read returns.
func (s *session) pump(ctx context.Context, r raw.Restorer, dev io.ReadCloser) error {
	g, ctx := errgroup.WithContext(ctx)
	chunks := make(chan []byte)

	g.Go(func() (err error) {
		err = errPanicked
		defer raw.RecoverGoroutine(r)
		return readChunks(ctx, dev, chunks)
	})
	g.Go(func() (err error) {
		err = errPanicked
		// Restore before closing: attributes cannot be set on a closed
		// descriptor.
		defer func() {
			_ = r.Close()
			_ = dev.Close()
		}()
		defer raw.RecoverGoroutine(r)
		return s.loop(ctx, chunks)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

// loop shows each chunk as it arrives. A lone ESC is held back for
// raw.ControlSequenceTimeout so that the rest of an escape sequence is shown
// on the same line.
func (s *session) loop(ctx context.Context, chunks <-chan []byte) error {
	var (
		pending []byte
		timeout <-chan time.Time
	)
	flush := func() {
		if len(pending) > 0 {
			s.show(pending)
		}
		pending, timeout = nil, nil
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return nil

		case <-timeout:
			flush()

		case c, ok := <-chunks:
			if !ok {
				flush()
				return nil
			}
			if len(pending) == 0 && len(c) == 1 {
				switch c[0] {
				case s.keys.quit, ctrlC:
					return errQuit
				case s.keys.suspend:
					if err := s.suspend(); err != nil {
						return err
					}
					continue
				}
			}

			pending = append(pending, c...)
			if len(pending) == 1 && pending[0] == 0x1b {
				timeout = time.After(raw.ControlSequenceTimeout)
				continue
			}
			flush()
		}
	}
}

func (s *session) show(chunk []byte) {
	line := keyview.Render(keyview.Describe(chunk), s.showHex)
	if _, err := fmt.Fprintf(s.term, "%s\r\n", line); err != nil {
		log.Warn("writing key: %v", err)
	}
}

// suspend hands the terminal back in its original mode, stops the process
// and re-enters raw mode once it is continued.
func (s *session) suspend() error {
	stop := s.stop
	if stop == nil {
		stop = stopProcess
	}

	if err := s.term.SuspendRawMode(); err != nil {
		return err
	}
	log.Debug("suspending")
	if err := stop(); err != nil {
		log.Warn("suspend: %v", err)
	}
	if err := s.term.ActivateRawMode(); err != nil {
		return err
	}
	log.Debug("resumed")
	return nil
}
