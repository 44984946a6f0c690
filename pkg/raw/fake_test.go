// ABOUTME: Counting attribute backend and in-memory device for Terminal tests
// ABOUTME: Snapshots are tracked by label, so assertions work on every target

package raw

import (
	"bytes"
	"strings"
	"sync"

	"github.com/mauromedda/rawterm/pkg/termios"
)

// fakeBackend models a device whose configuration is a label such as
// "C" or "raw(C)". Each snapshot pointer carries the label it was taken
// with.
type fakeBackend struct {
	mu     sync.Mutex
	labels map[*termios.Termios]string
	live   string

	gets   int
	sets   int
	setLog []string

	getErr error
	setErr error

	// onGet, when set, runs once at the start of the next get.
	onGet func()
}

func newFakeBackend(initial string) *fakeBackend {
	return &fakeBackend{
		labels: make(map[*termios.Termios]string),
		live:   initial,
	}
}

func (f *fakeBackend) get(termios.Target) (*termios.Termios, error) {
	f.mu.Lock()
	hook := f.onGet
	f.onGet = nil
	f.mu.Unlock()
	if hook != nil {
		hook()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	ios := new(termios.Termios)
	f.labels[ios] = f.live
	return ios, nil
}

func (f *fakeBackend) set(_ termios.Target, ios *termios.Termios) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.live = f.labels[ios]
	f.setLog = append(f.setLog, f.live)
	return nil
}

func (f *fakeBackend) clone(ios *termios.Termios) *termios.Termios {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := new(termios.Termios)
	f.labels[c] = f.labels[ios]
	return c
}

func (f *fakeBackend) makeRaw(ios *termios.Termios) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if l := f.labels[ios]; !strings.HasPrefix(l, "raw(") {
		f.labels[ios] = "raw(" + l + ")"
	}
}

func (f *fakeBackend) state() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.live
}

func (f *fakeBackend) setCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.sets
}

func (f *fakeBackend) fail(getErr, setErr error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.getErr = getErr
	f.setErr = setErr
}

// fakeDevice captures written bytes. Platform files add the Target methods.
type fakeDevice struct {
	buf     bytes.Buffer
	flushes int
}

func (d *fakeDevice) Write(p []byte) (int, error) { return d.buf.Write(p) }

// flushingDevice additionally buffers output.
type flushingDevice struct {
	fakeDevice
}

func (d *flushingDevice) Flush() error {
	d.flushes++
	return nil
}
