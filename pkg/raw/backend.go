// ABOUTME: Attribute operations the Terminal drives, behind a small internal interface
// ABOUTME: native forwards to pkg/termios; tests substitute a counting fake

package raw

import "github.com/mauromedda/rawterm/pkg/termios"

// backend is the attribute contract the Terminal drives. native is the
// only production implementation; the concrete termios types behind it are
// fixed at build time.
type backend interface {
	get(termios.Target) (*termios.Termios, error)
	set(termios.Target, *termios.Termios) error
	clone(*termios.Termios) *termios.Termios
	makeRaw(*termios.Termios)
}

type native struct{}

func (native) get(t termios.Target) (*termios.Termios, error) { return termios.Get(t) }

func (native) set(t termios.Target, ios *termios.Termios) error { return termios.Set(t, ios) }

func (native) clone(ios *termios.Termios) *termios.Termios { return ios.Clone() }

func (native) makeRaw(ios *termios.Termios) { termios.MakeRaw(ios) }
