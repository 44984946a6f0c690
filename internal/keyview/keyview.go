// ABOUTME: Names and renders raw input chunks for the rawkeys demo
// ABOUTME: Graphemes via uniseg, cell widths via go-runewidth, styling via lipgloss

// Package keyview turns the bytes a terminal delivers in raw mode into a
// readable line: the hex bytes followed by a name per character. It does
// not interpret escape sequences as key events.
package keyview

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// hexColumn is the cell width reserved for the hex dump.
const hexColumn = 24

var (
	hexStyle   = lipgloss.NewStyle().Faint(true)
	ctrlStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	printStyle = lipgloss.NewStyle().Bold(true)
	widthStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Part is one named unit of a chunk.
type Part struct {
	Text    string
	Control bool
	// Width is the number of terminal cells Text occupies when printed.
	Width int
}

// Key describes one chunk of raw input.
type Key struct {
	Bytes []byte
	Parts []Part
	// Width is the number of terminal cells the printable parts occupy.
	Width int
}

// Name joins the part names with spaces, e.g. "ESC [ A".
func (k Key) Name() string {
	names := make([]string, len(k.Parts))
	for i, p := range k.Parts {
		names[i] = p.Text
	}
	return strings.Join(names, " ")
}

// Describe splits chunk into grapheme clusters and names each one.
func Describe(chunk []byte) Key {
	k := Key{Bytes: append([]byte(nil), chunk...)}

	state := -1
	rest := chunk
	for len(rest) > 0 {
		if r, size := utf8.DecodeRune(rest); r == utf8.RuneError && size <= 1 {
			k.Parts = append(k.Parts, Part{Text: fmt.Sprintf(`\x%02x`, rest[0]), Control: true})
			rest = rest[1:]
			state = -1
			continue
		}

		var cluster []byte
		cluster, rest, _, state = uniseg.FirstGraphemeCluster(rest, state)
		if name, ok := controlName(cluster); ok {
			k.Parts = append(k.Parts, Part{Text: name, Control: true})
			continue
		}
		s := string(cluster)
		w := runewidth.StringWidth(s)
		k.Parts = append(k.Parts, Part{Text: s, Width: w})
		k.Width += w
	}
	return k
}

// controlName names single control characters in caret notation.
func controlName(cluster []byte) (string, bool) {
	if len(cluster) != 1 {
		r, _ := utf8.DecodeRune(cluster)
		if unicode.IsControl(r) {
			return fmt.Sprintf("U+%04X", r), true
		}
		return "", false
	}
	switch c := cluster[0]; {
	case c == 0x1b:
		return "ESC", true
	case c == 0x7f:
		return "DEL", true
	case c == ' ':
		return "SPC", true
	case c < 0x20:
		return "^" + string(rune(c+'@')), true
	}
	return "", false
}

// Render formats k as a single line without a trailing newline.
func Render(k Key, showHex bool) string {
	var b strings.Builder

	if showHex {
		hex := make([]string, len(k.Bytes))
		for i, c := range k.Bytes {
			hex[i] = fmt.Sprintf("%02x", c)
		}
		col := strings.Join(hex, " ")
		if runewidth.StringWidth(col) < hexColumn {
			col = runewidth.FillRight(col, hexColumn)
		}
		b.WriteString(hexStyle.Render(col))
		b.WriteString(" ")
	}

	for i, p := range k.Parts {
		if i > 0 {
			b.WriteString(" ")
		}
		if p.Control {
			b.WriteString(ctrlStyle.Render(p.Text))
			continue
		}
		b.WriteString(printStyle.Render(p.Text))
		if p.Width > 1 {
			b.WriteString(widthStyle.Render(fmt.Sprintf(" (%d cells)", p.Width)))
		}
	}
	return b.String()
}
