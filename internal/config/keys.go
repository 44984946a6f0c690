// ABOUTME: Key setting parser: single characters and caret notation
// ABOUTME: Maps settings like "q" or "^Z" to the byte sent in raw mode

package config

import "fmt"

// ParseKey turns a key setting into the byte the terminal sends for it in
// raw mode. A single character stands for itself; caret notation ("^C",
// "^[", "^?") names control characters.
func ParseKey(s string) (byte, error) {
	switch {
	case len(s) == 1:
		return s[0], nil
	case len(s) == 2 && s[0] == '^':
		c := s[1]
		if c == '?' {
			return 0x7f, nil
		}
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < '@' || c > '_' {
			return 0, fmt.Errorf("invalid control key %q", s)
		}
		return c & 0x1f, nil
	}
	return 0, fmt.Errorf("invalid key %q: want one character or ^X", s)
}
