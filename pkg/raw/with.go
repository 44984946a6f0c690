// ABOUTME: Scoped raw mode: run a function with the device raw, restore afterwards
// ABOUTME: Restoration also happens when the function panics

package raw

// With runs fn with d in raw mode. The original attributes are restored
// when fn returns, and also when fn panics, before the panic continues up
// the stack.
func With(d Device, fn func(*Terminal) error) error {
	t, err := IntoRawMode(d)
	if err != nil {
		return err
	}
	defer t.Close()

	return fn(t)
}
