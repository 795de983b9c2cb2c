//go:build !linux

package vcsa

// Console is an open virtual console screen device.
type Console struct{}

// Open is not supported on this platform.
func Open(_ *Config) (*Console, error) {
	return nil, ErrNotSupported
}

// Active is not supported on this platform.
func Active() (int, error) {
	return 0, ErrNotSupported
}

// TextMode is not supported on this platform.
func TextMode(_ int) (bool, error) {
	return false, ErrNotSupported
}

// Size returns the console dimensions in characters.
func (c *Console) Size() (cols, rows int) {
	return 0, 0
}

// Flush writes the grid to the console screen, which is not supported on this
// platform.
func (c *Console) Flush(_ []byte) error {
	return ErrNotSupported
}

// Close the console device.
func (c *Console) Close() error {
	return nil
}
