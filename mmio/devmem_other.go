//go:build !linux

package mmio

// Config describes the memory window to map.
type Config struct {
	Path string
	Addr uintptr
	Size int
}

// DefaultConfig maps the 80x25 VGA color text buffer.
var DefaultConfig = Config{
	Path: "/dev/mem",
	Addr: VGAText,
	Size: 80 * 25 * 2,
}

// Open is not supported on this platform.
func Open(_ *Config) (*Region, error) {
	return nil, ErrNotSupported
}
