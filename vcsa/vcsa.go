// Package vcsa provides a sink that writes the text buffer to a Linux virtual
// console through its /dev/vcsa device.
//
// The vcsa device exposes the console screen with the same character and
// attribute byte layout as the VGA text buffer, prefixed by a four byte header
// holding the number of lines, the number of columns and the cursor position.
package vcsa

import "errors"

// Errors
var (
	ErrNotSupported = errors.New("vcsa: not supported")
	ErrGeometry     = errors.New("vcsa: grid does not fit the console")
)

// Config is the virtual console configuration.
type Config struct {
	// Console number, 0 selects the foreground console.
	Console int

	// Path overrides the device path derived from Console.
	Path string

	// Cols is the width of the flushed grid, 0 uses the console width.
	Cols int
}

// DefaultConfig targets the foreground console.
var DefaultConfig = Config{}

const headerSize = 4
