// Package textmode is a text mode display driver.
//
// A [Grid] mirrors the character cells of a text buffer in memory and a
// [Console] serializes writes to it and copies the result to a [Sink] after
// every operation. On bare metal the sink is the VGA text buffer at [VGAAddr];
// the sub packages provide sinks for hosted systems.
package textmode

import (
	"errors"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("TEXTMODE_DEBUG") != ""
}

// Defaults for the VGA 80x25 text mode.
const (
	Cols            = 80
	Rows            = 25
	VGAAddr uintptr = 0xb8000
)

// Errors
var (
	ErrSize     = errors.New("textmode: invalid grid size")
	ErrSinkSize = errors.New("textmode: flush does not match sink size")
)
