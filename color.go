package textmode

import (
	"fmt"
	"strings"
)

// Color is one of the 16 text mode colors.
type Color uint8

// Supported colors.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

var colorNames = [16]string{
	"black", "blue", "green", "cyan",
	"red", "magenta", "brown", "light gray",
	"dark gray", "light blue", "light green", "light cyan",
	"light red", "light magenta", "yellow", "white",
}

func (c Color) String() string {
	return colorNames[c&0x0f]
}

// ParseColor returns the color with the given name. Case, spaces, dashes and
// underscores are ignored, so "light-green" and "LightGreen" both work.
func ParseColor(name string) (Color, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(name))
	for i, n := range colorNames {
		if strings.ReplaceAll(n, " ", "") == key {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("textmode: unknown color %q", name)
}

// DefaultColor is light green text on a black background.
var DefaultColor = NewColorCode(LightGreen, Black)

// ColorCode is a packed foreground and background color pair, as stored in the
// attribute byte of each cell.
type ColorCode struct {
	v uint8
}

// NewColorCode packs a foreground and background color.
func NewColorCode(foreground, background Color) ColorCode {
	return ColorCode{v: uint8(background&0x0f)<<4 | uint8(foreground&0x0f)}
}

// Foreground color.
func (c ColorCode) Foreground() Color {
	return Color(c.v & 0x0f)
}

// Background color.
func (c ColorCode) Background() Color {
	return Color(c.v >> 4)
}

func (c ColorCode) String() string {
	return fmt.Sprintf("%s on %s", c.Foreground(), c.Background())
}
