package panel

import (
	"image/color"

	"github.com/BeatGlow/textmode"
)

// Palette is the standard VGA palette, with the 6-bit DAC values expanded to
// 8 bits.
var Palette = [16]color.RGBA{
	textmode.Black:        {0x00, 0x00, 0x00, 0xff},
	textmode.Blue:         {0x00, 0x00, 0xaa, 0xff},
	textmode.Green:        {0x00, 0xaa, 0x00, 0xff},
	textmode.Cyan:         {0x00, 0xaa, 0xaa, 0xff},
	textmode.Red:          {0xaa, 0x00, 0x00, 0xff},
	textmode.Magenta:      {0xaa, 0x00, 0xaa, 0xff},
	textmode.Brown:        {0xaa, 0x55, 0x00, 0xff},
	textmode.LightGray:    {0xaa, 0xaa, 0xaa, 0xff},
	textmode.DarkGray:     {0x55, 0x55, 0x55, 0xff},
	textmode.LightBlue:    {0x55, 0x55, 0xff, 0xff},
	textmode.LightGreen:   {0x55, 0xff, 0x55, 0xff},
	textmode.LightCyan:    {0x55, 0xff, 0xff, 0xff},
	textmode.LightRed:     {0xff, 0x55, 0x55, 0xff},
	textmode.LightMagenta: {0xff, 0x55, 0xff, 0xff},
	textmode.Yellow:       {0xff, 0xff, 0x55, 0xff},
	textmode.White:        {0xff, 0xff, 0xff, 0xff},
}

// Mono is a 1-bit color.
type Mono bool

// Monochrome colors.
const (
	Off Mono = false
	On  Mono = true
)

func (c Mono) RGBA() (r, g, b, a uint32) {
	if c {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	return 0, 0, 0, 0xffff
}

// MonoModel converts colors to Mono by thresholding their luminance.
var MonoModel color.Model = color.ModelFunc(monoModel)

func monoModel(c color.Color) color.Color {
	if v, ok := c.(Mono); ok {
		return v
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Off
	}
	// JFIF luma coefficients, 19595 + 38470 + 7471 equals 65536.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
	return Mono(y >= 0x8000)
}
