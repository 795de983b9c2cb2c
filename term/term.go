// Package term provides sinks that show the text buffer on a terminal, for
// running and testing text mode programs on a hosted system.
//
// [Screen] draws through tcell and owns the terminal while open. [ANSI]
// streams escape sequences to any writer and needs nothing but a VT100
// compatible terminal on the other end.
package term

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/BeatGlow/textmode"
)

// Errors
var (
	ErrGeometry = errors.New("term: flush does not match the grid width")
	ErrTooSmall = errors.New("term: terminal is smaller than the grid")
)

// palette maps the text mode colors to the 16 standard terminal colors.
var palette = [16]tcell.Color{
	textmode.Black:        tcell.ColorBlack,
	textmode.Blue:         tcell.ColorNavy,
	textmode.Green:        tcell.ColorGreen,
	textmode.Cyan:         tcell.ColorTeal,
	textmode.Red:          tcell.ColorMaroon,
	textmode.Magenta:      tcell.ColorPurple,
	textmode.Brown:        tcell.ColorOlive,
	textmode.LightGray:    tcell.ColorSilver,
	textmode.DarkGray:     tcell.ColorGray,
	textmode.LightBlue:    tcell.ColorBlue,
	textmode.LightGreen:   tcell.ColorLime,
	textmode.LightCyan:    tcell.ColorAqua,
	textmode.LightRed:     tcell.ColorRed,
	textmode.LightMagenta: tcell.ColorFuchsia,
	textmode.Yellow:       tcell.ColorYellow,
	textmode.White:        tcell.ColorWhite,
}

// Style returns the tcell style for a color code.
func Style(c textmode.ColorCode) tcell.Style {
	return tcell.StyleDefault.
		Foreground(palette[c.Foreground()]).
		Background(palette[c.Background()])
}

// sgrIndex converts a text mode color (blue, green, red, bright bits) to an
// ANSI color index (red, green, blue bits) and a brightness flag.
func sgrIndex(c textmode.Color) (index int, bright bool) {
	index = int(c&1)<<2 | int(c&2) | int(c&4)>>2
	return index, c&8 != 0
}

// SGR returns the parameters of the select graphic rendition sequence for a
// color code, such as "92;40".
func SGR(c textmode.ColorCode) (fg, bg int) {
	index, bright := sgrIndex(c.Foreground())
	if fg = 30 + index; bright {
		fg = 90 + index
	}
	index, bright = sgrIndex(c.Background())
	if bg = 40 + index; bright {
		bg = 100 + index
	}
	return
}

func checkGeometry(p []byte, cols int) (rows int, err error) {
	stride := cols * textmode.CellSize
	if cols <= 0 || len(p)%stride != 0 {
		return 0, ErrGeometry
	}
	return len(p) / stride, nil
}
