package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/BeatGlow/textmode"
)

// see: https://en.wikipedia.org/wiki/ANSI_escape_code
const (
	csi         = "\x1b["
	cursorHome  = csi + "H"
	resetAttrs  = csi + "0m"
	eraseScreen = csi + "2J"
)

// ANSI is a sink that repaints the grid on a VT100 compatible terminal with
// escape sequences.
type ANSI struct {
	w    *bufio.Writer
	cols int
}

// NewANSI returns a sink writing a cols wide grid to w.
func NewANSI(w io.Writer, cols int) *ANSI {
	return &ANSI{
		w:    bufio.NewWriter(w),
		cols: cols,
	}
}

// OpenANSI returns a sink for the terminal f, after checking that f is a
// terminal large enough for a cols by rows grid.
func OpenANSI(f *os.File, cols, rows int) (*ANSI, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("term: %s is not a terminal", f.Name())
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return nil, err
	}
	if w < cols || h < rows {
		return nil, fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTooSmall, cols, rows, w, h)
	}

	a := NewANSI(f, cols)
	if _, err = a.w.WriteString(eraseScreen); err != nil {
		return nil, err
	}
	return a, nil
}

// Flush repaints the whole grid from the top left corner.
func (a *ANSI) Flush(p []byte) error {
	rows, err := checkGeometry(p, a.cols)
	if err != nil {
		return err
	}

	a.w.WriteString(cursorHome)
	for row := 0; row < rows; row++ {
		var last textmode.ColorCode
		for col := 0; col < a.cols; col++ {
			cell := textmode.CellAt(p, row*a.cols+col)
			if col == 0 || cell.Color != last {
				fg, bg := SGR(cell.Color)
				a.w.WriteString(csi + strconv.Itoa(fg) + ";" + strconv.Itoa(bg) + "m")
				last = cell.Color
			}
			a.w.WriteRune(textmode.Glyph(cell.Char))
		}
		a.w.WriteString(resetAttrs)
		if row < rows-1 {
			a.w.WriteString("\r\n")
		}
	}
	return a.w.Flush()
}
