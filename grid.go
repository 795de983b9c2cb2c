package textmode

import "fmt"

// ScrollTrigger selects when a newline on the bottom row scrolls the grid.
type ScrollTrigger uint8

// Supported scroll triggers.
const (
	// ScrollLazy scrolls once the line after the next one would be off screen.
	// A newline on the bottom row parks the cursor just past the last cell and
	// the scroll happens on the next output, so a trailing newline does not
	// waste the bottom row.
	ScrollLazy ScrollTrigger = iota

	// ScrollEager scrolls as soon as the next line would be off screen.
	ScrollEager
)

func (t ScrollTrigger) String() string {
	switch t {
	case ScrollEager:
		return "eager"
	default:
		return "lazy"
	}
}

// Grid is the in-memory mirror of the text buffer. Cells are stored row-major
// and addressed as row*cols + col.
//
// A Grid is not safe for concurrent use, see [Console].
type Grid struct {
	cols     int
	rows     int
	trigger  ScrollTrigger
	cells    []Cell
	position int
}

// NewGrid returns a blank grid of the given size.
func NewGrid(cols, rows int, trigger ScrollTrigger) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, cols, rows)
	}
	g := &Grid{
		cols:    cols,
		rows:    rows,
		trigger: trigger,
		cells:   make([]Cell, cols*rows),
	}
	g.Clear()
	return g, nil
}

// Size returns the grid dimensions in characters.
func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// Position returns the linear index of the next cell to be written.
func (g *Grid) Position() int {
	return g.position
}

// At returns the cell at (col, row). Out of bounds positions return a blank cell.
func (g *Grid) At(col, row int) Cell {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return blank
	}
	return g.cells[row*g.cols+col]
}

// Write places one byte at the cursor, or moves to the next line for '\n'.
func (g *Grid) Write(b byte, c ColorCode) {
	if b == '\n' {
		g.newline()
		return
	}

	if g.position >= len(g.cells) {
		g.scroll()
	}
	g.cells[g.position] = Cell{Char: b, Color: c}
	g.position++
}

// WriteString writes s byte by byte.
func (g *Grid) WriteString(s string, c ColorCode) {
	for i := 0; i < len(s); i++ {
		g.Write(s[i], c)
	}
}

// ResetPosition moves the cursor to the first cell.
func (g *Grid) ResetPosition() {
	g.position = 0
}

// Clear blanks all cells and resets the cursor.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = blank
	}
	g.ResetPosition()
}

// Encode writes the hardware representation of the grid into p, which must be
// at least cols*rows*CellSize bytes, and returns the number of bytes written.
func (g *Grid) Encode(p []byte) int {
	for i, cell := range g.cells {
		cell.put(p[i*CellSize:])
	}
	return len(g.cells) * CellSize
}

func (g *Grid) newline() {
	line := g.position / g.cols

	var overflow bool
	switch g.trigger {
	case ScrollEager:
		overflow = line+1 >= g.rows
	default:
		overflow = line+1 > g.rows
	}

	if overflow {
		g.scroll()
		return
	}
	g.position = (line + 1) * g.cols
}

// scroll moves every row up by one, blanks the bottom row and puts the cursor
// at its start.
func (g *Grid) scroll() {
	end := len(g.cells)
	for i := g.cols; i < end; i++ {
		g.cells[i-g.cols] = g.cells[i]
	}
	for i := end - g.cols; i < end; i++ {
		g.cells[i] = blank
	}
	g.position = end - g.cols
}
