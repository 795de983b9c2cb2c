package textmode

// CellSize is the number of bytes a cell occupies in the hardware buffer.
const CellSize = 2

// Cell is a single character position.
type Cell struct {
	Char  byte
	Color ColorCode
}

var blank = Cell{Char: ' ', Color: DefaultColor}

// Blank returns the cell used for cleared and scrolled-in positions.
func Blank() Cell {
	return blank
}

// CellAt decodes the i-th cell of a hardware buffer image as produced by
// [Grid.Encode]. Sinks that re-render the buffer use it to recover the colors.
func CellAt(p []byte, i int) Cell {
	off := i * CellSize
	return Cell{
		Char:  p[off],
		Color: ColorCode{v: p[off+1]},
	}
}

func (c Cell) put(p []byte) {
	p[0] = c.Char
	p[1] = c.Color.v
}
