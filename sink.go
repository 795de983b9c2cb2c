package textmode

import "fmt"

// Sink receives the hardware representation of a grid: cols*rows cells in
// row-major order, character byte followed by attribute byte.
type Sink interface {
	// Flush overwrites the sink with p.
	Flush(p []byte) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(p []byte) error

// Flush calls f(p).
func (f SinkFunc) Flush(p []byte) error {
	return f(p)
}

// Discard is a Sink that drops every flush.
var Discard Sink = SinkFunc(func([]byte) error { return nil })

// Memory is a Sink backed by a byte slice, used for tests and snapshots.
type Memory struct {
	// Pix holds the last flushed buffer.
	Pix []byte

	// Flushes counts the calls to Flush.
	Flushes int
}

// NewMemory returns a memory sink sized for a cols by rows grid.
func NewMemory(cols, rows int) *Memory {
	return &Memory{
		Pix: make([]byte, cols*rows*CellSize),
	}
}

// Flush copies p into Pix.
func (m *Memory) Flush(p []byte) error {
	if len(p) != len(m.Pix) {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrSinkSize, len(p), len(m.Pix))
	}
	copy(m.Pix, p)
	m.Flushes++
	return nil
}

// Cell decodes the i-th flushed cell.
func (m *Memory) Cell(i int) Cell {
	return CellAt(m.Pix, i)
}
