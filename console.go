package textmode

import (
	"fmt"
	"log"
	"sync"
)

// Config is the console configuration.
type Config struct {
	// Cols is the grid width in characters.
	Cols int

	// Rows is the grid height in characters.
	Rows int

	// Color is the attribute used for written characters.
	Color ColorCode

	// Scroll selects the newline scroll trigger.
	Scroll ScrollTrigger
}

// DefaultConfig is the VGA 80x25 text mode.
var DefaultConfig = Config{
	Cols:  Cols,
	Rows:  Rows,
	Color: DefaultColor,
}

// Console is a lock guarded [Grid] bound to a [Sink]. Every exported method
// holds the lock for the mutation and the flush that follows it, so a flush
// never shows half of another caller's output.
type Console struct {
	mu    sync.Mutex
	grid  *Grid
	sink  Sink
	color ColorCode
	buf   []byte
}

// New returns a blank console that flushes to sink. A nil config uses
// [DefaultConfig]; zero dimensions and a zero color take the defaults, so
// black on black is never selected by omission.
func New(sink Sink, config *Config) (*Console, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}
	if config.Cols == 0 {
		config.Cols = DefaultConfig.Cols
	}
	if config.Rows == 0 {
		config.Rows = DefaultConfig.Rows
	}
	if config.Color == (ColorCode{}) {
		config.Color = DefaultConfig.Color
	}
	if sink == nil {
		sink = Discard
	}

	g, err := NewGrid(config.Cols, config.Rows, config.Scroll)
	if err != nil {
		return nil, err
	}

	if debug {
		log.Printf("textmode: console %dx%d, %s scroll, %s", config.Cols, config.Rows, config.Scroll, config.Color)
	}

	return &Console{
		grid:  g,
		sink:  sink,
		color: config.Color,
		buf:   make([]byte, config.Cols*config.Rows*CellSize),
	}, nil
}

func (c *Console) String() string {
	cols, rows := c.grid.Size()
	return fmt.Sprintf("text console %dx%d", cols, rows)
}

// Size returns the grid dimensions in characters.
func (c *Console) Size() (cols, rows int) {
	return c.grid.Size()
}

// SetSink replaces the sink and flushes the current contents to it.
func (c *Console) SetSink(sink Sink) error {
	if sink == nil {
		sink = Discard
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sink = sink
	return c.flush()
}

// Write writes p to the grid and flushes. It always consumes all of p.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, b := range p {
		c.grid.Write(b, c.color)
	}
	return len(p), c.flush()
}

// WriteString is like Write, but writes a string.
func (c *Console) WriteString(s string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.WriteString(s, c.color)
	return len(s), c.flush()
}

// Print formats using the default formats for its operands, in the manner of
// fmt.Print, and writes the result with a single flush.
func (c *Console) Print(a ...any) (int, error) {
	return fmt.Fprint(c, a...)
}

// Println is like Print, but always adds spaces between operands and a
// trailing newline.
func (c *Console) Println(a ...any) (int, error) {
	return fmt.Fprintln(c, a...)
}

// Printf formats according to a format specifier and writes the result with
// a single flush.
func (c *Console) Printf(format string, a ...any) (int, error) {
	return fmt.Fprintf(c, format, a...)
}

// Clear blanks the screen, resets the cursor and flushes.
func (c *Console) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.Clear()
	return c.flush()
}

// Flush copies the grid to the sink.
func (c *Console) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flush()
}

// Position returns the linear index of the next cell to be written.
func (c *Console) Position() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Position()
}

// Cell returns the cell at (col, row).
func (c *Console) Cell(col, row int) Cell {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.At(col, row)
}

func (c *Console) flush() error {
	n := c.grid.Encode(c.buf)
	return c.sink.Flush(c.buf[:n])
}
