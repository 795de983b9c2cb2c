package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/BeatGlow/textmode"
)

// Screen is a sink drawing on a tcell screen.
type Screen struct {
	screen tcell.Screen
	cols   int
	owned  bool
}

// NewScreen wraps an initialized tcell screen. The screen is not finalized by
// Close.
func NewScreen(screen tcell.Screen, cols int) *Screen {
	return &Screen{
		screen: screen,
		cols:   cols,
	}
}

// OpenScreen takes over the controlling terminal for a cols by rows grid.
func OpenScreen(cols, rows int) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err = screen.Init(); err != nil {
		return nil, err
	}

	if w, h := screen.Size(); w < cols || h < rows {
		screen.Fini()
		return nil, fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTooSmall, cols, rows, w, h)
	}
	screen.HideCursor()
	screen.Clear()

	return &Screen{
		screen: screen,
		cols:   cols,
		owned:  true,
	}, nil
}

// Flush draws every cell and shows the result.
func (s *Screen) Flush(p []byte) error {
	if _, err := checkGeometry(p, s.cols); err != nil {
		return err
	}
	for i, n := 0, len(p)/textmode.CellSize; i < n; i++ {
		cell := textmode.CellAt(p, i)
		s.screen.SetContent(i%s.cols, i/s.cols, textmode.Glyph(cell.Char), nil, Style(cell.Color))
	}
	s.screen.Show()
	return nil
}

// Close restores the terminal if the screen was opened by OpenScreen.
func (s *Screen) Close() error {
	if s.owned {
		s.screen.Fini()
	}
	return nil
}
