package panel

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/textmode"
)

var debug = os.Getenv("TEXTMODE_DEBUG") != ""

// Errors
var (
	ErrGeometry = errors.New("panel: grid does not fit the display")
)

// Device is a pixel display.
type Device interface {
	draw.Image

	// Refresh pushes the image to the display.
	Refresh() error
}

// Config is the panel configuration.
type Config struct {
	// Face used to draw characters, nil uses DefaultFace.
	Face font.Face

	// Cols is the grid width in characters, 0 fits the display width.
	Cols int

	// Rows is the grid height in characters, 0 fits the display height.
	Rows int
}

// Panel is a sink rendering the grid onto a Device.
type Panel struct {
	dev    Device
	face   font.Face
	cols   int
	rows   int
	cellW  int
	cellH  int
	ascent int
}

// New returns a panel sink for dev.
func New(dev Device, config *Config) (*Panel, error) {
	if config == nil {
		config = new(Config)
	}
	if config.Face == nil {
		config.Face = DefaultFace
	}

	var (
		cellW, cellH = CellSize(config.Face)
		size         = dev.Bounds().Size()
	)
	if cellW == 0 || cellH == 0 {
		return nil, fmt.Errorf("%w: empty font face", ErrGeometry)
	}
	if config.Cols == 0 {
		config.Cols = size.X / cellW
	}
	if config.Rows == 0 {
		config.Rows = size.Y / cellH
	}
	if config.Cols <= 0 || config.Rows <= 0 || config.Cols*cellW > size.X || config.Rows*cellH > size.Y {
		return nil, fmt.Errorf("%w: %dx%d cells of %dx%d pixels on %s", ErrGeometry, config.Cols, config.Rows, cellW, cellH, size)
	}

	if debug {
		log.Printf("panel: %dx%d grid, %dx%d pixel cells on %s", config.Cols, config.Rows, cellW, cellH, size)
	}

	return &Panel{
		dev:    dev,
		face:   config.Face,
		cols:   config.Cols,
		rows:   config.Rows,
		cellW:  cellW,
		cellH:  cellH,
		ascent: config.Face.Metrics().Ascent.Ceil(),
	}, nil
}

// Size returns the grid dimensions in characters.
func (p *Panel) Size() (cols, rows int) {
	return p.cols, p.rows
}

// Flush renders every cell and refreshes the device.
func (p *Panel) Flush(b []byte) error {
	if len(b) != p.cols*p.rows*textmode.CellSize {
		return fmt.Errorf("%w: %d bytes for %dx%d", ErrGeometry, len(b), p.cols, p.rows)
	}

	origin := p.dev.Bounds().Min
	d := &font.Drawer{
		Dst:  p.dev,
		Face: p.face,
	}
	for i, n := 0, p.cols*p.rows; i < n; i++ {
		var (
			cell = textmode.CellAt(b, i)
			x    = origin.X + i%p.cols*p.cellW
			y    = origin.Y + i/p.cols*p.cellH
			r    = image.Rect(x, y, x+p.cellW, y+p.cellH)
		)
		draw.Draw(p.dev, r, image.NewUniform(Palette[cell.Color.Background()]), image.Point{}, draw.Src)
		if cell.Char == ' ' {
			continue
		}
		d.Src = image.NewUniform(Palette[cell.Color.Foreground()])
		d.Dot = fixed.P(x, y+p.ascent)
		d.DrawString(string(textmode.Glyph(cell.Char)))
	}
	return p.dev.Refresh()
}

// Snapshot is an in-memory device.
type Snapshot struct {
	*image.RGBA

	// Refreshes counts the calls to Refresh.
	Refreshes int
}

// NewSnapshot returns a w by h pixel in-memory device.
func NewSnapshot(w, h int) *Snapshot {
	return &Snapshot{
		RGBA: image.NewRGBA(image.Rect(0, 0, w, h)),
	}
}

// Refresh does nothing but count.
func (s *Snapshot) Refresh() error {
	s.Refreshes++
	return nil
}
