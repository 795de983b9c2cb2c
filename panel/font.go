package panel

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is a 7x13 fixed width bitmap font.
var DefaultFace font.Face = basicfont.Face7x13

// LoadTrueType loads a TrueType font file as a face of the given point size
// at 72 DPI. The font should be monospaced, cells are as wide as its 'M'.
func LoadTrueType(name string, size float64) (font.Face, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("panel: %s: %w", name, err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// CellSize returns the pixel size of a character cell for face.
func CellSize(face font.Face) (w, h int) {
	advance, ok := face.GlyphAdvance('M')
	if !ok {
		advance = face.Metrics().Height / 2
	}
	return advance.Ceil(), face.Metrics().Height.Ceil()
}
