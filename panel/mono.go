package panel

import (
	"image"
	"image/color"
)

// MonoImage is a 1-bit image stored in vertical bytes of 8 pixels, least
// significant bit on top, one row of bytes per 8 pixel page. This is the
// memory layout of SSD13xx display controllers.
type MonoImage struct {
	Pix  []byte
	Rect image.Rectangle
}

// NewMonoImage returns a blank w by h image.
func NewMonoImage(w, h int) *MonoImage {
	pages := (h + 7) / 8
	return &MonoImage{
		Pix:  make([]byte, pages*w),
		Rect: image.Rect(0, 0, w, h),
	}
}

func (p *MonoImage) ColorModel() color.Model { return MonoModel }

func (p *MonoImage) Bounds() image.Rectangle { return p.Rect }

// Page returns the bytes of the n-th 8 pixel band.
func (p *MonoImage) Page(n int) []byte {
	w := p.Rect.Dx()
	return p.Pix[n*w : (n+1)*w]
}

func (p *MonoImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	offset, bit := p.offset(x, y)
	return Mono(p.Pix[offset]&bit != 0)
}

func (p *MonoImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	offset, bit := p.offset(x, y)
	if monoModel(c).(Mono) {
		p.Pix[offset] |= bit
	} else {
		p.Pix[offset] &^= bit
	}
}

func (p *MonoImage) offset(x, y int) (int, byte) {
	return y/8*p.Rect.Dx() + x, byte(1) << uint(y&7)
}
