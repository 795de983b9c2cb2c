package panel

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2ctest"

	"github.com/BeatGlow/textmode"
)

func testConsole(t *testing.T, sink textmode.Sink, cols, rows int, code textmode.ColorCode) *textmode.Console {
	t.Helper()
	c, err := textmode.New(sink, &textmode.Config{Cols: cols, Rows: rows, Color: code})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// testCellHas reports whether any pixel of the cell at (col, row) has color c.
func testCellHas(img image.Image, col, row int, c color.Color) bool {
	want := img.ColorModel().Convert(c)
	for y := row * 13; y < (row+1)*13; y++ {
		for x := col * 7; x < (col+1)*7; x++ {
			if img.At(x, y) == want {
				return true
			}
		}
	}
	return false
}

func TestMonoImage(t *testing.T) {
	i := NewMonoImage(16, 12)
	if v := len(i.Pix); v != 32 {
		t.Fatalf("expected 32 bytes for 2 pages, got %d", v)
	}

	i.Set(3, 0, color.White)
	i.Set(3, 9, Palette[textmode.LightGreen])
	i.Set(4, 9, Palette[textmode.Blue])
	i.Set(-1, 0, On)
	i.Set(16, 0, On)

	tests := []struct {
		X, Y int
		Want color.Color
	}{
		{3, 0, On},
		{3, 1, Off},
		{3, 9, On},
		{4, 9, Off},
		{-1, 0, color.Transparent},
		{0, 12, color.Transparent},
	}
	for _, test := range tests {
		if v := i.At(test.X, test.Y); v != test.Want {
			t.Errorf("pixel (%d,%d) is %v, expected %v", test.X, test.Y, v, test.Want)
		}
	}

	if v := i.Page(0)[3]; v != 0x01 {
		t.Errorf("expected page 0 column 3 to be 0x01, got %#02x", v)
	}
	if v := i.Page(1)[3]; v != 0x02 {
		t.Errorf("expected page 1 column 3 to be 0x02, got %#02x", v)
	}
}

func TestCellSize(t *testing.T) {
	if w, h := CellSize(DefaultFace); w != 7 || h != 13 {
		t.Errorf("expected 7x13 cells, got %dx%d", w, h)
	}
}

func TestLoadTrueType(t *testing.T) {
	name := filepath.Join(t.TempDir(), "gomono.ttf")
	if err := os.WriteFile(name, gomono.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	face, err := LoadTrueType(name, 12)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := CellSize(face); w <= 0 || h <= 0 {
		t.Errorf("expected a non-empty cell, got %dx%d", w, h)
	}

	bad := filepath.Join(t.TempDir(), "bad.ttf")
	if err = os.WriteFile(bad, []byte("not a font"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err = LoadTrueType(bad, 12); err == nil {
		t.Error("expected an error loading a broken font")
	}
	if _, err = LoadTrueType(filepath.Join(t.TempDir(), "missing.ttf"), 12); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected %v, got %v", os.ErrNotExist, err)
	}
}

func TestPanel(t *testing.T) {
	snap := NewSnapshot(72, 27)
	p, err := New(snap, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cols, rows := p.Size(); cols != 10 || rows != 2 {
		t.Fatalf("expected a 10x2 grid, got %dx%d", cols, rows)
	}

	code := textmode.NewColorCode(textmode.Yellow, textmode.Blue)
	c := testConsole(t, p, 10, 2, code)
	if _, err = c.Print("A\n#"); err != nil {
		t.Fatal(err)
	}
	if snap.Refreshes != 1 {
		t.Errorf("expected 1 refresh, got %d", snap.Refreshes)
	}

	tests := []struct {
		Col, Row int
		Color    color.Color
		Want     bool
	}{
		{0, 0, Palette[textmode.Yellow], true},
		{0, 0, Palette[textmode.Blue], true},
		{0, 1, Palette[textmode.Yellow], true},
		{1, 0, Palette[textmode.Black], true},
		{1, 0, Palette[textmode.Yellow], false},
		{9, 1, Palette[textmode.LightGreen], false},
	}
	for _, test := range tests {
		if v := testCellHas(snap, test.Col, test.Row, test.Color); v != test.Want {
			t.Errorf("cell (%d,%d) has %v: %t, expected %t", test.Col, test.Row, test.Color, v, test.Want)
		}
	}

	if err = p.Flush(make([]byte, 4)); !errors.Is(err, ErrGeometry) {
		t.Errorf("expected %v, got %v", ErrGeometry, err)
	}
	if _, err = New(snap, &Config{Cols: 11}); !errors.Is(err, ErrGeometry) {
		t.Errorf("expected %v for an oversized grid, got %v", ErrGeometry, err)
	}
}

func TestSSD1306(t *testing.T) {
	var (
		rec = &i2ctest.Record{}
		dev = &i2c.Dev{Bus: rec, Addr: 0x3c}
	)
	d, err := NewSSD1306(dev, &SSD1306Config{})
	if err != nil {
		t.Fatal(err)
	}
	if v := d.String(); v != "SSD1306 OLED 128x64" {
		t.Errorf("unexpected name %q", v)
	}

	// init, addressing, data, display on
	if v := len(rec.Ops); v != 4 {
		t.Fatalf("expected 4 transfers, got %d", v)
	}
	for i, op := range rec.Ops {
		if op.Addr != 0x3c {
			t.Errorf("transfer %d went to %#02x", i, op.Addr)
		}
	}
	if v := rec.Ops[0].W; v[0] != ssd1306Command || v[1] != ssd1306SetDisplayOff {
		t.Errorf("unexpected init sequence % x", v)
	}
	if v := rec.Ops[2].W; v[0] != ssd1306Data || len(v) != 1+128*64/8 {
		t.Errorf("unexpected data transfer of %d bytes", len(v))
	}
	if v := rec.Ops[3].W; len(v) != 2 || v[1] != ssd1306SetDisplayOn {
		t.Errorf("unexpected display on command % x", v)
	}

	p, err := New(d, nil)
	if err != nil {
		t.Fatal(err)
	}
	cols, rows := p.Size()
	if cols != 18 || rows != 4 {
		t.Fatalf("expected an 18x4 grid, got %dx%d", cols, rows)
	}
	c := testConsole(t, p, cols, rows, textmode.DefaultColor)
	if _, err = c.Print("#"); err != nil {
		t.Fatal(err)
	}
	if !testCellHas(d, 0, 0, On) {
		t.Error("expected lit pixels for '#'")
	}
	if testCellHas(d, 1, 0, On) {
		t.Error("expected a dark blank cell")
	}
	data := rec.Ops[len(rec.Ops)-1].W
	if data[0] != ssd1306Data {
		t.Fatalf("expected the flush to end with a data transfer, got % x", data[:2])
	}

	if err = d.Close(); err != nil {
		t.Fatal(err)
	}
	if v := rec.Ops[len(rec.Ops)-1].W; v[1] != ssd1306SetDisplayOff {
		t.Errorf("expected close to turn the display off, got % x", v)
	}

	if _, err = NewSSD1306(dev, &SSD1306Config{Width: 96, Height: 16}); err == nil {
		t.Error("expected an error for an unsupported size")
	}
}
