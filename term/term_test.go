package term

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/BeatGlow/textmode"
)

func testFlush(t *testing.T, cols, rows int, text string, color textmode.ColorCode) []byte {
	t.Helper()
	m := textmode.NewMemory(cols, rows)
	c, err := textmode.New(m, &textmode.Config{Cols: cols, Rows: rows, Color: color})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = c.WriteString(text); err != nil {
		t.Fatal(err)
	}
	return m.Pix
}

func TestSGR(t *testing.T) {
	tests := []struct {
		FG, BG textmode.Color
		WantFG int
		WantBG int
	}{
		{textmode.LightGray, textmode.Black, 37, 40},
		{textmode.LightGreen, textmode.Black, 92, 40},
		{textmode.Red, textmode.Blue, 31, 44},
		{textmode.Brown, textmode.Cyan, 33, 46},
		{textmode.White, textmode.DarkGray, 97, 100},
		{textmode.LightMagenta, textmode.LightCyan, 95, 106},
	}
	for _, test := range tests {
		c := textmode.NewColorCode(test.FG, test.BG)
		t.Run(c.String(), func(it *testing.T) {
			fg, bg := SGR(c)
			if fg != test.WantFG || bg != test.WantBG {
				it.Errorf("expected %d;%d, got %d;%d", test.WantFG, test.WantBG, fg, bg)
			}
		})
	}
}

func TestStyle(t *testing.T) {
	fg, bg, _ := Style(textmode.DefaultColor).Decompose()
	if fg != tcell.ColorLime {
		t.Errorf("expected lime foreground, got %v", fg)
	}
	if bg != tcell.ColorBlack {
		t.Errorf("expected black background, got %v", bg)
	}
}

func TestANSI(t *testing.T) {
	var (
		buf bytes.Buffer
		a   = NewANSI(&buf, 3)
		red = textmode.NewColorCode(textmode.Red, textmode.Black)
	)
	if err := a.Flush(testFlush(t, 3, 2, "ab\n\xdb", red)); err != nil {
		t.Fatal(err)
	}

	want := "\x1b[H" +
		"\x1b[31;40mab\x1b[92;40m \x1b[0m\r\n" +
		"\x1b[31;40m█\x1b[92;40m  \x1b[0m"
	if v := buf.String(); v != want {
		t.Errorf("expected %q, got %q", want, v)
	}

	if err := a.Flush(make([]byte, 5)); !errors.Is(err, ErrGeometry) {
		t.Errorf("expected %v, got %v", ErrGeometry, err)
	}
}

func TestScreen(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatal(err)
	}
	defer sim.Fini()
	sim.SetSize(4, 3)

	s := NewScreen(sim, 4)
	color := textmode.NewColorCode(textmode.Yellow, textmode.Blue)
	if err := s.Flush(testFlush(t, 4, 3, "hi\n\xb0", color)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		X, Y  int
		Want  rune
		Style tcell.Style
	}{
		{0, 0, 'h', Style(color)},
		{1, 0, 'i', Style(color)},
		{2, 0, ' ', Style(textmode.DefaultColor)},
		{0, 1, '░', Style(color)},
		{3, 2, ' ', Style(textmode.DefaultColor)},
	}
	for _, test := range tests {
		r, _, style, _ := sim.GetContent(test.X, test.Y)
		if r != test.Want {
			t.Errorf("expected %q at (%d,%d), got %q", test.Want, test.X, test.Y, r)
		}
		if style != test.Style {
			t.Errorf("unexpected style at (%d,%d)", test.X, test.Y)
		}
	}

	if err := s.Close(); err != nil {
		t.Error(err)
	}
}
