package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/image/font"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/textmode"
	"github.com/BeatGlow/textmode/mmio"
	"github.com/BeatGlow/textmode/panel"
	"github.com/BeatGlow/textmode/term"
	"github.com/BeatGlow/textmode/vcsa"
)

func main() {
	colsFlag := flag.Int("cols", 0, "Grid width (default: fit the output)")
	rowsFlag := flag.Int("rows", 0, "Grid height (default: fit the output)")
	fgFlag := flag.String("fg", "light green", "Foreground color")
	bgFlag := flag.String("bg", "black", "Background color")
	eagerFlag := flag.Bool("eager", false, "Scroll as soon as the cursor leaves the bottom row")
	clearFlag := flag.Bool("clear", true, "Clear the screen before printing")
	vtFlag := flag.Int("vt", 0, "Virtual console number for the vcsa output (default: foreground console)")
	i2cBusFlag := flag.String("i2c-bus", "", "I²C bus name (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(panel.DefaultSSD1306Config.Addr), "I²C device address")
	fontFlag := flag.String("font", "", "TrueType font for pixel outputs (default: 7x13 bitmap)")
	fontSizeFlag := flag.Float64("font-size", 10, "TrueType font size in points")
	outFlag := flag.String("out", "textmode.png", "PNG file for the png output")
	holdFlag := flag.Duration("hold", 0, "Keep full screen outputs up for this long after printing")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <vga|devmem|vcsa|screen|ansi|ssd1306|png> [text...]\n", os.Args[0])
		os.Exit(1)
	}

	fg, err := textmode.ParseColor(*fgFlag)
	if err != nil {
		fatal(err)
	}
	bg, err := textmode.ParseColor(*bgFlag)
	if err != nil {
		fatal(err)
	}

	config := &textmode.Config{
		Cols:  *colsFlag,
		Rows:  *rowsFlag,
		Color: textmode.NewColorCode(fg, bg),
	}
	if *eagerFlag {
		config.Scroll = textmode.ScrollEager
	}

	var (
		sink    textmode.Sink
		cleanup = func() error { return nil }
	)
	switch output := strings.ToLower(flag.Arg(0)); output {
	case "vga":
		fitDefault(config)
		var r *mmio.Region
		if r, err = mmio.Physical(textmode.VGAAddr, config.Cols*config.Rows*textmode.CellSize); err != nil {
			fatal(err)
		}
		sink = r

	case "devmem":
		fitDefault(config)
		var r *mmio.Region
		if r, err = mmio.Open(&mmio.Config{
			Addr: textmode.VGAAddr,
			Size: config.Cols * config.Rows * textmode.CellSize,
		}); err != nil {
			fatal(err)
		}
		sink, cleanup = r, r.Close

	case "vcsa":
		vt := *vtFlag
		if vt == 0 {
			if vt, err = vcsa.Active(); err != nil {
				fatal(err)
			}
		}
		if text, err := vcsa.TextMode(vt); err == nil && !text {
			fmt.Fprintf(os.Stderr, "warning: console %d is in graphics mode\n", vt)
		}
		var c *vcsa.Console
		if c, err = vcsa.Open(&vcsa.Config{Console: vt, Cols: config.Cols}); err != nil {
			fatal(err)
		}
		cols, rows := c.Size()
		if config.Cols == 0 {
			config.Cols = cols
		}
		if config.Rows == 0 {
			config.Rows = rows
		}
		fmt.Fprintf(os.Stderr, "using output: %s\n", c)
		sink, cleanup = c, c.Close

	case "screen":
		fitDefault(config)
		var s *term.Screen
		if s, err = term.OpenScreen(config.Cols, config.Rows); err != nil {
			fatal(err)
		}
		sink, cleanup = s, func() error {
			time.Sleep(*holdFlag)
			return s.Close()
		}

	case "ansi":
		fitDefault(config)
		if sink, err = term.OpenANSI(os.Stdout, config.Cols, config.Rows); err != nil {
			fatal(err)
		}

	case "ssd1306", "png":
		var (
			f   = loadFace(*fontFlag, *fontSizeFlag)
			dev panel.Device
		)
		if output == "ssd1306" {
			if _, err = host.Init(); err != nil {
				fatal(err)
			}
			var d *panel.SSD1306
			if d, err = panel.OpenSSD1306(&panel.SSD1306Config{
				Bus:  *i2cBusFlag,
				Addr: uint16(*i2cAddrFlag),
			}); err != nil {
				fatal(err)
			}
			fmt.Fprintf(os.Stderr, "using output: %s\n", d)
			dev, cleanup = d, func() error {
				time.Sleep(*holdFlag)
				return d.Close()
			}
		} else {
			fitDefault(config)
			w, h := panel.CellSize(f)
			snap := panel.NewSnapshot(config.Cols*w, config.Rows*h)
			dev, cleanup = snap, func() error {
				return writePNG(*outFlag, snap)
			}
		}

		var p *panel.Panel
		if p, err = panel.New(dev, &panel.Config{
			Face: f,
			Cols: config.Cols,
			Rows: config.Rows,
		}); err != nil {
			fatal(err)
		}
		config.Cols, config.Rows = p.Size()
		sink = p

	default:
		fatal(fmt.Errorf("unsupported output %q", output))
	}

	console, err := textmode.New(sink, config)
	if err != nil {
		fatal(err)
	}
	if *clearFlag {
		if err = console.Clear(); err != nil {
			fatal(err)
		}
	}

	if flag.NArg() > 1 {
		err = printLine(console, strings.Join(flag.Args()[1:], " "))
	} else {
		err = printLines(console, os.Stdin)
	}
	if err != nil {
		fatal(err)
	}
	if err = cleanup(); err != nil {
		fatal(err)
	}
}

func printLines(console *textmode.Console, r io.Reader) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		if err := printLine(console, s.Text()); err != nil {
			return err
		}
	}
	return s.Err()
}

func printLine(console *textmode.Console, line string) error {
	_, err := console.Write(append(textmode.Encode(line), '\n'))
	return err
}

func loadFace(name string, size float64) font.Face {
	if name == "" {
		return panel.DefaultFace
	}
	f, err := panel.LoadTrueType(name, size)
	if err != nil {
		fatal(err)
	}
	return f
}

func writePNG(name string, snap *panel.Snapshot) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = png.Encode(f, snap); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fitDefault(config *textmode.Config) {
	if config.Cols == 0 {
		config.Cols = textmode.Cols
	}
	if config.Rows == 0 {
		config.Rows = textmode.Rows
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
