package panel

import (
	"fmt"
	"io"
	"log"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// SSD1306 commands.
const (
	ssd1306SetMemoryMode         = 0x20
	ssd1306SetColumnAddr         = 0x21
	ssd1306SetPageAddr           = 0x22
	ssd1306SetStartLine          = 0x40
	ssd1306SetContrast           = 0x81
	ssd1306SetChargePump         = 0x8D
	ssd1306SetSegmentRemap       = 0xA1
	ssd1306SetDisplayAllOnResume = 0xA4
	ssd1306SetNormalDisplay      = 0xA6
	ssd1306SetMultiplexRatio     = 0xA8
	ssd1306SetDisplayOff         = 0xAE
	ssd1306SetDisplayOn          = 0xAF
	ssd1306SetComScanDec         = 0xC8
	ssd1306SetDisplayOffset      = 0xD3
	ssd1306SetDisplayClockDiv    = 0xD5
	ssd1306SetPrecharge          = 0xD9
	ssd1306SetComPins            = 0xDA
	ssd1306SetVCOMDeselect       = 0xDB
)

// I²C control bytes.
const (
	ssd1306Command = 0x00
	ssd1306Data    = 0x40
)

// SSD1306Config describes an I²C SSD1306 module.
type SSD1306Config struct {
	// Bus is the I²C bus name, empty selects the first available bus.
	Bus string

	// Addr is the I²C address.
	Addr uint16

	// Width of the display in pixels.
	Width int

	// Height of the display in pixels.
	Height int
}

// DefaultSSD1306Config is a 128x64 module at the usual address.
var DefaultSSD1306Config = SSD1306Config{
	Addr:   0x3c,
	Width:  128,
	Height: 64,
}

// SSD1306 is a monochrome OLED display controller.
type SSD1306 struct {
	*MonoImage
	c      conn.Conn
	closer io.Closer
	halted bool
}

// OpenSSD1306 opens the configured I²C bus and initializes the display. The
// periph host drivers must be loaded first, see host.Init.
func OpenSSD1306(config *SSD1306Config) (*SSD1306, error) {
	if config == nil {
		config = new(SSD1306Config)
		*config = DefaultSSD1306Config
	}
	if config.Addr == 0 {
		config.Addr = DefaultSSD1306Config.Addr
	}

	bus, err := i2creg.Open(config.Bus)
	if err != nil {
		return nil, err
	}

	d, err := NewSSD1306(&i2c.Dev{Bus: bus, Addr: config.Addr}, config)
	if err != nil {
		_ = bus.Close()
		return nil, err
	}
	d.closer = bus
	return d, nil
}

// NewSSD1306 initializes a display reachable through c.
func NewSSD1306(c conn.Conn, config *SSD1306Config) (*SSD1306, error) {
	if config.Width == 0 {
		config.Width = DefaultSSD1306Config.Width
	}
	if config.Height == 0 {
		config.Height = DefaultSSD1306Config.Height
	}

	var comPins byte
	switch {
	case config.Width == 128 && config.Height == 64:
		comPins = 0x12
	case config.Width == 128 && config.Height == 32:
		comPins = 0x02
	default:
		return nil, fmt.Errorf("panel: SSD1306 unsupported size %dx%d", config.Width, config.Height)
	}

	d := &SSD1306{
		MonoImage: NewMonoImage(config.Width, config.Height),
		c:         c,
	}
	if err := d.command(
		ssd1306SetDisplayOff,
		ssd1306SetDisplayClockDiv, 0x80,
		ssd1306SetMultiplexRatio, byte(config.Height-1),
		ssd1306SetDisplayOffset, 0x00,
		ssd1306SetStartLine,
		ssd1306SetChargePump, 0x14,
		ssd1306SetMemoryMode, 0x00,
		ssd1306SetSegmentRemap,
		ssd1306SetComScanDec,
		ssd1306SetComPins, comPins,
		ssd1306SetPrecharge, 0xF1,
		ssd1306SetVCOMDeselect, 0x40,
		ssd1306SetDisplayAllOnResume,
		ssd1306SetNormalDisplay,
		ssd1306SetContrast, 0xCF,
	); err != nil {
		return nil, err
	}
	if err := d.Refresh(); err != nil {
		return nil, err
	}
	if err := d.Show(true); err != nil {
		return nil, err
	}

	if debug {
		log.Printf("panel: SSD1306 %dx%d on %s", config.Width, config.Height, c)
	}
	return d, nil
}

func (d *SSD1306) String() string {
	return fmt.Sprintf("SSD1306 OLED %dx%d", d.Rect.Dx(), d.Rect.Dy())
}

// Refresh sends the whole image in horizontal addressing mode.
func (d *SSD1306) Refresh() error {
	pages := (d.Rect.Dy() + 7) / 8
	if err := d.command(
		ssd1306SetColumnAddr, 0, byte(d.Rect.Dx()-1),
		ssd1306SetPageAddr, 0, byte(pages-1),
	); err != nil {
		return err
	}
	return d.c.Tx(append([]byte{ssd1306Data}, d.Pix...), nil)
}

// Show toggles the display on or off.
func (d *SSD1306) Show(show bool) error {
	if show {
		return d.command(ssd1306SetDisplayOn)
	}
	return d.command(ssd1306SetDisplayOff)
}

// SetContrast adjusts the contrast level.
func (d *SSD1306) SetContrast(level uint8) error {
	return d.command(ssd1306SetContrast, level)
}

// Close turns the display off and releases the bus if it was opened by
// OpenSSD1306.
func (d *SSD1306) Close() error {
	if !d.halted {
		if err := d.Show(false); err != nil {
			return err
		}
		d.halted = true
	}
	if d.closer != nil {
		return d.closer.Close()
	}
	return nil
}

func (d *SSD1306) command(commands ...byte) error {
	return d.c.Tx(append([]byte{ssd1306Command}, commands...), nil)
}
