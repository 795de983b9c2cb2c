package vcsa

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/BeatGlow/textmode/internal/ioctl"
)

var debug = os.Getenv("TEXTMODE_DEBUG") != ""

// KD_TEXT from <linux/kd.h>
const kdText = 0x00

// Console is an open virtual console screen device.
type Console struct {
	fd    int
	path  string
	lines int
	cols  int
	grid  int
}

// Open a virtual console screen device.
func Open(config *Config) (*Console, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}

	path := config.Path
	if path == "" {
		path = "/dev/vcsa"
		if config.Console > 0 {
			path += strconv.Itoa(config.Console)
		}
	}

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}

	var header [headerSize]byte
	if _, err = unix.Pread(fd, header[:], 0); err != nil {
		_ = unix.Close(fd)
		return nil, &os.PathError{Op: "read", Path: path, Err: err}
	}

	c := &Console{
		fd:    fd,
		path:  path,
		lines: int(header[0]),
		cols:  int(header[1]),
		grid:  config.Cols,
	}
	if c.grid == 0 {
		c.grid = c.cols
	}
	if c.cols == 0 || c.lines == 0 || c.grid > c.cols {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("%w: %d columns on a %d column console", ErrGeometry, c.grid, c.cols)
	}

	if debug {
		log.Printf("vcsa: opened %s, %dx%d", path, c.cols, c.lines)
	}
	return c, nil
}

// Active returns the number of the foreground virtual console.
func Active() (int, error) {
	fd, err := unix.Open("/dev/tty0", unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return 0, &os.PathError{Op: "open", Path: "/dev/tty0", Err: err}
	}
	defer unix.Close(fd)

	// struct vt_stat
	var state struct {
		Active uint16
		Signal uint16
		State  uint16
	}
	if err = ioctl.Get(fd, ioctl.VTGetState, &state); err != nil {
		return 0, err
	}
	return int(state.Active), nil
}

// TextMode reports whether a virtual console is in text mode. A console in
// graphics mode, such as one running a display server, keeps its screen
// contents hidden.
func TextMode(console int) (bool, error) {
	path := "/dev/tty" + strconv.Itoa(console)
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NOCTTY|unix.O_CLOEXEC, 0)
	if err != nil {
		return false, &os.PathError{Op: "open", Path: path, Err: err}
	}
	defer unix.Close(fd)

	mode, err := ioctl.GetInt(fd, ioctl.KDGetMode)
	if err != nil {
		return false, err
	}
	return mode == kdText, nil
}

func (c *Console) String() string {
	return fmt.Sprintf("virtual console %s (%dx%d)", c.path, c.cols, c.lines)
}

// Size returns the console dimensions in characters.
func (c *Console) Size() (cols, rows int) {
	return c.cols, c.lines
}

// Flush writes the grid to the console screen, one row at a time when the
// grid is narrower than the console.
func (c *Console) Flush(p []byte) error {
	var (
		stride = c.grid * 2
		rows   = len(p) / stride
	)
	if len(p)%stride != 0 || rows > c.lines {
		return fmt.Errorf("%w: %d bytes for %d columns on %dx%d", ErrGeometry, len(p), c.grid, c.cols, c.lines)
	}

	if c.grid == c.cols {
		return c.write(p, headerSize)
	}
	for row := 0; row < rows; row++ {
		if err := c.write(p[row*stride:(row+1)*stride], int64(headerSize+row*c.cols*2)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) write(p []byte, off int64) error {
	for len(p) > 0 {
		n, err := unix.Pwrite(c.fd, p, off)
		if err != nil {
			return &os.PathError{Op: "write", Path: c.path, Err: err}
		}
		if n == 0 {
			return &os.PathError{Op: "write", Path: c.path, Err: io.ErrShortWrite}
		}
		p = p[n:]
		off += int64(n)
	}
	return nil
}

// Close the console device.
func (c *Console) Close() error {
	return unix.Close(c.fd)
}
