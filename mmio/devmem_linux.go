package mmio

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/sys/unix"
)

var debug = os.Getenv("TEXTMODE_DEBUG") != ""

// Config describes the memory window to map.
type Config struct {
	// Path of the memory device.
	Path string

	// Addr is the physical address of the text buffer.
	Addr uintptr

	// Size of the text buffer in bytes.
	Size int
}

// DefaultConfig maps the 80x25 VGA color text buffer.
var DefaultConfig = Config{
	Path: "/dev/mem",
	Addr: VGAText,
	Size: 80 * 25 * 2,
}

// Open maps the configured physical memory window. This requires root (or
// CAP_SYS_RAWIO) and a kernel that permits access to the legacy video range.
func Open(config *Config) (*Region, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}
	if config.Path == "" {
		config.Path = DefaultConfig.Path
	}
	if config.Size <= 0 {
		return nil, fmt.Errorf("mmio: invalid size %d", config.Size)
	}

	fd, err := unix.Open(config.Path, unix.O_RDWR|unix.O_SYNC|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: config.Path, Err: err}
	}
	defer unix.Close(fd)

	// mmap offsets must be page aligned.
	var (
		page   = uintptr(unix.Getpagesize())
		base   = config.Addr &^ (page - 1)
		offset = int(config.Addr - base)
	)
	mem, err := unix.Mmap(fd, int64(base), offset+config.Size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, &os.SyscallError{Syscall: "mmap", Err: err}
	}

	if debug {
		log.Printf("mmio: mapped %d bytes at %#x from %s", config.Size, config.Addr, config.Path)
	}

	return &Region{
		mem: mem[offset : offset+config.Size],
		unmap: func() error {
			return unix.Munmap(mem)
		},
	}, nil
}
