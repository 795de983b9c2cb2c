//go:build linux

package ioctl

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Request is an ioctl request number.
type Request uintptr

// Console requests from <linux/vt.h> and <linux/kd.h>.
const (
	VTGetState Request = 0x5603
	KDGetMode  Request = 0x4b3b
)

func (r Request) String() string {
	switch r {
	case VTGetState:
		return "VT_GETSTATE"
	case KDGetMode:
		return "KDGETMODE"
	default:
		return fmt.Sprintf("ioctl 0x%04x", uintptr(r))
	}
}

// Get issues request on fd and lets the kernel fill in *v.
func Get[T any](fd int, request Request, v *T) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(request), uintptr(unsafe.Pointer(v)))
	if errno != 0 {
		return fmt.Errorf("%s failed: %w", request, errno)
	}
	return nil
}

// GetInt issues a request whose result is returned in the syscall argument
// slot as an int.
func GetInt(fd int, request Request) (int, error) {
	var v int32
	if err := Get(fd, request, &v); err != nil {
		return 0, err
	}
	return int(v), nil
}
