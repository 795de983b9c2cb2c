//go:build baremetal

package mmio

import (
	"fmt"
	"unsafe"
)

// Physical returns the region of size bytes at physical address addr. The
// address must be identity mapped and valid for the lifetime of the process.
func Physical(addr uintptr, size int) (*Region, error) {
	if addr == 0 || size <= 0 {
		return nil, fmt.Errorf("%w: %d bytes at %#x", ErrSize, size, addr)
	}
	return &Region{
		mem: unsafe.Slice((*byte)(unsafe.Pointer(addr)), size),
	}, nil
}
