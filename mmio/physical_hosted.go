//go:build !baremetal

package mmio

import "fmt"

// Physical is only available in bare metal builds. A hosted process has no
// identity mapping of physical memory, use [Open] instead.
func Physical(addr uintptr, size int) (*Region, error) {
	return nil, fmt.Errorf("%w: physical address %#x outside a bare metal build", ErrNotSupported, addr)
}
