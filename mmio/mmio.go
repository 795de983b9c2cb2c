// Package mmio provides sinks that copy the text buffer into memory mapped
// video RAM.
//
// [Physical] addresses the buffer directly and is only usable where physical
// memory is identity mapped, such as a bare metal kernel built with the
// baremetal tag. Hosted builds return [ErrNotSupported] from it. [Open] maps
// the buffer through /dev/mem on Linux.
package mmio

import (
	"errors"
	"fmt"
)

// VGAText is the physical address of the VGA color text buffer.
const VGAText uintptr = 0xb8000

// Errors
var (
	ErrSize         = errors.New("mmio: write exceeds mapped region")
	ErrNotSupported = errors.New("mmio: not supported")
	ErrClosed       = errors.New("mmio: region is closed")
)

// Region is a writable window of video memory.
type Region struct {
	mem   []byte
	unmap func() error
}

// Len is the region size in bytes.
func (r *Region) Len() int {
	return len(r.mem)
}

// Flush copies p to the start of the region.
func (r *Region) Flush(p []byte) error {
	if r.mem == nil {
		return ErrClosed
	}
	if len(p) > len(r.mem) {
		return fmt.Errorf("%w: %d > %d bytes", ErrSize, len(p), len(r.mem))
	}
	copy(r.mem, p)
	return nil
}

// Close releases the mapping, if any.
func (r *Region) Close() error {
	if r.mem == nil {
		return nil
	}
	r.mem = nil
	if r.unmap != nil {
		return r.unmap()
	}
	return nil
}
