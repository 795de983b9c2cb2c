//go:build baremetal

package textmode

import "github.com/BeatGlow/textmode/mmio"

// On bare metal the VGA text buffer is identity mapped for the lifetime of
// the process.
func defaultSink() Sink {
	r, err := mmio.Physical(VGAAddr, Cols*Rows*CellSize)
	if err != nil {
		return Discard
	}
	return r
}
