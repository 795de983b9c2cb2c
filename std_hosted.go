//go:build !baremetal

package textmode

func defaultSink() Sink {
	return Discard
}
