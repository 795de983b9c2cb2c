package textmode

import "log"

var std = mustNew(defaultSink())

func mustNew(sink Sink) *Console {
	c, err := New(sink, nil)
	if err != nil {
		log.Panicf("textmode: default console: %v", err)
	}
	return c
}

// Default returns the process wide console used by the package level
// functions.
func Default() *Console {
	return std
}

// SetSink sets the sink of the default console.
func SetSink(sink Sink) error {
	return std.SetSink(sink)
}

// Clear blanks the default console.
func Clear() error {
	return std.Clear()
}

// Print writes to the default console in the manner of fmt.Print.
func Print(a ...any) (int, error) {
	return std.Print(a...)
}

// Println writes to the default console in the manner of fmt.Println.
func Println(a ...any) (int, error) {
	return std.Println(a...)
}

// Printf writes to the default console in the manner of fmt.Printf.
func Printf(format string, a ...any) (int, error) {
	return std.Printf(format, a...)
}
