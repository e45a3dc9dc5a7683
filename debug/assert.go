package debug

import "fmt"

// DEBUG gates Assertf and the Compiler's end-of-compile disassembly
// dump; the VM's per-instruction trace is gated by the logrus level
// alone. It is off by default and flipped on by the CLI's --trace flag.
var DEBUG = false

func Assertf(b bool, format string, a ...any) {
	if DEBUG && !b {
		panic(fmt.Sprintf(format, a...))
	}
}

func AssertEq[T comparable](expected, got T) { Assertf(expected == got, "%v != %v", expected, got) }
