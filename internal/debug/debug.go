// Package debug provides the debug logging of the bitfield command line tool.
package debug

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

var (
	enabled int32 = 0
	logger        = log.New(os.Stderr, "bitfield: ", log.LstdFlags|log.Lmsgprefix)
)

// Toggle turns on/off debug mode
func Toggle(on bool) {
	val := int32(0)
	if on {
		val = 1
	}
	atomic.StoreInt32(&enabled, val)
}

// Enabled reports whether debug mode is on.
func Enabled() bool {
	return atomic.LoadInt32(&enabled) == 1
}

// SetOutput sets the destination of debug logs, stderr by default.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Format a log line and writes it to the debug output if debug is enabled
func Format(format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	logger.Printf(format, args...)
}
