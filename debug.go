package depixel

import (
	"fmt"
	"os"
)

// globalDebug gates stderr diagnostics (no sync.Once or locking — depixel is
// single-threaded).
var globalDebug bool

// SetDebug enables or disables diagnostic output to stderr. Off by default.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugf prints a diagnostic line to stderr. Callers check globalDebug first
// when formatting would be wasted work.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[depixel] "+format+"\n", args...)
}
