package bmerrors

import (
	"fmt"
	"os"
	"strings"
)

// IsInTests reports whether the process is a test binary, detected by the
// -test.* flags go test passes to it.
func IsInTests() bool {
	for _, arg := range os.Args {
		if strings.HasPrefix(arg, "-test.") {
			return true
		}
	}
	return false
}

// MustPanic panics with a formatted message. It marks a broken internal
// invariant, such as a bucket coordinate outside of the grid.
func MustPanic(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}

// MustPanicErr panics with the given error as the panic value, so that
// recovering callers can inspect it with errors.Is / errors.As.
func MustPanicErr(err error) {
	panic(err)
}

// MustBugf reports misuse of the package. Under go test it panics so the
// misuse fails the test; otherwise it returns a "BUG:" error to the caller.
func MustBugf(format string, args ...any) error {
	if IsInTests() {
		panic(fmt.Sprintf(format, args...))
	}

	return fmt.Errorf("BUG: "+format, args...)
}
