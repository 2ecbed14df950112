//go:build ci

package bmerrors

import (
	"fmt"
)

const DebugAssertionsEnabled = true

// DebugAssertf panics with the formatted message when condition returns false.
// The condition is only evaluated in builds tagged ci.
func DebugAssertf(condition func() bool, format string, args ...any) {
	if !condition() {
		panic(fmt.Sprintf(format, args...))
	}
}
