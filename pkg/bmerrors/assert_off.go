//go:build !ci

package bmerrors

const DebugAssertionsEnabled = false

// DebugAssertf never evaluates condition outside of builds tagged ci.
func DebugAssertf(func() bool, string, ...any) {}
