//go:build !windows

package cli

// EnableANSI is a no-op where terminals speak ANSI natively.
func EnableANSI() {}
