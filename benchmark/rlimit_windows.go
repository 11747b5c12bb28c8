//go:build windows
// +build windows

package benchmark

import (
	"runtime/debug"
)

// SetMaxResources adjusts runtime limits on Windows. There is no open-file
// rlimit equivalent there, so only the Go max thread count is raised.
func SetMaxResources() error {
	debug.SetMaxThreads(8000)
	return nil
}
