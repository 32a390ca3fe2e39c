//go:build darwin

package sysinfo

import (
	"golang.org/x/sys/unix"
)

// siKernelRelease returns the kernel release on macOS via sysctl.
func siKernelRelease() (string, error) {
	return unix.Sysctl("kern.osrelease")
}
