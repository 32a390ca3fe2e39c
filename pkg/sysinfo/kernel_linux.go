//go:build linux

package sysinfo

import (
	"golang.org/x/sys/unix"
)

// siKernelRelease returns the kernel release reported by uname(2).
func siKernelRelease() (string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(u.Release[:]), nil
}
