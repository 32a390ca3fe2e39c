//go:build !linux && !darwin

package sysinfo

func siKernelRelease() (string, error) {
	return "", errUnsupported
}
