//go:build !linux && !darwin && !windows

package platform

const (
	OSWindows = false
	OSLinux   = false
	OSMac     = false
	OSUnknown = true
)
