//go:build linux

package platform

const (
	OSWindows = false
	OSLinux   = true
	OSMac     = false
	OSUnknown = false
)
