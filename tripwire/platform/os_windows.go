//go:build windows

package platform

const (
	OSWindows = true
	OSLinux   = false
	OSMac     = false
	OSUnknown = false
)
