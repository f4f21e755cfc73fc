//go:build darwin

package platform

const (
	OSWindows = false
	OSLinux   = false
	OSMac     = true
	OSUnknown = false
)
