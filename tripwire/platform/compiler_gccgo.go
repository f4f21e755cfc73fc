//go:build gccgo

package platform

const (
	CompilerGC      = false
	CompilerGccgo   = true
	CompilerUnknown = false
)
