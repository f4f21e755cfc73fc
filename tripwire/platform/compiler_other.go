//go:build !gc && !gccgo

package platform

const (
	CompilerGC      = false
	CompilerGccgo   = false
	CompilerUnknown = true
)
