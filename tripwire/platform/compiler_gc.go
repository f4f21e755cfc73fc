//go:build gc

package platform

const (
	CompilerGC      = true
	CompilerGccgo   = false
	CompilerUnknown = false
)
