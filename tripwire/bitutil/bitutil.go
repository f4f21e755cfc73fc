// Package bitutil provides integer bit counting generic over every Go
// integer type.
package bitutil

import (
	"math/bits"
	"unsafe"

	"github.com/LerianStudio/lib-tripwire/tripwire/platform"
	"golang.org/x/exp/constraints"
)

// BitWidth returns the size of T in bits.
func BitWidth[T constraints.Integer]() uint {
	var zero T

	return uint(unsafe.Sizeof(zero)) * 8
}

// LeadingZeroCount returns the number of leading zero bits of n within the
// width of T. Negative values have their sign bit set and report 0.
//
// n == 0 reports 0, not the bit width.
func LeadingZeroCount[T constraints.Integer](n T) uint32 {
	if n == 0 {
		return 0
	}

	if platform.CompilerUnknown {
		return leadingZeroCountFallback(n)
	}

	return leadingZeroCountIntrinsic(n)
}

func leadingZeroCountIntrinsic[T constraints.Integer](n T) uint32 {
	width := BitWidth[T]()

	u := uint64(n)
	if width < 64 {
		u &= uint64(1)<<width - 1
	}

	return uint32(bits.LeadingZeros64(u) - (64 - int(width)))
}

func leadingZeroCountFallback[T constraints.Integer](n T) uint32 {
	width := BitWidth[T]()
	leadingZeroes := uint32(width)

	for i := uint(0); i < width; i++ {
		leadingZeroes--

		n >>= 1
		if n == 0 {
			break
		}
	}

	return leadingZeroes
}
