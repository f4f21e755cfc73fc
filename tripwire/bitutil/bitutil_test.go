//go:build unit

package bitutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint(8), BitWidth[int8]())
	assert.Equal(t, uint(16), BitWidth[uint16]())
	assert.Equal(t, uint(32), BitWidth[int32]())
	assert.Equal(t, uint(64), BitWidth[uint64]())
}

func TestLeadingZeroCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(28), LeadingZeroCount(int32(0b1000)))
	assert.Equal(t, uint32(60), LeadingZeroCount(int64(0b1000)))
	assert.Equal(t, uint32(0), LeadingZeroCount(uint32(0)))
	assert.Equal(t, uint32(31), LeadingZeroCount(uint32(1)))
	assert.Equal(t, uint32(0), LeadingZeroCount(uint64(math.MaxUint64)))
	assert.Equal(t, uint32(0), LeadingZeroCount(int8(-1)))
	assert.Equal(t, uint32(1), LeadingZeroCount(int16(math.MaxInt16)))
	assert.Equal(t, uint32(7), LeadingZeroCount(uint8(1)))
}

func TestIntrinsicMatchesFallback(t *testing.T) {
	t.Parallel()

	for _, v := range []int32{1, 2, 3, 8, 255, 1 << 20, math.MaxInt32, -1, math.MinInt32} {
		assert.Equal(t, leadingZeroCountFallback(v), leadingZeroCountIntrinsic(v), "int32 %d", v)
	}

	for _, v := range []uint64{1, 7, 1 << 40, math.MaxUint64} {
		assert.Equal(t, leadingZeroCountFallback(v), leadingZeroCountIntrinsic(v), "uint64 %d", v)
	}

	for _, v := range []int8{1, 64, math.MaxInt8, -128} {
		assert.Equal(t, leadingZeroCountFallback(v), leadingZeroCountIntrinsic(v), "int8 %d", v)
	}
}
