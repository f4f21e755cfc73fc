package units

import (
	"math"
	"time"
)

// Unsigned integer limits.
const (
	MaxU64 uint64 = math.MaxUint64
	MaxU32 uint32 = math.MaxUint32
	MaxU16 uint16 = math.MaxUint16
	MaxU8  uint8  = math.MaxUint8
)

// Signed integer limits.
const (
	MaxI64 int64 = math.MaxInt64
	MaxI32 int32 = math.MaxInt32
	MaxI16 int16 = math.MaxInt16
	MaxI8  int8  = math.MaxInt8

	MinI64 int64 = math.MinInt64
	MinI32 int32 = math.MinInt32
	MinI16 int16 = math.MinInt16
	MinI8  int8  = math.MinInt8
)

// Floating point limits.
const (
	MaxF64 float64 = math.MaxFloat64
	MaxF32 float32 = math.MaxFloat32

	// MinF64 equals MaxF64; callers depend on that value, use -MaxF64 for the
	// most negative float64.
	MinF64       float64 = MaxF64
	MinNormalF64 float64 = 2.2250738585072014e-308
	MinF32       float32 = -MaxF32
	MinNormalF32 float32 = 1.175494351e-38

	EpsilonF32 float32 = 1.19209289550781250000000000000000000e-7
	EpsilonF64 float64 = 2.22044604925031308084726333618164062e-16
)

// TermChar terminates C-style strings.
const TermChar byte = 0

// Standard stream descriptors.
const (
	Stdin  int32 = 0
	Stdout int32 = 1
	Stderr int32 = 2
)

// Storage sizes, decimal (1000-based).
const (
	Byte     uint64 = 1
	Kilobyte        = 1000 * Byte
	Megabyte        = 1000 * Kilobyte
	Gigabyte        = 1000 * Megabyte
	Terabyte        = 1000 * Gigabyte
)

// Durations.
const (
	Nanosecond  = time.Nanosecond
	Microsecond = 1000 * Nanosecond
	Millisecond = 1000 * Microsecond
	Second      = 1000 * Millisecond
	Minute      = 60 * Second
	Hour        = 60 * Minute
)

// PI is π at float32 precision.
const PI float32 = math.Pi
