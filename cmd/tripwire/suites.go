package main

import (
	"fmt"

	"github.com/LerianStudio/lib-tripwire/tripwire/assert"
	"github.com/LerianStudio/lib-tripwire/tripwire/bitutil"
	"github.com/LerianStudio/lib-tripwire/tripwire/platform"
)

type selfTest struct {
	name string
	run  func()
}

func selfTests() []selfTest {
	return []selfTest{
		{name: "is_digit_test", run: isDigitTest},
		{name: "is_white_space_test", run: isWhiteSpaceTest},
		{name: "leading_zero_count_test", run: leadingZeroCountTest},
		{name: "platform_flags_test", run: platformFlagsTest},
	}
}

func isDigitTest() {
	cases := []struct {
		in       byte
		expected bool
	}{
		{' ', false},
		{'-', false},
		{'/', false},
		{'0', true},
		{'1', true},
		{'2', true},
		{'3', true},
		{'4', true},
		{'5', true},
		{'6', true},
		{'7', true},
		{'8', true},
		{'9', true},
		{':', false},
	}

	for _, c := range cases {
		assert.That(assert.IsDigit(c.in) == c.expected, "assert.IsDigit(c.in) == c.expected", fmt.Sprintf("input %q", c.in))
	}
}

func isWhiteSpaceTest() {
	for _, c := range []byte{' ', '\t', '\n', '\r'} {
		assert.That(assert.IsWhiteSpace(c), "assert.IsWhiteSpace(c)", fmt.Sprintf("input %q", c))
	}

	for c := byte('!'); c <= '~'; c++ {
		assert.That(!assert.IsWhiteSpace(c), "!assert.IsWhiteSpace(c)", fmt.Sprintf("input %q", c))
	}
}

func leadingZeroCountTest() {
	cases := []struct {
		in       int32
		expected uint32
	}{
		{0, 0},
		{1, 31},
		{0b1000, 28},
		{-1, 0},
	}

	for _, c := range cases {
		got := bitutil.LeadingZeroCount(c.in)
		assert.That(got == c.expected, "bitutil.LeadingZeroCount(c.in) == c.expected",
			fmt.Sprintf("input %d: got %d want %d", c.in, got, c.expected))
	}

	assert.That(bitutil.LeadingZeroCount(uint64(1)) == 63, "bitutil.LeadingZeroCount(uint64(1)) == 63")
}

func platformFlagsTest() {
	assert.That(len(platform.Compilers()) == 1, "len(platform.Compilers()) == 1", "exactly one compiler flag")
	assert.That(len(platform.OperatingSystems()) == 1, "len(platform.OperatingSystems()) == 1", "exactly one OS flag")
}
