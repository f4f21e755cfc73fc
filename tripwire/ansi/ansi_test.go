//go:build unit

package ansi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", Wrap("plain"))
	assert.Equal(t, "\x1b[1mPASSED\x1b[0m", Wrap("PASSED", Bold))
	assert.Equal(t, "\x1b[1m\x1b[32mTests OK\x1b[0m", Wrap("Tests OK", Bold, Green))
}

func TestConstantsMatchSGRCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "\x1b[31m", Red)
	assert.Equal(t, "\x1b[97m", BrightWhite)
	assert.Equal(t, "\x1b[44m", BackgroundBlue)
	assert.Equal(t, "\x1b[106m", BrightBackgroundCyan)
	assert.Equal(t, "\x1b[9m", Strikethrough)
}

func TestStrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no escapes", in: "hello", want: "hello"},
		{name: "wrapped", in: Wrap("hello", Bold, Red), want: "hello"},
		{name: "mixed", in: "a" + Green + "b" + Reset + "c", want: "abc"},
		{name: "unterminated", in: "x\x1b[31", want: "x\x1b[31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Strip(tt.in))
		})
	}
}
