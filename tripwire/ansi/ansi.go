// Package ansi holds SGR escape sequences for terminal output.
//
// Sequences are plain string constants so they can be concatenated at
// compile time; Wrap appends Reset after the text.
package ansi

import "strings"

// Reset clears every attribute.
const Reset = "\x1b[0m"

// Foreground colours.
const (
	Black   = "\x1b[30m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
	White   = "\x1b[37m"
)

// Bright foreground colours.
const (
	BrightBlack   = "\x1b[90m"
	BrightRed     = "\x1b[91m"
	BrightGreen   = "\x1b[92m"
	BrightYellow  = "\x1b[93m"
	BrightBlue    = "\x1b[94m"
	BrightMagenta = "\x1b[95m"
	BrightCyan    = "\x1b[96m"
	BrightWhite   = "\x1b[97m"
)

// Background colours.
const (
	BackgroundBlack   = "\x1b[40m"
	BackgroundRed     = "\x1b[41m"
	BackgroundGreen   = "\x1b[42m"
	BackgroundYellow  = "\x1b[43m"
	BackgroundBlue    = "\x1b[44m"
	BackgroundMagenta = "\x1b[45m"
	BackgroundCyan    = "\x1b[46m"
	BackgroundWhite   = "\x1b[47m"
)

// Bright background colours.
const (
	BrightBackgroundBlack   = "\x1b[100m"
	BrightBackgroundRed     = "\x1b[101m"
	BrightBackgroundGreen   = "\x1b[102m"
	BrightBackgroundYellow  = "\x1b[103m"
	BrightBackgroundBlue    = "\x1b[104m"
	BrightBackgroundMagenta = "\x1b[105m"
	BrightBackgroundCyan    = "\x1b[106m"
	BrightBackgroundWhite   = "\x1b[107m"
)

// Text attributes.
const (
	Bold          = "\x1b[1m"
	Dim           = "\x1b[2m"
	Italic        = "\x1b[3m"
	Underline     = "\x1b[4m"
	Blink         = "\x1b[5m"
	RapidBlink    = "\x1b[6m"
	Reverse       = "\x1b[7m"
	Hidden        = "\x1b[8m"
	Strikethrough = "\x1b[9m"
)

// Wrap returns codes followed by text and Reset. With no codes the text is
// returned unchanged.
func Wrap(text string, codes ...string) string {
	if len(codes) == 0 {
		return text
	}

	var sb strings.Builder

	for _, code := range codes {
		sb.WriteString(code)
	}

	sb.WriteString(text)
	sb.WriteString(Reset)

	return sb.String()
}

// Strip removes every SGR sequence from s.
func Strip(s string) string {
	if !strings.Contains(s, "\x1b[") {
		return s
	}

	var sb strings.Builder

	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}

			if j < len(s) {
				i = j
				continue
			}
		}

		sb.WriteByte(s[i])
	}

	return sb.String()
}
