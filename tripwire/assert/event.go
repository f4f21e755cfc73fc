package assert

import (
	"errors"
	"strconv"
)

// Event is one failed check as seen by a handler.
type Event struct {
	Expr    string
	File    string
	Line    int
	Message string
}

// Location formats the event position as file:line.
func (e Event) Location() string {
	return e.File + ":" + strconv.Itoa(e.Line)
}

// ErrAssertionFailed is the sentinel every AssertionError unwraps to.
var ErrAssertionFailed = errors.New("assertion failed")

// AssertionError carries a failure to an ErrorReporter. Only handlers build
// it; CheckAt and That never return or panic with it.
type AssertionError struct {
	Event
	FaultID string
}

// Error formats the failure.
func (e *AssertionError) Error() string {
	if e == nil {
		return ErrAssertionFailed.Error()
	}

	text := "assertion failed: " + e.Expr + " at " + e.Location()
	if e.Message != "" {
		text += ": " + e.Message
	}

	return text
}

// Unwrap returns ErrAssertionFailed for errors.Is.
func (e *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}
