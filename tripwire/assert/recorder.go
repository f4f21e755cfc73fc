package assert

import "sync"

// Recorder keeps every event it sees and vetoes termination.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Handler returns a Handler bound to r.
func (r *Recorder) Handler() Handler {
	return func(expr, file string, line int, msg string) bool {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.events = append(r.events, Event{Expr: expr, File: file, Line: line, Message: msg})

		return false
	}
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)

	return out
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.events)
}

// Reset drops every recorded event.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = nil
}
