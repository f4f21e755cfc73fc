//go:build unit

package assert

import (
	"context"
	"sync"
	"testing"
)

// installHandler swaps the process-wide handler for the duration of a test.
func installHandler(t *testing.T, h Handler) {
	t.Helper()

	previous := CurrentHandler()
	SetHandler(h)

	t.Cleanup(func() { SetHandler(previous) })
}

// countingHandler returns a handler that counts calls and answers with verdict.
func countingHandler(verdict bool) (Handler, func() int) {
	var (
		mu    sync.Mutex
		calls int
	)

	h := func(_, _ string, _ int, _ string) bool {
		mu.Lock()
		defer mu.Unlock()

		calls++

		return verdict
	}

	return h, func() int {
		mu.Lock()
		defer mu.Unlock()

		return calls
	}
}

type captureReporter struct {
	mu    sync.Mutex
	calls int
	err   error
	tags  map[string]string
}

func (r *captureReporter) CaptureException(_ context.Context, err error, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	r.err = err
	r.tags = tags
}
