package runtime

import (
	"context"
	"sync"
)

// ErrorReporter forwards faults to an external tracking service.
//
// Implementations must be safe for concurrent use and must not panic.
type ErrorReporter interface {
	CaptureException(ctx context.Context, err error, tags map[string]string)
}

var (
	errorReporterInstance ErrorReporter
	errorReporterMu       sync.RWMutex
)

// SetErrorReporter installs the process-wide reporter. Pass nil to disable.
func SetErrorReporter(reporter ErrorReporter) {
	errorReporterMu.Lock()
	defer errorReporterMu.Unlock()

	errorReporterInstance = reporter
}

// GetErrorReporter returns the installed reporter or nil.
func GetErrorReporter() ErrorReporter {
	errorReporterMu.RLock()
	defer errorReporterMu.RUnlock()

	return errorReporterInstance
}

var (
	// productionMode redacts free-form messages from reports and logs.
	productionMode   bool
	productionModeMu sync.RWMutex
)

// RedactedMessage replaces assertion messages in production mode.
const RedactedMessage = "[redacted]"

// SetProductionMode toggles production mode.
func SetProductionMode(enabled bool) {
	productionModeMu.Lock()
	defer productionModeMu.Unlock()

	productionMode = enabled
}

// IsProductionMode reports whether production mode is on.
func IsProductionMode() bool {
	productionModeMu.RLock()
	defer productionModeMu.RUnlock()

	return productionMode
}

// Redact returns msg unchanged outside production mode and RedactedMessage
// inside it. Empty messages stay empty.
func Redact(msg string) string {
	if msg == "" || !IsProductionMode() {
		return msg
	}

	return RedactedMessage
}
