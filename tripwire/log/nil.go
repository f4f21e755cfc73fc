package log

import "context"

// NopLogger drops every event.
type NopLogger struct{}

// NewNop returns a Logger that discards everything.
//
//nolint:ireturn
func NewNop() Logger {
	return &NopLogger{}
}

func (l *NopLogger) Log(_ context.Context, _ Level, _ string, _ ...Field) {}

//nolint:ireturn
func (l *NopLogger) With(_ ...Field) Logger { return l }

//nolint:ireturn
func (l *NopLogger) WithGroup(_ string) Logger { return l }

func (l *NopLogger) Enabled(_ Level) bool { return false }

func (l *NopLogger) Sync(_ context.Context) error { return nil }
