// Package metrics wraps the OpenTelemetry metric API behind a small factory
// that caches instruments by name and exposes a fluent counter builder.
package metrics
