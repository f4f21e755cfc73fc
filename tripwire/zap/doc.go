// Package zap is the zap-backed implementation of tripwire/log.Logger.
//
// Logs are JSON encoded. When the context passed to Log carries a valid
// OpenTelemetry span, trace_id and span_id are appended so assertion failures
// can be correlated with the request that tripped them.
package zap
