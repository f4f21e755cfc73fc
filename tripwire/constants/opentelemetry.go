package constant

// TelemetrySDKName identifies this library as an instrumentation scope.
const TelemetrySDKName = "lib-tripwire/opentelemetry"

// MaxMetricLabelLength bounds metric label values to keep cardinality sane.
const MaxMetricLabelLength = 64

// AttrPrefixAssertion prefixes assertion attributes and report tags.
const AttrPrefixAssertion = "assertion."

// Telemetry metric names.
const (
	// MetricAssertionFailedTotal counts failed assertions observed by a handler.
	MetricAssertionFailedTotal = "assertion_failed_total"
)

// Telemetry event names.
const (
	// EventAssertionFailed names the log/report event for an assertion failure.
	EventAssertionFailed = "assertion.failed"
)

// SanitizeMetricLabel truncates value to MaxMetricLabelLength bytes.
func SanitizeMetricLabel(value string) string {
	if len(value) > MaxMetricLabelLength {
		return value[:MaxMetricLabelLength]
	}

	return value
}
