package assert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	constant "github.com/LerianStudio/lib-tripwire/tripwire/constants"
	"github.com/LerianStudio/lib-tripwire/tripwire/opentelemetry/metrics"
)

// AssertionMetrics counts failed assertions through a MetricsFactory.
type AssertionMetrics struct {
	factory *metrics.MetricsFactory
}

var assertionFailedMetric = metrics.Metric{
	Name:        constant.MetricAssertionFailedTotal,
	Unit:        "1",
	Description: "Total number of failed assertions",
}

var (
	assertionMetricsInstance *AssertionMetrics
	assertionMetricsMu       sync.RWMutex
)

// InitAssertionMetrics installs the metrics singleton. A nil factory and
// repeated calls are no-ops.
func InitAssertionMetrics(factory *metrics.MetricsFactory) {
	assertionMetricsMu.Lock()
	defer assertionMetricsMu.Unlock()

	if factory == nil || assertionMetricsInstance != nil {
		return
	}

	assertionMetricsInstance = &AssertionMetrics{factory: factory}
}

// GetAssertionMetrics returns the singleton, or nil before InitAssertionMetrics.
func GetAssertionMetrics() *AssertionMetrics {
	assertionMetricsMu.RLock()
	defer assertionMetricsMu.RUnlock()

	return assertionMetricsInstance
}

// ResetAssertionMetrics clears the singleton. Tests only.
func ResetAssertionMetrics() {
	assertionMetricsMu.Lock()
	defer assertionMetricsMu.Unlock()

	assertionMetricsInstance = nil
}

// RecordAssertionFailed increments assertion_failed_total. The file label is
// the base name of file.
func (am *AssertionMetrics) RecordAssertionFailed(ctx context.Context, component, file, expr string) {
	if am == nil || am.factory == nil {
		return
	}

	counter, err := am.factory.Counter(assertionFailedMetric)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tripwire: failed to create assertion metric counter: %v\n", err)
		return
	}

	err = counter.
		WithLabels(map[string]string{
			"component": constant.SanitizeMetricLabel(component),
			"file":      constant.SanitizeMetricLabel(filepath.Base(file)),
			"expr":      constant.SanitizeMetricLabel(expr),
		}).
		AddOne(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tripwire: failed to record assertion metric: %v\n", err)
	}
}
