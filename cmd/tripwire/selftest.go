package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/LerianStudio/lib-tripwire/tripwire/assert"
	"github.com/LerianStudio/lib-tripwire/tripwire/log"
	"github.com/LerianStudio/lib-tripwire/tripwire/opentelemetry/metrics"
	"github.com/LerianStudio/lib-tripwire/tripwire/runtime"
	tripwirezap "github.com/LerianStudio/lib-tripwire/tripwire/zap"
	"github.com/spf13/cobra"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	constant "github.com/LerianStudio/lib-tripwire/tripwire/constants"
)

var errSelfTestFailed = errors.New("self-test failed")

const shutdownTimeout = 5 * time.Second

func newSelfTestCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the predicate suite with the tripwire handler installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			policy, err := cfg.policy()
			if err != nil {
				return err
			}

			runtime.SetProductionMode(cfg.isProduction())

			logger, _, err := tripwirezap.New(cfg.loggerConfig())
			if err != nil {
				return err
			}

			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				_ = logger.Sync(ctx)
			}()

			return runSelfTest(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), logger, policy, selfTests())
		},
	}
}

// runSelfTest installs a handler that records, prints and observes every
// failure, runs tests and restores the previous handler.
func runSelfTest(
	ctx context.Context,
	out, errOut io.Writer,
	logger log.Logger,
	policy runtime.FaultPolicy,
	tests []selfTest,
) error {
	if ctx == nil {
		ctx = context.Background()
	}

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	defer func() { _ = provider.Shutdown(context.Background()) }()

	factory, err := metrics.NewMetricsFactory(provider.Meter(constant.TelemetrySDKName), logger)
	if err != nil {
		return err
	}

	assert.ResetAssertionMetrics()
	assert.InitAssertionMetrics(factory)

	defer assert.ResetAssertionMetrics()

	recorder := assert.NewRecorder()
	record := recorder.Handler()
	console := assert.Console(errOut, runtime.KeepRunning)
	observe := assert.Observe(assert.ObserverConfig{
		Logger:    logger,
		Component: "selftest",
		Policy:    policy,
	})

	previous := assert.CurrentHandler()
	defer assert.SetHandler(previous)

	assert.SetHandler(func(expr, file string, line int, msg string) bool {
		record(expr, file, line, msg)
		console(expr, file, line, msg)

		return observe(expr, file, line, msg)
	})

	fmt.Fprint(out, "\n\n\nRUNNING TESTS\n\n")

	failed := 0

	for _, test := range tests {
		fmt.Fprintf(out, "\t[TEST RUNNING] %s\n", headerColor.Sprint(test.name))

		before := recorder.Len()
		test.run()

		if recorder.Len() > before {
			failed++

			fmt.Fprintf(out, "\t[TEST %s] %s\n", errorColor.Sprint("FAILED"), headerColor.Sprint(test.name))

			continue
		}

		fmt.Fprintf(out, "\t[TEST %s] %s\n", successColor.Sprint("PASSED"), headerColor.Sprint(test.name))
	}

	fmt.Fprintln(out)

	total, err := countedFailures(ctx, reader)
	if err != nil {
		return err
	}

	if failed > 0 {
		fmt.Fprintf(out, "%s (%d of %d suites, %s=%d)\n",
			errorColor.Sprint("Tests FAILED"), failed, len(tests), constant.MetricAssertionFailedTotal, total)

		return fmt.Errorf("%w: %d suite(s)", errSelfTestFailed, failed)
	}

	fmt.Fprintln(out, successColor.Sprint("Tests OK"))

	return nil
}

func countedFailures(ctx context.Context, reader *sdkmetric.ManualReader) (int64, error) {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return 0, fmt.Errorf("collect metrics: %w", err)
	}

	var total int64

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != constant.MetricAssertionFailedTotal {
				continue
			}

			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}

	return total, nil
}
