package assert

import (
	"context"
	"path/filepath"
	"strconv"
	"time"

	constant "github.com/LerianStudio/lib-tripwire/tripwire/constants"
	"github.com/LerianStudio/lib-tripwire/tripwire/log"
	"github.com/LerianStudio/lib-tripwire/tripwire/runtime"
	"github.com/google/uuid"
)

// syncTimeout bounds the log flush done before a crash.
const syncTimeout = 2 * time.Second

// ObserverConfig configures Observe.
type ObserverConfig struct {
	// Logger receives one error entry per failure. Nil disables logging.
	Logger log.Logger
	// Reporter receives an *AssertionError per failure. Nil falls back to
	// runtime.GetErrorReporter at failure time.
	Reporter runtime.ErrorReporter
	// Component labels logs, metrics and report tags.
	Component string
	// Policy is applied after the failure was observed.
	Policy runtime.FaultPolicy
	// Context supplies the context used for logging, metrics and reporting,
	// so a logger can correlate the entry with the active span. Nil or a nil
	// result uses context.Background.
	Context func() context.Context
}

func (cfg ObserverConfig) baseContext() context.Context {
	if cfg.Context != nil {
		if ctx := cfg.Context(); ctx != nil {
			return ctx
		}
	}

	return context.Background()
}

// Observe returns a Handler that logs the failure, counts it in
// assertion_failed_total when InitAssertionMetrics was called, reports it to
// the ErrorReporter and then applies cfg.Policy. Messages are redacted in
// production mode.
func Observe(cfg ObserverConfig) Handler {
	return func(expr, file string, line int, msg string) bool {
		ctx := cfg.baseContext()
		fault := &AssertionError{
			Event: Event{
				Expr:    expr,
				File:    file,
				Line:    line,
				Message: runtime.Redact(msg),
			},
			FaultID: uuid.NewString(),
		}

		crash := cfg.Policy.ShouldCrash()

		logFault(ctx, cfg, fault, crash)

		if am := GetAssertionMetrics(); am != nil {
			am.RecordAssertionFailed(ctx, cfg.Component, file, expr)
		}

		reporter := cfg.Reporter
		if reporter == nil {
			reporter = runtime.GetErrorReporter()
		}

		if reporter != nil {
			reporter.CaptureException(ctx, fault, faultTags(cfg.Component, fault))
		}

		return crash
	}
}

func logFault(ctx context.Context, cfg ObserverConfig, fault *AssertionError, crash bool) {
	if cfg.Logger == nil {
		return
	}

	fields := []log.Field{
		log.String("fault_id", fault.FaultID),
		log.String(constant.AttrPrefixAssertion+"expr", fault.Expr),
		log.String(constant.AttrPrefixAssertion+"file", fault.File),
		log.Int(constant.AttrPrefixAssertion+"line", fault.Line),
		log.String("policy", cfg.Policy.String()),
	}

	if fault.Message != "" {
		fields = append(fields, log.String(constant.AttrPrefixAssertion+"message", fault.Message))
	}

	if cfg.Component != "" {
		fields = append(fields, log.String("component", cfg.Component))
	}

	cfg.Logger.Log(ctx, log.LevelError, constant.EventAssertionFailed, fields...)

	if !crash {
		return
	}

	syncCtx, cancel := context.WithTimeout(ctx, syncTimeout)
	defer cancel()

	_ = cfg.Logger.Sync(syncCtx)
}

func faultTags(component string, fault *AssertionError) map[string]string {
	tags := map[string]string{
		"fault_id":                               fault.FaultID,
		constant.AttrPrefixAssertion + "expr":    fault.Expr,
		constant.AttrPrefixAssertion + "file":    filepath.Base(fault.File),
		constant.AttrPrefixAssertion + "line":    strconv.Itoa(fault.Line),
		constant.AttrPrefixAssertion + "message": fault.Message,
	}

	if component != "" {
		tags["component"] = component
	}

	return tags
}
