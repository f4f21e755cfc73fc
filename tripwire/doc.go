// Package tripwire is the root of lib-tripwire, an embeddable fault-reporting
// primitive: a process-wide assertion hook that decides, when an invariant
// fails, whether the process is torn down.
//
// The hook lives in the assert subpackage:
//
//	assert.SetHandler(assert.Observe(assert.ObserverConfig{
//	    Logger:    logger,
//	    Component: "ledger",
//	    Policy:    runtime.KeepRunning,
//	}))
//
//	assert.That(balance >= 0, "balance >= 0", "negative balance")
//
// Supporting packages: runtime (fault policy, error reporter, production
// mode), log and zap (structured logging), opentelemetry/metrics (counter
// factory), constants, and the leaf packages units, ansi, platform and
// bitutil.
package tripwire
