// Package assert is the tripwire assertion hook: a process-wide, swappable
// handler that observes failed invariant checks before the process is taken
// down.
//
// # Contract
//
// A failed check is fatal unless a handler vetoes it:
//
//   - no handler installed: the process is force-terminated at once
//   - handler returns true: the process is force-terminated after it ran
//   - handler returns false: the check returns and execution continues
//
// Passing checks cost one branch and never touch the handler.
//
//	assert.That(len(buf) <= cap, "len(buf) <= cap", "buffer overrun")
//	assert.CheckAt(n >= 0, "n >= 0", "ring.go", 118)
//
// # Termination
//
// Force-termination is not a panic on the caller's goroutine and not
// os.Exit. The runtime traceback level is set to "crash" and, on unix, the
// package raises SIGABRT, so the Go runtime dumps every goroutine (the
// asserting one is parked at the call site) and leaves a core for postmortem
// debugging. An unrecovered panic on a goroutine owned by this package
// always follows, out of reach of any caller's recover, so a host that
// ignores SIGABRT still crashes.
//
// # Handler slot
//
// SetHandler replaces the single installed Handler; nil clears it. The slot
// is an atomic pointer, so installing while other goroutines check is safe
// and each check uses the handler it loaded. Handlers run synchronously on
// the failing goroutine. A handler that calls SetHandler affects later
// checks only. Handlers must not panic: a panic unwinds out of CheckAt to
// the caller and the process is not terminated.
//
// Ready-made handlers: Console prints the failure in bold red, Recorder
// collects events and vetoes, Observe logs, counts and reports through the
// tripwire runtime ErrorReporter.
package assert
