// Package runtime holds process-wide fault settings shared by tripwire
// handlers: the production-mode switch, the optional ErrorReporter and the
// FaultPolicy that decides whether an observed failure should still crash.
package runtime
