package runtime

import (
	"fmt"
	"strings"
)

// FaultPolicy decides what happens after a handler has observed a failure.
type FaultPolicy int

const (
	// KeepRunning vetoes termination; execution continues past the failed check.
	KeepRunning FaultPolicy = iota
	// CrashProcess lets the failed check terminate the process.
	CrashProcess
)

// String returns the policy name.
func (p FaultPolicy) String() string {
	switch p {
	case KeepRunning:
		return "KeepRunning"
	case CrashProcess:
		return "CrashProcess"
	default:
		return "Unknown"
	}
}

// ShouldCrash reports whether the policy asks for termination.
func (p FaultPolicy) ShouldCrash() bool {
	return p == CrashProcess
}

// ParseFaultPolicy accepts "keep-running"/"keep_running"/"KeepRunning" and
// "crash-process"/"crash_process"/"CrashProcess", case-insensitively.
func ParseFaultPolicy(s string) (FaultPolicy, error) {
	normalized := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))

	switch normalized {
	case "keeprunning":
		return KeepRunning, nil
	case "crashprocess":
		return CrashProcess, nil
	}

	return KeepRunning, fmt.Errorf("unknown fault policy %q", s)
}
