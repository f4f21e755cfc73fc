//go:build unix

package assert

import (
	"os/signal"

	"golang.org/x/sys/unix"
)

// raiseSignal sends SIGABRT to the process. signal.Reset drops any
// signal.Notify registration; it does not undo signal.Ignore.
func raiseSignal() {
	signal.Reset(unix.SIGABRT)

	_ = unix.Kill(unix.Getpid(), unix.SIGABRT)
}
