package assert

import (
	"errors"
	"runtime/debug"
)

var errForcedFault = errors.New("tripwire: forced fault")

// terminate force-terminates the process and never returns. The calling
// goroutine parks so its frames stay visible in the crash dump.
//
// The platform signal may be ignored or undeliverable, so an unrecovered
// panic on a goroutine owned by this package always follows it. With
// traceback "crash" the runtime restores the default SIGABRT disposition
// before raising it, which a host's signal.Ignore cannot prevent.
func terminate() {
	debug.SetTraceback("crash")

	raiseSignal()

	go func() {
		panic(errForcedFault)
	}()

	select {}
}
