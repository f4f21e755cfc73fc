package assert

import (
	goruntime "runtime"
	"strings"
	"sync/atomic"
)

// Handler observes a failed check. It returns true when the process should
// still be terminated and false to veto termination.
type Handler func(expr, file string, line int, msg string) bool

var handlerSlot atomic.Pointer[Handler]

// SetHandler installs h as the process-wide handler, discarding the previous
// one. A nil h restores the default, terminate-on-failure behavior.
func SetHandler(h Handler) {
	if h == nil {
		handlerSlot.Store(nil)
		return
	}

	handlerSlot.Store(&h)
}

// CurrentHandler returns the installed handler, or nil.
func CurrentHandler() Handler {
	if h := handlerSlot.Load(); h != nil {
		return *h
	}

	return nil
}

// CheckAt is the check-and-dispatch primitive. When ok is false the current
// handler is called with expr, file, line and the message, and the process
// is force-terminated unless the handler returns false. msg is optional;
// several parts are joined with a space.
func CheckAt(ok bool, expr, file string, line int, msg ...string) {
	if ok {
		return
	}

	dispatch(expr, file, line, joinMessage(msg))
}

// That is CheckAt with file and line taken from the caller.
func That(ok bool, expr string, msg ...string) {
	if ok {
		return
	}

	_, file, line, _ := goruntime.Caller(1)

	dispatch(expr, file, line, joinMessage(msg))
}

func dispatch(expr, file string, line int, msg string) {
	if h := CurrentHandler(); h == nil || h(expr, file, line, msg) {
		terminate()
	}
}

func joinMessage(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return strings.Join(parts, " ")
	}
}
