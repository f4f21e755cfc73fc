package assert

import (
	"fmt"
	"io"
	"os"

	"github.com/LerianStudio/lib-tripwire/tripwire/ansi"
	"github.com/LerianStudio/lib-tripwire/tripwire/runtime"
)

// Console returns a Handler that prints each failure in bold red to w
// (stderr when w is nil) and then applies policy.
func Console(w io.Writer, policy runtime.FaultPolicy) Handler {
	if w == nil {
		w = os.Stderr
	}

	return func(expr, file string, line int, msg string) bool {
		_, _ = fmt.Fprintf(w, "%s%s[ASSERTION] [EXPR]: %s [FILE]: %s [LINE]: %d [MSG]: %s%s\n",
			ansi.Red, ansi.Bold, expr, file, line, runtime.Redact(msg), ansi.Reset)

		return policy.ShouldCrash()
	}
}
