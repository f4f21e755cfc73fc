// Command tripwire reports the build's capability flags and runs the
// tripwire self-test suite against the assertion hook.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root := newRootCmd(cfg)
	root.SetArgs(args)

	return root.Execute()
}
