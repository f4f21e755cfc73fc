package main

import (
	"fmt"
	"io"

	"github.com/LerianStudio/lib-tripwire/tripwire/bitutil"
	"github.com/LerianStudio/lib-tripwire/tripwire/platform"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print compiler and OS flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeInfo(cmd.OutOrStdout())
		},
	}
}

func writeInfo(w io.Writer) error {
	for _, name := range platform.Compilers() {
		if _, err := fmt.Fprintf(w, "[COMPILER] %s\n", name); err != nil {
			return err
		}
	}

	for _, name := range platform.OperatingSystems() {
		if _, err := fmt.Fprintf(w, "[OS] %s\n", name); err != nil {
			return err
		}
	}

	a := int32(0b1000)
	_, err := fmt.Fprintf(w, "Leading zeroes in %d are equal to %d\n", a, bitutil.LeadingZeroCount(a))

	return err
}
