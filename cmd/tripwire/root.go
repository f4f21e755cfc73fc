package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.Bold)
)

func newRootCmd(cfg Config) *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:           "tripwire",
		Short:         "Inspect the build and exercise the tripwire assertion hook",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newInfoCmd())
	root.AddCommand(newSelfTestCmd(cfg))

	return root
}
