package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nonmax",
		Short: "Inspect integers that can hold every value except their maximum",

		// main reports the error once; cobra would print it again along with
		// the usage text.
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newWidthsCommand())
	cmd.AddCommand(newParseCommand())
	cmd.AddCommand(newEncodeCommand())
	cmd.AddCommand(newDecodeCommand())
	return cmd
}
