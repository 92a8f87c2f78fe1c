package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newWidthsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "widths",
		Short: "List every width with its largest value and its sentinel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "WIDTH\tBITS\tSIGNED\tMAX\tSENTINEL")
			for _, w := range widths {
				fmt.Fprintf(tw, "%s\t%d\t%v\t%s\t%s\n", w.name, w.bits, w.signed, w.max, w.sentinel)
			}
			return tw.Flush()
		},
	}
}
