package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	nonmax "github.com/shabbyrobe/go-nonmax"
)

// dumper shows the stored field rather than the String form, so an Option's
// offset representation is visible.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
}

func newParseCommand() *cobra.Command {
	var dump, option bool

	cmd := &cobra.Command{
		Use:   "parse [flags] [--] WIDTH TEXT...",
		Short: "Parse decimal text and show it in every base",
		Long: `Parse each TEXT as a decimal integer of the given width and print it in
decimal, binary, octal and hex. Text equal to the width's sentinel is reported
as "sentinel"; any other text that does not fit the width is "malformed". The
command exits non-zero if any TEXT was rejected.

Negative values look like flags, so put them after "--".`,
		Example: `  nonmax parse u8 12 255
  nonmax parse --dump -- i8 -5`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := lookupWidth(args[0])
			if err != nil {
				return err
			}
			var rejected int
			for _, text := range args[1:] {
				if !parseOne(cmd.OutOrStdout(), w, text, option, dump) {
					rejected++
				}
			}
			if rejected > 0 {
				return fmt.Errorf("%d of %d inputs rejected", rejected, len(args)-1)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the in-memory representation of each value")
	cmd.Flags().BoolVar(&option, "option", false, "Parse into the Option form, where 'none' is accepted")
	return cmd
}

func parseOne(out io.Writer, w width, text string, option, dump bool) bool {
	c := w.new(option)
	if err := c.UnmarshalText([]byte(text)); err != nil {
		fmt.Fprintf(out, "%s\t%s: %v\n", text, rejectKind(err), err)
		return false
	}
	fmt.Fprintf(out, "%s\tdec=%d bin=%b oct=%o hex=%x HEX=%X\n", text, c, c, c, c, c)
	if dump {
		dumper.Fdump(out, c)
	}
	return true
}

func rejectKind(err error) string {
	if errors.Is(err, nonmax.ErrSentinel) {
		return "sentinel"
	}
	return "malformed"
}
