package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type format string

const (
	formatText    format = "text"
	formatJSON    format = "json"
	formatYAML    format = "yaml"
	formatBinary  format = "binary"
	formatMsgpack format = "msgpack"
)

var formats = []format{formatText, formatJSON, formatYAML, formatBinary, formatMsgpack}

func parseFormat(s string) (format, error) {
	for _, f := range formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

func encode(c codec, f format) (string, error) {
	var b []byte
	var err error
	switch f {
	case formatText:
		b, err = c.MarshalText()
	case formatJSON:
		b, err = json.Marshal(c)
	case formatYAML:
		b, err = yaml.Marshal(c)
		b = bytes.TrimSuffix(b, []byte("\n"))
	case formatBinary:
		b, err = c.MarshalBinary()
		b = []byte(hex.EncodeToString(b))
	case formatMsgpack:
		b, err = c.MarshalMsg(nil)
		b = []byte(hex.EncodeToString(b))
	default:
		return "", fmt.Errorf("unknown format %q", f)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decode(c codec, f format, data string) error {
	switch f {
	case formatText:
		return c.UnmarshalText([]byte(data))
	case formatJSON:
		return json.Unmarshal([]byte(data), c)
	case formatYAML:
		return yaml.Unmarshal([]byte(data), c)
	case formatBinary, formatMsgpack:
		b, err := hex.DecodeString(strings.TrimSpace(data))
		if err != nil {
			return fmt.Errorf("%s data must be hex: %w", f, err)
		}
		if f == formatBinary {
			return c.UnmarshalBinary(b)
		}
		rest, err := c.UnmarshalMsg(b)
		if err != nil {
			return err
		}
		if len(rest) > 0 {
			return fmt.Errorf("%d trailing bytes after msgpack value", len(rest))
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

type codecFlags struct {
	format string
	option bool
}

func (cf *codecFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&cf.format, "format", "f", string(formatText), "One of text, json, yaml, binary, msgpack")
	cmd.Flags().BoolVar(&cf.option, "option", false, "Use the Option form, where 'none' means no value")
}

func newEncodeCommand() *cobra.Command {
	var cf codecFlags
	cmd := &cobra.Command{
		Use:   "encode [flags] [--] WIDTH TEXT",
		Short: "Encode a decimal value in the given format",
		Long: `Encode TEXT, a decimal value of the given width, and print it in the
chosen format. Binary and msgpack output is hex.

Negative values look like flags, so put them after "--".`,
		Example: `  nonmax encode -f msgpack u16 258
  nonmax encode -f binary -- i8 -1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := lookupWidth(args[0])
			if err != nil {
				return err
			}
			f, err := parseFormat(cf.format)
			if err != nil {
				return err
			}
			c := w.new(cf.option)
			if err := c.UnmarshalText([]byte(args[1])); err != nil {
				return err
			}
			out, err := encode(c, f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cf.register(cmd)
	return cmd
}

func newDecodeCommand() *cobra.Command {
	var cf codecFlags
	cmd := &cobra.Command{
		Use:   "decode [flags] [--] WIDTH DATA",
		Short: "Decode a value in the given format and print it as text",
		Long: `Decode DATA in the chosen format into the given width and print it as
decimal text. Binary and msgpack input is hex.

Negative values look like flags, so put them after "--".`,
		Example: `  nonmax decode -f binary u16 0201
  nonmax decode -f json -- i64 -5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := lookupWidth(args[0])
			if err != nil {
				return err
			}
			f, err := parseFormat(cf.format)
			if err != nil {
				return err
			}
			c := w.new(cf.option)
			if err := decode(c, f, args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.String())
			return nil
		},
	}
	cf.register(cmd)
	return cmd
}
