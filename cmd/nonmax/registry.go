package main

import (
	"encoding"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tinylib/msgp/msgp"
	"gopkg.in/yaml.v3"

	nonmax "github.com/shabbyrobe/go-nonmax"
)

// codec is the method set every *NonMax[T], *Option[T] and 128-bit pointer
// shares, which is what lets the commands work on a width picked at runtime.
type codec interface {
	fmt.Formatter
	fmt.Stringer
	encoding.TextMarshaler
	encoding.TextUnmarshaler
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	json.Marshaler
	json.Unmarshaler
	msgp.Marshaler
	msgp.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

type width struct {
	name     string
	bits     int
	signed   bool
	max      string
	sentinel string

	value  func() codec
	option func() codec
}

func (w width) new(option bool) codec {
	if option {
		return w.option()
	}
	return w.value()
}

func builtin[T nonmax.Integer](name string) width {
	return width{
		name:     name,
		bits:     nonmax.Bits[T](),
		signed:   nonmax.Signed[T](),
		max:      nonmax.Max[T]().String(),
		sentinel: fmt.Sprint(nonmax.Sentinel[T]()),
		value:    func() codec { return new(nonmax.NonMax[T]) },
		option:   func() codec { return new(nonmax.Option[T]) },
	}
}

var widths = []width{
	builtin[uint8]("u8"),
	builtin[uint16]("u16"),
	builtin[uint32]("u32"),
	builtin[uint64]("u64"),
	builtin[uint]("uint"),
	{
		name:     "u128",
		bits:     128,
		max:      nonmax.MaxU128().String(),
		sentinel: nonmax.SentinelU128().String(),
		value:    func() codec { return new(nonmax.U128) },
		option:   func() codec { return new(nonmax.OptionU128) },
	},
	builtin[int8]("i8"),
	builtin[int16]("i16"),
	builtin[int32]("i32"),
	builtin[int64]("i64"),
	builtin[int]("int"),
	{
		name:     "i128",
		bits:     128,
		signed:   true,
		max:      nonmax.MaxI128().String(),
		sentinel: nonmax.SentinelI128().String(),
		value:    func() codec { return new(nonmax.I128) },
		option:   func() codec { return new(nonmax.OptionI128) },
	},
}

func widthNames() []string {
	names := make([]string, 0, len(widths))
	for _, w := range widths {
		names = append(names, w.name)
	}
	sort.Strings(names)
	return names
}

// lookupWidth accepts a width name in any case, so "U8" and "u8" both work.
func lookupWidth(name string) (width, error) {
	for _, w := range widths {
		if strings.EqualFold(w.name, name) {
			return w, nil
		}
	}
	return width{}, fmt.Errorf("unknown width %q, expected one of %s", name, strings.Join(widthNames(), ", "))
}
