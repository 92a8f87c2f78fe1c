package nonmax

import (
	"errors"
	"strconv"
)

var (
	// ErrSentinel is returned when a candidate value equals the excluded
	// maximum of its width.
	ErrSentinel = errors.New("nonmax: value equals excluded sentinel")

	// ErrSyntax is returned by the parsers when the text is not a valid
	// integer literal for the target width.
	ErrSyntax = errors.New("nonmax: invalid integer syntax")

	// ErrRange is returned by cross-width conversions when the source value
	// cannot be represented in the target width at all.
	ErrRange = errors.New("nonmax: value out of range")
)

// Error records a failed construction, conversion or parse. It is shaped
// like strconv.NumError.
type Error struct {
	Func  string // the failing function (New, Parse, Convert, ...)
	Type  string // the target type name (U8, I128, ...)
	Input string // the input, formatted as decimal text
	Err   error  // ErrSentinel, ErrSyntax or ErrRange
}

func (e *Error) Error() string {
	return "nonmax." + e.Func + "(" + e.Type + "): " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// DecodeError is returned when a serialized value fails to decode into a
// non-max type. Err is ErrSentinel, ErrRange, or the underlying codec error.
type DecodeError struct {
	Format string // text, json, binary, msgpack, yaml
	Type   string
	Err    error
}

func (e *DecodeError) Error() string {
	return "nonmax: " + e.Format + " decode " + e.Type + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

func sentinelError(fn, typ, input string) error {
	return &Error{Func: fn, Type: typ, Input: input, Err: ErrSentinel}
}

func decodeError(format, typ string, err error) error {
	return &DecodeError{Format: format, Type: typ, Err: err}
}
