package nonmax

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shabbyrobe/go-nonmax/num"
)

// I128 is a num.I128 that is never num.MaxI128. The zero value holds 0.
type I128 struct {
	v num.I128
}

func ZeroI128() I128 { return I128{} }
func OneI128() I128  { return I128{v: num.I128From64(1)} }

// MaxI128 returns the largest value an I128 can hold, num.MaxI128 - 1.
func MaxI128() I128 { return I128{v: num.MaxI128.Dec()} }

// SentinelI128 returns num.MaxI128, which no I128 may hold.
func SentinelI128() num.I128 { return num.MaxI128 }

// NewI128 returns v as an I128. ok is false if v == num.MaxI128.
func NewI128(v num.I128) (n I128, ok bool) {
	if v == num.MaxI128 {
		return n, false
	}
	return I128{v: v}, true
}

// NewI128Unchecked is the I128 form of NewUnchecked, and carries the same
// caller obligation: v must not be num.MaxI128.
func NewI128Unchecked(v num.I128) I128 {
	if debugChecks && v == num.MaxI128 {
		panic("nonmax: NewI128Unchecked called with sentinel value")
	}
	return I128{v: v}
}

func I128FromPrimitive(v num.I128) (I128, error) {
	n, ok := NewI128(v)
	if !ok {
		return n, sentinelError("I128FromPrimitive", "I128", v.String())
	}
	return n, nil
}

// ParseI128 is Parse for I128, built on num.ParseI128. A leading '+' or '-'
// is accepted.
func ParseI128(s string) (out I128, err error) {
	v, err := num.ParseI128(s)
	if err != nil {
		return out, &Error{Func: "Parse", Type: "I128", Input: s, Err: ErrSyntax}
	}
	if v == num.MaxI128 {
		return out, sentinelError("Parse", "I128", s)
	}
	return I128{v: v}, nil
}

func (n I128) Get() num.I128 { return n.v }
func (n I128) IsZero() bool  { return n.v.IsZero() }

func (n I128) And(o I128) I128 { return I128{v: n.v.And(o.v)} }

// CheckedAndPrimitive fails when the result is num.MaxI128, for example
// when n is -1 and v is num.MaxI128.
func (n I128) CheckedAndPrimitive(v num.I128) (I128, bool) { return NewI128(n.v.And(v)) }

func (n I128) CheckedOr(o I128) (I128, bool)  { return NewI128(n.v.Or(o.v)) }
func (n I128) CheckedXor(o I128) (I128, bool) { return NewI128(n.v.Xor(o.v)) }

func (n I128) CheckedAdd(o I128) (out I128, ok bool) {
	r, overflow := n.v.AddOverflow(o.v)
	if overflow {
		return out, false
	}
	return NewI128(r)
}

func (n I128) CheckedSub(o I128) (out I128, ok bool) {
	r, overflow := n.v.SubOverflow(o.v)
	if overflow {
		return out, false
	}
	return NewI128(r)
}

func (n I128) CheckedMul(o I128) (out I128, ok bool) {
	r, overflow := n.v.MulOverflow(o.v)
	if overflow {
		return out, false
	}
	return NewI128(r)
}

// CheckedQuo fails if o is zero, or for num.MinI128 / -1.
func (n I128) CheckedQuo(o I128) (out I128, ok bool) {
	if o.v.IsZero() || (n.v == num.MinI128 && o.v == num.I128From64(-1)) {
		return out, false
	}
	return NewI128(n.v.Quo(o.v))
}

func (n I128) CheckedRem(o I128) (out I128, ok bool) {
	if o.v.IsZero() {
		return out, false
	}
	return NewI128(n.v.Rem(o.v))
}

func (n I128) Cmp(o I128) int               { return n.v.Cmp(o.v) }
func (n I128) Equal(o I128) bool            { return n.v == o.v }
func (n I128) LessThan(o I128) bool         { return n.v.LessThan(o.v) }
func (n I128) LessOrEqualTo(o I128) bool    { return n.v.LessOrEqualTo(o.v) }
func (n I128) GreaterThan(o I128) bool      { return n.v.GreaterThan(o.v) }
func (n I128) GreaterOrEqualTo(o I128) bool { return n.v.GreaterOrEqualTo(o.v) }

func CompareI128(a, b I128) int { return a.Cmp(b) }

func (n I128) String() string             { return n.v.String() }
func (n I128) Text(base int) string       { return n.v.Text(base) }
func (n I128) Format(s fmt.State, c rune) { n.v.Format(s, c) }

func (n I128) AppendText(b []byte) ([]byte, error) { return append(b, n.v.String()...), nil }
func (n I128) MarshalText() ([]byte, error)        { return n.AppendText(nil) }
func (n I128) MarshalJSON() ([]byte, error)        { return n.v.MarshalJSON() }

func (n *I128) UnmarshalText(b []byte) error {
	v, err := ParseI128(string(b))
	if err != nil {
		return decodeError("text", "I128", err)
	}
	*n = v
	return nil
}

func (n *I128) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var v num.I128
	if err := json.Unmarshal(b, &v); err != nil {
		return decodeError("json", "I128", err)
	}
	if v == num.MaxI128 {
		return decodeError("json", "I128", ErrSentinel)
	}
	n.v = v
	return nil
}

// AppendBinary appends the 16-byte two's complement little-endian form of n
// to b.
func (n I128) AppendBinary(b []byte) ([]byte, error) { return n.v.AppendLittleEndian(b), nil }
func (n I128) MarshalBinary() ([]byte, error)        { return n.AppendBinary(make([]byte, 0, 16)) }

func (n *I128) UnmarshalBinary(b []byte) error {
	if len(b) != 16 {
		return decodeError("binary", "I128", fmt.Errorf("nonmax: expected 16 bytes, found %d", len(b)))
	}
	v := num.I128FromLittleEndian(b)
	if v == num.MaxI128 {
		return decodeError("binary", "I128", ErrSentinel)
	}
	n.v = v
	return nil
}

// OptionI128 is the Option form of I128, the same size as a num.I128.
type OptionI128 struct {
	raw num.I128 // value - num.MaxI128, wrapping
}

func SomeI128(n I128) OptionI128 { return OptionI128{raw: n.v.Sub(num.MaxI128)} }
func NoneI128() OptionI128       { return OptionI128{} }

// NewOptionI128 maps num.MaxI128 to None and every other value to Some.
func NewOptionI128(v num.I128) OptionI128 { return OptionI128{raw: v.Sub(num.MaxI128)} }

func (o OptionI128) IsSome() bool { return !o.raw.IsZero() }
func (o OptionI128) IsNone() bool { return o.raw.IsZero() }

func (o OptionI128) Get() (n I128, ok bool) {
	if o.raw.IsZero() {
		return n, false
	}
	return I128{v: o.raw.Add(num.MaxI128)}, true
}

func (o OptionI128) GetOr(def I128) I128 {
	if n, ok := o.Get(); ok {
		return n
	}
	return def
}

// Primitive returns the held value, or num.MaxI128 if o is None.
func (o OptionI128) Primitive() num.I128 { return o.raw.Add(num.MaxI128) }

func (o OptionI128) String() string {
	if n, ok := o.Get(); ok {
		return n.String()
	}
	return noneText
}

func (o OptionI128) Format(s fmt.State, c rune) {
	if n, ok := o.Get(); ok {
		n.Format(s, c)
		return
	}
	io.WriteString(s, noneText)
}

func (o OptionI128) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *OptionI128) UnmarshalText(b []byte) error {
	if string(b) == noneText {
		*o = OptionI128{}
		return nil
	}
	var n I128
	if err := n.UnmarshalText(b); err != nil {
		return err
	}
	*o = SomeI128(n)
	return nil
}

func (o OptionI128) MarshalJSON() ([]byte, error) {
	if n, ok := o.Get(); ok {
		return n.MarshalJSON()
	}
	return []byte("null"), nil
}

func (o *OptionI128) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*o = OptionI128{}
		return nil
	}
	var n I128
	if err := n.UnmarshalJSON(b); err != nil {
		return err
	}
	*o = SomeI128(n)
	return nil
}

func (o OptionI128) AppendBinary(b []byte) ([]byte, error) {
	return o.Primitive().AppendLittleEndian(b), nil
}

func (o OptionI128) MarshalBinary() ([]byte, error) { return o.AppendBinary(make([]byte, 0, 16)) }

func (o *OptionI128) UnmarshalBinary(b []byte) error {
	if len(b) != 16 {
		return decodeError("binary", "OptionI128", fmt.Errorf("nonmax: expected 16 bytes, found %d", len(b)))
	}
	*o = NewOptionI128(num.I128FromLittleEndian(b))
	return nil
}
