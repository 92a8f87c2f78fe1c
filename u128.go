package nonmax

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shabbyrobe/go-nonmax/num"
)

// U128 is a num.U128 that is never num.MaxU128. The zero value holds 0.
type U128 struct {
	v num.U128
}

func ZeroU128() U128 { return U128{} }
func OneU128() U128  { return U128{v: num.U128From64(1)} }

// MaxU128 returns the largest value a U128 can hold, num.MaxU128 - 1.
func MaxU128() U128 { return U128{v: num.MaxU128.Dec()} }

// SentinelU128 returns num.MaxU128, which no U128 may hold.
func SentinelU128() num.U128 { return num.MaxU128 }

// NewU128 returns v as a U128. ok is false if v == num.MaxU128.
func NewU128(v num.U128) (n U128, ok bool) {
	if v == num.MaxU128 {
		return n, false
	}
	return U128{v: v}, true
}

// NewU128Unchecked is the U128 form of NewUnchecked, and carries the same
// caller obligation: v must not be num.MaxU128.
func NewU128Unchecked(v num.U128) U128 {
	if debugChecks && v == num.MaxU128 {
		panic("nonmax: NewU128Unchecked called with sentinel value")
	}
	return U128{v: v}
}

// U128FromPrimitive is NewU128 with an error wrapping ErrSentinel.
func U128FromPrimitive(v num.U128) (U128, error) {
	n, ok := NewU128(v)
	if !ok {
		return n, sentinelError("U128FromPrimitive", "U128", v.String())
	}
	return n, nil
}

// ParseU128 is Parse for U128, built on num.ParseU128.
func ParseU128(s string) (out U128, err error) {
	v, err := num.ParseU128(s)
	if err != nil {
		return out, &Error{Func: "Parse", Type: "U128", Input: s, Err: ErrSyntax}
	}
	if v == num.MaxU128 {
		return out, sentinelError("Parse", "U128", s)
	}
	return U128{v: v}, nil
}

func (n U128) Get() num.U128 { return n.v }
func (n U128) IsZero() bool  { return n.v.IsZero() }

// And cannot fail, for the reason given on NonMax.And.
func (n U128) And(o U128) U128 { return U128{v: n.v.And(o.v)} }

// CheckedAndPrimitive never fails for an unsigned type; the bool is kept so
// it has the same shape as the signed form.
func (n U128) CheckedAndPrimitive(v num.U128) (U128, bool) { return NewU128(n.v.And(v)) }

func (n U128) CheckedOr(o U128) (U128, bool)  { return NewU128(n.v.Or(o.v)) }
func (n U128) CheckedXor(o U128) (U128, bool) { return NewU128(n.v.Xor(o.v)) }

func (n U128) CheckedAdd(o U128) (out U128, ok bool) {
	r, overflow := n.v.AddOverflow(o.v)
	if overflow {
		return out, false
	}
	return NewU128(r)
}

func (n U128) CheckedSub(o U128) (out U128, ok bool) {
	r, overflow := n.v.SubOverflow(o.v)
	if overflow {
		return out, false
	}
	return NewU128(r)
}

func (n U128) CheckedMul(o U128) (out U128, ok bool) {
	r, overflow := n.v.MulOverflow(o.v)
	if overflow {
		return out, false
	}
	return NewU128(r)
}

func (n U128) CheckedQuo(o U128) (out U128, ok bool) {
	if o.v.IsZero() {
		return out, false
	}
	return NewU128(n.v.Quo(o.v))
}

func (n U128) CheckedRem(o U128) (out U128, ok bool) {
	if o.v.IsZero() {
		return out, false
	}
	return NewU128(n.v.Rem(o.v))
}

func (n U128) Cmp(o U128) int               { return n.v.Cmp(o.v) }
func (n U128) Equal(o U128) bool            { return n.v == o.v }
func (n U128) LessThan(o U128) bool         { return n.v.LessThan(o.v) }
func (n U128) LessOrEqualTo(o U128) bool    { return n.v.LessOrEqualTo(o.v) }
func (n U128) GreaterThan(o U128) bool      { return n.v.GreaterThan(o.v) }
func (n U128) GreaterOrEqualTo(o U128) bool { return n.v.GreaterOrEqualTo(o.v) }

// CompareU128 is a.Cmp(b) in a form that suits slices.SortFunc.
func CompareU128(a, b U128) int { return a.Cmp(b) }

func (n U128) String() string             { return n.v.String() }
func (n U128) Text(base int) string       { return n.v.Text(base) }
func (n U128) Format(s fmt.State, c rune) { n.v.Format(s, c) }

func (n U128) AppendText(b []byte) ([]byte, error) { return append(b, n.v.String()...), nil }
func (n U128) MarshalText() ([]byte, error)        { return n.AppendText(nil) }

// MarshalJSON encodes n as a quoted decimal string, which JSON parsers that
// read numbers as float64 cannot round.
func (n U128) MarshalJSON() ([]byte, error) { return n.v.MarshalJSON() }

func (n *U128) UnmarshalText(b []byte) error {
	v, err := ParseU128(string(b))
	if err != nil {
		return decodeError("text", "U128", err)
	}
	*n = v
	return nil
}

// UnmarshalJSON accepts a quoted or bare decimal number. null leaves n
// untouched.
func (n *U128) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var v num.U128
	if err := json.Unmarshal(b, &v); err != nil {
		return decodeError("json", "U128", err)
	}
	if v == num.MaxU128 {
		return decodeError("json", "U128", ErrSentinel)
	}
	n.v = v
	return nil
}

// AppendBinary appends the 16-byte little-endian form of n to b.
func (n U128) AppendBinary(b []byte) ([]byte, error) { return n.v.AppendLittleEndian(b), nil }
func (n U128) MarshalBinary() ([]byte, error)        { return n.AppendBinary(make([]byte, 0, 16)) }

func (n *U128) UnmarshalBinary(b []byte) error {
	if len(b) != 16 {
		return decodeError("binary", "U128", fmt.Errorf("nonmax: expected 16 bytes, found %d", len(b)))
	}
	v := num.U128FromLittleEndian(b)
	if v == num.MaxU128 {
		return decodeError("binary", "U128", ErrSentinel)
	}
	n.v = v
	return nil
}

// OptionU128 is the Option form of U128, the same size as a num.U128.
type OptionU128 struct {
	raw num.U128 // value - num.MaxU128, i.e. value + 1
}

func SomeU128(n U128) OptionU128 { return OptionU128{raw: n.v.Inc()} }
func NoneU128() OptionU128       { return OptionU128{} }

// NewOptionU128 maps num.MaxU128 to None and every other value to Some.
func NewOptionU128(v num.U128) OptionU128 { return OptionU128{raw: v.Inc()} }

func (o OptionU128) IsSome() bool { return !o.raw.IsZero() }
func (o OptionU128) IsNone() bool { return o.raw.IsZero() }

func (o OptionU128) Get() (n U128, ok bool) {
	if o.raw.IsZero() {
		return n, false
	}
	return U128{v: o.raw.Dec()}, true
}

func (o OptionU128) GetOr(def U128) U128 {
	if n, ok := o.Get(); ok {
		return n
	}
	return def
}

// Primitive returns the held value, or num.MaxU128 if o is None.
func (o OptionU128) Primitive() num.U128 { return o.raw.Dec() }

func (o OptionU128) String() string {
	if n, ok := o.Get(); ok {
		return n.String()
	}
	return noneText
}

func (o OptionU128) Format(s fmt.State, c rune) {
	if n, ok := o.Get(); ok {
		n.Format(s, c)
		return
	}
	io.WriteString(s, noneText)
}

func (o OptionU128) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *OptionU128) UnmarshalText(b []byte) error {
	if string(b) == noneText {
		*o = OptionU128{}
		return nil
	}
	var n U128
	if err := n.UnmarshalText(b); err != nil {
		return err
	}
	*o = SomeU128(n)
	return nil
}

func (o OptionU128) MarshalJSON() ([]byte, error) {
	if n, ok := o.Get(); ok {
		return n.MarshalJSON()
	}
	return []byte("null"), nil
}

func (o *OptionU128) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*o = OptionU128{}
		return nil
	}
	var n U128
	if err := n.UnmarshalJSON(b); err != nil {
		return err
	}
	*o = SomeU128(n)
	return nil
}

// AppendBinary appends o.Primitive() in little-endian order; None is the
// sentinel.
func (o OptionU128) AppendBinary(b []byte) ([]byte, error) {
	return o.Primitive().AppendLittleEndian(b), nil
}

func (o OptionU128) MarshalBinary() ([]byte, error) { return o.AppendBinary(make([]byte, 0, 16)) }

func (o *OptionU128) UnmarshalBinary(b []byte) error {
	if len(b) != 16 {
		return decodeError("binary", "OptionU128", fmt.Errorf("nonmax: expected 16 bytes, found %d", len(b)))
	}
	*o = NewOptionU128(num.U128FromLittleEndian(b))
	return nil
}
