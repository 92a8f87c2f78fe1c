package nonmax

import (
	"github.com/shabbyrobe/go-nonmax/num"
)

// fits converts v to To and reports whether the conversion was exact.
func fits[To, From Integer](v From) (To, bool) {
	t := To(v)
	return t, From(t) == v && (t < 0) == (v < 0)
}

// FromPrimitive is New with an error: *Error wrapping ErrSentinel if
// v == Sentinel[T]().
func FromPrimitive[T Integer](v T) (NonMax[T], error) {
	n, ok := New(v)
	if !ok {
		return n, sentinelError("FromPrimitive", typeName[T](), formatInt(v))
	}
	return n, nil
}

// FromInteger converts a primitive of any builtin width to a NonMax[To].
//
// The range check comes before the sentinel check: a value that does not fit
// in To at all fails with ErrRange, even if it would also have been the
// sentinel after truncation.
func FromInteger[To, From Integer](v From) (NonMax[To], error) {
	return fromInteger[To]("FromInteger", v)
}

// Convert converts between two builtin-width NonMax types, with the same
// rules as FromInteger. Widening to a type of the same signedness never
// fails.
func Convert[To, From Integer](n NonMax[From]) (NonMax[To], error) {
	return fromInteger[To]("Convert", n.v)
}

func fromInteger[To, From Integer](fn string, v From) (out NonMax[To], err error) {
	t, ok := fits[To](v)
	if !ok {
		return out, &Error{Func: fn, Type: typeName[To](), Input: formatInt(v), Err: ErrRange}
	}
	if t == Sentinel[To]() {
		return out, sentinelError(fn, typeName[To](), formatInt(v))
	}
	return NonMax[To]{v: t}, nil
}

// ConvertToU128 widens n to a U128. Only negative values fail, with ErrRange.
func ConvertToU128[From Integer](n NonMax[From]) (U128, error) {
	if n.v < 0 {
		return U128{}, &Error{Func: "ConvertToU128", Type: "U128", Input: formatInt(n.v), Err: ErrRange}
	}
	return U128{v: num.U128From64(uint64(n.v))}, nil
}

// ConvertToI128 widens n to an I128. Every builtin width fits.
func ConvertToI128[From Integer](n NonMax[From]) I128 {
	if Signed[From]() {
		return I128{v: num.I128From64(int64(n.v))}
	}
	return I128{v: num.I128FromU64(uint64(n.v))}
}

// ConvertFromU128 narrows n to a builtin width.
func ConvertFromU128[To Integer](n U128) (out NonMax[To], err error) {
	const fn = "ConvertFromU128"
	if !n.v.IsUint64() {
		return out, &Error{Func: fn, Type: typeName[To](), Input: n.String(), Err: ErrRange}
	}
	return fromInteger[To](fn, n.v.AsUint64())
}

// ConvertFromI128 narrows n to a builtin width.
func ConvertFromI128[To Integer](n I128) (out NonMax[To], err error) {
	const fn = "ConvertFromI128"
	if n.v.Sign() >= 0 && n.v.AsU128().IsUint64() {
		return fromInteger[To](fn, n.v.AsU128().AsUint64())
	}
	if n.v.IsInt64() {
		return fromInteger[To](fn, n.v.AsInt64())
	}
	return out, &Error{Func: fn, Type: typeName[To](), Input: n.String(), Err: ErrRange}
}

// ToI128 converts n to an I128. Values above num.MaxI128 fail with ErrRange;
// num.MaxI128 itself fails with ErrSentinel.
func (n U128) ToI128() (I128, error) {
	const fn = "ToI128"
	if !n.v.IsI128() {
		return I128{}, &Error{Func: fn, Type: "I128", Input: n.String(), Err: ErrRange}
	}
	v := n.v.AsI128()
	if v == num.MaxI128 {
		return I128{}, sentinelError(fn, "I128", n.String())
	}
	return I128{v: v}, nil
}

// ToU128 converts n to a U128. Negative values fail with ErrRange.
func (n I128) ToU128() (U128, error) {
	if !n.v.IsU128() {
		return U128{}, &Error{Func: "ToU128", Type: "U128", Input: n.String(), Err: ErrRange}
	}
	return U128{v: n.v.AsU128()}, nil
}
