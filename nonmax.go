package nonmax

import (
	"strconv"
	"unsafe"
)

// Integer is the set of builtin primitives that have a non-max counterpart.
// Named types are excluded: each instantiation is one concrete
// width and signedness.
type Integer interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64
}

// NonMax holds a T that is never equal to the maximum value of T. The zero
// value holds 0.
//
// NonMax values are comparable with == and may be used as map keys.
type NonMax[T Integer] struct {
	v T
}

type (
	U8   = NonMax[uint8]
	U16  = NonMax[uint16]
	U32  = NonMax[uint32]
	U64  = NonMax[uint64]
	Uint = NonMax[uint]

	I8  = NonMax[int8]
	I16 = NonMax[int16]
	I32 = NonMax[int32]
	I64 = NonMax[int64]
	Int = NonMax[int]
)

// Bits returns the width of T in bits.
func Bits[T Integer]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

// Signed reports whether T is a signed type.
func Signed[T Integer]() bool {
	var z T
	return ^z < z
}

// Sentinel returns the maximum value of T, which no NonMax[T] may hold.
func Sentinel[T Integer]() T {
	var z T
	if ^z < z {
		return ^(T(1) << (Bits[T]() - 1))
	}
	return ^z
}

func Zero[T Integer]() NonMax[T] { return NonMax[T]{} }
func One[T Integer]() NonMax[T]  { return NonMax[T]{v: 1} }

// Max returns the largest value a NonMax[T] can hold, one less than
// Sentinel[T]().
func Max[T Integer]() NonMax[T] { return NonMax[T]{v: Sentinel[T]() - 1} }

// New returns v as a NonMax[T]. ok is false if v == Sentinel[T]().
func New[T Integer](v T) (n NonMax[T], ok bool) {
	if v == Sentinel[T]() {
		return n, false
	}
	return NonMax[T]{v: v}, true
}

// NewUnchecked returns v as a NonMax[T] without checking it against the
// sentinel.
//
// This is dangerous: the caller must already know that v != Sentinel[T]().
// Every other operation in this package assumes a NonMax never holds the
// sentinel, and an Option built from such a value reads back as None.
// Building with -tags nonmax_debug turns a violation into a panic.
func NewUnchecked[T Integer](v T) NonMax[T] {
	if debugChecks && v == Sentinel[T]() {
		panic("nonmax: NewUnchecked called with sentinel value for " + typeName[T]())
	}
	return NonMax[T]{v: v}
}

// Get returns the stored primitive.
func (n NonMax[T]) Get() T { return n.v }

func (n NonMax[T]) IsZero() bool { return n.v == 0 }

func typeName[T Integer]() string {
	var z T
	switch any(z).(type) {
	case uint8:
		return "U8"
	case uint16:
		return "U16"
	case uint32:
		return "U32"
	case uint64:
		return "U64"
	case uint:
		return "Uint"
	case int8:
		return "I8"
	case int16:
		return "I16"
	case int32:
		return "I32"
	case int64:
		return "I64"
	case int:
		return "Int"
	}
	panic("unreachable")
}

func formatInt[T Integer](v T) string {
	if Signed[T]() {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}
