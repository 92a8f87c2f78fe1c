package nonmax

// Option is a NonMax[T] that may be absent, stored in exactly the space of a
// T.
//
// The stored word is the value minus Sentinel[T](), wrapping, so the
// sentinel bit pattern lands on 0. That makes the zero Option None, and
// leaves no room for a separate presence flag.
type Option[T Integer] struct {
	raw T
}

type (
	OptionU8   = Option[uint8]
	OptionU16  = Option[uint16]
	OptionU32  = Option[uint32]
	OptionU64  = Option[uint64]
	OptionUint = Option[uint]

	OptionI8  = Option[int8]
	OptionI16 = Option[int16]
	OptionI32 = Option[int32]
	OptionI64 = Option[int64]
	OptionInt = Option[int]
)

func Some[T Integer](n NonMax[T]) Option[T] {
	return Option[T]{raw: n.v - Sentinel[T]()}
}

func None[T Integer]() Option[T] { return Option[T]{} }

// NewOption returns v as an Option. The sentinel maps to None; every other
// value maps to Some.
func NewOption[T Integer](v T) Option[T] {
	return Option[T]{raw: v - Sentinel[T]()}
}

func (o Option[T]) IsSome() bool { return o.raw != 0 }
func (o Option[T]) IsNone() bool { return o.raw == 0 }

// Get returns the held value, or false if o is None.
func (o Option[T]) Get() (n NonMax[T], ok bool) {
	if o.raw == 0 {
		return n, false
	}
	return NonMax[T]{v: o.raw + Sentinel[T]()}, true
}

// GetOr returns the held value, or def if o is None.
func (o Option[T]) GetOr(def NonMax[T]) NonMax[T] {
	if n, ok := o.Get(); ok {
		return n
	}
	return def
}

// Primitive returns the held value as a T, or Sentinel[T]() if o is None.
// NewOption(o.Primitive()) == o for every o.
func (o Option[T]) Primitive() T {
	return o.raw + Sentinel[T]()
}
