package nonmax

import (
	"cmp"
)

// And returns n & o. It cannot fail: the result has a bit set only where
// both operands do, so it equals the sentinel's bit pattern only if n and o
// both already do. For unsigned types that pattern is all ones; for signed
// types it is every bit but the sign bit. Neither operand can hold it.
//
// The in-place form is n = n.And(o).
func (n NonMax[T]) And(o NonMax[T]) NonMax[T] {
	return NonMax[T]{v: n.v & o.v}
}

// CheckedAndPrimitive returns n & v, or false if the result is the
// sentinel. For unsigned T this never fails. For signed T it can:
// -1 & Sentinel[T]() == Sentinel[T]().
func (n NonMax[T]) CheckedAndPrimitive(v T) (NonMax[T], bool) {
	return New(n.v & v)
}

// CheckedOr returns n | o, or false if the result is the sentinel
// (0b0111_1111 | 0b1000_0000 for a U8).
func (n NonMax[T]) CheckedOr(o NonMax[T]) (NonMax[T], bool) {
	return New(n.v | o.v)
}

// CheckedXor returns n ^ o, or false if the result is the sentinel.
func (n NonMax[T]) CheckedXor(o NonMax[T]) (NonMax[T], bool) {
	return New(n.v ^ o.v)
}

// CheckedAdd returns n + o, or false if the sum overflows T or is the
// sentinel.
func (n NonMax[T]) CheckedAdd(o NonMax[T]) (out NonMax[T], ok bool) {
	r := n.v + o.v
	if Signed[T]() {
		if (n.v < 0) == (o.v < 0) && (r < 0) != (n.v < 0) {
			return out, false
		}
	} else if r < n.v {
		return out, false
	}
	return New(r)
}

// CheckedSub returns n - o, or false if the difference overflows T or is the
// sentinel.
func (n NonMax[T]) CheckedSub(o NonMax[T]) (out NonMax[T], ok bool) {
	r := n.v - o.v
	if Signed[T]() {
		if (n.v < 0) != (o.v < 0) && (r < 0) != (n.v < 0) {
			return out, false
		}
	} else if o.v > n.v {
		return out, false
	}
	return New(r)
}

// CheckedMul returns n * o, or false if the product overflows T or is the
// sentinel.
func (n NonMax[T]) CheckedMul(o NonMax[T]) (out NonMax[T], ok bool) {
	if n.v == 0 || o.v == 0 {
		return out, true
	}
	if Signed[T]() {
		lo, neg1 := ^Sentinel[T](), ^T(0)
		if (n.v == neg1 && o.v == lo) || (o.v == neg1 && n.v == lo) {
			return out, false
		}
	}
	r := n.v * o.v
	if r/o.v != n.v {
		return out, false
	}
	return New(r)
}

// CheckedQuo returns n / o truncated towards zero, or false if o is zero or
// the quotient overflows T.
func (n NonMax[T]) CheckedQuo(o NonMax[T]) (out NonMax[T], ok bool) {
	if o.v == 0 {
		return out, false
	}
	if Signed[T]() && o.v == ^T(0) && n.v == ^Sentinel[T]() {
		return out, false
	}
	return New(n.v / o.v)
}

// CheckedRem returns n % o, or false if o is zero.
func (n NonMax[T]) CheckedRem(o NonMax[T]) (out NonMax[T], ok bool) {
	if o.v == 0 {
		return out, false
	}
	return New(n.v % o.v)
}

// Cmp compares n and o and returns:
//
//	-1 if n <  o
//	 0 if n == o
//	+1 if n >  o
func (n NonMax[T]) Cmp(o NonMax[T]) int { return cmp.Compare(n.v, o.v) }

func (n NonMax[T]) Equal(o NonMax[T]) bool            { return n.v == o.v }
func (n NonMax[T]) LessThan(o NonMax[T]) bool         { return n.v < o.v }
func (n NonMax[T]) LessOrEqualTo(o NonMax[T]) bool    { return n.v <= o.v }
func (n NonMax[T]) GreaterThan(o NonMax[T]) bool      { return n.v > o.v }
func (n NonMax[T]) GreaterOrEqualTo(o NonMax[T]) bool { return n.v >= o.v }

// Compare is n.Cmp(o) in a form that suits slices.SortFunc.
func Compare[T Integer](a, b NonMax[T]) int { return a.Cmp(b) }
