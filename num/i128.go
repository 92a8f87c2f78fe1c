package num

import (
	"fmt"
	"math/big"
	"strconv"
)

type I128 struct {
	hi uint64
	lo uint64
}

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128FromU64(v uint64) I128 { return I128{lo: v} }

// ParseI128 interprets s as a base 10 signed 128-bit integer using the same
// rules as strconv.ParseInt: an optional leading '+' or '-', then digits.
//
// Errors are *strconv.NumError. On strconv.ErrRange the returned value is
// MaxI128 or MinI128 depending on the sign, as strconv does.
func ParseI128(s string) (out I128, err error) {
	const fn = "ParseI128"
	if s == "" {
		return out, syntaxError(fn, s)
	}

	s0 := s
	neg := false
	if s[0] == '+' {
		s = s[1:]
	} else if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	u, err := ParseU128(s)
	if err != nil && err.(*strconv.NumError).Err != strconv.ErrRange {
		return out, syntaxError(fn, s0)
	}

	if !neg {
		if err != nil || u.GreaterThan(maxI128AsU128) {
			return MaxI128, rangeError(fn, s0)
		}
		return u.AsI128(), nil
	}
	if err != nil || u.GreaterThan(minI128AsAbsU128) {
		return MinI128, rangeError(fn, s0)
	}
	return u.AsI128().Neg(), nil
}

// I128FromBigInt creates an I128 from a big.Int. Overflow truncates to
// MaxI128/MinI128 and sets accurate to 'false'.
func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	if v.Sign() >= 0 {
		u, acc := U128FromBigInt(v)
		if !acc || u.GreaterThan(maxI128AsU128) {
			return MaxI128, false
		}
		return u.AsI128(), true
	}

	var abs big.Int
	abs.Neg(v)
	u, acc := U128FromBigInt(&abs)
	if !acc || u.GreaterThan(minI128AsAbsU128) {
		return MinI128, false
	}
	return u.AsI128().Neg(), true
}

// I128FromLittleEndian reads the 16-byte two's complement little-endian
// encoding written by PutLittleEndian. It panics if len(b) < 16.
func I128FromLittleEndian(b []byte) I128 {
	return U128FromLittleEndian(b).AsI128()
}

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

func (i I128) String() string {
	if i.hi&signBit != 0 {
		return "-" + i.AbsU128().String()
	}
	return i.AsU128().String()
}

// Text returns the string representation of i in the given base, which must
// be between 2 and 62 inclusive (see big.Int.Text).
func (i I128) Text(base int) string {
	return i.AsBigInt().Text(base)
}

func (i I128) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

// PutLittleEndian writes the two's complement form of i into the first 16
// bytes of b, least significant byte first.
func (i I128) PutLittleEndian(b []byte) {
	i.AsU128().PutLittleEndian(b)
}

// AppendLittleEndian appends the 16-byte two's complement little-endian
// encoding of i to b.
func (i I128) AppendLittleEndian(b []byte) []byte {
	return i.AsU128().AppendLittleEndian(b)
}

// IntoBigInt copies this I128 into a big.Int, allowing you to retain and
// recycle memory.
func (i I128) IntoBigInt(b *big.Int) {
	i.AbsU128().IntoBigInt(b)
	if i.hi&signBit != 0 {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > MaxI128.
func (i I128) AsU128() U128 {
	return U128{lo: i.lo, hi: i.hi}
}

// IsU128 reports whether i can be represented in a U128.
func (i I128) IsU128() bool {
	return i.hi&signBit == 0
}

// AbsU128 returns the magnitude of i. Unlike Abs, it cannot overflow:
// the magnitude of MinI128 is 1<<127.
func (i I128) AbsU128() U128 {
	return i.Abs().AsU128()
}

// AsInt64 truncates the I128 to fit in a int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i I128) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as a int64.
func (i I128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= signBit
	}
	return i.hi == 0 && i.lo <= maxInt64
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Inc() (v I128) { return i.AsU128().Inc().AsI128() }
func (i I128) Dec() (v I128) { return i.AsU128().Dec().AsI128() }

// Add returns i+n, wrapping on overflow.
func (i I128) Add(n I128) (v I128) {
	return i.AsU128().Add(n.AsU128()).AsI128()
}

// AddOverflow returns i+n, and whether the addition overflowed.
func (i I128) AddOverflow(n I128) (v I128, overflow bool) {
	v = i.Add(n)

	// Overflow iff both operands share a sign that the result does not.
	overflow = (i.hi^n.hi)&signBit == 0 && (i.hi^v.hi)&signBit != 0
	return v, overflow
}

// Sub returns i-n, wrapping on overflow.
func (i I128) Sub(n I128) (out I128) {
	return i.AsU128().Sub(n.AsU128()).AsI128()
}

// SubOverflow returns i-n, and whether the subtraction overflowed.
func (i I128) SubOverflow(n I128) (v I128, overflow bool) {
	v = i.Sub(n)

	// Overflow iff the operands differ in sign and the result took the sign
	// of the subtrahend.
	overflow = (i.hi^n.hi)&signBit != 0 && (i.hi^v.hi)&signBit != 0
	return v, overflow
}

// Neg returns -i. -MinI128 overflows to MinI128, as in Go.
func (i I128) Neg() (v I128) {
	return zeroI128.Sub(i)
}

// Abs returns |i|. Abs(MinI128) overflows to MinI128; see AbsU128.
func (i I128) Abs() I128 {
	if i.hi&signBit != 0 {
		return i.Neg()
	}
	return i
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
//
func (i I128) Cmp(n I128) int {
	if i.hi == n.hi && i.lo == n.lo {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i I128) GreaterThan(n I128) bool      { return i.Cmp(n) > 0 }
func (i I128) GreaterOrEqualTo(n I128) bool { return i.Cmp(n) >= 0 }
func (i I128) LessThan(n I128) bool         { return i.Cmp(n) < 0 }
func (i I128) LessOrEqualTo(n I128) bool    { return i.Cmp(n) <= 0 }

func (i I128) And(n I128) I128 { return I128{hi: i.hi & n.hi, lo: i.lo & n.lo} }
func (i I128) Or(n I128) I128  { return I128{hi: i.hi | n.hi, lo: i.lo | n.lo} }
func (i I128) Xor(n I128) I128 { return I128{hi: i.hi ^ n.hi, lo: i.lo ^ n.lo} }

// Mul returns the product of two I128s.
//
// Overflow wraps around, as it does for Go's builtin integers.
//
func (i I128) Mul(n I128) (dest I128) {
	// Two's complement multiplication has the same low bits as unsigned.
	return i.AsU128().Mul(n.AsU128()).AsI128()
}

// MulOverflow returns the wrapped product of i and n, and whether the true
// product falls outside [MinI128, MaxI128].
func (i I128) MulOverflow(n I128) (dest I128, overflow bool) {
	mag, overflow := i.AbsU128().MulOverflow(n.AbsU128())
	neg := (i.hi^n.hi)&signBit != 0

	if neg {
		overflow = overflow || mag.GreaterThan(minI128AsAbsU128)
	} else {
		overflow = overflow || mag.GreaterThan(maxI128AsU128)
	}
	return i.Mul(n), overflow
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// MinI128 / -1 overflows to MinI128, as in Go.
//
func (i I128) QuoRem(by I128) (q, r I128) {
	qu, ru := i.AbsU128().QuoRem(by.AbsU128())
	q, r = qu.AsI128(), ru.AsI128()
	if (i.hi^by.hi)&signBit != 0 {
		q = q.Neg()
	}
	if i.hi&signBit != 0 {
		r = r.Neg()
	}
	return q, r
}

// Quo returns the quotient x/y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (i I128) Quo(by I128) (q I128) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of x%y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Rem implements truncated modulus (like Go); see
// QuoRem for more details.
func (i I128) Rem(by I128) (r I128) {
	_, r = i.QuoRem(by)
	return r
}

func (i I128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *I128) UnmarshalText(bts []byte) (err error) {
	v, err := ParseI128(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *I128) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON("i128", bts)
	if err != nil || bts == nil {
		return err
	}

	v, err := ParseI128(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
