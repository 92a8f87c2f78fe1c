package num

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }
func U128From32(v uint32) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{hi: 0, lo: uint64(v)} }

// ParseU128 interprets s as a base 10 unsigned 128-bit integer using the same
// rules as strconv.ParseUint: no sign, no underscores, no base prefix.
//
// Errors are *strconv.NumError. If s is empty or contains invalid digits,
// err.Err = strconv.ErrSyntax and the returned value is 0; if the value
// does not fit, err.Err = strconv.ErrRange and the returned value is MaxU128.
func ParseU128(s string) (out U128, err error) {
	const fn = "ParseU128"
	if s == "" {
		return out, syntaxError(fn, s)
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return U128{}, syntaxError(fn, s)
		}

		var mulOver, addOver bool
		out, mulOver = out.mul64Overflow(10)
		out, addOver = out.AddOverflow(U128{lo: uint64(c - '0')})
		if mulOver || addOver {
			return MaxU128, rangeError(fn, s)
		}
	}
	return out, nil
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'. Negative values return 0 and 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 128 {
		return MaxU128, false
	}

	var buf [16]byte
	v.FillBytes(buf[:])
	return U128{
		hi: binary.BigEndian.Uint64(buf[:8]),
		lo: binary.BigEndian.Uint64(buf[8:]),
	}, true
}

// U128FromLittleEndian reads the 16-byte little-endian encoding written by
// PutLittleEndian. It panics if len(b) < 16.
func U128FromLittleEndian(b []byte) U128 {
	_ = b[15] // bounds check hint to compiler
	return U128{
		lo: binary.LittleEndian.Uint64(b),
		hi: binary.LittleEndian.Uint64(b[8:]),
	}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}

	// u >= 1<<64 here, so every quotient is non-zero until the loop exits and
	// the leading chunk never needs padding.
	var buf [39]byte
	i := len(buf)
	for u.hi != 0 {
		var r uint64
		u, r = u.quoRem64(pow10Uint64)
		for j := 0; j < pow10Uint64Ln; j++ {
			i--
			buf[i] = byte('0' + r%10)
			r /= 10
		}
	}
	return strconv.FormatUint(u.lo, 10) + string(buf[i:])
}

// Text returns the string representation of u in the given base, which must
// be between 2 and 62 inclusive (see big.Int.Text).
func (u U128) Text(base int) string {
	if u.hi == 0 && base >= 2 && base <= 36 {
		return strconv.FormatUint(u.lo, base)
	}
	return u.AsBigInt().Text(base)
}

func (u U128) Format(s fmt.State, c rune) {
	// big.Int already implements every integer verb and flag we care about.
	u.AsBigInt().Format(s, c)
}

// PutLittleEndian writes u into the first 16 bytes of b, least significant
// byte first. It panics if len(b) < 16.
func (u U128) PutLittleEndian(b []byte) {
	_ = b[15] // bounds check hint to compiler
	binary.LittleEndian.PutUint64(b, u.lo)
	binary.LittleEndian.PutUint64(b[8:], u.hi)
}

// AppendLittleEndian appends the 16-byte little-endian encoding of u to b.
func (u U128) AppendLittleEndian(b []byte) []byte {
	b = binary.LittleEndian.AppendUint64(b, u.lo)
	return binary.LittleEndian.AppendUint64(b, u.hi)
}

// IntoBigInt copies this U128 into a big.Int, allowing you to retain and
// recycle memory.
func (u U128) IntoBigInt(b *big.Int) {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], u.hi)
	binary.BigEndian.PutUint64(buf[8:], u.lo)
	b.SetBytes(buf[:])
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret it
// as a two's complement value.
func (u U128) AsI128() I128 {
	return I128{lo: u.lo, hi: u.hi}
}

// IsI128 reports whether u can be represented in an I128.
func (u U128) IsI128() bool {
	return u.hi&signBit == 0
}

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

func (u U128) Inc() (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, 1, 0)
	v.hi = u.hi + carry
	return v
}

func (u U128) Dec() (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, 1, 0)
	v.hi = u.hi - borrow
	return v
}

// Add returns u+n, wrapping on overflow.
func (u U128) Add(n U128) (v U128) {
	v, _ = u.AddOverflow(n)
	return v
}

// AddOverflow returns u+n, and whether the addition overflowed.
func (u U128) AddOverflow(n U128) (v U128, overflow bool) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, carry = bits.Add64(u.hi, n.hi, carry)
	return v, carry != 0
}

// Sub returns u-n, wrapping on underflow.
func (u U128) Sub(n U128) (v U128) {
	v, _ = u.SubOverflow(n)
	return v
}

// SubOverflow returns u-n, and whether the subtraction underflowed.
func (u U128) SubOverflow(n U128) (v U128, overflow bool) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, borrow = bits.Sub64(u.hi, n.hi, borrow)
	return v, borrow != 0
}

// Mul returns the low 128 bits of u*n.
func (u U128) Mul(n U128) (dest U128) {
	dest.hi, dest.lo = bits.Mul64(u.lo, n.lo)
	dest.hi += u.hi*n.lo + u.lo*n.hi
	return dest
}

// MulOverflow returns the low 128 bits of u*n, and whether the full product
// needed more than 128 bits.
func (u U128) MulOverflow(n U128) (dest U128, overflow bool) {
	if u.hi != 0 && n.hi != 0 {
		return u.Mul(n), true
	}

	// At most one of the cross products is non-zero.
	dest.hi, dest.lo = bits.Mul64(u.lo, n.lo)
	crossHi, crossLo := bits.Mul64(u.hi, n.lo)
	crossHi2, crossLo2 := bits.Mul64(u.lo, n.hi)

	var carry uint64
	dest.hi, carry = bits.Add64(dest.hi, crossLo|crossLo2, 0)
	return dest, carry != 0 || crossHi != 0 || crossHi2 != 0
}

func (u U128) mul64Overflow(n uint64) (dest U128, overflow bool) {
	var loHi, hiHi, carry uint64
	loHi, dest.lo = bits.Mul64(u.lo, n)
	hiHi, dest.hi = bits.Mul64(u.hi, n)
	dest.hi, carry = bits.Add64(dest.hi, loHi, 0)
	return dest, hiHi != 0 || carry != 0
}

// quoRem64 divides u by a non-zero uint64.
func (u U128) quoRem64(by uint64) (q U128, r uint64) {
	q.hi, r = bits.Div64(0, u.hi, by)
	q.lo, r = bits.Div64(r, u.lo, by)
	return q, r
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.hi == 0 {
		if by.lo == 0 {
			panic("u128: division by zero")
		}
		var r64 uint64
		q, r64 = u.quoRem64(by.lo)
		return q, U128{lo: r64}
	}

	if u.LessThan(by) {
		return q, u // it's 100% remainder
	}

	// Binary long division. by.hi != 0, so the quotient is at most 64 bits
	// and the loop runs at most 64 times.
	shift := by.LeadingZeros() - u.LeadingZeros()
	by = by.Lsh(shift)
	for {
		q = q.Lsh(1)

		if u.GreaterOrEqualTo(by) {
			u = u.Sub(by)
			q.lo |= 1
		}

		if shift == 0 {
			break
		}
		by = by.Rsh(1)
		shift--
	}

	return q, u
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go).
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Rem implements truncated modulus (like Go).
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo >= n.lo)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo <= n.lo)
}

func (u U128) And(v U128) (out U128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u U128) Or(v U128) (out U128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u U128) Xor(v U128) (out U128) {
	out.hi = u.hi ^ v.hi
	out.lo = u.lo ^ v.lo
	return out
}

func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else {
		v.hi = u.lo
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else {
		v.lo = u.hi
	}
	return v
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, err := ParseU128(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON("u128", bts)
	if err != nil || bts == nil {
		return err
	}

	v, err := ParseU128(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
