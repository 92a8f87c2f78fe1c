package num

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var u64 = U128From64

var maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)

func bigU64(u uint64) *big.Int { return new(big.Int).SetUint64(u) }

func bigs(s string) *big.Int {
	v, _ := new(big.Int).SetString(strings.Replace(s, " ", "", -1), 0)
	return v
}

func u128s(s string) U128 {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("num: u128 string %q invalid", s))
	}
	out, acc := U128FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("num: inaccurate u128 %s", s))
	}
	return out
}

func randU128(scratch []byte) U128 {
	rand.Read(scratch)
	u := U128{}
	u.lo = binary.LittleEndian.Uint64(scratch)

	if scratch[0]%2 == 1 {
		// if we always generate hi bits, the universe will die before we
		// test a number < maxInt64
		u.hi = binary.LittleEndian.Uint64(scratch[8:])
	}
	return u
}

func TestU128AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a U128
		b *big.Int
	}{
		{U128{0, 2}, bigU64(2)},
		{U128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFE}, bigs("0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFE")},
		{U128{0x1, 0x0}, bigs("18446744073709551616")},
		{U128{0x1, 0xFFFFFFFFFFFFFFFF}, bigs("36893488147419103231")}, // (1<<65) - 1
		{U128{0x7FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, bigs("170141183460469231731687303715884105727")},
		{U128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF")},
		{U128{0x8000000000000000, 0}, bigs("0x 8000000000000000 0000000000000000")},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d=%s", idx, tc.a.hi, tc.a.lo, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)
		})
	}
}

func TestU128Add(t *testing.T) {
	for _, tc := range []struct {
		a, b, c  U128
		overflow bool
	}{
		{u64(1), u64(2), u64(3), false},
		{u64(10), u64(3), u64(13), false},
		{MaxU128, u64(1), u64(0), true},                                // Overflow wraps
		{u64(maxUint64), u64(1), u128s("18446744073709551616"), false}, // lo carries to hi
		{u128s("18446744073709551615"), u128s("18446744073709551615"), u128s("36893488147419103230"), false},
		{MaxU128, MaxU128, MaxU128.Dec(), true},
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Add(tc.b)))

			v, overflow := tc.a.AddOverflow(tc.b)
			tt.MustAssert(tc.c.Equal(v))
			tt.MustEqual(tc.overflow, overflow)
		})
	}
}

func TestU128Sub(t *testing.T) {
	for _, tc := range []struct {
		a, b, c  U128
		overflow bool
	}{
		{u64(3), u64(2), u64(1), false},
		{u64(0), u64(1), MaxU128, true},
		{u128s("18446744073709551616"), u64(1), u64(maxUint64), false}, // hi borrows to lo
		{u64(1), MaxU128, u64(2), true},
	} {
		t.Run(fmt.Sprintf("%s-%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, overflow := tc.a.SubOverflow(tc.b)
			tt.MustAssert(tc.c.Equal(v), "found %s", v)
			tt.MustEqual(tc.overflow, overflow)
		})
	}
}

func TestU128Dec(t *testing.T) {
	for _, tc := range []struct {
		a, b U128
	}{
		{u64(1), u64(0)},
		{u64(10), u64(9)},
		{u64(maxUint64), u128s("18446744073709551614")},
		{u64(0), MaxU128},
		{u64(maxUint64).Add(u64(1)), u64(maxUint64)},
	} {
		t.Run(fmt.Sprintf("%s-1=%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			dec := tc.a.Dec()
			tt.MustAssert(tc.b.Equal(dec), "%s - 1 != %s, found %s", tc.a, tc.b, dec)
		})
	}
}

func TestU128Inc(t *testing.T) {
	for _, tc := range []struct {
		a, b U128
	}{
		{u64(1), u64(2)},
		{u64(10), u64(11)},
		{u64(maxUint64), u128s("18446744073709551616")},
		{u64(maxUint64), u64(maxUint64).Add(u64(1))},
		{MaxU128, u64(0)},
	} {
		t.Run(fmt.Sprintf("%s+1=%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			inc := tc.a.Inc()
			tt.MustAssert(tc.b.Equal(inc), "%s + 1 != %s, found %s", tc.a, tc.b, inc)
		})
	}
}

func TestU128Format(t *testing.T) {
	for idx, tc := range []struct {
		v   U128
		fmt string
		out string
	}{
		{u64(1), "%d", "1"},
		{u64(1), "%s", "1"},
		{u64(1), "%v", "1"},
		{u64(255), "%x", "ff"},
		{u64(255), "%X", "FF"},
		{u64(255), "%b", "11111111"},
		{u64(255), "%o", "377"},
		{MaxU128, "%d", "340282366920938463463374607431768211455"},
		{MaxU128, "%o", "3777777777777777777777777777777777777777777"},
		{MaxU128, "%b", strings.Repeat("1", 128)},
		{MaxU128, "%#o", "03777777777777777777777777777777777777777777"},
		{MaxU128, "%#x", "0xffffffffffffffffffffffffffffffff"},
		{MaxU128, "%#X", "0XFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"},
	} {
		t.Run(fmt.Sprintf("%d/%s/%s", idx, tc.fmt, tc.v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			result := fmt.Sprintf(tc.fmt, tc.v)
			tt.MustEqual(tc.out, result)
		})
	}
}

func TestU128String(t *testing.T) {
	tt := assert.WrapTB(t)
	bts := make([]byte, 16)

	for _, u := range []U128{
		{}, u64(1), u64(maxUint64), u64(maxUint64).Inc(), MaxU128,
		u128s("10000000000000000000"), u128s("100000000000000000000000000000000000000"),
		u128s("18446744073709551616000000000000000000"),
	} {
		tt.MustEqual(u.AsBigInt().String(), u.String())
	}

	for i := 0; i < 5000; i++ {
		u := randU128(bts)
		tt.MustEqual(u.AsBigInt().String(), u.String())
	}
}

func TestU128Text(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("ff", u64(255).Text(16))
	tt.MustEqual("11111111", u64(255).Text(2))
	tt.MustEqual(strings.Repeat("f", 32), MaxU128.Text(16))
	tt.MustEqual("1"+strings.Repeat("0", 64), u64(maxUint64).Inc().Text(2))
}

func TestU128FromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a   *big.Int
		b   U128
		acc bool
	}{
		{bigU64(2), u64(2), true},
		{bigs("18446744073709551616"), U128{hi: 0x1, lo: 0x0}, true},                // 1 << 64
		{bigs("36893488147419103231"), U128{hi: 0x1, lo: 0xFFFFFFFFFFFFFFFF}, true}, // (1<<65) - 1
		{bigs("170141183460469231731687303715884105727"), U128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}, true},
		{bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), U128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, true},
		{bigs("0x 1 0000000000000000 00000000000000000"), MaxU128, false},
		{bigs("-1"), U128{}, false},
	} {
		t.Run(fmt.Sprintf("%d/%s=%d,%d", idx, tc.a, tc.b.lo, tc.b.hi), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc := U128FromBigInt(tc.a)
			tt.MustEqual(acc, tc.acc)
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: (%d, %d), expected (%d, %d)", v.hi, v.lo, tc.b.hi, tc.b.lo)
		})
	}
}

func TestU128FromSize(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(U128From8(255), u128s("255"))
	tt.MustEqual(U128From16(65535), u128s("65535"))
	tt.MustEqual(U128From32(4294967295), u128s("4294967295"))
}

func TestParseU128(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out U128
		err error
	}{
		{"0", u64(0), nil},
		{"16", u64(16), nil},
		{"18446744073709551616", u64(maxUint64).Inc(), nil},
		{"340282366920938463463374607431768211455", MaxU128, nil},
		{"000000000000000000000000000000000000000000000001", u64(1), nil},
		{"340282366920938463463374607431768211456", MaxU128, strconv.ErrRange},
		{"9999999999999999999999999999999999999999999999", MaxU128, strconv.ErrRange},
		{"", U128{}, strconv.ErrSyntax},
		{"abc", U128{}, strconv.ErrSyntax},
		{"+1", U128{}, strconv.ErrSyntax}, // strconv.ParseUint rejects a sign too
		{"-1", U128{}, strconv.ErrSyntax},
		{"1_000", U128{}, strconv.ErrSyntax},
		{"0x10", U128{}, strconv.ErrSyntax},
		{" 1", U128{}, strconv.ErrSyntax},
	} {
		t.Run(fmt.Sprintf("%d/%q", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := ParseU128(tc.in)
			tt.MustAssert(tc.out.Equal(v), "found %s", v)
			if tc.err == nil {
				tt.MustOK(err)
				return
			}
			var numErr *strconv.NumError
			tt.MustAssert(errors.As(err, &numErr))
			tt.MustEqual("ParseU128", numErr.Func)
			tt.MustEqual(tc.in, numErr.Num)
			tt.MustAssert(errors.Is(err, tc.err), "found %v", err)
		})
	}
}

func TestParseU128MatchesStrconv(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, in := range []string{
		"0", "1", "18446744073709551615", "18446744073709551616", "", "+", "-", "+5", "-0", "1a", "a1",
		"00", "٣", "1e3", "1.0",
	} {
		_, serr := strconv.ParseUint(in, 10, 64)
		v, err := ParseU128(in)
		if serr == nil {
			tt.MustOK(err)
			continue
		}
		if errors.Is(serr, strconv.ErrSyntax) {
			tt.MustAssert(errors.Is(err, strconv.ErrSyntax), "%q: %v", in, err)
		} else {
			// Out of range for 64 bits is still a valid 128-bit value.
			tt.MustOK(err)
			tt.MustEqual(in, v.String())
		}
	}
}

func TestU128MulOverflow(t *testing.T) {
	for idx, tc := range []struct {
		a, b     U128
		overflow bool
	}{
		{u64(maxUint64), u64(maxUint64), false},
		{u64(0), MaxU128, false},
		{u64(1), MaxU128, false},
		{u64(2), MaxU128, true},
		{u128s("0x1 0000000000000000"), u128s("0x1 0000000000000000"), true},
		{u128s("0x1 0000000000000000"), u64(maxUint64), false},
		{u128s("0x8000000000000000 0000000000000000"), u64(2), true},
		{u128s("0x4000000000000000 0000000000000000"), u64(2), false},
	} {
		t.Run(fmt.Sprintf("%d/%s*%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, overflow := tc.a.MulOverflow(tc.b)
			tt.MustEqual(tc.overflow, overflow)

			rb := new(big.Int).Mul(tc.a.AsBigInt(), tc.b.AsBigInt())
			tt.MustEqual(rb.Cmp(maxBigU128) > 0, overflow)
			rb.And(rb, maxBigU128)
			tt.MustEqual(rb.String(), v.String())
			tt.MustEqual(rb.String(), tc.a.Mul(tc.b).String())
		})
	}
}

func TestU128MulRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	scratch := make([]byte, 16)

	for i := 0; i < 10000; i++ {
		a, b := randU128(scratch), randU128(scratch)
		v, overflow := a.MulOverflow(b)

		rb := new(big.Int).Mul(a.AsBigInt(), b.AsBigInt())
		tt.MustEqual(rb.Cmp(maxBigU128) > 0, overflow, "%s * %s", a, b)
		rb.And(rb, maxBigU128)
		tt.MustEqual(rb.String(), v.String(), "%s * %s", a, b)
	}
}

func TestU128QuoRem(t *testing.T) {
	for idx, tc := range []struct {
		u, by, q, r U128
	}{
		{u: u64(1), by: u64(2), q: u64(0), r: u64(1)},
		{u: u64(10), by: u64(3), q: u64(3), r: u64(1)},

		// Possible div/0 where lo of divisor is 0:
		{u: U128{hi: 0, lo: 1}, by: U128{hi: 1, lo: 0}, q: u64(0), r: u64(1)},

		{u128s("0x1234567890123456"), u128s("0x1234567890123456"), u64(1), u64(0)},
		{u128s("0x123456789012345678901234"), u128s("0x222222229012345678901234"), u64(0), u128s("0x123456789012345678901234")},
		{u128s("0x123456789012345678901234"), u128s("0x123456789012345678901234"), u64(1), u64(0)},

		// Regression: 128-by-128 divisor branch
		{u128s("3289699161974853443944280720275488"), u128s("9261249991223143249760"), u128s("355211139435"), u128s("2383045117911981137888")},
		{MaxU128, u64(10), u128s("34028236692093846346337460743176821145"), u64(5)},
		{MaxU128, MaxU128, u64(1), u64(0)},
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s=%s,%s", idx, tc.u, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			uBig := tc.u.AsBigInt()
			byBig := tc.by.AsBigInt()

			qBig, rBig := new(big.Int).Set(uBig), new(big.Int).Set(uBig)
			qBig = qBig.Quo(qBig, byBig)
			rBig = rBig.Rem(rBig, byBig)

			q, r := tc.u.QuoRem(tc.by)
			tt.MustEqual(qBig.String(), q.String())
			tt.MustEqual(rBig.String(), r.String())
			tt.MustEqual(qBig.String(), tc.u.Quo(tc.by).String())
			tt.MustEqual(rBig.String(), tc.u.Rem(tc.by).String())
		})
	}
}

func TestU128QuoRemRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	scratch := make([]byte, 16)

	for i := 0; i < 10000; i++ {
		u, by := randU128(scratch), randU128(scratch)
		if by.IsZero() {
			continue
		}
		q, r := u.QuoRem(by)

		qBig, rBig := new(big.Int).QuoRem(u.AsBigInt(), by.AsBigInt(), new(big.Int))
		tt.MustEqual(qBig.String(), q.String(), "%s / %s", u, by)
		tt.MustEqual(rBig.String(), r.String(), "%s %% %s", u, by)
	}
}

func TestU128Lsh(t *testing.T) {
	for idx, tc := range []struct {
		u  U128
		by uint
		r  U128
	}{
		{u: u64(2), by: 1, r: u64(4)},
		{u: u64(1), by: 2, r: u64(4)},
		{u: u128s("18446744073709551615"), by: 1, r: u128s("36893488147419103230")}, // (1<<64) - 1
		{u: u128s("5080864651895"), by: 57, r: u128s("732229764895815899943471677440")},
		{u: u128s("63669103"), by: 85, r: u128s("2463079120908903847397520463364096")},
		{u: u128s("0x1f1ecfd29cb51500c1a0699657"), by: 104, r: u128s("0x69965700000000000000000000000000")},
		{u: u128s("213"), by: 65, r: u128s("7858312975400268988416")},
		{u: u64(1), by: 64, r: u128s("18446744073709551616")},
	} {
		t.Run(fmt.Sprintf("%d/%s<<%d=%s", idx, tc.u, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			ub := tc.u.AsBigInt()
			ub.Lsh(ub, tc.by).And(ub, maxBigU128)

			ru := tc.u.Lsh(tc.by)
			tt.MustEqual(tc.r.String(), ru.String(), "%s != %s; big: %s", tc.r, ru, ub)
			tt.MustEqual(ub.String(), ru.String())
		})
	}
}

func TestU128Rsh(t *testing.T) {
	for _, tc := range []struct {
		u  U128
		by uint
		r  U128
	}{
		{u: u64(2), by: 1, r: u64(1)},
		{u: u64(1), by: 2, r: u64(0)},
		{u: u128s("36893488147419103232"), by: 1, r: u128s("18446744073709551616")},
		{u: u128s("377509308958315595850564"), by: 58, r: u64(1309748)},
		{u: u128s("8504691434450337657905929307096"), by: 74, r: u128s("450234615")},
		{u: u128s("3731491383344351937489898072501894878"), by: 112, r: u64(718)},
		{u: u128s("18446744073709551616"), by: 64, r: u64(1)},
	} {
		t.Run(fmt.Sprintf("%s>>%d=%s", tc.u, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			ub := tc.u.AsBigInt()
			ub.Rsh(ub, tc.by)

			ru := tc.u.Rsh(tc.by)
			tt.MustEqual(tc.r.String(), ru.String(), "%s != %s; big: %s", tc.r, ru, ub)
			tt.MustEqual(ub.String(), ru.String())
		})
	}
}

func TestU128Cmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b U128
		cmp  int
	}{
		{u64(1), u64(2), -1},
		{u64(2), u64(1), 1},
		{u64(2), u64(2), 0},
		{u64(maxUint64), u64(maxUint64).Inc(), -1},
		{MaxU128, u64(0), 1},
	} {
		t.Run(fmt.Sprintf("%d/%s<=>%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.cmp, tc.a.Cmp(tc.b))
			tt.MustEqual(tc.cmp < 0, tc.a.LessThan(tc.b))
			tt.MustEqual(tc.cmp <= 0, tc.a.LessOrEqualTo(tc.b))
			tt.MustEqual(tc.cmp > 0, tc.a.GreaterThan(tc.b))
			tt.MustEqual(tc.cmp >= 0, tc.a.GreaterOrEqualTo(tc.b))
			tt.MustEqual(tc.cmp == 0, tc.a.Equal(tc.b))
		})
	}
}

func TestU128LittleEndian(t *testing.T) {
	tt := assert.WrapTB(t)
	scratch := make([]byte, 16)

	for i := 0; i < 1000; i++ {
		u := randU128(scratch)
		var buf [16]byte
		u.PutLittleEndian(buf[:])
		tt.MustEqual(buf[:], u.AppendLittleEndian(nil))
		tt.MustAssert(u.Equal(U128FromLittleEndian(buf[:])))
	}

	tt.MustEqual([]byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		MaxU128.Dec().AppendLittleEndian(nil))
}

func TestU128Raw(t *testing.T) {
	tt := assert.WrapTB(t)
	scratch := make([]byte, 16)

	hi, lo := MaxU128.Raw()
	tt.MustEqual(uint64(maxUint64), hi)
	tt.MustEqual(uint64(maxUint64), lo)

	for i := 0; i < 1000; i++ {
		u := randU128(scratch)
		tt.MustEqual(u, U128FromRaw(u.Raw()))
	}
}

func TestU128MarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)
	bts := make([]byte, 16)

	for i := 0; i < 5000; i++ {
		u := randU128(bts)

		bts, err := json.Marshal(u)
		tt.MustOK(err)

		var result U128
		tt.MustOK(json.Unmarshal(bts, &result))
		tt.MustAssert(result.Equal(u))
	}
}

func TestU128UnmarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)

	var u U128
	tt.MustOK(json.Unmarshal([]byte(`12345`), &u))
	tt.MustEqual("12345", u.String())

	tt.MustOK(json.Unmarshal([]byte(`null`), &u))
	tt.MustEqual("12345", u.String())

	tt.MustAssert(json.Unmarshal([]byte(`"12a"`), &u) != nil)
	tt.MustAssert(u.UnmarshalJSON([]byte(`"12`)) != nil)
	tt.MustAssert(u.UnmarshalJSON(nil) != nil)
}

var (
	BenchStringResult string
	BenchU128Result   U128
)

func BenchmarkU128String(b *testing.B) {
	u := MaxU128.Dec()
	for i := 0; i < b.N; i++ {
		BenchStringResult = u.String()
	}
}

func BenchmarkParseU128(b *testing.B) {
	s := MaxU128.Dec().String()
	for i := 0; i < b.N; i++ {
		BenchU128Result, _ = ParseU128(s)
	}
}
