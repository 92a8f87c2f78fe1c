/*
Package nonmax provides integer types that can hold every value of their
primitive except the maximum. The missing value gives an Option of the type
somewhere to keep "absent", so an Option costs no more space than the
integer it wraps.

There are twelve types, one per width and signedness:

	U8   U16  U32  U64  Uint  U128
	I8   I16  I32  I64  Int   I128

The first ten are aliases of the generic NonMax[T]; U128 and I128 wrap the
128-bit primitives in package num. Each has an Option form (OptionU8, ...,
OptionI128).

Values are built with a validating constructor:

	n, ok := nonmax.New[uint8](16)    // n.Get() == 16, ok == true
	_, ok = nonmax.New[uint8](255)    // ok == false
	o := nonmax.NewOption[uint8](255) // o.IsNone() == true

The zero value of every type is 0, and the zero value of every Option is
None.

Only operations that provably cannot produce the maximum are total. And is
one; Or, Xor and the arithmetic operators are all Checked, returning false
on overflow or when the result would be the maximum:

	a, _ := nonmax.New[uint8](0b0111_1111)
	b, _ := nonmax.New[uint8](0b1000_0000)
	_, ok = a.CheckedOr(b) // ok == false: 0b1111_1111 is excluded

Formatting with fmt prints exactly what the primitive would; there is no
wrapper decoration:

	fmt.Sprintf("%x %X %b", n, n, n) // "10 10 10000"

Every type implements encoding.TextMarshaler, json.Marshaler and
encoding.BinaryMarshaler, plus the matching unmarshalers. MessagePack (via
github.com/tinylib/msgp) and YAML (via gopkg.in/yaml.v3) are available unless
built with -tags nonmax_nomsgp or -tags nonmax_noyaml. Every decoder rejects
the maximum with a *DecodeError wrapping ErrSentinel, except the binary form
of an Option, where the maximum's bit pattern is None.

Building with -tags nonmax_debug makes NewUnchecked panic when handed the
maximum.
*/
package nonmax
