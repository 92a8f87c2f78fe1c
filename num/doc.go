/*
Package num provides the uint128 (U128) and int128 (I128) primitives that back
the 128-bit widths of package nonmax.

U128 and I128 are value types; all operations return new values. Arithmetic
wraps on overflow like Go's builtin integers, and the *Overflow variants
report when it happened.

U128 and I128 can be created from a variety of sources:

	U128FromRaw(hi, lo uint64) U128
	U128From64(v uint64) U128
	U128From32(v uint32) U128
	U128From16(v uint16) U128
	U128From8(v uint8) U128
	U128FromBigInt(v *big.Int) (out U128, accurate bool)
	ParseU128(s string) (U128, error)

ParseU128 and ParseI128 follow the lexical rules of strconv.ParseUint and
strconv.ParseInt with base 10, and fail with a *strconv.NumError.

U128 and I128 support the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package num
