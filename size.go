package nonmax

import (
	"unsafe"

	"github.com/shabbyrobe/go-nonmax/num"
)

// Each line fails to compile unless its two sizes are equal: a negative
// difference overflows uintptr, and a positive one fails the negated bound.

var ( // Option costs nothing over the value
	_ [unsafe.Sizeof(OptionU8{}) - unsafe.Sizeof(U8{})][unsafe.Sizeof(U8{}) - unsafe.Sizeof(OptionU8{})]struct{}
	_ [unsafe.Sizeof(OptionU16{}) - unsafe.Sizeof(U16{})][unsafe.Sizeof(U16{}) - unsafe.Sizeof(OptionU16{})]struct{}
	_ [unsafe.Sizeof(OptionU32{}) - unsafe.Sizeof(U32{})][unsafe.Sizeof(U32{}) - unsafe.Sizeof(OptionU32{})]struct{}
	_ [unsafe.Sizeof(OptionU64{}) - unsafe.Sizeof(U64{})][unsafe.Sizeof(U64{}) - unsafe.Sizeof(OptionU64{})]struct{}
	_ [unsafe.Sizeof(OptionUint{}) - unsafe.Sizeof(Uint{})][unsafe.Sizeof(Uint{}) - unsafe.Sizeof(OptionUint{})]struct{}
	_ [unsafe.Sizeof(OptionU128{}) - unsafe.Sizeof(U128{})][unsafe.Sizeof(U128{}) - unsafe.Sizeof(OptionU128{})]struct{}

	_ [unsafe.Sizeof(OptionI8{}) - unsafe.Sizeof(I8{})][unsafe.Sizeof(I8{}) - unsafe.Sizeof(OptionI8{})]struct{}
	_ [unsafe.Sizeof(OptionI16{}) - unsafe.Sizeof(I16{})][unsafe.Sizeof(I16{}) - unsafe.Sizeof(OptionI16{})]struct{}
	_ [unsafe.Sizeof(OptionI32{}) - unsafe.Sizeof(I32{})][unsafe.Sizeof(I32{}) - unsafe.Sizeof(OptionI32{})]struct{}
	_ [unsafe.Sizeof(OptionI64{}) - unsafe.Sizeof(I64{})][unsafe.Sizeof(I64{}) - unsafe.Sizeof(OptionI64{})]struct{}
	_ [unsafe.Sizeof(OptionInt{}) - unsafe.Sizeof(Int{})][unsafe.Sizeof(Int{}) - unsafe.Sizeof(OptionInt{})]struct{}
	_ [unsafe.Sizeof(OptionI128{}) - unsafe.Sizeof(I128{})][unsafe.Sizeof(I128{}) - unsafe.Sizeof(OptionI128{})]struct{}
)

var ( // the value costs nothing over its primitive
	_ [unsafe.Sizeof(U8{}) - unsafe.Sizeof(uint8(0))][unsafe.Sizeof(uint8(0)) - unsafe.Sizeof(U8{})]struct{}
	_ [unsafe.Sizeof(U16{}) - unsafe.Sizeof(uint16(0))][unsafe.Sizeof(uint16(0)) - unsafe.Sizeof(U16{})]struct{}
	_ [unsafe.Sizeof(U32{}) - unsafe.Sizeof(uint32(0))][unsafe.Sizeof(uint32(0)) - unsafe.Sizeof(U32{})]struct{}
	_ [unsafe.Sizeof(U64{}) - unsafe.Sizeof(uint64(0))][unsafe.Sizeof(uint64(0)) - unsafe.Sizeof(U64{})]struct{}
	_ [unsafe.Sizeof(Uint{}) - unsafe.Sizeof(uint(0))][unsafe.Sizeof(uint(0)) - unsafe.Sizeof(Uint{})]struct{}
	_ [unsafe.Sizeof(U128{}) - unsafe.Sizeof(num.U128{})][unsafe.Sizeof(num.U128{}) - unsafe.Sizeof(U128{})]struct{}

	_ [unsafe.Sizeof(I8{}) - unsafe.Sizeof(int8(0))][unsafe.Sizeof(int8(0)) - unsafe.Sizeof(I8{})]struct{}
	_ [unsafe.Sizeof(I16{}) - unsafe.Sizeof(int16(0))][unsafe.Sizeof(int16(0)) - unsafe.Sizeof(I16{})]struct{}
	_ [unsafe.Sizeof(I32{}) - unsafe.Sizeof(int32(0))][unsafe.Sizeof(int32(0)) - unsafe.Sizeof(I32{})]struct{}
	_ [unsafe.Sizeof(I64{}) - unsafe.Sizeof(int64(0))][unsafe.Sizeof(int64(0)) - unsafe.Sizeof(I64{})]struct{}
	_ [unsafe.Sizeof(Int{}) - unsafe.Sizeof(int(0))][unsafe.Sizeof(int(0)) - unsafe.Sizeof(Int{})]struct{}
	_ [unsafe.Sizeof(I128{}) - unsafe.Sizeof(num.I128{})][unsafe.Sizeof(num.I128{}) - unsafe.Sizeof(I128{})]struct{}
)
