package num

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	signBit  = 0x8000000000000000
	signMask = 0x7FFFFFFFFFFFFFFF

	// Largest power of ten that fits in a uint64, used to peel decimal
	// digits off a U128 nineteen at a time.
	pow10Uint64   = 10000000000000000000
	pow10Uint64Ln = 19
)

var (
	MaxI128 = I128{hi: signMask, lo: maxUint64}
	MinI128 = I128{hi: signBit, lo: 0}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroI128 I128
	zeroU128 U128

	minI128AsAbsU128 = U128{hi: signBit, lo: 0}
	maxI128AsU128    = U128{hi: signMask, lo: maxUint64}
)
