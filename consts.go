package hexint

import (
	"math/big"
)

const (
	// base is the radix of a single stored digit.
	base = 16

	digitBits = 4
	digitMask = base - 1

	maxUint64 = 1<<64 - 1

	// KaratsubaThreshold is the digit count of the longer operand at which Mul
	// switches from schoolbook multiplication to Karatsuba. Use MulKaratsuba
	// to multiply with a different threshold.
	KaratsubaThreshold = 40

	// minKaratsubaThreshold is the smallest operand length for which the
	// Karatsuba halves (plus their carry digit) are strictly shorter than the
	// input. Anything lower would recurse forever.
	minKaratsubaThreshold = 4

	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64

	intSize = 32 << (^uint(0) >> 63)
)

var (
	zero Int
	one  = Int{digits: nat{1}}

	// minusOne has no stored digits: the magnitude of a negative value is
	// its stored digits plus one.
	minusOne = Int{neg: true}

	big1 = new(big.Int).SetInt64(1)
)
