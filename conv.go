package hexint

import (
	"fmt"
	"math"
	"math/big"
)

const nibblesPerWord = intSize / digitBits

// FromDigits creates an Int from stored digits, least significant first, and
// a sign flag. For a negative value the digits are the complemented form
// described on Int, as returned by Digits. Most significant zero digits are
// dropped. A digit above 15 fails with an error wrapping ErrInvalidDigit.
func FromDigits(digits []byte, neg bool) (out Int, err error) {
	z := make(nat, len(digits))
	for i, d := range digits {
		if d > digitMask {
			return out, fmt.Errorf("%w %d at index %d", ErrInvalidDigit, d, i)
		}
		z[i] = d
	}
	return Int{digits: z.norm(), neg: neg}, nil
}

func FromUint64(v uint64) Int {
	return Int{digits: natFromUint64(v)}
}

func FromInt64(v int64) Int {
	if v < 0 {
		// ^v == -v-1, which is the stored form and can't overflow.
		return Int{digits: natFromUint64(uint64(^v)), neg: true}
	}
	return Int{digits: natFromUint64(uint64(v))}
}

func FromBigInt(v *big.Int) Int {
	if v.Sign() >= 0 {
		return Int{digits: natFromWords(v.Bits())}
	}
	var stored big.Int
	stored.Not(v) // -v-1
	return Int{digits: natFromWords(stored.Bits()), neg: true}
}

func natFromWords(words []big.Word) nat {
	z := make(nat, len(words)*nibblesPerWord)
	for i, w := range words {
		for j := 0; j < nibblesPerWord; j++ {
			z[i*nibblesPerWord+j] = byte(w & digitMask)
			w >>= digitBits
		}
	}
	return z.norm()
}

// FromFloat64 creates an Int from a float64, truncating any fractional part
// towards zero.
//
// NaN and the infinities can't be represented; they return zero and set
// inRange to false.
func FromFloat64(f float64) (out Int, inRange bool) {
	if f != f || math.IsInf(f, 0) { // f != f == isnan
		return out, false
	}

	neg := f < 0
	if neg {
		f = -f
	}
	f = math.Trunc(f)

	var abs nat
	for f > 0 {
		var lo uint64
		lo, f = splitFloat64(f)
		chunk := natFromUint64(lo)
		if f > 0 {
			// Every chunk but the last one is a full 16 digits.
			chunk = append(chunk, make(nat, 64/digitBits-len(chunk))...)
		}
		abs = append(abs, chunk...)
	}
	return fromAbs(abs.norm(), neg), true
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (x Int) IntoBigInt(b *big.Int) {
	words := b.Bits()[:0]
	for i, d := range x.digits {
		w := i / nibblesPerWord
		if w == len(words) {
			words = append(words, 0)
		}
		words[w] |= big.Word(d) << (uint(i%nibblesPerWord) * digitBits)
	}
	b.SetBits(words)

	if x.neg {
		b.Not(b) // -(stored+1)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (x Int) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	x.IntoBigInt(b)
	return b
}

func (x Int) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(x.AsBigInt())
}

// AsFloat64 returns the float64 nearest to x.
func (x Int) AsFloat64() float64 {
	if len(x.digits) <= 13 {
		// Fits in the 52 bits of mantissa.
		v := float64(x.digits.uint64())
		if x.neg {
			return -v - 1
		}
		return v
	}
	f, _ := x.AsBigFloat().Float64()
	return f
}

// IsInt64 reports whether x can be represented as an int64.
func (x Int) IsInt64() bool {
	return len(x.digits) <= 64/digitBits && x.digits.uint64() <= math.MaxInt64
}

// AsInt64 truncates x to fit in an int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (x Int) AsInt64() int64 {
	v := int64(x.digits.uint64())
	if x.neg {
		return ^v
	}
	return v
}

// IsUint64 reports whether x can be represented as a uint64.
func (x Int) IsUint64() bool {
	return !x.neg && len(x.digits) <= 64/digitBits
}

// AsUint64 truncates x to fit in a uint64. Negative values wrap like a
// conversion from int64 would.
func (x Int) AsUint64() uint64 {
	v := x.digits.uint64()
	if x.neg {
		return ^v
	}
	return v
}
