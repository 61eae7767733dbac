package hexint

import (
	"errors"
)

var ErrDivisionByZero = errors.New("hexint: division by zero")

// Int is an arbitrary-precision integer. The zero value is 0.
//
// A non-negative Int stores its value directly. A negative Int stores the
// fifteen's complement of its hex text (see FromString), which works out to
// its magnitude minus one; neg carries the sign. Every integer therefore has
// exactly one representation and there is no negative zero.
type Int struct {
	digits nat
	neg    bool
}

// fromAbs builds an Int from a magnitude and a sign.
func fromAbs(abs nat, neg bool) Int {
	if !neg || len(abs) == 0 {
		return Int{digits: abs}
	}
	return Int{digits: abs.sub(one.digits), neg: true}
}

// abs returns the magnitude of x.
func (x Int) abs() nat {
	if x.neg {
		return x.digits.add(one.digits)
	}
	return x.digits
}

func (x Int) IsZero() bool { return !x.neg && len(x.digits) == 0 }

// IsNeg reports whether the sign flag of x is set.
func (x Int) IsNeg() bool { return x.neg }

// Len returns the number of stored digits in x. Zero has one digit.
func (x Int) Len() int {
	if len(x.digits) == 0 {
		return 1
	}
	return len(x.digits)
}

// Digits returns a copy of the stored digits of x, least significant first.
// For a negative x these are the complemented digits; the sign is reported
// by IsNeg. Zero is returned as a single 0 digit.
func (x Int) Digits() []byte {
	if len(x.digits) == 0 {
		return []byte{0}
	}
	out := make([]byte, len(x.digits))
	copy(out, x.digits)
	return out
}

func (x Int) Sign() int {
	if x.neg {
		return -1
	} else if len(x.digits) == 0 {
		return 0
	}
	return 1
}

func (x Int) Neg() Int {
	return fromAbs(x.abs(), !x.neg)
}

func (x Int) Abs() Int {
	if !x.neg {
		return x
	}
	return Int{digits: x.abs()}
}

func (x Int) Inc() Int { return x.Add(one) }
func (x Int) Dec() Int { return x.Sub(one) }

// Equal reports whether x and y have the same sign and the same digits.
func (x Int) Equal(y Int) bool {
	return x.neg == y.neg && x.digits.cmp(y.digits) == 0
}

// CmpStorage orders x and y by their stored digits alone: the value with
// more stored digits is larger, and values with the same number of digits
// are compared digit by digit from the most significant end. The sign flag
// is not consulted, so this is not numeric ordering for negative values;
// use Cmp for that.
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
func (x Int) CmpStorage(y Int) int {
	return x.digits.cmp(y.digits)
}

// Cmp compares x to y numerically and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
func (x Int) Cmp(y Int) int {
	switch {
	case x.neg == y.neg:
		r := x.digits.cmp(y.digits)
		if x.neg {
			// A larger stored complement is a larger magnitude.
			r = -r
		}
		return r
	case x.neg:
		return -1
	default:
		return 1
	}
}

// CmpAbs compares the magnitudes of x and y.
func (x Int) CmpAbs(y Int) int {
	return x.abs().cmp(y.abs())
}

func (x Int) GreaterThan(y Int) bool      { return x.Cmp(y) > 0 }
func (x Int) GreaterOrEqualTo(y Int) bool { return x.Cmp(y) >= 0 }
func (x Int) LessThan(y Int) bool         { return x.Cmp(y) < 0 }
func (x Int) LessOrEqualTo(y Int) bool    { return x.Cmp(y) <= 0 }

func (x Int) Add(y Int) Int {
	xa, ya := x.abs(), y.abs()
	if x.neg == y.neg {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		return fromAbs(xa.add(ya), x.neg)
	}

	// x + (-y) == x - y == -(y - x)
	// (-x) + y == y - x == -(x - y)
	if xa.cmp(ya) >= 0 {
		return fromAbs(xa.sub(ya), x.neg)
	}
	return fromAbs(ya.sub(xa), !x.neg)
}

func (x Int) Sub(y Int) Int {
	xa, ya := x.abs(), y.abs()
	if x.neg != y.neg {
		// x - (-y) == x + y
		// (-x) - y == -(x + y)
		return fromAbs(xa.add(ya), x.neg)
	}

	// x - y == x - y == -(y - x)
	// (-x) - (-y) == y - x == -(x - y)
	if xa.cmp(ya) >= 0 {
		return fromAbs(xa.sub(ya), x.neg)
	}
	return fromAbs(ya.sub(xa), !x.neg)
}

// Mul returns the product x*y. See MulKaratsuba.
func (x Int) Mul(y Int) Int {
	return x.MulKaratsuba(y, KaratsubaThreshold)
}

// MulKaratsuba returns the product x*y, using schoolbook multiplication while
// the longer operand has fewer than threshold digits and Karatsuba
// multiplication from there on. Thresholds below 4 are treated as 4.
func (x Int) MulKaratsuba(y Int, threshold int) Int {
	return fromAbs(x.abs().mul(y.abs(), threshold), x.neg != y.neg)
}

// QuoRem returns the quotient q and remainder r of x/y. If y == 0,
// ErrDivisionByZero is returned.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// so the remainder takes the sign of the dividend.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return zero, zero, ErrDivisionByZero
	}
	qa, ra := x.abs().divRem(y.abs())
	return fromAbs(qa, x.neg != y.neg), fromAbs(ra, x.neg), nil
}

// Quo returns the quotient x/y, truncated towards zero. If y == 0,
// ErrDivisionByZero is returned.
func (x Int) Quo(y Int) (q Int, err error) {
	q, _, err = x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of x%y, which has the sign of x. If y == 0,
// ErrDivisionByZero is returned.
func (x Int) Rem(y Int) (r Int, err error) {
	_, r, err = x.QuoRem(y)
	return r, err
}

// Not returns ^x. Every nibble of the hex text of x is flipped, which in the
// stored form leaves the digits alone and flips the sign: ^x == -x-1.
func (x Int) Not() Int {
	return Int{digits: x.digits, neg: !x.neg}
}

// The binary bitwise operators work digit by digit on the stored digits,
// padding the shorter operand with zero digits. A negative value stores
// exactly the complement of its (infinitely sign-extended) bit pattern, so
// each operator only has to pick the right digit operation and result sign
// for the operand signs to give the two's-complement answer.

func (x Int) And(y Int) Int {
	if x.neg == y.neg {
		if x.neg {
			// (-x) & (-y) == ^(x-1) & ^(y-1) == ^((x-1) | (y-1))
			return Int{digits: x.digits.or(y.digits), neg: true}
		}
		return Int{digits: x.digits.and(y.digits)}
	}

	if x.neg {
		x, y = y, x // & is symmetric
	}
	// x & (-y) == x & ^(y-1) == x &^ (y-1)
	return Int{digits: x.digits.andNot(y.digits)}
}

// AndNot returns x &^ y.
func (x Int) AndNot(y Int) Int {
	return x.And(y.Not())
}

func (x Int) Or(y Int) Int {
	if x.neg == y.neg {
		if x.neg {
			// (-x) | (-y) == ^(x-1) | ^(y-1) == ^((x-1) & (y-1))
			return Int{digits: x.digits.and(y.digits), neg: true}
		}
		return Int{digits: x.digits.or(y.digits)}
	}

	if x.neg {
		x, y = y, x // | is symmetric
	}
	// x | (-y) == x | ^(y-1) == ^((y-1) &^ x)
	return Int{digits: y.digits.andNot(x.digits), neg: true}
}

func (x Int) Xor(y Int) Int {
	// x ^ y == x ^ y
	// (-x) ^ (-y) == ^(x-1) ^ ^(y-1) == (x-1) ^ (y-1)
	// x ^ (-y) == x ^ ^(y-1) == ^(x ^ (y-1))
	return Int{digits: x.digits.xor(y.digits), neg: x.neg != y.neg}
}

// ShiftLeft returns x with n zero hex digits appended to its text, i.e.
// x * 16^n.
func (x Int) ShiftLeft(n uint) Int {
	if n == 0 || x.IsZero() {
		return x
	}
	if !x.neg {
		return Int{digits: x.digits.shlDigits(n)}
	}

	// The zeros appended to the text of a negative value are stored as
	// their complement.
	z := make(nat, len(x.digits)+int(n))
	for i := uint(0); i < n; i++ {
		z[i] = digitMask
	}
	copy(z[n:], x.digits)
	return Int{digits: z, neg: true}
}

// ShiftRight returns x with its n least significant hex digits removed. This
// is an arithmetic shift: x / 16^n rounded towards negative infinity, which
// is plain truncation for non-negative values.
func (x Int) ShiftRight(n uint) Int {
	return Int{digits: x.digits.shrDigits(n), neg: x.neg}
}

// Lsh returns x << n, where n is a count of bits.
func (x Int) Lsh(n uint) Int {
	if !x.neg {
		return Int{digits: x.digits.shl(n)}
	}
	return fromAbs(x.abs().shl(n), true)
}

// Rsh returns x >> n, where n is a count of bits. Like Go's >> on signed
// integers, this rounds towards negative infinity.
func (x Int) Rsh(n uint) Int {
	// (-x) >> n == ^(x-1) >> n == ^((x-1) >> n)
	return Int{digits: x.digits.shr(n), neg: x.neg}
}

// Bit returns the value of the i'th bit of the two's-complement
// representation of x. It panics if i < 0.
func (x Int) Bit(i int) uint {
	if i < 0 {
		panic("hexint: negative bit index")
	}
	b := x.digits.bit(uint(i))
	if x.neg {
		b ^= 1
	}
	return b
}

// BitLen returns the length of the absolute value of x in bits.
func (x Int) BitLen() int {
	return x.abs().bitLen()
}
