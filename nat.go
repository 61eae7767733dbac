package hexint

import (
	"math/bits"
)

// nat is an unsigned magnitude stored as base-16 digits, least significant
// first. A normalised nat has no trailing (most significant) zero digits, so
// zero is the empty vector.
//
// nat values are never modified once built; every operation that needs to
// write allocates its result.
type nat []byte

func natFromUint64(v uint64) (z nat) {
	for v != 0 {
		z = append(z, byte(v&digitMask))
		v >>= digitBits
	}
	return z
}

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (x nat) clone() nat {
	if len(x) == 0 {
		return nil
	}
	z := make(nat, len(x))
	copy(z, x)
	return z
}

// uint64 returns the low 16 digits of x.
func (x nat) uint64() (v uint64) {
	n := len(x)
	if n > 64/digitBits {
		n = 64 / digitBits
	}
	for i := n - 1; i >= 0; i-- {
		v = v<<digitBits | uint64(x[i])
	}
	return v
}

// cmp compares x and y: the longer vector is larger, vectors of the same
// length are compared digit by digit from the most significant end.
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
func (x nat) cmp(y nat) (r int) {
	m, n := len(x), len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return r
	}

	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}

	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return r
}

func (x nat) add(y nat) nat {
	m, n := len(x), len(y)
	switch {
	case m < n:
		return y.add(x)
	case m == 0:
		return nil
	case n == 0:
		return x
	}

	z := make(nat, m+1)
	c := addVV(z[0:n], x[0:n], y)
	if m > n {
		c = addVD(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.norm()
}

// sub returns x-y. It panics if y > x; callers compare magnitudes first.
func (x nat) sub(y nat) nat {
	m, n := len(x), len(y)
	switch {
	case m < n:
		panic("hexint: nat underflow")
	case m == 0:
		return nil
	case n == 0:
		return x
	}

	z := make(nat, m)
	b := subVV(z[0:n], x[0:n], y)
	if m > n {
		b = subVD(z[n:], x[n:], b)
	}
	if b != 0 {
		panic("hexint: nat underflow")
	}
	return z.norm()
}

// shlDigits returns x with n zero digits inserted at the least significant
// end, i.e. x * 16^n.
func (x nat) shlDigits(n uint) nat {
	if len(x) == 0 {
		return nil
	}
	if n == 0 {
		return x
	}
	z := make(nat, len(x)+int(n))
	copy(z[n:], x)
	return z
}

// shrDigits returns x with its n least significant digits removed.
func (x nat) shrDigits(n uint) nat {
	if uint(len(x)) <= n {
		return nil
	}
	return x[n:]
}

// shl returns x << s, where s is a count of bits.
func (x nat) shl(s uint) nat {
	m := len(x)
	if m == 0 {
		return nil
	}
	n := m + int(s/digitBits)
	z := make(nat, n+1)
	z[n] = shlVU(z[n-m:n], x, s%digitBits)
	return z.norm()
}

// shr returns x >> s, where s is a count of bits.
func (x nat) shr(s uint) nat {
	m := len(x)
	d := s / digitBits
	if uint(m) <= d {
		return nil
	}
	n := m - int(d)
	z := make(nat, n)
	shrVU(z, x[m-n:], s%digitBits)
	return z.norm()
}

func (x nat) and(y nat) nat {
	m, n := len(x), len(y)
	if m > n {
		m = n
	}
	z := make(nat, m)
	for i := 0; i < m; i++ {
		z[i] = x[i] & y[i]
	}
	return z.norm()
}

// andNot returns x &^ y.
func (x nat) andNot(y nat) nat {
	m, n := len(x), len(y)
	if n > m {
		n = m
	}
	z := make(nat, m)
	for i := 0; i < n; i++ {
		z[i] = x[i] &^ y[i]
	}
	copy(z[n:m], x[n:m])
	return z.norm()
}

func (x nat) or(y nat) nat {
	m, n := len(x), len(y)
	s := x
	if m < n {
		n, m = m, n
		s = y
	}
	// m >= n
	z := make(nat, m)
	for i := 0; i < n; i++ {
		z[i] = x[i] | y[i]
	}
	copy(z[n:m], s[n:m])
	return z.norm()
}

func (x nat) xor(y nat) nat {
	m, n := len(x), len(y)
	s := x
	if m < n {
		n, m = m, n
		s = y
	}
	// m >= n
	z := make(nat, m)
	for i := 0; i < n; i++ {
		z[i] = x[i] ^ y[i]
	}
	copy(z[n:m], s[n:m])
	return z.norm()
}

// bit returns the value of the i'th bit of x.
func (x nat) bit(i uint) uint {
	j := i / digitBits
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j]>>(i%digitBits)) & 1
}

func (x nat) bitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*digitBits + bits.Len8(x[i])
	}
	return 0
}
