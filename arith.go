package hexint

// This file contains the digit-level building blocks used by nat. A digit is
// a single nibble held in a byte; carries and borrows are always 0 or 1
// unless noted.

// addDD returns the digit x+y+c and the carry out of it.
func addDD(x, y, c byte) (s, carry byte) {
	s = x + y + c
	if s >= base {
		return s - base, 1
	}
	return s, 0
}

// subDD returns the digit x-y-b and the borrow out of it.
func subDD(x, y, b byte) (d, borrow byte) {
	if x >= y+b {
		return x - y - b, 0
	}
	return x + base - y - b, 1
}

// mulAddDDD returns x*y+c split into a high and a low digit. The result can
// never exceed 15*15+15, so the high digit is always a valid nibble.
func mulAddDDD(x, y, c byte) (hi, lo byte) {
	t := uint(x)*uint(y) + uint(c)
	return byte(t >> digitBits), byte(t & digitMask)
}

// addVV sets z = x+y for vectors of equal length and returns the carry.
func addVV(z, x, y []byte) (c byte) {
	for i := range z {
		z[i], c = addDD(x[i], y[i], c)
	}
	return c
}

// subVV sets z = x-y for vectors of equal length and returns the borrow.
func subVV(z, x, y []byte) (b byte) {
	for i := range z {
		z[i], b = subDD(x[i], y[i], b)
	}
	return b
}

// addVD sets z = x+c and returns the carry.
func addVD(z, x []byte, c byte) byte {
	for i := range z {
		z[i], c = addDD(x[i], 0, c)
	}
	return c
}

// subVD sets z = x-b and returns the borrow.
func subVD(z, x []byte, b byte) byte {
	for i := range z {
		z[i], b = subDD(x[i], 0, b)
	}
	return b
}

// addMulVVD sets z += x*y and returns the digit carried out of the top. The
// running sum of one position is at most 15 + 15*15 + 15, which still fits a
// byte, so the carry is always a single digit.
func addMulVVD(z, x []byte, y byte) (c byte) {
	for i := range z {
		t := uint(z[i]) + uint(x[i])*uint(y) + uint(c)
		z[i], c = byte(t&digitMask), byte(t>>digitBits)
	}
	return c
}

// shlVU sets z = x<<s for s < digitBits and returns the bits shifted out of
// the top digit.
func shlVU(z, x []byte, s uint) (c byte) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	for i := range z {
		t := uint(x[i])<<s | uint(c)
		z[i], c = byte(t&digitMask), byte(t>>digitBits)
	}
	return c
}

// shrVU sets z = x>>s for s < digitBits and returns the bits shifted out of
// the bottom digit.
func shrVU(z, x []byte, s uint) (c byte) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	low := byte(1)<<s - 1
	for i := len(z) - 1; i >= 0; i-- {
		d := x[i]
		z[i] = (d >> s) | (c<<(digitBits-s))&digitMask
		c = d & low
	}
	return c
}
