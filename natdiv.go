package hexint

// divRem returns the quotient and remainder of x / y using schoolbook long
// division, one quotient digit per dividend digit. It panics if y is zero;
// Int checks for that and returns ErrDivisionByZero instead.
func (x nat) divRem(y nat) (q, r nat) {
	if len(y) == 0 {
		panic("hexint: division by zero")
	}
	if x.cmp(y) < 0 {
		return nil, x
	}
	if len(y) == 1 {
		return x.divDigit(y[0])
	}

	q = make(nat, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		// Bring down the next digit.
		next := make(nat, len(r)+1)
		next[0] = x[i]
		copy(next[1:], r)
		r = next.norm()

		// The quotient digit is at most 15, so trial subtraction is bounded.
		var d byte
		for r.cmp(y) >= 0 {
			r = r.sub(y)
			d++
		}
		q[i] = d
	}
	return q.norm(), r
}

// divDigit divides x by a single non-zero digit.
func (x nat) divDigit(y byte) (q, r nat) {
	q = make(nat, len(x))
	var rem uint
	for i := len(x) - 1; i >= 0; i-- {
		t := rem<<digitBits | uint(x[i])
		q[i] = byte(t / uint(y))
		rem = t % uint(y)
	}
	if rem != 0 {
		r = nat{byte(rem)}
	}
	return q.norm(), r
}
