package hexint

// mul returns x*y, switching to Karatsuba multiplication once the longer
// operand has at least threshold digits.
func (x nat) mul(y nat, threshold int) nat {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	if threshold < minKaratsubaThreshold {
		threshold = minKaratsubaThreshold
	}
	return karatsuba(x, y, threshold)
}

// basicMul is schoolbook digit convolution.
func basicMul(x, y nat) nat {
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		return nil
	}
	z := make(nat, m+n)
	for i, d := range y {
		if d != 0 {
			z[m+i] = addMulVVD(z[i:i+m], x, d)
		}
	}
	return z.norm()
}

// karatsuba splits both operands at half the length of the longer one:
//
//	x = x1*16^m + x0
//	y = y1*16^m + y0
//
// and computes x*y from three half-size products:
//
//	z2 = x1*y1
//	z0 = x0*y0
//	z1 = (x0+x1)*(y0+y1) - z2 - z0
//	x*y = z2*16^2m + z1*16^m + z0
//
// threshold must be at least minKaratsubaThreshold.
func karatsuba(x, y nat, threshold int) nat {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	if n < threshold {
		return basicMul(x, y)
	}

	m := n / 2
	x0, x1 := x.split(m)
	y0, y1 := y.split(m)

	z0 := karatsuba(x0, y0, threshold)
	z2 := karatsuba(x1, y1, threshold)
	z1 := karatsuba(x0.add(x1), y0.add(y1), threshold)
	z1 = z1.sub(z0).sub(z2)

	return z2.shlDigits(uint(2 * m)).
		add(z1.shlDigits(uint(m))).
		add(z0)
}

// split returns the low m digits and the remaining high digits of x, both
// normalised.
func (x nat) split(m int) (lo, hi nat) {
	if len(x) <= m {
		return x, nil
	}
	return x[:m].norm(), x[m:]
}
