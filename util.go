package hexint

type RandSource interface {
	Uint64() uint64
}

// RandInt generates a non-negative random integer of at most digits hex
// digits from an external source.
func RandInt(source RandSource, digits int) Int {
	z := make(nat, digits)
	var v uint64
	for i := range z {
		if i%(64/digitBits) == 0 {
			v = source.Uint64()
		}
		z[i] = byte(v & digitMask)
		v >>= digitBits
	}
	return Int{digits: z.norm()}
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func Smaller(a, b Int) Int {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
