package m61

import "math/big"

// FromBig returns the non-negative representative of x mod 2^61-1. A nil x
// is treated as zero.
func FromBig(x *big.Int) M61 {
	if x == nil {
		return zero
	}
	r := Reduce(x.Bits())
	if x.Sign() < 0 {
		return r.Neg()
	}
	return r
}

// Big returns the residue as a new big.Int.
func (a M61) Big() *big.Int {
	return new(big.Int).SetUint64(a.v)
}
