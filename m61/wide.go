package m61

import "math/bits"

// FromWide returns (hi·2^64 + lo) mod 2^61-1. It absorbs full 128-bit
// products, e.g. from bits.Mul64, without pre-reducing either word.
func FromWide(hi, lo uint64) M61 {
	// Segments: bits [0,61), [61,122) and [122,128).
	s := lo & Modulus
	s += (hi<<3 | lo>>61) & Modulus
	s += hi >> 58
	return M61{fold(s)}
}

// FromWideSigned returns the non-negative representative of the
// two's-complement 128-bit integer hi·2^64 + lo modulo 2^61-1.
func FromWideSigned(hi int64, lo uint64) M61 {
	if hi >= 0 {
		return FromWide(uint64(hi), lo)
	}
	// Negate in 128 bits; the most negative value maps onto 2^127.
	nlo, borrow := bits.Sub64(0, lo, 0)
	nhi, _ := bits.Sub64(0, uint64(hi), borrow)
	return FromWide(nhi, nlo).Neg()
}
