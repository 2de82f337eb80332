package m61

import "math/bits"

// Digit is an unsigned machine word usable as a digit of a bignum in base
// 2^w, w being the bit width of the type.
type Digit interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

func digitBits[T Digit]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// Reduce returns the value of digits mod 2^61-1, where digits holds a
// non-negative integer in base 2^w, least significant digit first. An empty
// slice is zero.
//
// Adjacent digits are packed into 64-bit words and the words are consumed
// from the most significant end with Horner's method. Since 2^64 ≡ 8, the
// accumulator shift is a 61-bit rotate left by three.
func Reduce[T Digit](digits []T) M61 {
	w := digitBits[T]()
	per := int(64 / w)
	n := (len(digits) + per - 1) / per

	var acc uint64
	for j := n - 1; j >= 0; j-- {
		start := j * per
		end := min(start+per, len(digits))
		var word uint64
		for k := end - 1; k >= start; k-- {
			word = word<<w | uint64(digits[k])
		}
		acc = horner(acc, word)
	}
	return M61{fold(acc)}
}

// ReduceBytes is Reduce for a little-endian byte string.
func ReduceBytes(b []byte) M61 {
	return Reduce(b)
}

// horner returns a value congruent to acc·2^64 + word. For acc < 2^63 the
// result stays below 2^62+64, so the accumulator never overflows.
func horner(acc, word uint64) uint64 {
	return (word & Modulus) + (word >> 61) + (acc&(Modulus>>3))<<3 + acc>>58
}

// pow2 returns 2^k mod 2^61-1.
func pow2(k uint64) M61 {
	return M61{1 << (k % 61)}
}
