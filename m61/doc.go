// Package m61 implements exact arithmetic modulo the Mersenne prime
// 2^61 - 1.
//
// The type M61 is a single word holding the canonical residue in
// [0, 2^61-1). All operations take their operands by value and return a
// new canonical value, so an M61 can be shared between goroutines freely.
//
// The package is aimed at testing bignum implementations: repeating a
// bignum computation in GF(2^61-1) and comparing the reduced results is a
// cheap way to detect wrong answers without a second arbitrary precision
// implementation. Reduce and ReduceParallel reduce a little-endian digit
// string directly, FromBig bridges math/big values, and Sampler supplies
// uniformly distributed operands.
//
// Reductions use 2^61 ≡ 1 (mod 2^61-1): a value is split into 61-bit
// segments whose sum is congruent to the value, so no division is ever
// performed.
package m61
