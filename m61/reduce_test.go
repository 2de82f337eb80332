package m61

import (
	"math/big"
	"testing"
)

// digitsBig interprets digits as a little-endian base 2^w integer.
func digitsBig[T Digit](digits []T) *big.Int {
	w := digitBits[T]()
	x := new(big.Int)
	for i := len(digits) - 1; i >= 0; i-- {
		x.Lsh(x, w)
		x.Or(x, new(big.Int).SetUint64(uint64(digits[i])))
	}
	return x
}

// pseudoDigits returns n digits drawn from a seeded sampler, with every
// seventh digit forced to all ones.
func pseudoDigits[T Digit](t testing.TB, n int) []T {
	t.Helper()
	s, err := NewSeededSampler([]byte("m61 digits"))
	if err != nil {
		t.Fatalf("sampler: %v", err)
	}
	out := make([]T, n)
	for i := range out {
		x, err := s.Next()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		out[i] = T(x.Value() ^ x.Value()<<7)
		if i%7 == 3 {
			out[i] = ^T(0)
		}
	}
	return out
}

func checkReduce[T Digit](t *testing.T, name string) {
	t.Helper()
	for _, n := range []int{0, 1, 2, 3, 7, 8, 9, 31, 64, 100, 257} {
		digits := pseudoDigits[T](t, n)
		got := Reduce(digits)
		if want := bigResidue(digitsBig(digits)); got.Value() != want {
			t.Fatalf("Reduce[%s](len %d) = %d want %d", name, n, got.Value(), want)
		}
	}
}

func TestReduce(t *testing.T) {
	checkReduce[uint8](t, "uint8")
	checkReduce[uint16](t, "uint16")
	checkReduce[uint32](t, "uint32")
	checkReduce[uint64](t, "uint64")
	checkReduce[uint](t, "uint")
	checkReduce[big.Word](t, "big.Word")
}

func TestReduceDocExample(t *testing.T) {
	got := Reduce([]uint16{1, 734, 24})
	want := FromUint64(1).Add(FromUint64(734 << 16)).Add(FromUint64(24 << 32))
	if got != want {
		t.Fatalf("Reduce = %d want %d", got.Value(), want.Value())
	}
}

func TestReduceAllOnes(t *testing.T) {
	// 2^(64·61) - 1 is a multiple of 2^61 - 1.
	digits := make([]uint64, 61)
	for i := range digits {
		digits[i] = ^uint64(0)
	}
	if got := Reduce(digits); !got.IsZero() {
		t.Fatalf("Reduce(2^3904-1) = %d want 0", got.Value())
	}
	if got := ReduceBytes(make([]byte, 61*8)); !got.IsZero() {
		t.Fatalf("ReduceBytes(zeros) = %d want 0", got.Value())
	}
}

func TestReduceBytesMatchesWords(t *testing.T) {
	words := pseudoDigits[uint64](t, 33)
	b := make([]byte, 0, len(words)*8+3)
	for _, w := range words {
		for k := 0; k < 8; k++ {
			b = append(b, byte(w>>(8*k)))
		}
	}
	if got, want := ReduceBytes(b), Reduce(words); got != want {
		t.Fatalf("ReduceBytes = %d want %d", got.Value(), want.Value())
	}
	// Trailing zero bytes are leading zeros of the number.
	if got, want := ReduceBytes(append(b, 0, 0, 0)), Reduce(words); got != want {
		t.Fatalf("ReduceBytes with zero padding = %d want %d", got.Value(), want.Value())
	}
}

func TestPow2(t *testing.T) {
	two := FromUint64(2)
	for _, k := range []uint64{0, 1, 60, 61, 62, 122, 1000, 1 << 40} {
		if got, want := pow2(k), two.Pow(k); got != want {
			t.Fatalf("pow2(%d) = %d want %d", k, got.Value(), want.Value())
		}
	}
}
