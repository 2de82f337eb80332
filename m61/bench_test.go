package m61

import (
	"context"
	"testing"
)

var sink M61

func BenchmarkMul(b *testing.B) {
	x, y := FromUint64(0x1234_5678_9abc_def0), FromUint64(0x0fed_cba9_8765_4321)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = x.Mul(y)
	}
	sink = x
}

func BenchmarkInverse(b *testing.B) {
	x := FromUint64(0x1234_5678_9abc_def0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink, _ = x.Inverse()
	}
}

func BenchmarkReduceU64(b *testing.B) {
	digits := pseudoDigits[uint64](b, 1<<16)
	b.SetBytes(int64(len(digits) * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = Reduce(digits)
	}
}

func BenchmarkReduceBytes(b *testing.B) {
	digits := pseudoDigits[uint8](b, 1<<19)
	b.SetBytes(int64(len(digits)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = ReduceBytes(digits)
	}
}

func BenchmarkReduceParallelU64(b *testing.B) {
	digits := pseudoDigits[uint64](b, 1<<20)
	ctx := context.Background()
	b.SetBytes(int64(len(digits) * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink, _ = ReduceParallel(ctx, digits)
	}
}
