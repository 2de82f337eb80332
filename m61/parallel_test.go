package m61

import (
	"context"
	"errors"
	"testing"
)

func checkParallel[T Digit](t *testing.T, name string) {
	t.Helper()
	ctx := context.Background()
	for n := 0; n < 1000; n += 37 {
		digits := pseudoDigits[T](t, n)
		want := Reduce(digits)
		for _, workers := range []int{1, 2, 3, 16} {
			got, err := ReduceParallel(ctx, digits, WithWorkers(workers), WithMinChunk(32))
			if err != nil {
				t.Fatalf("ReduceParallel[%s]: %v", name, err)
			}
			if got != want {
				t.Fatalf("ReduceParallel[%s](len %d, %d workers) = %d want %d", name, n, workers, got.Value(), want.Value())
			}
		}
	}
}

func TestReduceParallel(t *testing.T) {
	checkParallel[uint8](t, "uint8")
	checkParallel[uint16](t, "uint16")
	checkParallel[uint32](t, "uint32")
	checkParallel[uint64](t, "uint64")
}

func TestReduceParallelOnes(t *testing.T) {
	for i := 0; i < 1000; i += 11 {
		v := make([]uint8, i)
		for j := range v {
			v[j] = 1
		}
		got, err := ReduceParallel(context.Background(), v, WithWorkers(16), WithMinChunk(32))
		if err != nil {
			t.Fatalf("ReduceParallel: %v", err)
		}
		if want := Reduce(v); got != want {
			t.Fatalf("len %d: got %d want %d", i, got.Value(), want.Value())
		}
	}
}

func TestReduceParallelDefaults(t *testing.T) {
	digits := pseudoDigits[uint64](t, 3*DefaultMinChunk+5)
	got, err := ReduceParallel(context.Background(), digits, WithWorkers(4))
	if err != nil {
		t.Fatalf("ReduceParallel: %v", err)
	}
	if want := Reduce(digits); got != want {
		t.Fatalf("got %d want %d", got.Value(), want.Value())
	}
}

func TestReduceParallelCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReduceParallel(ctx, pseudoDigits[uint32](t, 512), WithWorkers(4), WithMinChunk(32))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v want context.Canceled", err)
	}
}

func TestParallelConfigClamp(t *testing.T) {
	c := newParallelConfig([]Opt{WithWorkers(-3), WithMinChunk(0)})
	if c.workers != 1 || c.minChunk != 1 {
		t.Fatalf("config = %+v want workers=1 minChunk=1", c)
	}
	if d := newParallelConfig(nil); d.workers < 1 || d.minChunk != DefaultMinChunk {
		t.Fatalf("defaults = %+v", d)
	}
}
