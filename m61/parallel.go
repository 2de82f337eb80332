package m61

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultMinChunk is the smallest number of digits handed to a single
// worker by ReduceParallel. Shorter inputs are reduced serially.
const DefaultMinChunk = 1 << 14

type parallelConfig struct {
	workers  int
	minChunk int
}

// Opt configures ReduceParallel.
type Opt func(*parallelConfig)

// WithWorkers bounds the number of concurrently running workers.
// Values below one are treated as one.
func WithWorkers(n int) Opt {
	return func(c *parallelConfig) {
		c.workers = max(n, 1)
	}
}

// WithMinChunk sets the minimum number of digits per worker.
// Values below one are treated as one.
func WithMinChunk(n int) Opt {
	return func(c *parallelConfig) {
		c.minChunk = max(n, 1)
	}
}

func newParallelConfig(opts []Opt) parallelConfig {
	c := parallelConfig{
		workers:  runtime.GOMAXPROCS(0),
		minChunk: DefaultMinChunk,
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// ReduceParallel computes the same value as Reduce, splitting digits into
// chunks that are reduced concurrently.
//
// Chunk i starts at digit i·step, so its residue is scaled by
// 2^(i·step·w) before the partial results are summed; because 2^61 ≡ 1
// the scale is the single power of two 2^(i·step·w mod 61).
//
// The returned error is non-nil only when ctx is done before every chunk
// has been reduced.
func ReduceParallel[T Digit](ctx context.Context, digits []T, opts ...Opt) (M61, error) {
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	cfg := newParallelConfig(opts)
	if len(digits) < cfg.minChunk || cfg.workers == 1 {
		return Reduce(digits), nil
	}

	step := max(len(digits)/cfg.workers, cfg.minChunk)
	chunks := (len(digits) + step - 1) / step
	partial := make([]M61, chunks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i := 0; i < chunks; i++ {
		i := i
		part := digits[i*step : min((i+1)*step, len(digits))]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partial[i] = Reduce(part)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zero, err
	}

	scale := pow2(uint64(step) * uint64(digitBits[T]()))
	acc, factor := zero, one
	for _, p := range partial {
		acc = acc.Add(p.Mul(factor))
		factor = factor.Mul(scale)
	}
	return acc, nil
}
