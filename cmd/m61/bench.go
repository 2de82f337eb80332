package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"m61-modulus/m61"
	"m61-modulus/prof"
)

type benchResult struct {
	Workers int
	Best    time.Duration
	Median  time.Duration
	MBps    float64
}

func (a *app) benchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure serial and parallel digit reduction throughput",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			workers, err := parseWorkers(a.v.GetString(keyWorkers))
			if err != nil {
				return err
			}
			results, err := a.runBench(cmd, workers)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s %-14s %-14s %s\n", "workers", "best", "median", "MB/s")
			for _, r := range results {
				fmt.Fprintf(out, "%-8d %-14v %-14v %.1f\n", r.Workers, r.Best, r.Median, r.MBps)
			}
			path := a.v.GetString(keyOut)
			if path == "" {
				return nil
			}
			f, err := os.Create(path)
			if err != nil {
				return errors.Wrapf(err, "create %s", path)
			}
			defer f.Close()
			if err := renderChart(f, results, a.v.GetInt(keyDigits)); err != nil {
				return errors.Wrapf(err, "render %s", path)
			}
			a.log.Info("wrote chart", zap.String("path", path))
			return nil
		},
	}
	fl := cmd.Flags()
	fl.Int(keyDigits, 1<<22, "number of 64-bit digits in the reduced integer")
	fl.String(keyWorkers, "1,2,4,8", "comma separated worker counts")
	fl.Int(keyChunk, m61.DefaultMinChunk, "minimum digits per worker")
	fl.Int(keyRounds, 5, "runs per worker count")
	fl.String(keyOut, "", "write an HTML throughput chart to this file")
	fl.String(keySeed, "m61 bench", "seed of the digit generator")
	for _, k := range []string{keyDigits, keyWorkers, keyChunk, keyRounds, keyOut, keySeed} {
		mustBind(a.v, k, fl.Lookup(k))
	}
	return cmd
}

func (a *app) runBench(cmd *cobra.Command, workers []int) ([]benchResult, error) {
	n := a.v.GetInt(keyDigits)
	rounds := a.v.GetInt(keyRounds)
	chunk := a.v.GetInt(keyChunk)
	if n < 1 || rounds < 1 {
		return nil, errors.Errorf("digits and rounds must be positive, got %d and %d", n, rounds)
	}

	s, err := m61.NewSeededSampler([]byte(a.v.GetString(keySeed)))
	if err != nil {
		return nil, err
	}
	digits := make([]uint64, n)
	for i := range digits {
		x, err := s.Next()
		if err != nil {
			return nil, err
		}
		// Spread the 61 sampled bits over the full word.
		digits[i] = x.Value()<<3 ^ x.Value()>>50
	}
	want := m61.Reduce(digits)
	a.log.Debug("generated input", zap.Int("digits", n), zap.Stringer("residue", want))

	var rec prof.Recorder
	bytes := int64(n) * 8
	results := make([]benchResult, 0, len(workers))
	for _, w := range workers {
		label := "workers=" + strconv.Itoa(w)
		for i := 0; i < rounds; i++ {
			start := time.Now()
			got, err := m61.ReduceParallel(cmd.Context(), digits, m61.WithWorkers(w), m61.WithMinChunk(chunk))
			if err != nil {
				return nil, errors.Wrap(err, label)
			}
			rec.Track(start, label, bytes)
			if got != want {
				return nil, errors.Errorf("%s: residue %d, serial reduction gave %d", label, got, want)
			}
		}
		runs := rec.SnapshotAndReset()
		best := prof.Best(runs)[0]
		r := benchResult{
			Workers: w,
			Best:    best.Dur,
			Median:  prof.Median(runs),
			MBps:    best.Throughput() / 1e6,
		}
		a.log.Info("bench", zap.Int("workers", w), zap.Duration("best", r.Best), zap.Float64("MB/s", r.MBps))
		results = append(results, r)
	}
	return results, nil
}

func parseWorkers(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		w, err := strconv.Atoi(f)
		if err != nil || w < 1 {
			return nil, errors.Errorf("invalid worker count %q", f)
		}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, errors.New("no worker counts given")
	}
	return out, nil
}
