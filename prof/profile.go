package prof

import (
	"sort"
	"sync"
	"time"
)

// Entry represents a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
	Bytes int64
}

// Throughput returns the processed bytes per second, or 0 when unknown.
func (e Entry) Throughput() float64 {
	if e.Dur <= 0 || e.Bytes <= 0 {
		return 0
	}
	return float64(e.Bytes) / e.Dur.Seconds()
}

// Recorder collects timing entries. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	record []Entry
}

// Track records the duration since start under label. bytes is the amount
// of input processed, or 0.
func (r *Recorder) Track(start time.Time, label string, bytes int64) {
	elapsed := time.Since(start)
	r.mu.Lock()
	r.record = append(r.record, Entry{Label: label, Dur: elapsed, Bytes: bytes})
	r.mu.Unlock()
}

// SnapshotAndReset returns the collected timing entries and clears them.
func (r *Recorder) SnapshotAndReset() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.record))
	copy(out, r.record)
	r.record = nil
	return out
}

// Best reduces entries to the fastest run per label, in first-seen label
// order.
func Best(entries []Entry) []Entry {
	idx := make(map[string]int)
	var out []Entry
	for _, e := range entries {
		i, ok := idx[e.Label]
		if !ok {
			idx[e.Label] = len(out)
			out = append(out, e)
			continue
		}
		if e.Dur < out[i].Dur {
			out[i] = e
		}
	}
	return out
}

// Median returns the median duration of entries, or 0 for none.
func Median(entries []Entry) time.Duration {
	if len(entries) == 0 {
		return 0
	}
	d := make([]time.Duration, len(entries))
	for i, e := range entries {
		d[i] = e.Dur
	}
	sort.Slice(d, func(i, j int) bool { return d[i] < d[j] })
	return d[len(d)/2]
}
