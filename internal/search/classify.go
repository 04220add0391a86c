package search

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/Han-16/boolext/internal/classes"
	"github.com/Han-16/boolext/internal/word"
)

// Anomaly is a function matching zero or several reference classes.
type Anomaly struct {
	Function word.U32
	Matches  []int
}

// ClassCounts holds one counter per reference class. Counters are updated
// atomically by the workers of a run.
type ClassCounts struct {
	counters  []atomic.Uint64
	anomalies atomic.Uint64
}

func newClassCounts(n int) *ClassCounts {
	return &ClassCounts{counters: make([]atomic.Uint64, n)}
}

// Count returns the number of functions that matched only class i.
func (c *ClassCounts) Count(i int) uint64 { return c.counters[i].Load() }

// Anomalies returns the number of functions not matching exactly one class.
func (c *ClassCounts) Anomalies() uint64 { return c.anomalies.Load() }

// Snapshot returns every class count.
func (c *ClassCounts) Snapshot() []uint64 {
	out := make([]uint64, len(c.counters))
	for i := range c.counters {
		out[i] = c.counters[i].Load()
	}
	return out
}

// Total returns the number of classified functions, anomalies included.
func (c *ClassCounts) Total() uint64 {
	n := c.Anomalies()
	for i := range c.counters {
		n += c.counters[i].Load()
	}
	return n
}

// Classify matches every function of r against table by Walsh and
// autocorrelation spectra. Functions matching exactly one class increment
// that class' counter; the others are passed to report (serialized).
func Classify(ctx context.Context, r Range, table *classes.Table, opts Options, report func(Anomaly)) (*ClassCounts, error) {
	counts := newClassCounts(table.Len())
	var mu sync.Mutex
	err := Run(ctx, r, opts, func(ctx context.Context, lo, hi uint64) error {
		for n := lo; n < hi; n++ {
			f := word.U32(n)
			m := table.Classify(f)
			if len(m) == 1 {
				counts.counters[m[0]].Add(1)
				continue
			}
			counts.anomalies.Add(1)
			if report != nil {
				mu.Lock()
				report(Anomaly{Function: f, Matches: m})
				mu.Unlock()
			}
		}
		return ctx.Err()
	})
	return counts, err
}
