package search

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Han-16/boolext/internal/boolfn"
	"github.com/Han-16/boolext/internal/classes"
	"github.com/Han-16/boolext/internal/ring"
	"github.com/Han-16/boolext/internal/word"
)

func TestRunCoversRangeOnce(t *testing.T) {
	var mu sync.Mutex
	seen := map[uint64]int{}
	err := Run(context.Background(), Range{10, 1000}, Options{Workers: 4, Chunk: 37}, func(_ context.Context, lo, hi uint64) error {
		mu.Lock()
		defer mu.Unlock()
		for n := lo; n < hi; n++ {
			seen[n]++
		}
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, 990)
	for n, c := range seen {
		assert.Equal(t, 1, c, "n=%d", n)
		assert.True(t, n >= 10 && n < 1000)
	}
}

func TestRunRejectsRange(t *testing.T) {
	noop := func(context.Context, uint64, uint64) error { return nil }
	assert.ErrorIs(t, Run(context.Background(), Range{5, 4}, Options{}, noop), ErrRange)
	assert.ErrorIs(t, Run(context.Background(), Range{0, MaxFunction + 1}, Options{}, noop), ErrRange)
	assert.NoError(t, Run(context.Background(), Range{7, 7}, Options{}, noop))
}

func TestRunStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int64
	err := Run(context.Background(), Range{0, 1 << 20}, Options{Workers: 2, Chunk: 16}, func(_ context.Context, lo, _ uint64) error {
		calls.Add(1)
		if lo == 32 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Less(t, calls.Load(), int64(1<<16))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, Range{0, 1 << 10}, Options{}, func(context.Context, uint64, uint64) error {
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClassifyPrefix(t *testing.T) {
	var anomalies []Anomaly
	counts, err := Classify(context.Background(), Range{0, 4096}, classes.Default(), Options{Workers: 4, Chunk: 256}, func(a Anomaly) {
		anomalies = append(anomalies, a)
	})
	require.NoError(t, err)
	assert.Empty(t, anomalies)
	assert.Equal(t, uint64(0), counts.Anomalies())
	assert.Equal(t, uint64(4096), counts.Total())
	snap := counts.Snapshot()
	assert.Equal(t, []uint64{1, 12, 66, 220, 40}, snap[:5])
	assert.Equal(t, uint64(1), counts.Count(0))
}

func TestClassifyReportsAnomalies(t *testing.T) {
	// A table with the same class twice makes every member ambiguous.
	tab := classes.New("dup", []word.U32{0xaa55aa55, 0xaa55aa55})
	var got []Anomaly
	counts, err := Classify(context.Background(), Range{0, 64}, tab, Options{Workers: 1}, func(a Anomaly) {
		got = append(got, a)
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(64), counts.Total())
	slices.SortFunc(got, func(a, b Anomaly) int { return int(a.Function) - int(b.Function) })
	require.NotEmpty(t, got)
	assert.Equal(t, Anomaly{Function: 0, Matches: []int{0, 1}}, got[0])
}

func TestDegreePreserving(t *testing.T) {
	e := ring.NewExtend5to9()
	r := Range{0, 512}

	var mu sync.Mutex
	var hits []Hit
	n, err := DegreePreserving(context.Background(), r, e, Options{Workers: 3, Chunk: 50}, func(h Hit) {
		mu.Lock()
		hits = append(hits, h)
		mu.Unlock()
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(len(hits)), n)

	var want []word.U32
	for f := word.U32(0); f < 512; f++ {
		if e.Base().Degree(f) == e.Target().Degree(e.Extend(f)) {
			want = append(want, f)
		}
	}
	got := make([]word.U32, len(hits))
	for i, h := range hits {
		got[i] = h.Function
		assert.Equal(t, e.Extend(h.Function), h.Extended)
	}
	slices.Sort(got)
	assert.Equal(t, want, got)
	assert.Contains(t, got, word.U32(0))
}

func TestRunSurvey(t *testing.T) {
	r := Range{0x6a5d0000, 0x6a5d0000 + 3000}
	got, err := RunSurvey(context.Background(), r, Options{Workers: 4, Chunk: 128})
	require.NoError(t, err)

	tst := boolfn.MustNew[word.U32](5, 0)
	var want Survey
	for n := r.Lo; n < r.Hi; n++ {
		f := word.U32(n)
		p := boolfn.Analyze(tst, f)
		want.Functions++
		want.Degrees[p.Degree]++
		if p.Balanced {
			want.Balanced++
		}
		if p.SAC {
			want.SAC++
		}
		if p.CorrelationImmune {
			want.CorrelationImmune++
		}
		if p.Linear {
			want.Linear++
		}
		for k := 1; k <= 5; k++ {
			if tst.SatisfiesPropagation(f, k) {
				want.Propagation[k]++
			}
		}
	}
	assert.Equal(t, want, got)
	assert.Equal(t, uint64(3000), got.Functions)
}
