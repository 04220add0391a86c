package search

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/Han-16/boolext/internal/ring"
	"github.com/Han-16/boolext/internal/word"
)

// Hit is a function whose ring extension keeps its algebraic degree.
type Hit struct {
	Function word.U32
	Extended word.U512
	Degree   int
}

// DegreePreserving extends every function of r with e and reports, through
// emit, those whose extension has the same degree. emit calls are
// serialized. It returns the number of hits.
func DegreePreserving(ctx context.Context, r Range, e *ring.Extend5to9, opts Options, emit func(Hit)) (uint64, error) {
	base, ext := e.Base(), e.Target()
	var hits atomic.Uint64
	var mu sync.Mutex
	err := Run(ctx, r, opts, func(ctx context.Context, lo, hi uint64) error {
		for n := lo; n < hi; n++ {
			f := word.U32(n)
			g := e.Extend(f)
			d := base.Degree(f)
			if ext.Degree(g) != d {
				continue
			}
			hits.Add(1)
			if emit != nil {
				mu.Lock()
				emit(Hit{Function: f, Extended: g, Degree: d})
				mu.Unlock()
			}
		}
		return ctx.Err()
	})
	return hits.Load(), err
}
