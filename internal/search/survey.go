package search

import (
	"context"
	"sync"

	"github.com/Han-16/boolext/internal/boolfn"
	"github.com/Han-16/boolext/internal/word"
)

// Survey holds property counts over a range of 5-variable functions.
type Survey struct {
	Functions         uint64
	Balanced          uint64
	SAC               uint64
	CorrelationImmune uint64
	Linear            uint64
	// Propagation[k] counts functions satisfying the criterion of degree k,
	// for 1 <= k <= 5. Index 0 is unused.
	Propagation [6]uint64
	// Degrees[d] counts functions of algebraic degree d.
	Degrees [6]uint64
}

func (s *Survey) merge(o *Survey) {
	s.Functions += o.Functions
	s.Balanced += o.Balanced
	s.SAC += o.SAC
	s.CorrelationImmune += o.CorrelationImmune
	s.Linear += o.Linear
	for i := range s.Propagation {
		s.Propagation[i] += o.Propagation[i]
	}
	for i := range s.Degrees {
		s.Degrees[i] += o.Degrees[i]
	}
}

// RunSurvey counts the properties of every function in r. Each chunk is
// reduced locally and merged once.
func RunSurvey(ctx context.Context, r Range, opts Options) (Survey, error) {
	t := boolfn.MustNew[word.U32](5, 0)
	var total Survey
	var mu sync.Mutex
	err := Run(ctx, r, opts, func(ctx context.Context, lo, hi uint64) error {
		var part Survey
		for n := lo; n < hi; n++ {
			f := word.U32(n)
			part.Functions++
			part.Degrees[t.Degree(f)]++
			if t.IsBalanced(f) {
				part.Balanced++
			}
			if t.IsCorrelationImmune(f) {
				part.CorrelationImmune++
			}
			if t.IsLinear(f) {
				part.Linear++
			}
			pd := t.MaxPropagationDegree(f)
			if pd >= 1 {
				part.SAC++
			}
			for k := 1; k <= pd; k++ {
				part.Propagation[k]++
			}
		}
		mu.Lock()
		total.merge(&part)
		mu.Unlock()
		return ctx.Err()
	})
	return total, err
}
