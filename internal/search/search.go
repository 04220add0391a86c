// Package search runs property tests over ranges of 5-variable function
// numbers in parallel and reduces the results.
package search

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// MaxFunction is one past the largest 5-variable function number.
const MaxFunction = uint64(1) << 32

const defaultChunk = 1 << 16

// ErrRange is returned for ranges outside [0, MaxFunction].
var ErrRange = errors.New("search: invalid range")

// Range is the half-open interval [Lo, Hi) of function numbers.
type Range struct {
	Lo, Hi uint64
}

// All is the range of every 5-variable function.
var All = Range{0, MaxFunction}

// Len returns the number of functions in r.
func (r Range) Len() uint64 { return r.Hi - r.Lo }

func (r Range) validate() error {
	if r.Hi < r.Lo || r.Hi > MaxFunction {
		return fmt.Errorf("%w: [%d, %d)", ErrRange, r.Lo, r.Hi)
	}
	return nil
}

// Options tune a driver run.
type Options struct {
	// Workers bounds the chunks processed at once; <= 0 uses GOMAXPROCS.
	Workers int
	// Chunk is the number of functions per task; 0 uses 65536.
	Chunk uint64
	// Logger receives progress; the zero value logs nothing.
	Logger zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Chunk == 0 {
		o.Chunk = defaultChunk
	}
	return o
}

// Run splits r into chunks and calls fn on each one from a bounded pool of
// goroutines. The first error cancels the remaining chunks; cancelling ctx
// stops scheduling new chunks and is reported as ctx.Err().
func Run(ctx context.Context, r Range, opts Options, fn func(ctx context.Context, lo, hi uint64) error) error {
	if err := r.validate(); err != nil {
		return err
	}
	o := opts.withDefaults()
	start := time.Now()
	o.Logger.Info().
		Uint64("from", r.Lo).
		Uint64("to", r.Hi).
		Int("workers", o.Workers).
		Uint64("chunk", o.Chunk).
		Msg("scan started")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	var done atomic.Uint64
	for lo := r.Lo; lo < r.Hi; lo += o.Chunk {
		if gctx.Err() != nil {
			break
		}
		hi := min(lo+o.Chunk, r.Hi)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := fn(gctx, lo, hi); err != nil {
				return err
			}
			n := done.Add(hi - lo)
			o.Logger.Debug().
				Uint64("lo", lo).
				Uint64("hi", hi).
				Uint64("done", n).
				Msg("chunk finished")
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		o.Logger.Warn().Err(err).Uint64("done", done.Load()).Msg("scan stopped")
		return err
	}
	o.Logger.Info().
		Uint64("functions", done.Load()).
		Dur("elapsed", time.Since(start)).
		Msg("scan finished")
	return nil
}
