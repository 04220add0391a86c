// Package ring extends a small Boolean function into a larger one by running
// it as a cellular automaton rule on a ring of cells.
//
// A base function of n variables (n odd) reads a cell and its (n-1)/2
// neighbours on each side. The ring has 2n-1 cells, so each of its 2^(2n-1)
// initial states is one input of the extended function; the output is the
// state of a designated cell after a fixed number of synchronous rounds.
package ring

import (
	"errors"
	"fmt"

	"github.com/Han-16/boolext/internal/boolfn"
	"github.com/Han-16/boolext/internal/word"
)

// Errors returned by NewExtender.
var (
	ErrNeighborhood = errors.New("ring: base function must have an odd number of variables")
	ErrRingTooWide  = errors.New("ring: extended width does not match ring length")
	ErrCell         = errors.New("ring: designated cell outside ring")
)

// Extender maps S-word functions to L-word functions. It is immutable and
// safe for concurrent use.
type Extender[S word.Word[S], L word.Word[L]] struct {
	base   *boolfn.Tester[S]
	ext    *boolfn.Tester[L]
	length int
	radius int
	cell   int
	rounds int
}

// Option configures an Extender.
type Option func(*config)

type config struct {
	cell   int
	rounds int
}

// WithCell selects the cell read after the last round. The default is the
// middle of the ring.
func WithCell(cell int) Option {
	return func(c *config) { c.cell = cell }
}

// WithRounds sets the number of synchronous update rounds (default 2).
func WithRounds(rounds int) Option {
	return func(c *config) { c.rounds = rounds }
}

// NewExtender builds an extender from a base tester of n variables to an
// extended tester of 2n-1 variables.
func NewExtender[S word.Word[S], L word.Word[L]](base *boolfn.Tester[S], ext *boolfn.Tester[L], opts ...Option) (*Extender[S, L], error) {
	n := base.Vars()
	if n%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNeighborhood, n)
	}
	length := 2*n - 1
	if ext.Vars() != length {
		return nil, fmt.Errorf("%w: ring of %d cells, extended function has %d variables",
			ErrRingTooWide, length, ext.Vars())
	}
	cfg := config{cell: length / 2, rounds: 2}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cell < 0 || cfg.cell >= length {
		return nil, fmt.Errorf("%w: %d of %d", ErrCell, cfg.cell, length)
	}
	return &Extender[S, L]{
		base:   base,
		ext:    ext,
		length: length,
		radius: n / 2,
		cell:   cfg.cell,
		rounds: max(cfg.rounds, 0),
	}, nil
}

// Base returns the tester of the base functions.
func (e *Extender[S, L]) Base() *boolfn.Tester[S] { return e.base }

// Target returns the tester of the extended functions.
func (e *Extender[S, L]) Target() *boolfn.Tester[L] { return e.ext }

// Length returns the number of cells in the ring.
func (e *Extender[S, L]) Length() int { return e.length }

// Extend returns the extended function of f. Bit i of the result is the
// designated cell after the rounds, starting from the ring whose cell k
// holds bit k of i.
func (e *Extender[S, L]) Extend(f S) L {
	out := e.ext.Zero()
	cur := make([]bool, e.length)
	next := make([]bool, e.length)
	for i := 0; i < 1<<e.length; i++ {
		for k := range cur {
			cur[k] = i&(1<<k) != 0
		}
		for range e.rounds {
			e.step(f, cur, next)
			cur, next = next, cur
		}
		if cur[e.cell] {
			out = out.SetBit(uint(i), true)
		}
	}
	return out
}

// Trajectory returns the ring states of initial configuration i, from the
// initial state through every round.
func (e *Extender[S, L]) Trajectory(f S, i uint32) [][]bool {
	cur := make([]bool, e.length)
	for k := range cur {
		cur[k] = i&(1<<k) != 0
	}
	states := [][]bool{cur}
	for range e.rounds {
		next := make([]bool, e.length)
		e.step(f, cur, next)
		states = append(states, next)
		cur = next
	}
	return states
}

// step computes one synchronous round from cur into next. The leftmost
// neighbour is the most significant bit of the rule input.
func (e *Extender[S, L]) step(f S, cur, next []bool) {
	for p := 0; p < e.length; p++ {
		var idx uint32
		for off := -e.radius; off <= e.radius; off++ {
			idx <<= 1
			if cur[(p+off+e.length)%e.length] {
				idx |= 1
			}
		}
		next[p] = e.base.Eval(f, idx)
	}
}

// Extend5to9 is the standard configuration: a 5-variable rule on a ring of
// nine cells, two rounds, reading the middle cell.
type Extend5to9 = Extender[word.U32, word.U512]

// NewExtend5to9 returns the standard 5-to-9 extender.
func NewExtend5to9() *Extend5to9 {
	e, err := NewExtender(boolfn.MustNew[word.U32](5, 0), boolfn.MustNew(9, word.U512{}))
	if err != nil {
		panic(err)
	}
	return e
}
