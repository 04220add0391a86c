// Package boolfn tests Boolean functions, stored as packed truth tables, for
// cryptographic properties: algebraic degree, balance, avalanche and
// propagation criteria, correlation immunity, Walsh and autocorrelation
// spectra and linearity.
//
// Bit x of a truth table is the output for input x, with bit j of x holding
// variable j. A Tester is immutable once built and safe for concurrent use.
package boolfn

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/Han-16/boolext/internal/word"
)

// ErrWidth is returned when the variable count does not fit the word type.
var ErrWidth = errors.New("boolfn: variable count does not fit word width")

// Tester evaluates properties of n-variable functions held in words of type W.
type Tester[W word.Word[W]] struct {
	vars int
	size int
	zero W
	mask W
	// anfMasks[r] selects the positions whose bit r is clear.
	anfMasks []W
}

// New returns a tester for vars-variable functions. zero must be the zero
// value of W at the width that will be used (it matters for word.Wide).
func New[W word.Word[W]](vars int, zero W) (*Tester[W], error) {
	if vars < 1 || vars > 30 || 1<<vars > zero.Width() {
		return nil, fmt.Errorf("%w: %d variables in %d bits", ErrWidth, vars, zero.Width())
	}
	t := &Tester[W]{
		vars: vars,
		size: 1 << vars,
		zero: zero,
		mask: word.Mask(zero, 1<<vars),
	}
	t.anfMasks = make([]W, vars)
	for r := range vars {
		m := zero
		for x := 0; x < t.size; x++ {
			if x&(1<<r) == 0 {
				m = m.SetBit(uint(x), true)
			}
		}
		t.anfMasks[r] = m
	}
	return t, nil
}

// MustNew is New for widths known to be valid; it panics on error.
func MustNew[W word.Word[W]](vars int, zero W) *Tester[W] {
	t, err := New(vars, zero)
	if err != nil {
		panic(err)
	}
	return t
}

// Vars returns the number of input variables.
func (t *Tester[W]) Vars() int { return t.vars }

// Size returns 2^Vars, the number of inputs.
func (t *Tester[W]) Size() int { return t.size }

// Zero returns the constant-zero function.
func (t *Tester[W]) Zero() W { return t.zero }

// Mask returns the constant-one function (all meaningful bits set).
func (t *Tester[W]) Mask() W { return t.mask }

// Normalize clears the bits above the truth table.
func (t *Tester[W]) Normalize(f W) W { return f.And(t.mask) }

// Complement returns the negated function.
func (t *Tester[W]) Complement(f W) W { return f.Not().And(t.mask) }

// Eval returns f(x). The input is reduced to Vars bits first, so an
// out-of-domain index wraps instead of reading bits outside the table.
func (t *Tester[W]) Eval(f W, x uint32) bool {
	return f.Bit(uint(x & uint32(t.size-1)))
}

// Dot returns the number of positions set in both a and b; its low bit is
// the inner product of a and b over GF(2).
func Dot(a, b uint32) int {
	return bits.OnesCount32(a & b)
}
