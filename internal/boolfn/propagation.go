package boolfn

import "github.com/Han-16/boolext/internal/combin"

// SatisfiesSAC reports the strict avalanche criterion: flipping any single
// input bit leaves the output unchanged on exactly half of the inputs.
func (t *Tester[W]) SatisfiesSAC(f W) bool {
	for j := 0; j < t.vars; j++ {
		if t.invariant(f, 1<<j) != t.size/2 {
			return false
		}
	}
	return true
}

// SatisfiesPropagation reports the propagation criterion of degree k:
// flipping any nonempty set of at most k input bits leaves the output
// unchanged on exactly half of the inputs.
//
// The check is staged: degree 0 always holds, degree 1 is SAC, and no
// degree above 1 is examined unless SAC holds.
func (t *Tester[W]) SatisfiesPropagation(f W, k int) bool {
	if k <= 0 {
		return true
	}
	if !t.SatisfiesSAC(f) {
		return false
	}
	for d := 2; d <= k; d++ {
		if !t.propagatesAt(f, d) {
			return false
		}
	}
	return true
}

// MaxPropagationDegree returns the largest k for which f satisfies the
// propagation criterion of degree k.
func (t *Tester[W]) MaxPropagationDegree(f W) int {
	if !t.SatisfiesSAC(f) {
		return 0
	}
	for d := 2; d <= t.vars; d++ {
		if !t.propagatesAt(f, d) {
			return d - 1
		}
	}
	return t.vars
}

// propagatesAt checks every flip mask made of exactly d variables. Degrees
// above the variable count have no masks and hold vacuously.
func (t *Tester[W]) propagatesAt(f W, d int) bool {
	for mask := range combin.Masks(t.vars, d) {
		if t.invariant(f, mask) != t.size/2 {
			return false
		}
	}
	return true
}
