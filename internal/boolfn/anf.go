package boolfn

import "math/bits"

// ANF returns the algebraic normal form of f: bit m of the result is the
// coefficient of the monomial whose variables are the set bits of m.
//
// Each of the Vars stages pairs position a (bit r clear) with a+2^r and
// XORs the lower half into the upper one. The transform is an involution.
func (t *Tester[W]) ANF(f W) W {
	out := t.Normalize(f)
	for r := 0; r < t.vars; r++ {
		dist := uint(1) << r
		out = out.Xor(out.And(t.anfMasks[r]).Lsh(dist))
	}
	return out
}

// Degree returns the algebraic degree of f, the largest monomial weight in
// its ANF. Constant functions have degree 0.
func (t *Tester[W]) Degree(f W) int {
	anf := t.ANF(f)
	deg := 0
	for m := 0; m < t.size; m++ {
		if anf.Bit(uint(m)) {
			deg = max(deg, bits.OnesCount32(uint32(m)))
		}
	}
	return deg
}

// IsBalanced reports whether f outputs 1 on exactly half of its inputs.
func (t *Tester[W]) IsBalanced(f W) bool {
	return t.Normalize(f).OnesCount() == t.size/2
}
