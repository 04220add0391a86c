package boolfn

// IsLinear reports whether f is affine: equal, possibly complemented, to an
// XOR of a subset of its input variables.
//
// For g in {f, ¬f} it rebuilds the table L(i) = XOR over the variables j
// with g(2^j) set of [bit j of i is 0] and accepts when L equals g or ¬g.
// Only the single-variable positions of g are read to build L.
func (t *Tester[W]) IsLinear(f W) bool {
	f = t.Normalize(f)
	for _, g := range [2]W{f, t.Complement(f)} {
		l := t.linearFromUnitInputs(g)
		if l.Equal(g) || l.Equal(t.Complement(g)) {
			return true
		}
	}
	return false
}

func (t *Tester[W]) linearFromUnitInputs(g W) W {
	var sel uint32
	for j := 0; j < t.vars; j++ {
		if g.Bit(1 << j) {
			sel |= 1 << j
		}
	}
	out := t.zero
	for i := uint32(0); i < uint32(t.size); i++ {
		// Parity of the selected variables that are zero in i.
		if Dot(sel, ^i)&1 == 1 {
			out = out.SetBit(uint(i), true)
		}
	}
	return out
}
