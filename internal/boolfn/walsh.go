package boolfn

// Walsh returns the Walsh–Hadamard coefficient of f at frequency w: the
// number of inputs where f(x) equals the parity of w·x, minus the number
// where it differs. The result lies in [-2^n, 2^n].
func (t *Tester[W]) Walsh(f W, w uint32) int {
	w &= uint32(t.size - 1)
	sum := 0
	for x := uint32(0); x < uint32(t.size); x++ {
		lin := Dot(w, x)&1 == 1
		if t.Eval(f, x) == lin {
			sum++
		} else {
			sum--
		}
	}
	return sum
}

// WalshSpectrum counts the absolute Walsh coefficients over all frequencies.
func (t *Tester[W]) WalshSpectrum(f W) Spectrum {
	s := make(Spectrum)
	for w := uint32(0); w < uint32(t.size); w++ {
		s.Add(abs(t.Walsh(f, w)))
	}
	return s
}

// IsCorrelationImmune reports first-order correlation immunity: every
// Walsh coefficient at a single-variable frequency is zero.
func (t *Tester[W]) IsCorrelationImmune(f W) bool {
	for j := 0; j < t.vars; j++ {
		if t.Walsh(f, 1<<j) != 0 {
			return false
		}
	}
	return true
}

// Nonlinearity returns the Hamming distance from f to the nearest affine
// function, 2^(n-1) - max|W(f, w)|/2.
func (t *Tester[W]) Nonlinearity(f W) int {
	peak := 0
	for w := uint32(0); w < uint32(t.size); w++ {
		peak = max(peak, abs(t.Walsh(f, w)))
	}
	return t.size/2 - peak/2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
