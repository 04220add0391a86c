package boolfn

// Autocorrelation returns the number of inputs where f(x) == f(x ^ w),
// minus the number where they differ.
func (t *Tester[W]) Autocorrelation(f W, w uint32) int {
	return 2*t.invariant(f, w) - t.size
}

// AutocorrelationSpectrum counts the absolute autocorrelation values over
// all offsets, including the zero offset.
func (t *Tester[W]) AutocorrelationSpectrum(f W) Spectrum {
	s := make(Spectrum)
	for w := uint32(0); w < uint32(t.size); w++ {
		s.Add(abs(t.Autocorrelation(f, w)))
	}
	return s
}

// AbsoluteIndicator is the largest absolute autocorrelation over nonzero
// offsets. It is zero only for bent functions.
func (t *Tester[W]) AbsoluteIndicator(f W) int {
	peak := 0
	for w := uint32(1); w < uint32(t.size); w++ {
		peak = max(peak, abs(t.Autocorrelation(f, w)))
	}
	return peak
}

// invariant counts the inputs x with f(x) == f(x ^ mask).
func (t *Tester[W]) invariant(f W, mask uint32) int {
	mask &= uint32(t.size - 1)
	n := 0
	for x := uint32(0); x < uint32(t.size); x++ {
		if t.Eval(f, x) == t.Eval(f, x^mask) {
			n++
		}
	}
	return n
}
