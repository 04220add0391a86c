package boolfn

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Spectrum maps an absolute transform value to the number of frequencies
// (or offsets) that produce it.
type Spectrum map[int]int

// Add counts one more occurrence of magnitude.
func (s Spectrum) Add(magnitude int) {
	s[magnitude]++
}

// Equal reports whether both spectra have the same multiplicities.
func (s Spectrum) Equal(o Spectrum) bool {
	return maps.Equal(s, o)
}

// Keys returns the magnitudes present, largest first.
func (s Spectrum) Keys() []int {
	keys := slices.Collect(maps.Keys(s))
	slices.Sort(keys)
	slices.Reverse(keys)
	return keys
}

// Total returns the number of frequencies counted.
func (s Spectrum) Total() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}

// Mass returns the sum of count * magnitude^2. For a Walsh spectrum of an
// n-variable function it is 2^(2n) (Parseval).
func (s Spectrum) Mass() int {
	m := 0
	for v, c := range s {
		m += c * v * v
	}
	return m
}

// String renders the spectrum as {magnitude: count, ...}, largest first.
func (s Spectrum) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range s.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d: %d", k, s[k])
	}
	b.WriteByte('}')
	return b.String()
}
