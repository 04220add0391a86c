// Package combin enumerates k-subsets of a small index set.
package combin

import (
	"iter"

	"gonum.org/v1/gonum/stat/combin"
)

// Subsets yields every k-subset of {0, ..., n-1} in lexicographic order.
// The yielded slice is reused between iterations; clone it to keep it.
// k == 0 yields the empty subset once; k < 0 or k > n yields nothing.
func Subsets(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if n < 0 || k < 0 || k > n {
			return
		}
		gen := combin.NewCombinationGenerator(n, k)
		idx := make([]int, k)
		for gen.Next() {
			if !yield(gen.Combination(idx)) {
				return
			}
		}
	}
}

// Masks yields the bit mask of every k-subset of {0, ..., n-1}, in the
// order of Subsets.
func Masks(n, k int) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for s := range Subsets(n, k) {
			var m uint32
			for _, j := range s {
				m |= 1 << j
			}
			if !yield(m) {
				return
			}
		}
	}
}

// Binomial returns C(n, k), or 0 when k is out of range.
func Binomial(n, k int) int {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	return combin.Binomial(n, k)
}
