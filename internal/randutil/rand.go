package randutil

import (
	"crypto/rand"
	"fmt"
	mrand "math/rand/v2"

	"github.com/Han-16/boolext/internal/word"
)

// RandomFunction draws a uniformly random vars-variable truth table from
// crypto/rand, stored in a word of zero's type and width.
func RandomFunction[W word.Word[W]](zero W, vars int) (W, error) {
	size := 1 << vars
	buf := make([]byte, (size+7)/8)
	if _, err := rand.Read(buf); err != nil {
		return zero, fmt.Errorf("randutil: read entropy: %w", err)
	}
	return fromBytes(zero, size, buf), nil
}

// FunctionFrom draws a truth table from r, for reproducible sampling.
func FunctionFrom[W word.Word[W]](r *mrand.Rand, zero W, vars int) W {
	size := 1 << vars
	buf := make([]byte, (size+7)/8)
	for i := range buf {
		buf[i] = byte(r.Uint32())
	}
	return fromBytes(zero, size, buf)
}

// BalancedFrom draws a balanced truth table from r by shuffling exactly
// 2^(vars-1) ones over the domain.
func BalancedFrom[W word.Word[W]](r *mrand.Rand, zero W, vars int) W {
	size := 1 << vars
	pos := r.Perm(size)
	f := zero
	for _, x := range pos[:size/2] {
		f = f.SetBit(uint(x), true)
	}
	return f
}

func fromBytes[W word.Word[W]](zero W, size int, buf []byte) W {
	f := zero
	for x := 0; x < size; x++ {
		if buf[x/8]&(1<<(x%8)) != 0 {
			f = f.SetBit(uint(x), true)
		}
	}
	return f
}
