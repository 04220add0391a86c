package word

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Wide is a fixed-length bit vector of arbitrary width, for truth tables
// beyond nine variables. The zero Wide is unusable; build one with NewWide.
type Wide struct {
	set *bitset.BitSet
}

// NewWide returns the all-zero value of the given width in bits.
func NewWide(width int) Wide {
	return Wide{set: bitset.New(uint(width))}
}

func (a Wide) binary(b Wide, op func(*bitset.BitSet, *bitset.BitSet) *bitset.BitSet) Wide {
	if a.set.Len() != b.set.Len() {
		panic(fmt.Sprintf("word: width mismatch %d != %d", a.set.Len(), b.set.Len()))
	}
	return Wide{set: op(a.set, b.set)}
}

func (a Wide) And(b Wide) Wide {
	return a.binary(b, (*bitset.BitSet).Intersection)
}

func (a Wide) Or(b Wide) Wide {
	return a.binary(b, (*bitset.BitSet).Union)
}

func (a Wide) Xor(b Wide) Wide {
	return a.binary(b, (*bitset.BitSet).SymmetricDifference)
}

func (a Wide) Not() Wide {
	return Wide{set: a.set.Complement()}
}

func (a Wide) Lsh(n uint) Wide {
	out := bitset.New(a.set.Len())
	for i, ok := a.set.NextSet(0); ok; i, ok = a.set.NextSet(i + 1) {
		if i+n < a.set.Len() {
			out.Set(i + n)
		}
	}
	return Wide{set: out}
}

func (a Wide) Rsh(n uint) Wide {
	out := bitset.New(a.set.Len())
	for i, ok := a.set.NextSet(n); ok; i, ok = a.set.NextSet(i + 1) {
		out.Set(i - n)
	}
	return Wide{set: out}
}

func (a Wide) Equal(b Wide) bool { return a.set.Equal(b.set) }

func (a Wide) IsZero() bool { return a.set.None() }

func (a Wide) OnesCount() int { return int(a.set.Count()) }

func (a Wide) Bit(i uint) bool { return a.set.Test(i) }

func (a Wide) SetBit(i uint, v bool) Wide {
	if i >= a.set.Len() {
		return a
	}
	out := a.set.Clone()
	out.SetTo(i, v)
	return Wide{set: out}
}

func (a Wide) Width() int { return int(a.set.Len()) }

// String renders a in hexadecimal.
func (a Wide) String() string {
	z := new(big.Int)
	for i, ok := a.set.NextSet(0); ok; i, ok = a.set.NextSet(i + 1) {
		z.SetBit(z, int(i), 1)
	}
	return "0x" + z.Text(16)
}

// ParseWide decodes a decimal or 0x-prefixed number into a Wide of width bits.
func ParseWide(s string, width int) (Wide, error) {
	z, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok || z.Sign() < 0 || z.BitLen() > width {
		return Wide{}, fmt.Errorf("%w %q", ErrParse, s)
	}
	out := bitset.New(uint(width))
	for i := 0; i < z.BitLen(); i++ {
		if z.Bit(i) == 1 {
			out.Set(uint(i))
		}
	}
	return Wide{set: out}, nil
}
