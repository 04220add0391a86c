package word

import (
	"fmt"
	"math/bits"
	"strconv"
)

// U32 holds truth tables of up to five variables.
type U32 uint32

// MaxU32 has all 32 bits set.
const MaxU32 = U32(^uint32(0))

func (a U32) And(b U32) U32 { return a & b }
func (a U32) Or(b U32) U32 { return a | b }
func (a U32) Xor(b U32) U32 { return a ^ b }
func (a U32) Not() U32 { return ^a }
func (a U32) Equal(b U32) bool { return a == b }
func (a U32) IsZero() bool { return a == 0 }
func (a U32) OnesCount() int { return bits.OnesCount32(uint32(a)) }
func (a U32) Width() int { return 32 }
func (a U32) String() string { return fmt.Sprintf("0x%08x", uint32(a)) }
func (a U32) Bit(i uint) bool { return i < 32 && a&(1<<i) != 0 }
func (a U32) Lsh(n uint) U32 { return a << n }
func (a U32) Rsh(n uint) U32 { return a >> n }

func (a U32) SetBit(i uint, v bool) U32 {
	if i >= 32 {
		return a
	}
	if v {
		return a | 1<<i
	}
	return a &^ (1 << i)
}

// ParseU32 accepts decimal or 0x-prefixed hexadecimal function numbers.
func ParseU32(s string) (U32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrParse, s, err)
	}
	return U32(v), nil
}
