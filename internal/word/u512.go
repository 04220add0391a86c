package word

import (
	"fmt"
	"math/big"
	"math/bits"
	"strings"
)

const u512Words = 8

// U512 holds truth tables of up to nine variables as eight little-endian
// 64-bit words.
type U512 [u512Words]uint64

// OneU512 returns the value 1.
func OneU512() U512 { return U512{1} }

// MaxU512 has all 512 bits set.
func MaxU512() U512 {
	var m U512
	for i := range m {
		m[i] = ^uint64(0)
	}
	return m
}

func (a U512) And(b U512) U512 {
	for i := range a {
		a[i] &= b[i]
	}
	return a
}

func (a U512) Or(b U512) U512 {
	for i := range a {
		a[i] |= b[i]
	}
	return a
}

func (a U512) Xor(b U512) U512 {
	for i := range a {
		a[i] ^= b[i]
	}
	return a
}

func (a U512) Not() U512 {
	for i := range a {
		a[i] = ^a[i]
	}
	return a
}

func (a U512) Lsh(n uint) U512 {
	var out U512
	if n >= 512 {
		return out
	}
	ws, bs := int(n/64), n%64
	for i := u512Words - 1; i >= ws; i-- {
		out[i] = a[i-ws] << bs
		if bs > 0 && i-ws-1 >= 0 {
			out[i] |= a[i-ws-1] >> (64 - bs)
		}
	}
	return out
}

func (a U512) Rsh(n uint) U512 {
	var out U512
	if n >= 512 {
		return out
	}
	ws, bs := int(n/64), n%64
	for i := 0; i+ws < u512Words; i++ {
		out[i] = a[i+ws] >> bs
		if bs > 0 && i+ws+1 < u512Words {
			out[i] |= a[i+ws+1] << (64 - bs)
		}
	}
	return out
}

func (a U512) Equal(b U512) bool { return a == b }

func (a U512) IsZero() bool { return a == U512{} }

func (a U512) OnesCount() int {
	n := 0
	for _, w := range a {
		n += bits.OnesCount64(w)
	}
	return n
}

func (a U512) Bit(i uint) bool {
	if i >= 512 {
		return false
	}
	return a[i/64]&(1<<(i%64)) != 0
}

func (a U512) SetBit(i uint, v bool) U512 {
	if i >= 512 {
		return a
	}
	if v {
		a[i/64] |= 1 << (i % 64)
	} else {
		a[i/64] &^= 1 << (i % 64)
	}
	return a
}

func (a U512) Width() int { return 512 }

// Big returns a as an unsigned big integer.
func (a U512) Big() *big.Int {
	z := new(big.Int)
	for i := u512Words - 1; i >= 0; i-- {
		z.Lsh(z, 64)
		z.Or(z, new(big.Int).SetUint64(a[i]))
	}
	return z
}

// String renders a in hexadecimal.
func (a U512) String() string {
	return "0x" + a.Big().Text(16)
}

// ParseU512 accepts decimal or 0x-prefixed hexadecimal function numbers.
func ParseU512(s string) (U512, error) {
	var out U512
	z, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok || z.Sign() < 0 || z.BitLen() > 512 {
		return out, fmt.Errorf("%w %q", ErrParse, s)
	}
	mask := new(big.Int).SetUint64(^uint64(0))
	for i := 0; i < u512Words; i++ {
		out[i] = new(big.Int).And(z, mask).Uint64()
		z.Rsh(z, 64)
	}
	return out, nil
}
