// Package word provides the fixed-width unsigned integers that hold packed
// truth tables. Every width implements the same value-semantics contract so
// property algorithms can be written once.
package word

import (
	"errors"
)

// ErrParse is returned when a textual function number can not be decoded.
var ErrParse = errors.New("word: invalid number")

// Word is the numeric capability required from a truth table container.
// Implementations never modify the receiver; every operation returns a new
// value that does not alias its operands.
type Word[W any] interface {
	And(o W) W
	Or(o W) W
	Xor(o W) W
	Not() W
	Lsh(n uint) W
	Rsh(n uint) W
	Equal(o W) bool
	IsZero() bool
	OnesCount() int
	Bit(i uint) bool
	SetBit(i uint, v bool) W
	// Width is the capacity in bits.
	Width() int
	String() string
}

// Mask returns the value of zero's type with the low n bits set.
func Mask[W Word[W]](zero W, n int) W {
	m := zero
	for i := 0; i < n && i < zero.Width(); i++ {
		m = m.SetBit(uint(i), true)
	}
	return m
}
