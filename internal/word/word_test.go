package word

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkWord runs the same capability checks over any width.
func checkWord[W Word[W]](t *testing.T, zero W) {
	t.Helper()
	width := zero.Width()
	one := zero.SetBit(0, true)

	assert.True(t, zero.IsZero())
	assert.Equal(t, 0, zero.OnesCount())
	assert.Equal(t, width, zero.Not().OnesCount())
	assert.True(t, zero.Not().Not().Equal(zero))

	top := one.Lsh(uint(width - 1))
	assert.True(t, top.Bit(uint(width-1)))
	assert.True(t, top.Rsh(uint(width-1)).Equal(one))
	assert.True(t, top.Lsh(1).IsZero())
	assert.True(t, one.Rsh(1).IsZero())

	a := zero.SetBit(3, true).SetBit(70%uint(width), true)
	b := zero.SetBit(3, true).SetBit(5, true)
	assert.True(t, a.And(b).Equal(zero.SetBit(3, true)))
	assert.Equal(t, a.Or(b).OnesCount(), a.OnesCount()+b.OnesCount()-1)
	assert.True(t, a.Xor(a).IsZero())
	assert.True(t, a.Xor(b).Xor(b).Equal(a))

	c := a.SetBit(3, false)
	assert.False(t, c.Bit(3))
	assert.True(t, a.Bit(3), "SetBit must not modify its receiver")
	assert.False(t, a.Bit(uint(width)+10))

	m := Mask(zero, width/2)
	assert.Equal(t, width/2, m.OnesCount())
	assert.True(t, m.Bit(uint(width/2-1)))
	assert.False(t, m.Bit(uint(width/2)))
}

func TestU32(t *testing.T) {
	checkWord[U32](t, 0)
	assert.Equal(t, "0x0000002a", U32(42).String())
	assert.Equal(t, 32, MaxU32.OnesCount())
}

func TestU512(t *testing.T) {
	checkWord(t, U512{})
	assert.Equal(t, 512, MaxU512().OnesCount())

	v := OneU512().Lsh(63)
	assert.Equal(t, U512{1 << 63}, v)
	assert.Equal(t, U512{0, 1}, v.Lsh(1))
	assert.Equal(t, U512{0, 0, 0, 1 << 5}, OneU512().Lsh(197))
	assert.Equal(t, U512{1 << 63}, U512{0, 1}.Rsh(1))
}

func TestWide(t *testing.T) {
	checkWord(t, NewWide(2048))
	checkWord(t, NewWide(100))
}

func TestParse(t *testing.T) {
	v, err := ParseU32("3755921403")
	require.NoError(t, err)
	assert.Equal(t, U32(3755921403), v)

	v, err = ParseU32("0xaa55aa55")
	require.NoError(t, err)
	assert.Equal(t, U32(0xaa55aa55), v)

	_, err = ParseU32("0x1ffffffff")
	assert.ErrorIs(t, err, ErrParse)

	w, err := ParseU512("0x10000000000000001")
	require.NoError(t, err)
	assert.Equal(t, U512{1, 1}, w)
	assert.Equal(t, "0x10000000000000001", w.String())

	_, err = ParseU512("-1")
	assert.ErrorIs(t, err, ErrParse)

	x, err := ParseWide("0x8001", 1024)
	require.NoError(t, err)
	assert.True(t, x.Bit(0))
	assert.True(t, x.Bit(15))
	assert.Equal(t, 2, x.OnesCount())
	assert.Equal(t, "0x8001", x.String())

	_, err = ParseWide("0x1ff", 8)
	assert.ErrorIs(t, err, ErrParse)
}
