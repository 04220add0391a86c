package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Han-16/boolext/internal/boolfn"
	"github.com/Han-16/boolext/internal/word"
)

// variable returns the truth table of the single variable j.
func variable[W word.Word[W]](zero W, vars, j int) W {
	f := zero
	for x := 0; x < 1<<vars; x++ {
		if x&(1<<j) != 0 {
			f = f.SetBit(uint(x), true)
		}
	}
	return f
}

func mustParse(t *testing.T, s string) word.U512 {
	t.Helper()
	v, err := word.ParseU512(s)
	require.NoError(t, err)
	return v
}

func TestNewExtenderValidation(t *testing.T) {
	t4 := boolfn.MustNew[word.U32](4, 0)
	t5 := boolfn.MustNew[word.U32](5, 0)
	t7 := boolfn.MustNew(7, word.U512{})
	t9 := boolfn.MustNew(9, word.U512{})

	_, err := NewExtender(t4, t7)
	assert.ErrorIs(t, err, ErrNeighborhood)
	_, err = NewExtender(t5, t7)
	assert.ErrorIs(t, err, ErrRingTooWide)
	_, err = NewExtender(t5, t9, WithCell(9))
	assert.ErrorIs(t, err, ErrCell)

	e, err := NewExtender(t5, t9)
	require.NoError(t, err)
	assert.Equal(t, 9, e.Length())
}

func TestExtendKnownRules(t *testing.T) {
	e := NewExtend5to9()
	cases := []struct {
		rule word.U32
		want string
	}{
		{0, "0x0"},
		{0xffff0000, "0x" + repeat("aa", 64)},
		{0xcccccccc, "0x" + repeat(repeat("f", 16)+repeat("0", 16), 4)},
		{0xaa55aa55, "0xf0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f00f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f"},
		{0x96696996, "0xa5a55a5aa5a55a5a5a5aa5a55a5aa5a5a5a55a5aa5a55a5a5a5aa5a55a5aa5a55a5aa5a55a5aa5a5a5a55a5aa5a55a5a5a5aa5a55a5aa5a5a5a55a5aa5a55a5a"},
	}
	for _, tc := range cases {
		assert.Equal(t, mustParse(t, tc.want), e.Extend(tc.rule), "rule %s", tc.rule)
	}
	assert.Equal(t, word.MaxU512(), e.Extend(word.MaxU32))
}

func TestExtendDeterministic(t *testing.T) {
	e := NewExtend5to9()
	for _, f := range []word.U32{0x6a5dbb51, 0xdfdecffb, 0x12345678} {
		assert.Equal(t, e.Extend(f), e.Extend(f))
	}
}

func TestExtendRounds(t *testing.T) {
	t5 := boolfn.MustNew[word.U32](5, 0)
	t9 := boolfn.MustNew(9, word.U512{})
	center := variable[word.U32](0, 5, 2)

	// No rounds reads the initial middle cell.
	e0, err := NewExtender(t5, t9, WithRounds(0))
	require.NoError(t, err)
	assert.Equal(t, variable(word.U512{}, 9, 4), e0.Extend(0x6a5dbb51))

	// The identity rule keeps every cell.
	for _, cell := range []int{0, 4, 8} {
		e, err := NewExtender(t5, t9, WithCell(cell), WithRounds(3))
		require.NoError(t, err)
		assert.Equal(t, variable(word.U512{}, 9, cell), e.Extend(center))
	}

	// The left-neighbour rule (offset -1, bit 3) shifts the ring by one
	// cell per round.
	left := variable[word.U32](0, 5, 3)
	e1, err := NewExtender(t5, t9, WithRounds(1))
	require.NoError(t, err)
	assert.Equal(t, variable(word.U512{}, 9, 3), e1.Extend(left))
	e2, err := NewExtender(t5, t9, WithRounds(2))
	require.NoError(t, err)
	assert.Equal(t, variable(word.U512{}, 9, 2), e2.Extend(left))
}

func TestTrajectory(t *testing.T) {
	e := NewExtend5to9()
	left := variable[word.U32](0, 5, 3)
	states := e.Trajectory(left, 1)
	require.Len(t, states, 3)
	assert.True(t, states[0][0])
	assert.True(t, states[1][1])
	assert.True(t, states[2][2])
	assert.False(t, states[2][0])
}

func TestExtendWide(t *testing.T) {
	t7 := boolfn.MustNew(7, word.U512{})
	t13 := boolfn.MustNew(13, word.NewWide(1<<13))
	e, err := NewExtender(t7, t13)
	require.NoError(t, err)

	center := variable(word.U512{}, 7, 3)
	got := e.Extend(center)
	assert.True(t, variable(word.NewWide(1<<13), 13, 6).Equal(got))
	assert.Equal(t, 1, t13.Degree(got))
}

func TestExtendedDegreeOfLinearRule(t *testing.T) {
	e := NewExtend5to9()
	t9 := boolfn.MustNew(9, word.U512{})
	for _, f := range []word.U32{0xaa55aa55, 0xffff0000, 0x96696996} {
		assert.Equal(t, 1, t9.Degree(e.Extend(f)))
		assert.True(t, t9.IsBalanced(e.Extend(f)))
	}
}

func repeat(s string, n int) string {
	out := ""
	for range n {
		out += s
	}
	return out
}
