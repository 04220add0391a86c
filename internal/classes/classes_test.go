package classes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Han-16/boolext/internal/word"
)

func TestDefaultTable(t *testing.T) {
	tab := Default()
	require.Equal(t, 48, tab.Len())
	assert.Equal(t, "affine-5", tab.Name)
	assert.Equal(t, word.U32(0xaa55aa55), tab.Representatives[0])
	assert.Equal(t, word.U32(0x688ddb51), tab.Representatives[47])

	// Every representative has a signature of its own.
	for i, r := range tab.Representatives {
		assert.Equal(t, []int{i}, tab.Classify(r), "class %d", i)
	}
}

func TestClassify(t *testing.T) {
	tab := Default()
	cases := []struct {
		f    word.U32
		want int
	}{
		{0, 0},
		{0xffffffff, 0},
		{0x96696996, 0},
		{0xe8e8e8e8, 17},
		{0x12345678, 40},
		{0x7888, 8},
	}
	for _, tc := range cases {
		assert.Equal(t, []int{tc.want}, tab.Classify(tc.f), "f=%s", tc.f)
	}
}

func TestSignature(t *testing.T) {
	tab := Default()
	s := tab.Signature(0)
	assert.Equal(t, 32, s.Walsh.Total())
	assert.True(t, s.Equal(SignatureOf(tab.tester, word.U32(0))))
	assert.False(t, s.Equal(tab.Signature(1)))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("name: x\nvars: 9\nclasses: [\"0x1\"]\n"))
	assert.ErrorIs(t, err, ErrTable)
	_, err = Parse([]byte("name: x\nvars: 5\nclasses: []\n"))
	assert.ErrorIs(t, err, ErrTable)
	_, err = Parse([]byte("name: x\nvars: 5\nclasses: [\"zz\"]\n"))
	assert.ErrorIs(t, err, ErrTable)
	assert.ErrorIs(t, err, word.ErrParse)
	_, err = Parse([]byte(":\n\t-"))
	assert.ErrorIs(t, err, ErrTable)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: small\nvars: 5\nclasses:\n  - \"0xaa55aa55\"\n  - \"3755921403\"\n"), 0o644))
	tab, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "small", tab.Name)
	assert.Equal(t, []word.U32{0xaa55aa55, 3755921403}, tab.Representatives)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
