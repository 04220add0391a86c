package randutil

import (
	mrand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Han-16/boolext/internal/word"
)

func TestRandomFunctionStaysInTable(t *testing.T) {
	for vars := 1; vars <= 5; vars++ {
		f, err := RandomFunction[word.U32](0, vars)
		require.NoError(t, err)
		assert.Zero(t, uint64(f)>>(1<<vars), "vars=%d", vars)
	}
	g, err := RandomFunction(word.NewWide(1024), 10)
	require.NoError(t, err)
	assert.Equal(t, 1024, g.Width())
}

func TestFunctionFromIsReproducible(t *testing.T) {
	a := FunctionFrom(mrand.New(mrand.NewPCG(1, 2)), word.U512{}, 9)
	b := FunctionFrom(mrand.New(mrand.NewPCG(1, 2)), word.U512{}, 9)
	assert.Equal(t, a, b)
}

func TestBalancedFrom(t *testing.T) {
	r := mrand.New(mrand.NewPCG(3, 4))
	for range 20 {
		f := BalancedFrom[word.U32](r, 0, 5)
		assert.Equal(t, 16, f.OnesCount())
	}
}

func TestRandomFunctionsPar(t *testing.T) {
	fs, err := RandomFunctionsPar(word.U512{}, 9, 16, 4)
	require.NoError(t, err)
	assert.Len(t, fs, 16)

	gs, err := RandomFunctionsPar[word.U32](0, 5, 0, 4)
	require.NoError(t, err)
	assert.Empty(t, gs)
}
