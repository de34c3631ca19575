// Package core_test verifies Graph construction contracts.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclegames/core"
)

func TestNewGraph_TooFewNodes(t *testing.T) {
	for _, n := range []int{0, -1} {
		g, err := core.NewGraph(n)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, core.ErrTooFewNodes)
	}
}

func TestNewGraph_SingleNode(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.NumNodes())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Neighbors(0))
}

func TestNewGraph_EdgeValidation(t *testing.T) {
	tests := []struct {
		name string
		u, v int
		want error
	}{
		{"negative", -1, 0, core.ErrNodeOutOfRange},
		{"too large", 0, 3, core.ErrNodeOutOfRange},
		{"loop", 1, 1, core.ErrLoopNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.NewGraph(3, core.WithEdge(tc.u, tc.v))
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewGraph_SymmetricAndIdempotent(t *testing.T) {
	g, err := core.NewGraph(3,
		core.WithEdge(0, 1),
		core.WithEdge(1, 0),
		core.WithEdges([]core.Edge{{U: 2, V: 1}, {U: 1, V: 2}}),
	)
	require.NoError(t, err)

	assert.Equal(t, 2, g.EdgeCount())
	for u := 0; u < 3; u++ {
		for v := 0; v < 3; v++ {
			assert.Equal(t, g.Adjacent(u, v), g.Adjacent(v, u), "(%d,%d)", u, v)
		}
		assert.False(t, g.Adjacent(u, u))
	}
}

func TestFromMatrix(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		g, err := core.FromMatrix([][]bool{
			{false, true, true},
			{true, false, false},
			{true, false, false},
		})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, g.Neighbors(0))
		assert.Equal(t, 2, g.EdgeCount())
	})

	t.Run("empty", func(t *testing.T) {
		_, err := core.FromMatrix(nil)
		assert.ErrorIs(t, err, core.ErrTooFewNodes)
	})

	t.Run("ragged", func(t *testing.T) {
		_, err := core.FromMatrix([][]bool{{false, true}, {true}})
		assert.ErrorIs(t, err, core.ErrDimensionMismatch)
	})

	t.Run("asymmetric", func(t *testing.T) {
		_, err := core.FromMatrix([][]bool{{false, true}, {false, false}})
		assert.ErrorIs(t, err, core.ErrAsymmetry)
	})

	t.Run("diagonal", func(t *testing.T) {
		_, err := core.FromMatrix([][]bool{{true, false}, {false, false}})
		assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	})
}
