package unionfind_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppicomplex/unionfind"
)

// TestUnionFind_Components covers two islands and an isolated node:
//
//	0─1─2   3─4   5
func TestUnionFind_Components(t *testing.T) {
	uf := unionfind.FromPairs(6, [][2]int{{0, 1}, {1, 2}, {3, 4}})

	assert.Equal(t, 3, uf.Count())
	assert.False(t, uf.IsConnected())
	assert.True(t, uf.Connected(0, 2))
	assert.False(t, uf.Connected(2, 3))
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4}, {5}}, uf.Components())
}

// TestUnionFind_UnionIsIdempotent checks Count only drops on a real merge.
func TestUnionFind_UnionIsIdempotent(t *testing.T) {
	uf := unionfind.New(3)
	require.Equal(t, 3, uf.Count())

	assert.True(t, uf.Union(0, 1))
	assert.False(t, uf.Union(1, 0))
	assert.False(t, uf.Union(0, 0))
	assert.Equal(t, 2, uf.Count())

	assert.True(t, uf.Union(2, 0))
	assert.Equal(t, 1, uf.Count())
	assert.True(t, uf.IsConnected())
}

// TestUnionFind_FindIdempotent ensures repeated Find is stable after compression.
func TestUnionFind_FindIdempotent(t *testing.T) {
	uf := unionfind.New(8)
	for i := 0; i < 7; i++ {
		uf.Union(i, i+1)
	}
	root := uf.Find(7)
	for i := 0; i < 8; i++ {
		assert.Equal(t, root, uf.Find(i))
		assert.Equal(t, uf.Find(i), uf.Find(uf.Find(i)))
	}
}

func TestUnionFind_EmptyAndSingle(t *testing.T) {
	empty := unionfind.New(0)
	assert.False(t, empty.IsConnected())
	assert.Empty(t, empty.Components())

	single := unionfind.New(1)
	assert.True(t, single.IsConnected())
	assert.Equal(t, [][]int{{0}}, single.Components())
}

func TestUnionFind_OutOfRangePanics(t *testing.T) {
	uf := unionfind.New(2)
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, unionfind.ErrIndexOutOfRange))
	}()
	uf.Union(0, 2)
}
