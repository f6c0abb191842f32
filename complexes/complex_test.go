// SPDX-License-Identifier: MIT
package complexes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppicomplex/complexes"
)

func cx(cohesion float64, ps ...string) complexes.Complex {
	return complexes.Complex{Proteins: ps, Cohesion: cohesion}
}

func TestIsOverlapped(t *testing.T) {
	a := cx(0, "A", "B", "C", "D")
	b := cx(0, "A", "B", "C", "E")
	c := cx(0, "A", "B", "F", "G", "H")

	assert.True(t, complexes.IsOverlapped(a, b, 0.6))  // 3/4
	assert.False(t, complexes.IsOverlapped(a, c, 0.6)) // 2/5
	assert.True(t, complexes.IsOverlapped(a, c, 0.4))
	assert.False(t, complexes.IsOverlapped(cx(0), cx(0), 0.6))
}

func TestIsOverlapped_Symmetric(t *testing.T) {
	small := cx(0, "A", "B", "C")
	large := cx(0, "A", "B", "X", "Y", "Z")
	for _, th := range []float64{0.3, 0.4, 0.6} {
		assert.Equal(t, complexes.IsOverlapped(small, large, th), complexes.IsOverlapped(large, small, th), "threshold %v", th)
	}
	assert.True(t, complexes.IsOverlapped(large, small, 0.4)) // 2/5
	assert.False(t, complexes.IsOverlapped(large, small, 0.6))

	_, fwd := complexes.OverlapScore(small, large)
	_, rev := complexes.OverlapScore(large, small)
	assert.Equal(t, fwd, rev)
}

func TestOverlapScore(t *testing.T) {
	common, os := complexes.OverlapScore(cx(0, "1", "2", "3", "4"), cx(0, "2", "3", "4"))
	assert.Equal(t, 3, common)
	assert.InDelta(t, 0.75, os, 1e-12)

	common, os = complexes.OverlapScore(cx(0), cx(0, "A"))
	assert.Zero(t, common)
	assert.Zero(t, os)
}

func TestDeduplicate_FourComplexes(t *testing.T) {
	c1 := cx(0.9, "A", "B", "C", "D")
	c2 := cx(0.8, "A", "B", "C", "E")      // overlaps c1 (3/4)
	c3 := cx(0.7, "E", "F", "G")           // disjoint from c1
	c4 := cx(0.6, "F", "G", "H", "I", "J") // 2/5 with c3
	in := []complexes.Complex{c3, c1, c4, c2}

	out := complexes.Deduplicate(in)
	// greedy keeps c1, c3, c4; the first half of three is one.
	require.Len(t, out, 1)
	assert.Equal(t, c1, out[0])
	assert.Equal(t, []complexes.Complex{c3, c1, c4, c2}, in, "input must not be reordered")

	// a looser threshold also drops c4 (overlap 2/5 >= 0.4)
	out = complexes.Deduplicate(in, complexes.WithOverlapThreshold(0.4))
	require.Len(t, out, 1)
	assert.Equal(t, c1, out[0])
}

func TestDeduplicate_StableTies(t *testing.T) {
	in := []complexes.Complex{
		cx(0.5, "A", "B", "C"),
		cx(0.5, "D", "E", "F"),
		cx(0.5, "G", "H", "I"),
		cx(0.9, "J", "K", "L"),
	}
	out := complexes.Deduplicate(in)
	require.Len(t, out, 2)
	assert.Equal(t, in[3], out[0])
	assert.Equal(t, in[0], out[1])
}

func TestDeduplicate_Small(t *testing.T) {
	assert.Empty(t, complexes.Deduplicate(nil))
	assert.Empty(t, complexes.Deduplicate([]complexes.Complex{cx(1, "A", "B", "C")}))
}

func TestComplex_String(t *testing.T) {
	assert.Equal(t, "A\tB\tC\t0.4375", cx(0.4375, "A", "B", "C").String())
	assert.Equal(t, "X\t0.3333", cx(1.0/3, "X").String())
}
