// SPDX-License-Identifier: MIT
package ontology_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppicomplex/ontology"
)

const eps = 1e-12

// fixture: 1 -> 3, 2 -> 3, 2 -> 4 (IS_A); a:{1,2}, b:{1,3,4}.
func fixture(t *testing.T) *ontology.DAG {
	t.Helper()
	d, err := ontology.Load(
		strings.NewReader("1 3\n2 3 4\n"),
		nil,
		strings.NewReader("a 1 2\nb 1 3 4\n"),
	)
	require.NoError(t, err)
	return d
}

func idx(t *testing.T, d *ontology.DAG, name string) int {
	t.Helper()
	i, ok := d.TermIndex(name)
	require.True(t, ok, "term %s", name)
	return i
}

func TestLoad_Structure(t *testing.T) {
	d := fixture(t)
	require.Equal(t, 4, d.TermCount())
	// indices follow first sight in the relation file
	assert.Equal(t, []string{"1", "3", "2", "4"}, []string{d.Term(0), d.Term(1), d.Term(2), d.Term(3)})

	two := idx(t, d, "2")
	assert.Equal(t, []ontology.Relation{
		{Parent: idx(t, d, "3"), Weight: ontology.IsAWeight},
		{Parent: idx(t, d, "4"), Weight: ontology.IsAWeight},
	}, d.Parents(two))
	assert.Equal(t, []int{idx(t, d, "1"), two}, d.Children(idx(t, d, "3")))
	assert.Equal(t, []string{"a", "b"}, d.Proteins())
	assert.Len(t, d.ProteinTerms("b"), 3)
}

func TestLoad_PartOfOverridesIsA(t *testing.T) {
	d, err := ontology.Load(strings.NewReader("x y\n"), strings.NewReader("x y\nx z\n"), nil)
	require.NoError(t, err)
	rels := d.Parents(idx(t, d, "x"))
	require.Len(t, rels, 2)
	assert.Equal(t, ontology.PartOfWeight, rels[0].Weight)
	assert.Equal(t, ontology.PartOfWeight, rels[1].Weight)
}

func TestLoad_CustomWeights(t *testing.T) {
	d, err := ontology.Load(strings.NewReader("x y\n"), nil, nil, ontology.WithIsAWeight(0.5))
	require.NoError(t, err)
	assert.Equal(t, 0.5, d.Parents(idx(t, d, "x"))[0].Weight)

	_, err = ontology.Load(strings.NewReader("x y\n"), nil, nil, ontology.WithIsAWeight(1.5))
	assert.ErrorIs(t, err, ontology.ErrInvalidWeight)
}

func TestLoad_Cycles(t *testing.T) {
	_, err := ontology.Load(strings.NewReader("A B\nB C\nC A\n"), nil, nil)
	require.ErrorIs(t, err, ontology.ErrCycleDetected)
	assert.Contains(t, err.Error(), "A, B, C")

	_, err = ontology.Load(strings.NewReader("A A\n"), nil, nil)
	assert.ErrorIs(t, err, ontology.ErrCycleDetected)

	_, err = ontology.Load(strings.NewReader("A B\n"), strings.NewReader("B A\n"), nil)
	assert.ErrorIs(t, err, ontology.ErrCycleDetected)
}

func TestLoad_Annotations(t *testing.T) {
	d, err := ontology.Load(strings.NewReader("1 3\n"), nil, strings.NewReader("# comment\nc 9 1\nd 9\nc 3\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{idx(t, d, "1"), idx(t, d, "3")}, d.ProteinTerms("c"))
	assert.Empty(t, d.ProteinTerms("d"))
	assert.Equal(t, []string{"c", "d"}, d.Proteins())

	d, err = ontology.Load(strings.NewReader("1 3\n"), nil, strings.NewReader("c 1\nlonely\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "lonely"}, d.Proteins())
	assert.Empty(t, d.ProteinTerms("lonely"))
	assert.Zero(t, d.ProteinSimilarity("c", "lonely"))

	err = d.Annotate("e", 42)
	assert.ErrorIs(t, err, ontology.ErrUnknownTerm)
}

func TestSemanticValue_MaxProduct(t *testing.T) {
	d := ontology.NewDAG()
	require.NoError(t, d.AddRelation("t", "g", 0.4))
	require.NoError(t, d.AddRelation("t", "p", 0.8))
	require.NoError(t, d.AddRelation("p", "g", 0.6))
	require.NoError(t, d.AddRelation("g", "r", 0.5))

	sv := d.SemanticValue(idx(t, d, "t"))
	assert.Len(t, sv, 4)
	assert.InDelta(t, 1.0, sv[idx(t, d, "t")], eps)
	assert.InDelta(t, 0.8, sv[idx(t, d, "p")], eps)
	assert.InDelta(t, 0.48, sv[idx(t, d, "g")], eps)
	assert.InDelta(t, 0.24, sv[idx(t, d, "r")], eps)
}

func TestAncestorsAndDescendants(t *testing.T) {
	d := fixture(t)
	assert.ElementsMatch(t, []int{idx(t, d, "3"), idx(t, d, "4")}, d.Ancestors(idx(t, d, "2")))
	assert.Empty(t, d.Ancestors(idx(t, d, "3")))
	assert.ElementsMatch(t, []int{idx(t, d, "1"), idx(t, d, "2")}, d.Descendants(idx(t, d, "3")))
	assert.Equal(t, []int{idx(t, d, "2")}, d.Descendants(idx(t, d, "4")))
	assert.Empty(t, d.Descendants(idx(t, d, "1")))

	dist := d.AncestorDistances(idx(t, d, "1"))
	assert.Equal(t, map[int]int{idx(t, d, "1"): 0, idx(t, d, "3"): 1}, dist)
}

func TestLCA(t *testing.T) {
	d := ontology.NewDAG()
	for _, r := range [][2]string{{"x", "p"}, {"x", "q"}, {"y", "q"}, {"y", "p"}, {"p", "root"}, {"z", "root"}} {
		require.NoError(t, d.AddRelation(r[0], r[1], 0.8))
	}
	x, y, p := idx(t, d, "x"), idx(t, d, "y"), idx(t, d, "p")

	// p and q tie at distance 1+1; the smaller index wins.
	lca, pa, pb, ok := d.LCAWithPaths(x, y)
	require.True(t, ok)
	assert.Equal(t, p, lca)
	assert.Equal(t, []int{x, p}, pa)
	assert.Equal(t, []int{y, p}, pb)

	lca, pa, pb, ok = d.LCAWithPaths(x, idx(t, d, "z"))
	require.True(t, ok)
	assert.Equal(t, idx(t, d, "root"), lca)
	assert.Len(t, pa, 3)
	assert.Len(t, pb, 2)

	lca, ok = d.LCA(x, x)
	assert.True(t, ok)
	assert.Equal(t, x, lca)

	d2 := fixture(t)
	_, ok = d2.LCA(idx(t, d2, "1"), idx(t, d2, "4"))
	assert.False(t, ok)
}

func TestTermSimilarity(t *testing.T) {
	d := fixture(t)
	one, two, three, four := idx(t, d, "1"), idx(t, d, "2"), idx(t, d, "3"), idx(t, d, "4")
	third := 0.8 / 1.8

	assert.InDelta(t, 1.0, d.TermSimilarity(one, one), eps)
	assert.InDelta(t, third, d.TermSimilarity(one, three), eps)
	assert.InDelta(t, 0.0, d.TermSimilarity(one, four), eps)
	assert.InDelta(t, third, d.TermSimilarity(two, one), eps)
	assert.InDelta(t, third, d.TermSimilarity(two, three), eps)
	assert.InDelta(t, third, d.TermSimilarity(two, four), eps)

	for _, a := range []int{one, two, three, four} {
		for _, b := range []int{one, two, three, four} {
			assert.Equal(t, d.TermSimilarity(a, b), d.TermSimilarity(b, a))
		}
	}
}

func TestTermSimilarityChild(t *testing.T) {
	d := fixture(t)
	one, two, three, four := idx(t, d, "1"), idx(t, d, "2"), idx(t, d, "3"), idx(t, d, "4")

	assert.InDelta(t, 2.0, d.TermSimilarityChild(three, four), eps)
	assert.InDelta(t, 1.0, d.TermSimilarityChild(three, three), eps)
	assert.Zero(t, d.TermSimilarityChild(one, two))
	assert.Zero(t, d.TermSimilarityChild(one, three))
}

func TestWangSimilarity(t *testing.T) {
	d := fixture(t)
	assert.InDelta(t, 1.8/2.8, d.WangSimilarity(idx(t, d, "1"), idx(t, d, "3")), eps)
	assert.InDelta(t, 1.0, d.WangSimilarity(idx(t, d, "2"), idx(t, d, "2")), eps)
	assert.Zero(t, d.WangSimilarity(idx(t, d, "1"), idx(t, d, "4")))
}

func TestProteinSimilarity(t *testing.T) {
	d := fixture(t)
	assert.InDelta(t, 2.0/3.0, d.ProteinSimilarity("a", "b"), eps)
	assert.InDelta(t, 2.0/3.0, d.ProteinSimilarity("b", "a"), eps)
	assert.Zero(t, d.ProteinSimilarityChild("a", "b"))
	assert.InDelta(t, 1.0/3.0, d.CombinedSimilarity("a", "b"), eps)

	assert.Zero(t, d.ProteinSimilarity("a", "missing"))
	assert.Zero(t, d.ProteinSimilarityChild("missing", "b"))
}

func TestProteinSimilarityChild_DisjointTerms(t *testing.T) {
	d, err := ontology.Load(
		strings.NewReader("1 3\n2 3 4\n"),
		nil,
		strings.NewReader("p 3\nq 4\nr 3 4\n"),
	)
	require.NoError(t, err)
	// p and q share no term even though TermSimilarityChild(3,4) = 2.
	assert.Zero(t, d.ProteinSimilarityChild("p", "q"))
	// p:{3} vs r:{3,4}: (max(1,2) + 1 + 2) / 3
	assert.InDelta(t, 5.0/3.0, d.ProteinSimilarityChild("p", "r"), eps)
}

func TestCacheStats(t *testing.T) {
	d := fixture(t)
	one, three := idx(t, d, "1"), idx(t, d, "3")
	assert.Equal(t, ontology.CacheStats{}, d.CacheStats())

	d.TermSimilarity(one, three)
	d.TermSimilarity(three, one)
	assert.Equal(t, ontology.CacheStats{Hits: 1, Misses: 1, Entries: 1}, d.CacheStats())

	require.NoError(t, d.AddRelation("4", "5", 0.8))
	assert.Zero(t, d.CacheStats().Entries)
}

func TestProteinSimilarity_WarmCacheMatchesFresh(t *testing.T) {
	warm := fixture(t)
	pairs := [][2]string{{"a", "b"}, {"b", "a"}, {"a", "a"}, {"b", "b"}}
	for _, p := range pairs {
		warm.ProteinSimilarity(p[0], p[1])
		warm.ProteinSimilarityChild(p[0], p[1])
	}
	require.NotZero(t, warm.CacheStats().Hits)

	for _, p := range pairs {
		fresh := fixture(t)
		assert.InDelta(t, fresh.ProteinSimilarity(p[0], p[1]), warm.ProteinSimilarity(p[0], p[1]), eps, "%v", p)
		assert.InDelta(t, fresh.ProteinSimilarityChild(p[0], p[1]), warm.ProteinSimilarityChild(p[0], p[1]), eps, "%v", p)
	}
}

func TestProteinSimilarity_Concurrent(t *testing.T) {
	d := fixture(t)
	want := 2.0 / 3.0

	var wg sync.WaitGroup
	results := make([]float64, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = d.CombinedSimilarity("a", "b") * 2
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.InDelta(t, want, r, eps)
	}
}
