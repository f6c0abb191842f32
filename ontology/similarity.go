// SPDX-License-Identifier: MIT
// File: similarity.go
// Role: term and protein semantic similarity with memoization.

package ontology

// TermSimilarity scores terms a and b from their lowest common ancestor.
//
// With pA = a → … → lca and pB = b → … → lca:
//   - len(pA) < len(pB): SV_b(lca) / Σ_{t∈pB} SV_b(t)
//   - len(pA) > len(pB): SV_a(lca) / Σ_{t∈pA} SV_a(t)
//   - equal lengths:     max(SV_a(lca), SV_b(lca)) / max(ΣpA SV_a, ΣpB SV_b)
//
// Terms without a common ancestor score 0; TermSimilarity(t, t) is 1.
func (d *DAG) TermSimilarity(a, b int) float64 {
	return d.memo(ancestorCache, pairOf(a, b), func() float64 {
		lca, pa, pb, ok := d.LCAWithPaths(a, b)
		if !ok {
			return 0
		}
		switch {
		case len(pa) < len(pb):
			sv := d.SemanticValue(b)
			return sv[lca] / pathSum(sv, pb)
		case len(pa) > len(pb):
			sv := d.SemanticValue(a)
			return sv[lca] / pathSum(sv, pa)
		default:
			sa, sb := d.SemanticValue(a), d.SemanticValue(b)
			return max(sa[lca], sb[lca]) / max(pathSum(sa, pa), pathSum(sb, pb))
		}
	})
}

// TermSimilarityChild compares descendant closures as
// |desc(a) ∪ desc(b)| / |desc(a) ∩ desc(b)|. It is 0 when either closure
// or their intersection is empty, so leaf terms always score 0.
func (d *DAG) TermSimilarityChild(a, b int) float64 {
	return d.memo(childCache, pairOf(a, b), func() float64 {
		da, db := d.descendantSet(a), d.descendantSet(b)
		if len(da) == 0 || len(db) == 0 {
			return 0
		}
		inter := 0
		for t := range da {
			if _, ok := db[t]; ok {
				inter++
			}
		}
		if inter == 0 {
			return 0
		}
		return float64(len(da)+len(db)-inter) / float64(inter)
	})
}

// WangSimilarity is the whole-ancestor measure
// Σ_{t∈T_a∩T_b} (SV_a(t)+SV_b(t)) / (Σ_{T_a} SV_a + Σ_{T_b} SV_b),
// where T_x holds x and its ancestors.
func (d *DAG) WangSimilarity(a, b int) float64 {
	return d.memo(wangCache, pairOf(a, b), func() float64 {
		sa, sb := d.SemanticValue(a), d.SemanticValue(b)
		var shared, total float64
		for t, va := range sa {
			total += va
			if vb, ok := sb[t]; ok {
				shared += va + vb
			}
		}
		for _, vb := range sb {
			total += vb
		}
		return shared / total
	})
}

// ProteinSimilarity aggregates TermSimilarity over the annotation sets A
// and B of two proteins:
//
//	(Σ_{a∈A} max_{b∈B} s(a,b) + Σ_{b∈B} max_{a∈A} s(a,b)) / (|A|+|B|)
//
// Unannotated proteins score 0.
func (d *DAG) ProteinSimilarity(p1, p2 string) float64 {
	return d.aggregate(p1, p2, d.TermSimilarity)
}

// ProteinSimilarityChild is ProteinSimilarity over TermSimilarityChild.
// Proteins that share no annotated term score 0.
func (d *DAG) ProteinSimilarityChild(p1, p2 string) float64 {
	ta, tb := d.proteinTerms[p1], d.proteinTerms[p2]
	if !sharesTerm(ta, tb) {
		return 0
	}
	return d.aggregate(p1, p2, d.TermSimilarityChild)
}

// CombinedSimilarity averages ProteinSimilarity and ProteinSimilarityChild.
func (d *DAG) CombinedSimilarity(p1, p2 string) float64 {
	return (d.ProteinSimilarity(p1, p2) + d.ProteinSimilarityChild(p1, p2)) / 2
}

// CacheStats snapshots memoization counters.
func (d *DAG) CacheStats() CacheStats {
	d.mu.RLock()
	n := 0
	for _, c := range d.caches {
		n += len(c)
	}
	d.mu.RUnlock()

	return CacheStats{Hits: d.hits.Load(), Misses: d.misses.Load(), Entries: n}
}

func (d *DAG) aggregate(p1, p2 string, sim func(a, b int) float64) float64 {
	ta, tb := d.proteinTerms[p1], d.proteinTerms[p2]
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	var sum float64
	for _, a := range ta {
		var best float64
		for _, b := range tb {
			best = max(best, sim(a, b))
		}
		sum += best
	}
	for _, b := range tb {
		var best float64
		for _, a := range ta {
			best = max(best, sim(a, b))
		}
		sum += best
	}

	return sum / float64(len(ta)+len(tb))
}

// memo returns the cached value for k or computes and stores it. Two
// readers may compute the same key concurrently; both store the same value.
func (d *DAG) memo(kind cacheKind, k termPair, compute func() float64) float64 {
	d.mu.RLock()
	v, ok := d.caches[kind][k]
	d.mu.RUnlock()
	if ok {
		d.hits.Add(1)
		return v
	}
	d.misses.Add(1)
	v = compute()
	d.mu.Lock()
	d.caches[kind][k] = v
	d.mu.Unlock()

	return v
}

func pathSum(sv map[int]float64, path []int) float64 {
	var s float64
	for _, t := range path {
		s += sv[t]
	}
	return s
}

// sharesTerm reports whether two ascending slices intersect.
func sharesTerm(a, b []int) bool {
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] == b[j]:
			return true
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return false
}
