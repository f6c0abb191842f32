// SPDX-License-Identifier: MIT
// File: pcegs.go
// Role: seed ordering, attraction model, core-attachment expansion.

package pcegs

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ppicomplex/complexes"
	"github.com/katalvlaran/ppicomplex/ppi"
)

// SeedOrder returns node indices by descending clustering coefficient,
// equal coefficients in ascending index order.
func SeedOrder(g *ppi.Graph) []int {
	cc := g.ClusteringCoefficients()
	seeds := make([]int, len(cc))
	for i := range seeds {
		seeds[i] = i
	}
	sort.SliceStable(seeds, func(i, j int) bool { return cc[seeds[i]] > cc[seeds[j]] })

	return seeds
}

// attraction caches node weights and influences of one graph.
type attraction struct {
	g         *ppi.Graph
	weight    []float64
	influence []float64
}

func newAttraction(g *ppi.Graph) *attraction {
	n := g.NodeCount()
	a := &attraction{g: g, weight: make([]float64, n), influence: make([]float64, n)}
	for v := 0; v < n; v++ {
		a.weight[v] = g.NodeWeight(v)
	}
	for v := 0; v < n; v++ {
		for _, u := range g.Neighbors(v) {
			a.influence[v] += a.between(u, v)
		}
	}

	return a
}

// between is A(u,v), zero when u and v are not adjacent.
func (a *attraction) between(u, v int) float64 {
	w, ok := a.g.Weight(u, v)
	if !ok {
		return 0
	}
	d := 1 + math.Log10(1+w)
	return a.weight[u] * a.weight[v] / (d * d)
}

// attach is the share of n's influence that core, given in ascending
// order, pulls toward itself. It is undefined (ok=false) for a node without
// influence.
func (a *attraction) attach(core []int, n int) (float64, bool) {
	if a.influence[n] == 0 {
		return 0, false
	}
	var sum float64
	for _, d := range core {
		sum += a.between(d, n)
	}
	return sum / a.influence[n], true
}

// Detect runs core-attachment clustering over g and returns the raw,
// not yet deduplicated complexes in seed order. Member labels are listed
// in node index order.
func Detect(g *ppi.Graph, opts ...Option) ([]complexes.Complex, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.Beta >= 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBeta, o.Beta)
	}
	if o.MinSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMinSize, o.MinSize)
	}

	var essential []bool
	if o.Essential != nil {
		essential = make([]bool, g.NodeCount())
		for i := range essential {
			_, essential[i] = o.Essential[g.Label(i)]
		}
	}

	attr := newAttraction(g)
	visited := make([]bool, g.NodeCount())
	var out []complexes.Complex

	for _, seed := range SeedOrder(g) {
		if visited[seed] || (essential != nil && !essential[seed]) {
			continue
		}

		core := make(map[int]struct{})
		for _, v := range g.Neighbors(seed) {
			if essential == nil || essential[v] {
				core[v] = struct{}{}
			}
		}
		periphery := make(map[int]struct{})
		for _, c := range sortedKeys(core) {
			for _, m := range g.Neighbors(c) {
				if _, in := core[m]; !in {
					periphery[m] = struct{}{}
				}
			}
		}
		core[seed] = struct{}{}
		delete(periphery, seed)
		for c := range core {
			visited[c] = true
		}

		coreList := sortedKeys(core)
		members := append(make([]int, 0, len(coreList)+len(periphery)), coreList...)
		for _, n := range sortedKeys(periphery) {
			if s, ok := attr.attach(coreList, n); ok && s >= o.Beta {
				members = append(members, n)
			}
		}
		if len(members) < o.MinSize {
			continue
		}
		sort.Ints(members)

		labels := make([]string, len(members))
		for i, m := range members {
			labels[i] = g.Label(m)
		}
		out = append(out, complexes.Complex{Proteins: labels, Cohesion: g.Cohesion(members)})
	}

	return out, nil
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
