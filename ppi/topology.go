// SPDX-License-Identifier: MIT
// File: topology.go
// Role: neighborhood similarity, clustering coefficient, core numbers,
//       node strength and complex cohesion.

package ppi

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// NeighborsJaccard returns |N(a) ∩ N(b)| / |N(a) ∪ N(b)| over open
// neighborhoods, or 0 when both neighborhoods are empty.
func (g *Graph) NeighborsJaccard(a, b int) float64 {
	return jaccard(g.neighborSet(a, false), g.neighborSet(b, false))
}

// JaccardPlus is NeighborsJaccard over closed neighborhoods, where each
// node also counts as a member of its own neighborhood.
func (g *Graph) JaccardPlus(a, b int) float64 {
	return jaccard(g.neighborSet(a, true), g.neighborSet(b, true))
}

func (g *Graph) neighborSet(a int, closed bool) map[int]struct{} {
	g.mustNode(a)
	set := make(map[int]struct{}, len(g.adj[a])+1)
	for v := range g.adj[a] {
		set[v] = struct{}{}
	}
	if closed {
		set[a] = struct{}{}
	}

	return set
}

func jaccard(x, y map[int]struct{}) float64 {
	common := 0
	for v := range x {
		if _, ok := y[v]; ok {
			common++
		}
	}
	union := len(x) + len(y) - common
	if union == 0 {
		return 0
	}

	return float64(common) / float64(union)
}

// ClusteringCoefficient returns the local clustering coefficient of node:
// edges among its neighbors divided by the maximum possible, or 0 when the
// node has fewer than two neighbors. Ordered neighbor pairs are counted and
// divided by 2·C(k,2).
func (g *Graph) ClusteringCoefficient(node int) float64 {
	g.mustNode(node)
	nbrs := g.adj[node]
	k := len(nbrs)
	if k < 2 {
		return 0
	}

	ordered := 0
	for i := range nbrs {
		for j := range nbrs {
			if i == j {
				continue
			}
			if _, ok := g.adj[i][j]; ok {
				ordered++
			}
		}
	}
	maxPairs := k * (k - 1) / 2

	return float64(ordered) / (float64(maxPairs) * 2)
}

// ClusteringCoefficients returns ClusteringCoefficient for every node.
func (g *Graph) ClusteringCoefficients() []float64 {
	out := make([]float64, len(g.adj))
	for n := range g.adj {
		out[n] = g.ClusteringCoefficient(n)
	}

	return out
}

// NodeWeight returns the strength of node n: the sum of its edge weights,
// accumulated in ascending neighbor order.
func (g *Graph) NodeWeight(n int) float64 {
	sum := 0.0
	for _, v := range g.Neighbors(n) {
		sum += g.adj[n][v]
	}

	return sum
}

// CoreNumbers returns the k-core number of every node, taken from gonum's
// degeneracy ordering over an undirected view of g.
//
// Complexity: O(V + E) plus the cost of building the view.
func (g *Graph) CoreNumbers() []int {
	core := make([]int, len(g.adj))
	_, cores := topo.DegeneracyOrdering(g.undirected())
	for k, nodes := range cores {
		for _, n := range nodes {
			core[n.ID()] = k
		}
	}

	return core
}

// undirected mirrors g as a gonum graph whose node IDs are g's indices.
func (g *Graph) undirected() *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for i := range g.adj {
		ug.AddNode(simple.Node(int64(i)))
	}
	for a := range g.adj {
		for b := range g.adj[a] {
			if a < b {
				ug.SetEdge(simple.Edge{F: simple.Node(int64(a)), T: simple.Node(int64(b))})
			}
		}
	}

	return ug
}

// Cohesion scores a candidate complex. For each member p with count
// neighbors inside the set and weight the sum of those edge weights, it
// accumulates weight·(count+1)/|set|; the result is that sum divided by
// |set|. Duplicate members are ignored; an empty set scores 0.
func (g *Graph) Cohesion(nodes []int) float64 {
	members := dedupe(nodes)
	size := float64(len(members))
	if size == 0 {
		return 0
	}
	for _, p := range members {
		g.mustNode(p)
	}

	cohesion := 0.0
	for _, p := range members {
		count, weight := 0.0, 0.0
		for _, q := range members {
			if w, ok := g.adj[p][q]; ok {
				count++
				weight += w
			}
		}
		cohesion += weight * (count + 1) / size
	}

	return cohesion / size
}

// dedupe keeps the first occurrence of every index, preserving order.
func dedupe(nodes []int) []int {
	seen := make(map[int]struct{}, len(nodes))
	out := make([]int, 0, len(nodes))
	for _, n := range nodes {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out
}
