// SPDX-License-Identifier: MIT
// File: subgraph.go
// Role: induced subgraphs and connected-component decomposition.

package ppi

import "github.com/katalvlaran/ppicomplex/unionfind"

// Subgraph returns an independent graph induced by nodes. Retained nodes
// are renumbered 0..k-1 in the order given (duplicates skipped) and keep
// their labels; only edges with both endpoints retained are copied, with
// weights unchanged. The result shares no adjacency with g.
func (g *Graph) Subgraph(nodes []int) *Graph {
	members := dedupe(nodes)
	sub := &Graph{
		adj:    make([]map[int]float64, len(members)),
		labels: make([]string, len(members)),
		index:  make(map[string]int, len(members)),
	}
	renum := make(map[int]int, len(members))
	for i, n := range members {
		g.mustNode(n)
		renum[n] = i
		sub.adj[i] = make(map[int]float64)
		sub.labels[i] = g.labels[n]
		sub.index[g.labels[n]] = i
	}
	for _, n := range members {
		for v, w := range g.adj[n] {
			if j, ok := renum[v]; ok && renum[n] < j {
				sub.AddEdge(renum[n], j, w)
			}
		}
	}

	return sub
}

// SubgraphByLabels is Subgraph addressed by protein label; unknown labels
// are skipped.
func (g *Graph) SubgraphByLabels(labels []string) *Graph {
	nodes := make([]int, 0, len(labels))
	for _, l := range labels {
		if id, ok := g.index[l]; ok {
			nodes = append(nodes, id)
		}
	}

	return g.Subgraph(nodes)
}

// unionFind builds a fresh disjoint-set forest from the current edges.
func (g *Graph) unionFind() *unionfind.UnionFind {
	uf := unionfind.New(len(g.adj))
	for _, e := range g.Edges() {
		uf.Union(e.A, e.B)
	}

	return uf
}

// IsConnected reports whether g consists of exactly one connected component.
func (g *Graph) IsConnected() bool {
	return g.unionFind().IsConnected()
}

// Components returns the connected components of g, each ascending, ordered
// by smallest member.
func (g *Graph) Components() [][]int {
	return g.unionFind().Components()
}

// Split decomposes g into one independent subgraph per connected component
// holding at least minSize nodes. A connected g is returned as a single
// subgraph equal to g.
func (g *Graph) Split(minSize int) []*Graph {
	comps := g.Components()
	out := make([]*Graph, 0, len(comps))
	for _, c := range comps {
		if len(c) < minSize {
			continue
		}
		out = append(out, g.Subgraph(c))
	}

	return out
}
