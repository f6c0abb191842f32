// SPDX-License-Identifier: MIT
// File: graph.go
// Role: construction, node labels, edge mutation and queries.

package ppi

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// New returns a graph with n isolated nodes labelled "0".."n-1".
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		adj:    make([]map[int]float64, n),
		labels: make([]string, n),
		index:  make(map[string]int, n),
	}
	for i := 0; i < n; i++ {
		g.adj[i] = make(map[int]float64)
		g.labels[i] = strconv.Itoa(i)
		g.index[g.labels[i]] = i
	}

	return g
}

// NewWithLabels returns a graph with one isolated node per label, node i
// carrying labels[i]. Duplicate labels are rejected with ErrDuplicateLabel.
func NewWithLabels(labels []string) (*Graph, error) {
	g := &Graph{
		adj:    make([]map[int]float64, 0, len(labels)),
		labels: make([]string, 0, len(labels)),
		index:  make(map[string]int, len(labels)),
	}
	for _, l := range labels {
		if _, ok := g.index[l]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		g.AddNode(l)
	}

	return g, nil
}

// NewFromEdges returns a graph sized to the largest index in edges plus one,
// with default numeric labels, and inserts every edge.
func NewFromEdges(edges []Edge) *Graph {
	n := 0
	for _, e := range edges {
		if e.A+1 > n {
			n = e.A + 1
		}
		if e.B+1 > n {
			n = e.B + 1
		}
	}
	g := New(n)
	for _, e := range edges {
		g.AddEdge(e.A, e.B, e.Weight)
	}

	return g
}

// AddNode returns the index of label, appending a new isolated node on
// first sight. Indices therefore follow discovery order.
func (g *Graph) AddNode(label string) int {
	if id, ok := g.index[label]; ok {
		return id
	}
	id := len(g.adj)
	g.adj = append(g.adj, make(map[int]float64))
	g.labels = append(g.labels, label)
	g.index[label] = id

	return id
}

// NodeCount reports the number of nodes.
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount reports the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Label returns the protein identifier of node i.
func (g *Graph) Label(i int) string {
	g.mustNode(i)
	return g.labels[i]
}

// Labels returns a copy of all labels, index-aligned with nodes.
func (g *Graph) Labels() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// Index returns the node index of a protein label.
func (g *Graph) Index(label string) (int, bool) {
	id, ok := g.index[label]
	return id, ok
}

// AddEdge stores the undirected edge {a, b} with weight w. Re-adding an
// existing edge overwrites its weight and leaves EdgeCount unchanged.
// It panics on an out-of-range index, a self-loop or a non-finite weight.
func (g *Graph) AddEdge(a, b int, w float64) {
	g.mustNode(a)
	g.mustNode(b)
	if a == b {
		panic(fmt.Errorf("%w: node %d", ErrSelfLoop, a))
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		panic(fmt.Errorf("%w: {%d,%d} = %v", ErrInvalidWeight, a, b, w))
	}
	if _, ok := g.adj[a][b]; !ok {
		g.edgeCount++
	}
	g.adj[a][b] = w
	g.adj[b][a] = w
}

// RemoveEdge deletes {a, b} in both directions; absent edges are a no-op.
func (g *Graph) RemoveEdge(a, b int) {
	if !g.HasEdge(a, b) {
		return
	}
	delete(g.adj[a], b)
	delete(g.adj[b], a)
	g.edgeCount--
}

// HasEdge reports whether {a, b} is stored.
func (g *Graph) HasEdge(a, b int) bool {
	g.mustNode(a)
	g.mustNode(b)
	_, ok := g.adj[a][b]

	return ok
}

// Weight returns the weight of {a, b} and whether the edge exists.
func (g *Graph) Weight(a, b int) (float64, bool) {
	g.mustNode(a)
	g.mustNode(b)
	w, ok := g.adj[a][b]

	return w, ok
}

// Degree reports the number of neighbors of node a.
func (g *Graph) Degree(a int) int {
	g.mustNode(a)
	return len(g.adj[a])
}

// Neighbors returns the neighbors of a in ascending index order.
func (g *Graph) Neighbors(a int) []int {
	g.mustNode(a)
	out := make([]int, 0, len(g.adj[a]))
	for b := range g.adj[a] {
		out = append(out, b)
	}
	sort.Ints(out)

	return out
}

// Edges returns every undirected edge once with A < B, sorted by (A, B).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for a := range g.adj {
		for _, b := range g.Neighbors(a) {
			if a < b {
				out = append(out, Edge{A: a, B: b, Weight: g.adj[a][b]})
			}
		}
	}

	return out
}

func (g *Graph) mustNode(i int) {
	if i < 0 || i >= len(g.adj) {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrNodeOutOfRange, i, len(g.adj)))
	}
}
