// SPDX-License-Identifier: MIT
// File: types.go
// Role: Graph and Edge types, sentinel errors, defaults.

package ppi

import "errors"

// DefaultEdgeWeight is used for unweighted interactions.
const DefaultEdgeWeight = 1.0

// Sentinel errors for ppi operations.
var (
	// ErrNodeOutOfRange indicates a node index outside [0, NodeCount()).
	ErrNodeOutOfRange = errors.New("ppi: node index out of range")

	// ErrSelfLoop indicates an attempt to connect a node to itself.
	ErrSelfLoop = errors.New("ppi: self-loop not allowed")

	// ErrInvalidWeight indicates a NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("ppi: edge weight must be finite")

	// ErrDuplicateLabel indicates a protein label listed twice at construction.
	ErrDuplicateLabel = errors.New("ppi: duplicate protein label")

	// ErrMalformedLine indicates an interaction line with fewer than two fields.
	ErrMalformedLine = errors.New("ppi: malformed interaction line")
)

// Edge is one undirected weighted interaction between node indices A and B.
type Edge struct {
	A, B   int
	Weight float64
}

// Graph is an undirected weighted interaction graph over node indices [0, n).
//
// Invariants:
//   - adj is symmetric: adj[a][b] == adj[b][a] for every stored pair.
//   - edgeCount equals the number of distinct unordered pairs stored in adj.
//   - labels[i] is the protein of node i and index[labels[i]] == i.
type Graph struct {
	edgeCount int
	adj       []map[int]float64
	labels    []string
	index     map[string]int
}
