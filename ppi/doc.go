// SPDX-License-Identifier: MIT
// Package ppi models a protein–protein interaction network as an
// undirected, weighted, index-addressed graph.
//
// What:
//
//   - Graph stores adjacency as node → (neighbor → weight) maps, keeps the
//     edge count equal to the number of distinct undirected edges, and keeps
//     a bidirectional protein label ↔ node index mapping.
//   - Connectivity primitives: neighborhood Jaccard (open and closed),
//     local clustering coefficient, k-core numbers, weighted node strength,
//     complex cohesion.
//   - Derivation: Subgraph produces an independent graph with freshly
//     renumbered nodes and exactly the induced edges; Components/Split
//     decompose a graph into connected pieces via unionfind.
//   - ReadEdgeList parses whitespace-delimited interaction files.
//
// Determinism:
//
//   - Neighbors, Edges, Components return ascending orders, so every
//     floating-point accumulation built on them is reproducible.
//
// Errors:
//
//   - ErrNodeOutOfRange  node index outside [0, NodeCount()) (panic value).
//   - ErrSelfLoop        AddEdge(a, a, w) (panic value).
//   - ErrInvalidWeight   NaN or ±Inf weight (panic value).
//   - ErrDuplicateLabel  NewWithLabels received the same protein twice.
//   - ErrMalformedLine   reader met a line with fewer than two fields.
//
// Mutations with a bad index are programmer errors: the graph would be
// corrupted, so they panic with an error wrapping the sentinel instead of
// returning it.
//
// Graph is not safe for concurrent mutation.
package ppi
