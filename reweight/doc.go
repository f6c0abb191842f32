// Package reweight fuses topological and functional similarity into PPI
// edge weights.
//
// What:
//
//	For every edge (u,v):
//	  t = NeighborsJaccard(u,v)            (JaccardPlus with WithClosedNeighborhood)
//	  f = Similarity(label(u), label(v))
//	  w = alpha·f + (1-alpha)·t
//	Edges with f <= PruneThreshold are then removed.
//
// Why two phases:
//
//	All scores are read from the unmodified graph, then weights are
//	written, then pruning runs. Removing an edge changes neighbor sets, so
//	interleaving removal with scoring would make the result depend on edge
//	order.
//
// Complexity:
//
//	O(E·(d + S)) where d is the typical degree and S the cost of one
//	Similarity call; ontology similarities are memoized by the caller.
package reweight
