// SPDX-License-Identifier: MIT
// Package pcegs grows protein complexes from seeds with a core-attachment
// rule on a weighted PPI graph.
//
// What:
//
//	node weight   nw(n)      = Σ_v w(n,v)
//	attraction    A(n,v)     = nw(n)·nw(v) / (1 + log10(1 + w(n,v)))²   (edges only)
//	influence     I(n)       = Σ_v A(v,n)
//	attachment    att(n, C)  = Σ_{d∈C} A(d,n) / I(n)
//
//	Seeds are visited by descending clustering coefficient (ties by node
//	index). For each unvisited seed s the core is N(s) ∪ {s}; candidates are
//	the neighbors of N(s) outside the core; candidates with att >= beta join.
//	Core members are marked visited; attached nodes are not, so complexes
//	may overlap and are meant to be passed through complexes.Deduplicate.
//
// Essential variant (WithEssential): only essential seeds start a
// complex and the core keeps only the seed's essential neighbors.
//
// Complexity:
//
//	O(V·d²) for clustering coefficients plus O(V·d²) for expansion, d the
//	typical degree. Single deterministic pass, no convergence loop.
package pcegs
