// SPDX-License-Identifier: MIT
// Package ontology implements a Gene Ontology term DAG and the semantic
// similarity measures built on it.
//
// What:
//
//   - DAG holds terms in an arena (term index = slice offset), child → parent
//     relations weighted by kind (IS_A 0.8, PART_OF 0.6), the inverse child
//     index, and protein → term annotations.
//   - Traversals: ancestors with BFS distances and first-reached
//     predecessors, lowest common ancestor with path reconstruction,
//     descendant closure. All traversals use explicit queues or stacks, so
//     deep ontologies never hit a recursion limit.
//   - SemanticValue propagates the maximum product of relation weights from
//     a term to each of its ancestors.
//   - TermSimilarity scores two terms from the LCA paths (Wang-style
//     semantic contributions); TermSimilarityChild compares descendant
//     closures; WangSimilarity is the classic whole-ancestor ratio.
//   - ProteinSimilarity aggregates best-match term scores over the two
//     annotation sets; CombinedSimilarity averages the ancestor and
//     descendant variants.
//
// Caching:
//
//   - Term-pair scores are memoized under an unordered key, so
//     sim(a,b) == sim(b,a) by construction. Entries are written at most once
//     per key and guarded by a RWMutex, which makes the similarity queries
//     safe for concurrent readers. Structural mutation (AddRelation) is not
//     concurrent-safe and drops the caches.
//
// Errors:
//
//   - ErrCycleDetected   relations are not acyclic (checked by Validate/Load).
//   - ErrInvalidWeight   relation weight outside (0, 1].
//   - ErrUnknownTerm     a term name is not part of the ontology.
//
// References:
//
//	Wang J.Z. et al., "A new method to measure the semantic similarity of GO
//	terms", Bioinformatics 23(10), 2007.
package ontology
