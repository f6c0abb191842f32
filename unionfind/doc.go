// Package unionfind provides a disjoint-set forest over dense integer
// node indices [0, n).
//
// What:
//
//   - Find with iterative path compression (no recursion depth limit).
//   - Union by rank; Count tracks the number of disjoint sets and only
//     drops on an actual merge.
//   - Components groups every index exactly once, ordered by the smallest
//     member of each group, members ascending.
//
// Why:
//
//   - Connectivity tests on interaction graphs (IsConnected).
//   - Decomposing a candidate subgraph into connected pieces before any
//     further per-piece processing.
//
// A UnionFind is built fresh from the current edge list whenever
// connectivity must be tested; it is not kept in sync with graph mutations
// and is not safe for concurrent use.
//
// Complexity:
//
//   - Find/Union: amortized O(α(n)).
//   - Components: O(n·α(n)).
package unionfind
