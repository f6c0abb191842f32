package unionfind

import "fmt"

// UnionFind is a disjoint-set forest with path compression and union by rank.
type UnionFind struct {
	parent []int
	rank   []int
	count  int
}

// New returns a UnionFind with n singleton sets {0}, {1}, ..., {n-1}.
// Negative n is treated as 0.
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// FromPairs builds a UnionFind over n nodes and unions every pair.
// It panics if a pair references an index outside [0, n).
func FromPairs(n int, pairs [][2]int) *UnionFind {
	uf := New(n)
	for _, p := range pairs {
		uf.Union(p[0], p[1])
	}

	return uf
}

// Len reports the number of nodes covered by uf.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Count reports the current number of disjoint sets.
func (uf *UnionFind) Count() int { return uf.count }

// Find returns the representative of x, compressing the path on the way up.
// It panics if x is outside [0, Len()).
func (uf *UnionFind) Find(x int) int {
	uf.check(x)
	for uf.parent[x] != x {
		// point x at its grandparent (path halving)
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// Union merges the sets containing a and b.
// It reports whether a merge happened; Count decreases only in that case.
func (uf *UnionFind) Union(a, b int) bool {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return false
	}
	// attach the shallower tree under the deeper root
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
	uf.count--

	return true
}

// Connected reports whether a and b share a representative.
func (uf *UnionFind) Connected(a, b int) bool {
	return uf.Find(a) == uf.Find(b)
}

// IsConnected reports whether all nodes belong to a single set.
// An empty forest is not connected.
func (uf *UnionFind) IsConnected() bool {
	return uf.count == 1
}

// Components returns one group per distinct root. Every index appears in
// exactly one group. Groups are ordered by their smallest member and the
// members of each group are ascending.
func (uf *UnionFind) Components() [][]int {
	slot := make(map[int]int, uf.count)
	groups := make([][]int, 0, uf.count)
	for i := range uf.parent {
		root := uf.Find(i)
		k, ok := slot[root]
		if !ok {
			k = len(groups)
			slot[root] = k
			groups = append(groups, nil)
		}
		groups[k] = append(groups[k], i)
	}

	return groups
}

func (uf *UnionFind) check(x int) {
	if x < 0 || x >= len(uf.parent) {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, x, len(uf.parent)))
	}
}
