// SPDX-License-Identifier: MIT
// File: traverse.go
// Role: ancestor BFS, LCA with paths, descendant closure.

package ontology

import "sort"

// ancestorWalk holds the state of an upward BFS from one term.
// A term is marked when it is enqueued, so pred records the first
// predecessor that reached it and dist is the shortest hop count.
type ancestorWalk struct {
	queue []int
	dist  map[int]int
	pred  map[int]int
}

func (d *DAG) walkUp(start int) *ancestorWalk {
	w := &ancestorWalk{
		queue: []int{start},
		dist:  map[int]int{start: 0},
		pred:  make(map[int]int),
	}
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		for _, r := range d.parents[cur] {
			if _, seen := w.dist[r.Parent]; seen {
				continue
			}
			w.dist[r.Parent] = w.dist[cur] + 1
			w.pred[r.Parent] = cur
			w.queue = append(w.queue, r.Parent)
		}
	}

	return w
}

// pathTo returns start → … → target following recorded predecessors.
func (w *ancestorWalk) pathTo(target int) []int {
	path := []int{target}
	for cur := target; ; {
		p, ok := w.pred[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// AncestorDistances maps every ancestor of t, and t itself at 0, to its
// shortest upward hop count.
func (d *DAG) AncestorDistances(t int) map[int]int {
	return d.walkUp(t).dist
}

// Ancestors returns the proper ancestors of t in ascending index order.
func (d *DAG) Ancestors(t int) []int {
	dist := d.walkUp(t).dist
	out := make([]int, 0, len(dist)-1)
	for a := range dist {
		if a != t {
			out = append(out, a)
		}
	}
	sort.Ints(out)

	return out
}

// LCA returns the common ancestor of a and b (each term counts as its own
// ancestor) minimising dist(a)+dist(b), ties broken by smallest index.
func (d *DAG) LCA(a, b int) (int, bool) {
	lca, _, _, ok := d.LCAWithPaths(a, b)
	return lca, ok
}

// LCAWithPaths is LCA plus the upward paths a → … → lca and b → … → lca,
// both endpoints included.
func (d *DAG) LCAWithPaths(a, b int) (lca int, pathA, pathB []int, ok bool) {
	wa, wb := d.walkUp(a), d.walkUp(b)

	best, lca := -1, -1
	for t, da := range wa.dist {
		db, common := wb.dist[t]
		if !common {
			continue
		}
		s := da + db
		if best < 0 || s < best || (s == best && t < lca) {
			best, lca = s, t
		}
	}
	if lca < 0 {
		return -1, nil, nil, false
	}

	return lca, wa.pathTo(lca), wb.pathTo(lca), true
}

// Descendants returns every term reachable from t through child links, in
// ascending index order; t itself is excluded.
func (d *DAG) Descendants(t int) []int {
	set := d.descendantSet(t)
	out := make([]int, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Ints(out)

	return out
}

func (d *DAG) descendantSet(t int) map[int]struct{} {
	seen := make(map[int]struct{})
	stack := append([]int(nil), d.children[t]...)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[cur]; ok {
			continue
		}
		seen[cur] = struct{}{}
		stack = append(stack, d.children[cur]...)
	}

	return seen
}

// SemanticValue maps t and each of its ancestors to the maximum product of
// relation weights over any upward path from t (t itself is 1).
func (d *DAG) SemanticValue(t int) map[int]float64 {
	sv := map[int]float64{t: 1}
	work := []int{t}
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		for _, r := range d.parents[cur] {
			v := sv[cur] * r.Weight
			if old, ok := sv[r.Parent]; !ok || v > old {
				sv[r.Parent] = v
				work = append(work, r.Parent)
			}
		}
	}

	return sv
}
