package reweight

import (
	"fmt"

	"github.com/katalvlaran/ppicomplex/ppi"
)

// Reweight rescores every edge of g in place and prunes functionally
// dissimilar edges.
func Reweight(g *ppi.Graph, sim Similarity, opts ...Option) (Stats, error) {
	if g == nil || sim == nil {
		return Stats{}, ErrNilInput
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.Alpha >= 0 && o.Alpha <= 1) {
		return Stats{}, fmt.Errorf("%w: %v", ErrInvalidAlpha, o.Alpha)
	}

	topo := g.NeighborsJaccard
	if o.Closed {
		topo = g.JaccardPlus
	}

	edges := g.Edges()
	next := make([]ppi.Edge, 0, len(edges))
	var prune []ppi.Edge
	for _, e := range edges {
		t := topo(e.A, e.B)
		f := sim(g.Label(e.A), g.Label(e.B))
		next = append(next, ppi.Edge{A: e.A, B: e.B, Weight: o.Alpha*f + (1-o.Alpha)*t})
		if f <= o.PruneThreshold {
			prune = append(prune, e)
		}
	}

	for _, e := range next {
		g.AddEdge(e.A, e.B, e.Weight)
	}
	for _, e := range prune {
		g.RemoveEdge(e.A, e.B)
	}

	return Stats{Edges: len(edges), Pruned: len(prune)}, nil
}
