// SPDX-License-Identifier: MIT
// File: acyclic.go
// Role: cycle detection over the relation graph.

package ontology

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Validate reports ErrCycleDetected when the child → parent relations
// contain a cycle. The error names the terms of one offending component.
func (d *DAG) Validate() error {
	g := simple.NewDirectedGraph()
	for t := range d.terms {
		g.AddNode(simple.Node(t))
	}
	for c, rels := range d.parents {
		for _, r := range rels {
			g.SetEdge(g.NewEdge(simple.Node(c), simple.Node(r.Parent)))
		}
	}

	if _, err := topo.Sort(g); err != nil {
		var u topo.Unorderable
		if !errors.As(err, &u) || len(u) == 0 {
			return fmt.Errorf("%w: %v", ErrCycleDetected, err)
		}
		names := make([]string, 0, len(u[0]))
		for _, n := range u[0] {
			names = append(names, d.terms[n.ID()])
		}
		sort.Strings(names)
		return fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(names, ", "))
	}

	return nil
}
