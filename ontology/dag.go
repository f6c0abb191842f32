// SPDX-License-Identifier: MIT
// File: dag.go
// Role: term arena, relations, annotations.

package ontology

import (
	"fmt"
	"sort"
)

// NewDAG returns an empty ontology.
func NewDAG() *DAG {
	d := &DAG{
		termIndex:    make(map[string]int),
		proteinTerms: make(map[string][]int),
	}
	d.resetCaches()

	return d
}

// AddTerm returns the index of name, appending it on first sight.
func (d *DAG) AddTerm(name string) int {
	if id, ok := d.termIndex[name]; ok {
		return id
	}
	id := len(d.terms)
	d.terms = append(d.terms, name)
	d.termIndex[name] = id
	d.parents = append(d.parents, nil)
	d.children = append(d.children, nil)

	return id
}

// AddRelation records "child is related to parent" with weight w, adding
// unknown terms. A repeated child/parent pair keeps the latest weight.
// A self-relation is reported as ErrCycleDetected; longer cycles are only
// caught by Validate.
func (d *DAG) AddRelation(child, parent string, w float64) error {
	if !(w > 0 && w <= 1) {
		return fmt.Errorf("%w: %s -> %s = %v", ErrInvalidWeight, child, parent, w)
	}
	if child == parent {
		return fmt.Errorf("%w: %s is related to itself", ErrCycleDetected, child)
	}
	c := d.AddTerm(child)
	p := d.AddTerm(parent)

	rels := d.parents[c]
	i := sort.Search(len(rels), func(i int) bool { return rels[i].Parent >= p })
	if i < len(rels) && rels[i].Parent == p {
		rels[i].Weight = w
	} else {
		rels = append(rels, Relation{})
		copy(rels[i+1:], rels[i:])
		rels[i] = Relation{Parent: p, Weight: w}
		d.parents[c] = rels
		d.children[p] = insertSorted(d.children[p], c)
	}
	d.resetCaches()

	return nil
}

// Annotate attaches the given term indices to protein, merging with any
// terms already recorded. Out-of-range indices yield ErrUnknownTerm.
func (d *DAG) Annotate(protein string, terms ...int) error {
	set := d.proteinTerms[protein]
	for _, t := range terms {
		if t < 0 || t >= len(d.terms) {
			return fmt.Errorf("%w: index %d for %s", ErrUnknownTerm, t, protein)
		}
		set = insertSorted(set, t)
	}
	if set == nil {
		set = []int{}
	}
	d.proteinTerms[protein] = set

	return nil
}

// TermCount reports the number of terms.
func (d *DAG) TermCount() int { return len(d.terms) }

// Term returns the name of term t.
func (d *DAG) Term(t int) string { return d.terms[t] }

// TermIndex returns the index of a term name.
func (d *DAG) TermIndex(name string) (int, bool) {
	id, ok := d.termIndex[name]
	return id, ok
}

// Parents returns a copy of the direct parent relations of t.
func (d *DAG) Parents(t int) []Relation {
	return append([]Relation(nil), d.parents[t]...)
}

// Children returns a copy of the direct children of t.
func (d *DAG) Children(t int) []int {
	return append([]int(nil), d.children[t]...)
}

// ProteinTerms returns the sorted term indices annotated to protein.
func (d *DAG) ProteinTerms(protein string) []int {
	return append([]int(nil), d.proteinTerms[protein]...)
}

// Proteins returns all annotated proteins, sorted.
func (d *DAG) Proteins() []string {
	out := make([]string, 0, len(d.proteinTerms))
	for p := range d.proteinTerms {
		out = append(out, p)
	}
	sort.Strings(out)

	return out
}

func (d *DAG) resetCaches() {
	d.mu.Lock()
	for k := range d.caches {
		d.caches[k] = make(map[termPair]float64)
	}
	d.mu.Unlock()
}

// insertSorted adds v to the ascending slice s unless already present.
func insertSorted(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	if i < len(s) && s[i] == v {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v

	return s
}
