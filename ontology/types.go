// SPDX-License-Identifier: MIT
// File: types.go
// Role: DAG type, relation kinds, sentinel errors.

package ontology

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Default relation weights.
const (
	IsAWeight    = 0.8
	PartOfWeight = 0.6
)

// Sentinel errors for ontology operations.
var (
	// ErrCycleDetected indicates the relation graph is not a DAG.
	ErrCycleDetected = errors.New("ontology: cycle detected in term relations")

	// ErrInvalidWeight indicates a relation weight outside (0, 1].
	ErrInvalidWeight = errors.New("ontology: relation weight must be in (0,1]")

	// ErrUnknownTerm indicates a term name absent from the ontology.
	ErrUnknownTerm = errors.New("ontology: unknown term")
)

// Relation is one child → parent edge as seen from the child.
type Relation struct {
	Parent int
	Weight float64
}

// termPair is an unordered term pair; lo <= hi always.
type termPair struct{ lo, hi int }

func pairOf(a, b int) termPair {
	if a > b {
		a, b = b, a
	}
	return termPair{lo: a, hi: b}
}

type cacheKind int

const (
	ancestorCache cacheKind = iota
	childCache
	wangCache
	cacheKinds
)

// CacheStats reports memoization effectiveness across all term-pair caches.
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// DAG is a Gene Ontology term hierarchy with protein annotations.
//
// Invariants:
//   - parents[t] is sorted by Parent and holds each parent once.
//   - children[p] is sorted and is the exact inverse of parents.
//   - proteinTerms[p] is sorted and duplicate-free.
type DAG struct {
	terms     []string
	termIndex map[string]int

	parents  [][]Relation
	children [][]int

	proteinTerms map[string][]int

	mu     sync.RWMutex // guards caches
	caches [cacheKinds]map[termPair]float64

	hits   atomic.Uint64
	misses atomic.Uint64
}
