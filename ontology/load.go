// SPDX-License-Identifier: MIT
// File: load.go
// Role: text readers for relation and annotation files, plus Load.

package ontology

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const maxLineBytes = 1 << 20

// Options configure Load.
type Options struct {
	IsAWeight    float64
	PartOfWeight float64
}

// Option mutates Options.
type Option func(*Options)

// WithIsAWeight overrides the IS_A relation weight.
func WithIsAWeight(w float64) Option { return func(o *Options) { o.IsAWeight = w } }

// WithPartOfWeight overrides the PART_OF relation weight.
func WithPartOfWeight(w float64) Option { return func(o *Options) { o.PartOfWeight = w } }

// DefaultOptions returns the standard relation weights.
func DefaultOptions() Options {
	return Options{IsAWeight: IsAWeight, PartOfWeight: PartOfWeight}
}

// Load builds a validated DAG from an IS_A relation file, a PART_OF relation
// file and an annotation file. IS_A is read first, so a pair present in both
// files ends up with the PART_OF weight. Either relation reader may be nil.
//
// Relation lines are "child parent1 parent2 ..."; annotation lines are
// "protein term1 term2 ...". Annotated terms missing from the relation files
// are ignored.
func Load(isA, partOf, annotations io.Reader, opts ...Option) (*DAG, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := NewDAG()
	if isA != nil {
		if err := d.ReadRelations(isA, o.IsAWeight); err != nil {
			return nil, fmt.Errorf("is_a: %w", err)
		}
	}
	if partOf != nil {
		if err := d.ReadRelations(partOf, o.PartOfWeight); err != nil {
			return nil, fmt.Errorf("part_of: %w", err)
		}
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if annotations != nil {
		if err := d.ReadAnnotations(annotations); err != nil {
			return nil, fmt.Errorf("annotations: %w", err)
		}
	}

	return d, nil
}

// ReadRelations adds every "child parent..." line of r with weight w.
// A line holding only a child declares the term without relations.
func (d *DAG) ReadRelations(r io.Reader, w float64) error {
	return scanFields(r, func(line int, fields []string) error {
		child := fields[0]
		d.AddTerm(child)
		for _, parent := range fields[1:] {
			if err := d.AddRelation(child, parent, w); err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
		}
		return nil
	})
}

// ReadAnnotations reads "protein term..." lines. Unknown terms are skipped;
// a protein listed alone or whose terms are all unknown is still recorded
// with an empty set.
func (d *DAG) ReadAnnotations(r io.Reader) error {
	return scanFields(r, func(_ int, fields []string) error {
		known := make([]int, 0, len(fields)-1)
		for _, name := range fields[1:] {
			if t, ok := d.termIndex[name]; ok {
				known = append(known, t)
			}
		}
		return d.Annotate(fields[0], known...)
	})
}

// scanFields calls fn for every non-blank, non-comment line.
func scanFields(r io.Reader, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(line, strings.Fields(text)); err != nil {
			return err
		}
	}

	return sc.Err()
}
