// SPDX-License-Identifier: MIT
// File: complex.go
// Role: Complex type, overlap tests, deduplication.

package complexes

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultOverlapThreshold is the overlap ratio at which two complexes are
// considered redundant.
const DefaultOverlapThreshold = 0.6

// Complex is a predicted protein complex.
type Complex struct {
	Proteins []string
	Cohesion float64
}

// Len reports the number of member proteins.
func (c Complex) Len() int { return len(c.Proteins) }

// String renders c in the text format without a trailing newline.
func (c Complex) String() string {
	return fmt.Sprintf("%s\t%.4f", strings.Join(c.Proteins, "\t"), c.Cohesion)
}

// Common counts proteins present in both complexes.
func Common(a, b Complex) int {
	set := make(map[string]struct{}, len(a.Proteins))
	for _, p := range a.Proteins {
		set[p] = struct{}{}
	}
	n := 0
	for _, p := range uniq(b.Proteins) {
		if _, ok := set[p]; ok {
			n++
		}
	}
	return n
}

// IsOverlapped reports |a∩b| / max(|a|,|b|) >= threshold, sizes counted
// over distinct members.
func IsOverlapped(a, b Complex, threshold float64) bool {
	denom := max(len(uniq(a.Proteins)), len(uniq(b.Proteins)))
	if denom == 0 {
		return false
	}
	return float64(Common(a, b))/float64(denom) >= threshold
}

// OverlapScore returns the common count and |a∩b|² / (|a|·|b|), the
// neighborhood affinity used when matching predictions to references.
func OverlapScore(a, b Complex) (int, float64) {
	common := Common(a, b)
	denom := float64(a.Len() * b.Len())
	if denom == 0 {
		return common, 0
	}
	return common, float64(common*common) / denom
}

// DedupOption configures Deduplicate.
type DedupOption func(*dedupConfig)

type dedupConfig struct{ threshold float64 }

// WithOverlapThreshold replaces DefaultOverlapThreshold.
func WithOverlapThreshold(th float64) DedupOption {
	return func(c *dedupConfig) { c.threshold = th }
}

// Deduplicate ranks complexes by cohesion and drops redundant ones.
// The input slice is not modified.
func Deduplicate(cs []Complex, opts ...DedupOption) []Complex {
	cfg := dedupConfig{threshold: DefaultOverlapThreshold}
	for _, o := range opts {
		o(&cfg)
	}

	ranked := append([]Complex(nil), cs...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Cohesion > ranked[j].Cohesion
	})

	kept := make([]Complex, 0, len(ranked))
	for _, c := range ranked {
		redundant := false
		for _, k := range kept {
			if IsOverlapped(c, k, cfg.threshold) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, c)
		}
	}

	return kept[:len(kept)/2]
}

func uniq(ps []string) []string {
	seen := make(map[string]struct{}, len(ps))
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
