// SPDX-License-Identifier: MIT
// File: reader.go
// Role: whitespace-delimited interaction and protein-list readers.

package ppi

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ReadEdgeList parses "proteinA proteinB [weight]" lines into a graph.
// Proteins receive indices on first sight. When weighted is false, or the
// third column is missing, unparsable or non-finite, the weight is
// DefaultEdgeWeight. Blank lines and lines starting with '#' are skipped,
// as are self-interactions. A line with fewer than two fields yields
// ErrMalformedLine with its line number.
func ReadEdgeList(r io.Reader, weighted bool) (*Graph, error) {
	g := New(0)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}
		if fields[0] == fields[1] {
			continue
		}

		w := DefaultEdgeWeight
		if weighted && len(fields) > 2 {
			if v, err := strconv.ParseFloat(fields[2], 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
				w = v
			}
		}
		a := g.AddNode(fields[0])
		b := g.AddNode(fields[1])
		g.AddEdge(a, b, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ppi: read edge list: %w", err)
	}

	return g, nil
}

// ReadProteinSet collects the first field of every non-blank, non-comment
// line, e.g. an essential-protein reference list.
func ReadProteinSet(r io.Reader) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.Fields(line)[0]] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ppi: read protein set: %w", err)
	}

	return set, nil
}
