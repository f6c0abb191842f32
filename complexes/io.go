// SPDX-License-Identifier: MIT
// File: io.go
// Role: text reader and writer.

package complexes

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Write emits every complex whose cohesion exceeds minCohesion and returns
// how many lines were written.
func Write(w io.Writer, cs []Complex, minCohesion float64) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for _, c := range cs {
		if c.Cohesion <= minCohesion {
			continue
		}
		if _, err := fmt.Fprintln(bw, c.String()); err != nil {
			return n, err
		}
		n++
	}

	return n, bw.Flush()
}

// Read parses complexes from r. When known is non-nil, members absent from
// it are dropped; complexes whose remaining size falls outside
// [minSize, maxSize] are skipped. A trailing decimal field such as the
// "%.4f" column written by Write is taken as the cohesion; bare integers
// are protein IDs.
func Read(r io.Reader, known map[string]struct{}, minSize, maxSize int) ([]Complex, error) {
	var out []Complex
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		var c Complex
		last := fields[len(fields)-1]
		if _, isProtein := known[last]; !isProtein && strings.Contains(last, ".") {
			if v, err := strconv.ParseFloat(last, 64); err == nil {
				c.Cohesion = v
				fields = fields[:len(fields)-1]
			}
		}
		for _, p := range fields {
			if known != nil {
				if _, ok := known[p]; !ok {
					continue
				}
			}
			c.Proteins = append(c.Proteins, p)
		}
		if c.Len() >= minSize && c.Len() <= maxSize {
			out = append(out, c)
		}
	}

	return out, sc.Err()
}
