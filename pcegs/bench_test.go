// SPDX-License-Identifier: MIT
package pcegs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ppicomplex/pcegs"
	"github.com/katalvlaran/ppicomplex/ppi"
)

func BenchmarkDetect(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	g := ppi.New(500)
	for i := 0; i < 3000; i++ {
		u, v := rng.Intn(500), rng.Intn(500)
		if u != v {
			g.AddEdge(u, v, rng.Float64())
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pcegs.Detect(g)
	}
}
