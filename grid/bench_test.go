// SPDX-License-Identifier: MIT

package grid_test

import (
	"testing"

	"github.com/katalvlaran/lebedev/grid"
)

// BenchmarkGenerate_5810 measures allocation and expansion of the largest rule.
func BenchmarkGenerate_5810(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = grid.Generate(5810)
	}
}

// BenchmarkFill_5810 measures expansion of the largest rule into reused buffers.
func BenchmarkFill_5810(b *testing.B) {
	const n = 5810
	x, y, z, w := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = grid.Fill(n, x, y, z, w)
	}
}

// BenchmarkCheckExactness_590 measures the monomial sweep through degree 41.
func BenchmarkCheckExactness_590(b *testing.B) {
	g, err := grid.Generate(590)
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = grid.CheckExactness(g, g.Degree, 1e-12)
	}
}
