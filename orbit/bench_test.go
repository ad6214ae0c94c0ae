// SPDX-License-Identifier: MIT

package orbit_test

import (
	"testing"

	"github.com/katalvlaran/lebedev/orbit"
)

// BenchmarkExpand_Generic measures a single 48-point expansion into reused buffers.
func BenchmarkExpand_Generic(b *testing.B) {
	o := orbit.Orbit{Code: orbit.Generic, A: 0.1712319010787747, B: 0.5243170049419451e-1, V: 1}
	x, y, z, w := make([]float64, 48), make([]float64, 48), make([]float64, 48), make([]float64, 48)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = orbit.Expand(o, x, y, z, w, 0)
	}
}

// BenchmarkCheckInvariant_Generic measures the O(48·n²) closure check on the largest orbit.
func BenchmarkCheckInvariant_Generic(b *testing.B) {
	pts, err := orbit.Points(orbit.Orbit{Code: orbit.Generic, A: 0.1712319010787747, B: 0.5243170049419451e-1, V: 1})
	if err != nil {
		b.Fatalf("setup Points failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = orbit.CheckInvariant(pts, 1e-14)
	}
}
