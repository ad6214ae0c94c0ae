// SPDX-License-Identifier: MIT

package orbit_test

import (
	"fmt"

	"github.com/katalvlaran/lebedev/orbit"
)

// ExampleExpand writes the 8 cube corners of a Corners orbit into
// preallocated buffers and prints the first point and the count.
func ExampleExpand() {
	const n = 8
	x, y, z, w := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)

	written, err := orbit.Expand(orbit.Orbit{Code: orbit.Corners, V: 0.125}, x, y, z, w, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("written:", written)
	fmt.Printf("first: (%.4f, %.4f, %.4f) w=%.3f\n", x[0], y[0], z[0], w[0])
	fmt.Printf("last:  (%.4f, %.4f, %.4f)\n", x[n-1], y[n-1], z[n-1])

	// Output:
	// written: 8
	// first: (0.5774, 0.5774, 0.5774) w=0.125
	// last:  (-0.5774, -0.5774, -0.5774)
}

// ExamplePoints lists the six axis points of an Axes orbit.
func ExamplePoints() {
	pts, _ := orbit.Points(orbit.Orbit{Code: orbit.Axes, V: 1.0 / 6})
	for _, p := range pts {
		fmt.Printf("(%g, %g, %g)\n", p.X, p.Y, p.Z)
	}

	// Output:
	// (1, 0, 0)
	// (-1, 0, 0)
	// (0, 1, 0)
	// (0, -1, 0)
	// (0, 0, 1)
	// (0, 0, -1)
}
