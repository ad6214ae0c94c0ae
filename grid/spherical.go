// SPDX-License-Identifier: MIT
// Package: lebedev/grid
//
// spherical.go — Cartesian → spherical angle conversion.

package grid

import "math"

// ToSpherical returns the azimuth in (−π, π] measured from +x towards +y, and
// the polar angle in [0, π] measured from +z. The origin maps to (0, 0).
func ToSpherical(x, y, z float64) (azimuth, polar float64) {
	r := math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		return 0, 0
	}
	cos := z / r
	// Rounding can push |z/r| a hair past 1.
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return math.Atan2(y, x), math.Acos(cos)
}

// Spherical returns the azimuth and polar angle of every point, taken
// relative to the grid center.
func (g *Grid) Spherical() (azimuth, polar []float64) {
	azimuth = make([]float64, g.Len())
	polar = make([]float64, g.Len())
	for i := range azimuth {
		azimuth[i], polar[i] = ToSpherical(g.X[i]-g.Center.X, g.Y[i]-g.Center.Y, g.Z[i]-g.Center.Z)
	}

	return azimuth, polar
}
