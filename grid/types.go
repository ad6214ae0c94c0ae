// SPDX-License-Identifier: MIT
// Package: lebedev/grid
//
// types.go — the Grid result type and its accessors.
//
// Contract:
//   • Generate yields X, Y, Z, W of equal length; Len() reads W, and Validate
//     reports a mismatch with ErrShapeMismatch.
//   • Order is the rule's point count; a Grid from Generate has Len() == Order.
//   • Radius, Center and Scale record the placement so validators can check a
//     grid against its own sphere and weight sum.
//   • Point rejects indices outside [0, Len()) with ErrOutOfRange; the other
//     accessors never fail.
//
// Determinism:
//   • Points and Clone copy values in grid order; WeightSum sums in index order.
//
// Complexity:
//   • Point O(1); Points, WeightSum, Clone O(Len()).

package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

const methodPoint = "Point"

// Grid is one quadrature rule realised as parallel slices. X[i], Y[i], Z[i]
// is point i and W[i] its weight. For a grid built without options the points
// lie on the unit sphere and the weights sum to 1.
//
// A Grid is owned by its caller; nothing else references its slices.
type Grid struct {
	Order  int // number of points
	Degree int // degree of exactness of the rule

	X, Y, Z, W []float64

	Radius float64 // sphere radius the points lie on
	Center r3.Vec  // sphere center
	Scale  float64 // expected weight sum
}

// Len returns the number of points.
func (g *Grid) Len() int {
	return len(g.W)
}

// Point returns point i and its weight.
func (g *Grid) Point(i int) (r3.Vec, float64, error) {
	if i < 0 || i >= g.Len() {
		return r3.Vec{}, 0, fmt.Errorf("%s: index %d not in [0,%d): %w", methodPoint, i, g.Len(), ErrOutOfRange)
	}

	return r3.Vec{X: g.X[i], Y: g.Y[i], Z: g.Z[i]}, g.W[i], nil
}

// Points returns all points as vectors, in grid order.
func (g *Grid) Points() []r3.Vec {
	pts := make([]r3.Vec, g.Len())
	for i := range pts {
		pts[i] = r3.Vec{X: g.X[i], Y: g.Y[i], Z: g.Z[i]}
	}

	return pts
}

// WeightSum returns Σ W[i].
func (g *Grid) WeightSum() float64 {
	return floats.Sum(g.W)
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.X = append([]float64(nil), g.X...)
	c.Y = append([]float64(nil), g.Y...)
	c.Z = append([]float64(nil), g.Z...)
	c.W = append([]float64(nil), g.W...)

	return &c
}
