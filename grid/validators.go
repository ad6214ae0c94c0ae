// SPDX-License-Identifier: MIT
// Package: lebedev/grid
//
// validators.go — structural checks on generated grids and rule tables.
//
// Purpose:
//  - Validate: finite values, every point on the grid sphere, Σw == Scale.
//  - CheckSymmetry: every orbit of a rule table is closed under Oh.
//
// Checks run in a fixed sequence (nil → shape → finiteness → sphere → weights)
// and stop at the first violation.

package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lebedev/orbit"
)

const (
	methodValidate      = "Validate"
	methodCheckSymmetry = "CheckSymmetry"
)

// validatorErrorf tags err with the validator name and a detail message.
func validatorErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// Validate checks g against its own placement: all values finite, every point
// within tol·Radius of the sphere, and |Σw − Scale| ≤ tol·Scale.
// Complexity: O(Len()).
func (g *Grid) Validate(tol float64) error {
	if g == nil {
		return validatorErrorf(methodValidate, "receiver", ErrNilGrid)
	}
	n := len(g.W)
	if len(g.X) != n || len(g.Y) != n || len(g.Z) != n || n != g.Order {
		return validatorErrorf(methodValidate, "order %d with x=%d y=%d z=%d w=%d",
			ErrShapeMismatch, g.Order, len(g.X), len(g.Y), len(g.Z), n)
	}
	for _, s := range [][]float64{g.X, g.Y, g.Z, g.W} {
		if !allFinite(s) {
			return validatorErrorf(methodValidate, "NaN or Inf value", ErrNaNInf)
		}
	}
	for i := 0; i < n; i++ {
		d := r3.Norm(r3.Sub(r3.Vec{X: g.X[i], Y: g.Y[i], Z: g.Z[i]}, g.Center))
		if math.Abs(d-g.Radius) > tol*g.Radius {
			return validatorErrorf(methodValidate, "point %d at distance %.17g, want %.17g",
				ErrOffSphere, i, d, g.Radius)
		}
	}
	if sum := g.WeightSum(); math.Abs(sum-g.Scale) > tol*g.Scale {
		return validatorErrorf(methodValidate, "weight sum %.17g, want %.17g", ErrNotNormalized, sum, g.Scale)
	}

	return nil
}

// CheckSymmetry expands every orbit of the order-point rule on its own and
// verifies it is closed under the 48 operations of Oh within tol.
// Complexity: O(48·Σ size²) over the orbits of the rule.
func CheckSymmetry(order int, tol float64) error {
	r, err := lookup(methodCheckSymmetry, order)
	if err != nil {
		return err
	}
	for i, o := range r.orbits {
		pts, err := orbit.Points(o)
		if err != nil {
			return fmt.Errorf("%s: ld%04d orbit %d: %w", methodCheckSymmetry, order, i, err)
		}
		if err := orbit.CheckInvariant(pts, tol); err != nil {
			return fmt.Errorf("%s: ld%04d orbit %d (%v): %w", methodCheckSymmetry, order, i, o.Code, err)
		}
	}

	return nil
}
