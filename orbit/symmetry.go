// SPDX-License-Identifier: MIT
// Package: lebedev/orbit
//
// symmetry.go — the 48 operations of Oh and an invariance check.
//
// Contract:
//   • Group returns 6 permutations × 8 sign patterns, identity first, in a
//     fixed order.
//   • CheckInvariant → ErrAsymmetric on the first image with no match within tol.
//
// Complexity:
//   • Group O(48); CheckInvariant O(48·n²) for n points.

package orbit

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const methodCheckInvariant = "CheckInvariant"

// Op is one element of Oh: output axis i takes Sign[i] times input axis Perm[i].
type Op struct {
	Perm [3]int
	Sign [3]float64
}

// Apply returns the image of p under op.
func (op Op) Apply(p r3.Vec) r3.Vec {
	c := [3]float64{p.X, p.Y, p.Z}

	return r3.Vec{
		X: op.Sign[0] * c[op.Perm[0]],
		Y: op.Sign[1] * c[op.Perm[1]],
		Z: op.Sign[2] * c[op.Perm[2]],
	}
}

var permutations = [6][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

// Group returns the 48 operations of Oh: 6 axis permutations × 8 sign patterns.
// The identity is element 0.
func Group() []Op {
	ops := make([]Op, 0, len(permutations)*8)
	for _, perm := range permutations {
		for mask := 0; mask < 8; mask++ {
			op := Op{Perm: perm, Sign: [3]float64{1, 1, 1}}
			for bit := 0; bit < 3; bit++ {
				if mask&(1<<bit) != 0 {
					op.Sign[bit] = -1
				}
			}
			ops = append(ops, op)
		}
	}

	return ops
}

// CheckInvariant returns ErrAsymmetric unless every image of every point under
// every Oh operation lies within tol of some point of pts.
// Complexity: O(48·n²).
func CheckInvariant(pts []r3.Vec, tol float64) error {
	for _, op := range Group() {
		for i, p := range pts {
			img := op.Apply(p)
			found := false
			for _, q := range pts {
				if r3.Norm(r3.Sub(img, q)) <= tol {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("%s: image %v of point %d under %v has no match: %w",
					methodCheckInvariant, img, i, op, ErrAsymmetric)
			}
		}
	}

	return nil
}
