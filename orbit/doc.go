// SPDX-License-Identifier: MIT

// Package orbit expands a single symmetry-orbit descriptor into the full set
// of points it generates on the unit sphere under the octahedral group Oh.
//
// What:
//
//   - Orbit{Code, A, B, V} describes one generator and the weight V shared by
//     every point of its orbit.
//   - Code selects one of six coordinate patterns (see below).
//   - Expand writes the orbit into caller-owned x/y/z/w slices at an offset.
//   - Points returns the orbit as freshly allocated r3.Vec values.
//   - Group returns the 48 signed axis permutations forming Oh, and
//     CheckInvariant verifies that a point set is closed under them.
//
// Codes:
//
//	Axes             (1,0,0)            6 points
//	EdgeCenters      (0,A,A) A=1/√2     12 points
//	Corners          (A,A,A) A=1/√3     8 points
//	DiagonalPlanes   (A,A,B) B=√(1-2A²) 24 points, A given
//	CoordinatePlanes (A,B,0) B=√(1-A²)  24 points, A given
//	Generic          (A,B,C) C=√(1-A²-B²) 48 points, A and B given
//
// Point order inside an orbit is fixed: axis arrangements are emitted in a
// fixed sequence and, for each arrangement, sign patterns over the non-zero
// components with the first component toggling fastest. The quadrature tables
// in package grid rely on this order being stable.
//
// Complexity:
//
//   - Expand: O(Size(code)) time, no allocation.
//   - CheckInvariant: O(48·n²) for n points (orbits hold at most 48).
//
// Errors:
//
//   - ErrInvalidCode: code outside 1..6; nothing is written.
//   - ErrShortBuffer: a destination slice cannot hold offset+Size points.
//   - ErrAsymmetric:  a point set is not closed under Oh.
//
// Reference: V. Lebedev, D. Laikov, "A quadrature formula for the sphere of
// the 131st algebraic order of accuracy", Doklady Mathematics 59(3), 1999.
package orbit
