// SPDX-License-Identifier: MIT

// Package grid provides the 32 Lebedev-Laikov angular quadrature rules on the
// unit sphere, from 6 to 5810 points, and tools to use and verify them.
//
// What:
//
//   - Generate(order) returns a freshly allocated Grid: parallel X, Y, Z, W
//     slices of exactly order points.
//   - Fill(order, x, y, z, w) writes the same rule into caller-owned slices.
//   - Orders, Degree, ForDegree and Orbits describe the rule catalogue.
//   - Integrate, MonomialMean and CheckExactness evaluate and verify rules.
//   - Validate and CheckSymmetry check the structural invariants.
//
// Why:
//
//   - Angular integration in density-functional and scattering codes.
//   - Spherical averaging of orientation-dependent quantities.
//   - Reference rules for testing other spherical quadratures.
//
// Each rule is a fixed list of orbit.Orbit generators; a table walker expands
// them in sequence with orbit.Expand. Weights of an unscaled grid sum to 1, so
// Integrate returns the mean of f over the sphere; multiply by 4π (or build the
// grid with WithWeightScale(4*math.Pi)) for the surface integral. Some rules
// carry negative weights (74, 230 and 266 points); that is part of the rule.
//
// Supported orders and their degree of exactness:
//
//	   6:3     14:5     26:7     38:9     50:11    74:13    86:15   110:17
//	 146:19   170:21   194:23   230:25   266:27   302:29   350:31   434:35
//	 590:41   770:47   974:53  1202:59  1454:65  1730:71  2030:77  2354:83
//	2702:89  3074:95  3470:101 3890:107 4334:113 4802:119 5294:125 5810:131
//
// Complexity:
//
//   - Generate / Fill: O(order) time; Generate allocates 4·order floats.
//   - Integrate: O(order) evaluations of f.
//   - CheckExactness(maxDegree=d): O(order·d³/48) time, O(order·d) memory.
//
// Options:
//
//   - WithRadius(r):      scale points onto a sphere of radius r.
//   - WithCenter(c):      translate points by c.
//   - WithWeightScale(s): multiply all weights by s (e.g. 4π).
//
// Errors:
//
//   - ErrUnsupportedOrder:  order not in the catalogue; nothing is written.
//   - ErrUnsupportedDegree: no rule reaches the requested degree.
//   - ErrShortBuffer:       Fill destination shorter than order.
//   - ErrOutOfRange:        point index outside [0, Len()).
//   - ErrNilGrid:           nil *Grid passed to a checker.
//   - ErrShapeMismatch, ErrNaNInf, ErrOffSphere, ErrNotNormalized: Validate failures
//     (ErrNaNInf also from CheckExactness).
//   - ErrInexact:           CheckExactness found a monomial off its exact mean.
//   - ErrAsymmetric:        CheckSymmetry found an orbit not closed under Oh.
//   - ErrCorruptTable:      a table expanded to a count other than its order.
//
// Concurrency: the tables are read-only and every call works on its own
// buffers, so all functions are safe for concurrent use.
package grid
