// SPDX-License-Identifier: MIT
// Package: lebedev/grid
//
// errors.go — sentinel errors for the grid package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Context is attached with fmt.Errorf("<Method>: ...: %w", ErrX).
//   • Nothing here panics at runtime; option constructors are the exception.

package grid

import (
	"errors"

	"github.com/katalvlaran/lebedev/orbit"
)

var (
	// ErrUnsupportedOrder indicates an order outside the 32 tabulated rules.
	ErrUnsupportedOrder = errors.New("grid: unsupported order")

	// ErrUnsupportedDegree indicates a degree that is negative or above 131.
	ErrUnsupportedDegree = errors.New("grid: unsupported degree")

	// ErrShortBuffer indicates a Fill destination slice shorter than the order.
	ErrShortBuffer = errors.New("grid: destination buffer too short")

	// ErrShapeMismatch indicates a Grid whose Order and slice lengths disagree.
	ErrShapeMismatch = errors.New("grid: order and slice lengths disagree")

	// ErrOutOfRange indicates a point index outside [0, Len()).
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNilGrid indicates a nil *Grid receiver or argument.
	ErrNilGrid = errors.New("grid: nil grid")

	// ErrNaNInf indicates a NaN or ±Inf coordinate or weight.
	ErrNaNInf = errors.New("grid: NaN or Inf encountered")

	// ErrOffSphere indicates a point farther than tolerance from the grid sphere.
	ErrOffSphere = errors.New("grid: point off sphere")

	// ErrNotNormalized indicates weights that do not sum to the grid scale.
	ErrNotNormalized = errors.New("grid: weights not normalized")

	// ErrInexact indicates a monomial whose quadrature differs from its exact mean.
	ErrInexact = errors.New("grid: rule not exact")

	// ErrCorruptTable indicates a table whose expansion does not match its order.
	ErrCorruptTable = errors.New("grid: corrupt rule table")
)

// ErrAsymmetric re-exports orbit.ErrAsymmetric so callers of CheckSymmetry can
// match it without importing orbit.
var ErrAsymmetric = orbit.ErrAsymmetric
