// SPDX-License-Identifier: MIT
// Package: lebedev/orbit
//
// errors.go — sentinel errors for the orbit package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package orbit

import "errors"

var (
	// ErrInvalidCode indicates an orbit code outside 1..6.
	ErrInvalidCode = errors.New("orbit: invalid symmetry code")

	// ErrShortBuffer indicates a destination slice is too short for the orbit
	// at the requested offset, or that the four slices differ in length.
	ErrShortBuffer = errors.New("orbit: destination buffer too short")

	// ErrAsymmetric indicates a point set is not closed under the Oh group.
	ErrAsymmetric = errors.New("orbit: point set not invariant under Oh")
)
