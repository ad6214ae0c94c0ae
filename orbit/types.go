// SPDX-License-Identifier: MIT
// Package: lebedev/orbit
//
// types.go — orbit codes and the Orbit descriptor.
//
// Contract:
//   • Valid codes are 1..6; Size returns 6, 12, 8, 24, 24, 48 for them and
//     0 otherwise.
//   • A and B are read only by the codes that need them; V may be negative.

package orbit

import "fmt"

// Code selects the coordinate pattern of an orbit.
type Code uint8

const (
	// Axes generates the 6 points (±1,0,0) and permutations.
	Axes Code = iota + 1
	// EdgeCenters generates the 12 points (0,±1/√2,±1/√2) and permutations.
	EdgeCenters
	// Corners generates the 8 points (±1/√3,±1/√3,±1/√3).
	Corners
	// DiagonalPlanes generates the 24 points (±A,±A,±B), B=√(1-2A²).
	DiagonalPlanes
	// CoordinatePlanes generates the 24 points (±A,±B,0), B=√(1-A²).
	CoordinatePlanes
	// Generic generates the 48 points (±A,±B,±C), C=√(1-A²-B²).
	Generic
)

// orbitSizes is indexed by Code; slot 0 is unused.
var orbitSizes = [...]int{0, 6, 12, 8, 24, 24, 48}

var codeNames = [...]string{"", "axes", "edge-centers", "corners", "diagonal-planes", "coordinate-planes", "generic"}

// Valid reports whether c is one of the six defined codes.
func (c Code) Valid() bool {
	return c >= Axes && c <= Generic
}

// Size returns the number of points generated by c, or 0 for an invalid code.
func (c Code) Size() int {
	if !c.Valid() {
		return 0
	}

	return orbitSizes[c]
}

// String implements fmt.Stringer.
func (c Code) String() string {
	if !c.Valid() {
		return fmt.Sprintf("code(%d)", uint8(c))
	}

	return codeNames[c]
}

// Orbit is one generator of a quadrature rule. A is read by DiagonalPlanes,
// CoordinatePlanes and Generic; B only by Generic. V is the weight carried by
// every point of the orbit and may be negative.
type Orbit struct {
	Code Code
	A, B float64
	V    float64
}

// Size returns the number of points o expands to.
func (o Orbit) Size() int {
	return o.Code.Size()
}
