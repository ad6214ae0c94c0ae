// SPDX-License-Identifier: MIT
// Package: lebedev/orbit
//
// expand.go — Expand: one Orbit → its full Oh point set.
//
// Contract:
//   • Invalid code → ErrInvalidCode, destination untouched.
//   • Short destination → ErrShortBuffer, destination untouched.
//   • Otherwise writes exactly Code.Size() points starting at offset and
//     returns that count.
//   • Zero coordinates are written as +0 and never negated.

package orbit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodExpand = "Expand"
	methodPoints = "Points"
)

// arrangement places generator components on the x, y, z axes; -1 is a zero coordinate.
type arrangement [3]int8

// arrangements lists, per code, the axis arrangements in emission order.
var arrangements = [...][]arrangement{
	Axes:             {{0, -1, -1}, {-1, 0, -1}, {-1, -1, 0}},
	EdgeCenters:      {{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}},
	Corners:          {{0, 0, 0}},
	DiagonalPlanes:   {{0, 0, 1}, {0, 1, 0}, {1, 0, 0}},
	CoordinatePlanes: {{0, 1, -1}, {1, 0, -1}, {0, -1, 1}, {1, -1, 0}, {-1, 0, 1}, {-1, 1, 0}},
	Generic:          {{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}},
}

// generator returns the non-negative components (g0, g1, g2) of o's representative point.
// The float64 conversions keep the products rounded so no platform fuses them.
func generator(o Orbit) [3]float64 {
	switch o.Code {
	case Axes:
		return [3]float64{1.0}
	case EdgeCenters:
		return [3]float64{math.Sqrt(0.5)}
	case Corners:
		return [3]float64{math.Sqrt(1.0 / 3.0)}
	case DiagonalPlanes:
		return [3]float64{o.A, math.Sqrt(1.0 - float64(2.0*o.A*o.A))}
	case CoordinatePlanes:
		return [3]float64{o.A, math.Sqrt(1.0 - float64(o.A*o.A))}
	case Generic:
		return [3]float64{o.A, o.B, math.Sqrt(1.0 - float64(o.A*o.A) - float64(o.B*o.B))}
	}

	return [3]float64{}
}

// Generator returns the first point of o's orbit, or the zero vector for an invalid code.
func (o Orbit) Generator() r3.Vec {
	if !o.Code.Valid() {
		return r3.Vec{}
	}
	g := generator(o)
	var p [3]float64
	for axis, slot := range arrangements[o.Code][0] {
		if slot >= 0 {
			p[axis] = g[slot]
		}
	}

	return r3.Vec{X: p[0], Y: p[1], Z: p[2]}
}

// Expand writes the orbit of o into x, y, z, w starting at offset and returns
// the number of points written.
// Complexity: O(o.Size()) time, no allocation.
func Expand(o Orbit, x, y, z, w []float64, offset int) (int, error) {
	if !o.Code.Valid() {
		return 0, fmt.Errorf("%s: %v: %w", methodExpand, o.Code, ErrInvalidCode)
	}
	n := o.Code.Size()
	if offset < 0 {
		return 0, fmt.Errorf("%s: negative offset %d: %w", methodExpand, offset, ErrShortBuffer)
	}
	// Compared as offset > len-n so offsets near math.MaxInt cannot wrap.
	if offset > len(x)-n || offset > len(y)-n || offset > len(z)-n || offset > len(w)-n {
		return 0, fmt.Errorf("%s: %v needs %d slots at offset %d, have x=%d y=%d z=%d w=%d: %w",
			methodExpand, o.Code, n, offset, len(x), len(y), len(z), len(w), ErrShortBuffer)
	}

	g := generator(o)
	i := offset
	for _, arr := range arrangements[o.Code] {
		// Axes holding a non-zero component, in x, y, z order.
		var signed [3]int
		k := 0
		for axis, slot := range arr {
			if slot >= 0 {
				signed[k] = axis
				k++
			}
		}
		for mask := 0; mask < 1<<k; mask++ {
			var p [3]float64
			for axis, slot := range arr {
				if slot >= 0 {
					p[axis] = g[slot]
				}
			}
			for bit := 0; bit < k; bit++ {
				if mask&(1<<bit) != 0 {
					p[signed[bit]] = -p[signed[bit]]
				}
			}
			x[i], y[i], z[i], w[i] = p[0], p[1], p[2], o.V
			i++
		}
	}

	return i - offset, nil
}

// Points returns the orbit of o as freshly allocated vectors, in Expand order.
func Points(o Orbit) ([]r3.Vec, error) {
	n := o.Code.Size()
	if n == 0 {
		return nil, fmt.Errorf("%s: %v: %w", methodPoints, o.Code, ErrInvalidCode)
	}
	x, y, z, w := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	if _, err := Expand(o, x, y, z, w, 0); err != nil {
		return nil, err
	}
	pts := make([]r3.Vec, n)
	for i := range pts {
		pts[i] = r3.Vec{X: x[i], Y: y[i], Z: z[i]}
	}

	return pts, nil
}
