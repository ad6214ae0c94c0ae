// SPDX-License-Identifier: MIT
// Package: lebedev/grid
//
// generate.go — Fill (caller buffers) and Generate (owned Grid).
//
// Contract:
//   • Unsupported order → ErrUnsupportedOrder, nothing written, nil Grid.
//   • Short destination → ErrShortBuffer, nothing written.
//   • Otherwise every orbit of the rule is expanded in table order and the
//     returned count equals order.
//   • Output is bit-identical across calls.

package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lebedev/orbit"
)

const (
	methodFill     = "Fill"
	methodGenerate = "Generate"
)

// Fill writes the order-point rule into x, y, z, w and returns the number of
// points written. Each slice must hold at least order elements; elements past
// order are left untouched.
// Complexity: O(order), no allocation.
func Fill(order int, x, y, z, w []float64) (int, error) {
	r, err := lookup(methodFill, order)
	if err != nil {
		return 0, err
	}
	if len(x) < order || len(y) < order || len(z) < order || len(w) < order {
		return 0, fmt.Errorf("%s: order %d, have x=%d y=%d z=%d w=%d: %w",
			methodFill, order, len(x), len(y), len(z), len(w), ErrShortBuffer)
	}

	return r.fill(x, y, z, w)
}

// fill walks the orbit table with a running offset.
func (r *rule) fill(x, y, z, w []float64) (int, error) {
	n := 0
	for i, o := range r.orbits {
		k, err := orbit.Expand(o, x, y, z, w, n)
		if err != nil {
			return n, fmt.Errorf("ld%04d orbit %d: %w: %w", r.order, i, ErrCorruptTable, err)
		}
		n += k
	}
	if n != r.order {
		return n, fmt.Errorf("ld%04d: expanded %d points: %w", r.order, n, ErrCorruptTable)
	}

	return n, nil
}

// Generate returns a new Grid holding the order-point rule, placed according
// to opts.
// Complexity: O(order) time and memory.
func Generate(order int, opts ...Option) (*Grid, error) {
	r, err := lookup(methodGenerate, order)
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Grid{
		Order:  r.order,
		Degree: r.degree,
		X:      make([]float64, r.order),
		Y:      make([]float64, r.order),
		Z:      make([]float64, r.order),
		W:      make([]float64, r.order),
		Radius: cfg.radius,
		Center: cfg.center,
		Scale:  cfg.scale,
	}
	if _, err := r.fill(g.X, g.Y, g.Z, g.W); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	g.place(cfg)

	return g, nil
}

// place applies radius, center and weight scale; the identity placement is skipped
// so default grids keep the exact table values.
func (g *Grid) place(cfg genConfig) {
	if cfg.radius != 1 || cfg.center != (r3.Vec{}) {
		for i := range g.X {
			g.X[i] = cfg.center.X + cfg.radius*g.X[i]
			g.Y[i] = cfg.center.Y + cfg.radius*g.Y[i]
			g.Z[i] = cfg.center.Z + cfg.radius*g.Z[i]
		}
	}
	if cfg.scale != 1 {
		floats.Scale(cfg.scale, g.W)
	}
}
