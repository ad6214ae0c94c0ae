// SPDX-License-Identifier: MIT
// Package: lebedev/grid
//
// options.go — functional options for Generate.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Generate itself never panics.
//   • Without options the grid is the raw unit-sphere rule with Σw = 1.

package grid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Option customizes a Generate call.
type Option func(*genConfig)

// genConfig holds the resolved placement of a generated grid.
type genConfig struct {
	radius float64
	center r3.Vec
	scale  float64
}

func defaultConfig() genConfig {
	return genConfig{radius: 1, scale: 1}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// WithRadius places the points on a sphere of radius r.
// Panics if r is not a finite positive number.
func WithRadius(r float64) Option {
	if !finite(r) || r <= 0 {
		panic("grid: WithRadius requires a finite r > 0")
	}
	return func(c *genConfig) {
		c.radius = r
	}
}

// WithCenter translates the sphere to center p.
// Panics if any component of p is NaN or ±Inf.
func WithCenter(p r3.Vec) Option {
	if !finite(p.X) || !finite(p.Y) || !finite(p.Z) {
		panic("grid: WithCenter requires finite coordinates")
	}
	return func(c *genConfig) {
		c.center = p
	}
}

// WithWeightScale multiplies every weight by s; WithWeightScale(4*math.Pi)
// turns Integrate into a surface integral over the unit sphere.
// Panics if s is not a finite positive number.
func WithWeightScale(s float64) Option {
	if !finite(s) || s <= 0 {
		panic("grid: WithWeightScale requires a finite s > 0")
	}
	return func(c *genConfig) {
		c.scale = s
	}
}
