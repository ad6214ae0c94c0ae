// SPDX-License-Identifier: MIT

package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lebedev/grid"
	"github.com/katalvlaran/lebedev/orbit"
)

func r3Vec(x, y, z float64) r3.Vec {
	return r3.Vec{X: x, Y: y, Z: z}
}

func orbitInvariant(pts []r3.Vec) error {
	return orbit.CheckInvariant(pts, 1e-14)
}

func TestPoint(t *testing.T) {
	g, err := grid.Generate(14)
	require.NoError(t, err)

	p, w, err := g.Point(6)
	require.NoError(t, err)
	a := math.Sqrt(1.0 / 3.0)
	assert.Equal(t, r3Vec(a, a, a), p)
	assert.Equal(t, 0.75e-1, w)

	for _, i := range []int{-1, 14, 100} {
		_, _, err := g.Point(i)
		require.ErrorIs(t, err, grid.ErrOutOfRange, "index %d", i)
	}
}

func TestClone(t *testing.T) {
	g, err := grid.Generate(38)
	require.NoError(t, err)
	c := g.Clone()
	require.Equal(t, g, c)

	c.X[0], c.W[0] = 42, 42
	assert.NotEqual(t, c.X[0], g.X[0])
	assert.NotEqual(t, c.W[0], g.W[0])
}

func TestOptions_Placement(t *testing.T) {
	center := r3Vec(1, 2, 3)
	g, err := grid.Generate(26, grid.WithRadius(2), grid.WithCenter(center), grid.WithWeightScale(4*math.Pi))
	require.NoError(t, err)
	assert.Equal(t, 2.0, g.Radius)
	assert.Equal(t, center, g.Center)
	assert.Equal(t, 4*math.Pi, g.Scale)
	require.NoError(t, g.Validate(1e-12))

	unit, err := grid.Generate(26)
	require.NoError(t, err)
	assert.Equal(t, 1.0, unit.Radius)
	assert.Equal(t, 1.0, unit.Scale)
	assert.Equal(t, r3.Vec{}, unit.Center)
	for i := range unit.X {
		assert.InDelta(t, 1+2*unit.X[i], g.X[i], 1e-15)
		assert.InDelta(t, 2+2*unit.Y[i], g.Y[i], 1e-15)
		assert.InDelta(t, 3+2*unit.Z[i], g.Z[i], 1e-15)
		assert.InDelta(t, 4*math.Pi*unit.W[i], g.W[i], 1e-15)
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { grid.WithRadius(0) })
	assert.Panics(t, func() { grid.WithRadius(-1) })
	assert.Panics(t, func() { grid.WithRadius(math.NaN()) })
	assert.Panics(t, func() { grid.WithWeightScale(0) })
	assert.Panics(t, func() { grid.WithWeightScale(math.Inf(1)) })
	assert.Panics(t, func() { grid.WithCenter(r3Vec(0, math.NaN(), 0)) })
	assert.NotPanics(t, func() { grid.WithCenter(r3Vec(-1, 0, 1e300)) })
}

func TestToSpherical(t *testing.T) {
	cases := []struct {
		name           string
		x, y, z        float64
		azimuth, polar float64
	}{
		{"+x", 1, 0, 0, 0, math.Pi / 2},
		{"-x", -1, 0, 0, math.Pi, math.Pi / 2},
		{"+y", 0, 1, 0, math.Pi / 2, math.Pi / 2},
		{"-y", 0, -1, 0, -math.Pi / 2, math.Pi / 2},
		{"+z", 0, 0, 1, 0, 0},
		{"-z", 0, 0, -1, 0, math.Pi},
		{"origin", 0, 0, 0, 0, 0},
		{"scaled", 0, 3, 3, math.Pi / 2, math.Pi / 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			az, pol := grid.ToSpherical(tc.x, tc.y, tc.z)
			assert.InDelta(t, tc.azimuth, az, 1e-15)
			assert.InDelta(t, tc.polar, pol, 1e-15)
		})
	}
}

func TestSpherical_RoundTrip(t *testing.T) {
	g, err := grid.Generate(146, grid.WithCenter(r3Vec(5, 5, 5)))
	require.NoError(t, err)
	az, pol := g.Spherical()
	require.Len(t, az, g.Len())
	for i := range az {
		x := math.Sin(pol[i]) * math.Cos(az[i])
		y := math.Sin(pol[i]) * math.Sin(az[i])
		z := math.Cos(pol[i])
		assert.InDelta(t, g.X[i]-5, x, 1e-12)
		assert.InDelta(t, g.Y[i]-5, y, 1e-12)
		assert.InDelta(t, g.Z[i]-5, z, 1e-12)
	}
}

func TestMatrix(t *testing.T) {
	g, err := grid.Generate(50)
	require.NoError(t, err)
	m := g.Matrix()
	r, c := m.Dims()
	require.Equal(t, 50, r)
	require.Equal(t, 4, c)
	for i := 0; i < r; i++ {
		assert.Equal(t, g.X[i], m.At(i, grid.ColX))
		assert.Equal(t, g.Y[i], m.At(i, grid.ColY))
		assert.Equal(t, g.Z[i], m.At(i, grid.ColZ))
		assert.Equal(t, g.W[i], m.At(i, grid.ColW))
	}

	// Column sum of W is the weight sum.
	assert.InDelta(t, 1.0, mat.Sum(m.ColView(grid.ColW)), 1e-14)

	// The matrix does not alias the grid.
	g.W[0] = 99
	assert.NotEqual(t, 99.0, m.At(0, grid.ColW))

	empty := (&grid.Grid{}).Matrix()
	assert.True(t, empty.IsEmpty())
}
