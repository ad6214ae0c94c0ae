// SPDX-License-Identifier: MIT

package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lebedev/grid"
)

func TestMonomialMean(t *testing.T) {
	cases := []struct {
		a, b, c int
		want    float64
	}{
		{0, 0, 0, 1},
		{2, 0, 0, 1.0 / 3},
		{0, 2, 0, 1.0 / 3},
		{4, 0, 0, 1.0 / 5},
		{2, 2, 0, 1.0 / 15},
		{2, 2, 2, 1.0 / 105},
		{6, 0, 0, 1.0 / 7},
		{1, 0, 0, 0},
		{2, 3, 0, 0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, grid.MonomialMean(tc.a, tc.b, tc.c), 1e-14, "x^%d y^%d z^%d", tc.a, tc.b, tc.c)
	}
	assert.True(t, math.IsNaN(grid.MonomialMean(-2, 0, 0)))
}

func TestIntegrate(t *testing.T) {
	g, err := grid.Generate(110)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, g.Integrate(func(x, y, z float64) float64 { return 1 }), 1e-14)
	assert.InDelta(t, 1.0/3, g.Integrate(func(x, y, z float64) float64 { return x * x }), 1e-14)
	assert.InDelta(t, 0.0, g.Integrate(func(x, y, z float64) float64 { return x * y * z }), 1e-14)
	// exp(x) has sphere mean sinh(1).
	assert.InDelta(t, math.Sinh(1), g.Integrate(func(x, y, z float64) float64 { return math.Exp(x) }), 1e-12)

	s, err := grid.Generate(110, grid.WithWeightScale(4*math.Pi))
	require.NoError(t, err)
	assert.InDelta(t, 4*math.Pi, s.Integrate(func(x, y, z float64) float64 { return 1 }), 1e-13)
}

// TestCheckExactness_AllOrders checks every rule through its full degree for
// the small rules and through degree 31 for the rest.
func TestCheckExactness_AllOrders(t *testing.T) {
	for _, order := range grid.Orders() {
		g, err := grid.Generate(order)
		require.NoError(t, err)
		deg := g.Degree
		if order > 302 {
			deg = 31
		}
		require.NoError(t, grid.CheckExactness(g, deg, 1e-12), "order %d", order)
	}
}

func TestCheckExactness_FullDegree(t *testing.T) {
	if testing.Short() {
		t.Skip("full-degree check of the 1202-point rule")
	}
	g, err := grid.Generate(1202)
	require.NoError(t, err)
	require.NoError(t, grid.CheckExactness(g, g.Degree, 1e-12))
}

func TestCheckExactness_PlacedGrid(t *testing.T) {
	g, err := grid.Generate(194,
		grid.WithRadius(2.5),
		grid.WithCenter(r3Vec(1, -2, 0.5)),
		grid.WithWeightScale(4*math.Pi),
	)
	require.NoError(t, err)
	require.NoError(t, grid.CheckExactness(g, g.Degree, 1e-11))
}

func TestCheckExactness_BeyondDegree(t *testing.T) {
	g, err := grid.Generate(6)
	require.NoError(t, err)
	// x^4 has mean 1/5; the 6-point rule gives 1/3.
	require.ErrorIs(t, grid.CheckExactness(g, 4, 1e-12), grid.ErrInexact)
}

func TestCheckExactness_Errors(t *testing.T) {
	require.ErrorIs(t, grid.CheckExactness(nil, 3, 1e-12), grid.ErrNilGrid)
	g, err := grid.Generate(6)
	require.NoError(t, err)
	require.ErrorIs(t, grid.CheckExactness(g, -1, 1e-12), grid.ErrUnsupportedDegree)
	require.NoError(t, grid.CheckExactness(g, 0, 1e-12))

	nonFinite := []struct {
		name   string
		mutate func(g *grid.Grid)
	}{
		{"NaNWeight", func(g *grid.Grid) { g.W[0] = math.NaN() }},
		{"NaNCoordinate", func(g *grid.Grid) { g.Y[5] = math.NaN() }},
		{"InfWeight", func(g *grid.Grid) { g.W[3] = math.Inf(1) }},
		{"InfCoordinate", func(g *grid.Grid) { g.Z[0] = math.Inf(-1) }},
	}
	for _, tc := range nonFinite {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.Generate(26)
			require.NoError(t, err)
			tc.mutate(g)
			require.ErrorIs(t, grid.CheckExactness(g, 7, 1e-12), grid.ErrNaNInf)
		})
	}
}
