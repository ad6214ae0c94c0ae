// SPDX-License-Identifier: MIT

package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lebedev/grid"
)

func TestValidate_Errors(t *testing.T) {
	base, err := grid.Generate(50)
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(g *grid.Grid)
		err    error
	}{
		{"NaN", func(g *grid.Grid) { g.Y[3] = math.NaN() }, grid.ErrNaNInf},
		{"Inf", func(g *grid.Grid) { g.W[7] = math.Inf(-1) }, grid.ErrNaNInf},
		{"OffSphere", func(g *grid.Grid) { g.X[0] *= 1.001 }, grid.ErrOffSphere},
		{"WeightSum", func(g *grid.Grid) { g.W[10] += 1e-6 }, grid.ErrNotNormalized},
		{"Truncated", func(g *grid.Grid) { g.Z = g.Z[:49] }, grid.ErrShapeMismatch},
		{"OrderMismatch", func(g *grid.Grid) { g.Order = 38 }, grid.ErrShapeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := base.Clone()
			tc.mutate(g)
			require.ErrorIs(t, g.Validate(1e-12), tc.err)
		})
	}

	var nilGrid *grid.Grid
	require.ErrorIs(t, nilGrid.Validate(1e-12), grid.ErrNilGrid)
	require.NoError(t, base.Validate(1e-12))
}

func TestCheckSymmetry_AllOrders(t *testing.T) {
	for _, order := range grid.Orders() {
		assert.NoError(t, grid.CheckSymmetry(order, 1e-14), "order %d", order)
	}
	require.ErrorIs(t, grid.CheckSymmetry(7, 1e-14), grid.ErrUnsupportedOrder)
}

// TestGenerate_GridInvariantUnderOh checks the assembled grid, not just each orbit.
func TestGenerate_GridInvariantUnderOh(t *testing.T) {
	g, err := grid.Generate(86)
	require.NoError(t, err)
	pts := g.Points()
	for i := range pts {
		_, w, err := g.Point(i)
		require.NoError(t, err)
		require.Equal(t, g.W[i], w)
	}
	require.NoError(t, orbitInvariant(pts))
}
