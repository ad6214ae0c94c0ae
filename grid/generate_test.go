// SPDX-License-Identifier: MIT

package grid_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lebedev/grid"
	"github.com/katalvlaran/lebedev/orbit"
)

//----------------------------------------------------------------------------//
// Generate / Fill over the whole catalogue
//----------------------------------------------------------------------------//

// TestGenerate_AllOrders checks point count, unit norm and weight normalization
// for every tabulated rule.
func TestGenerate_AllOrders(t *testing.T) {
	for _, order := range grid.Orders() {
		g, err := grid.Generate(order)
		require.NoError(t, err, "order %d", order)
		require.Equal(t, order, g.Order)
		require.Equal(t, order, g.Len())
		require.Len(t, g.X, order)
		require.Len(t, g.Y, order)
		require.Len(t, g.Z, order)

		for i := 0; i < order; i++ {
			r2 := g.X[i]*g.X[i] + g.Y[i]*g.Y[i] + g.Z[i]*g.Z[i]
			require.InDelta(t, 1.0, r2, 1e-12, "order %d point %d", order, i)
		}
		require.InDelta(t, 1.0, g.WeightSum(), 1e-10, "order %d", order)
		require.NoError(t, g.Validate(1e-10), "order %d", order)
	}
}

// TestFill_MatchesGenerate checks that caller buffers receive the same bits.
func TestFill_MatchesGenerate(t *testing.T) {
	for _, order := range grid.Orders() {
		x, y, z, w := make([]float64, order), make([]float64, order), make([]float64, order), make([]float64, order)
		n, err := grid.Fill(order, x, y, z, w)
		require.NoError(t, err)
		require.Equal(t, order, n)

		g, err := grid.Generate(order)
		require.NoError(t, err)
		require.Equal(t, g.X, x)
		require.Equal(t, g.Y, y)
		require.Equal(t, g.Z, z)
		require.Equal(t, g.W, w)
	}
}

func TestFill_LeavesTailUntouched(t *testing.T) {
	const extra = 4
	x, y, z, w := make([]float64, 26+extra), make([]float64, 26+extra), make([]float64, 26+extra), make([]float64, 26+extra)
	for i := range w {
		w[i] = -7
	}
	n, err := grid.Fill(26, x, y, z, w)
	require.NoError(t, err)
	require.Equal(t, 26, n)
	for i := 26; i < len(w); i++ {
		assert.Equal(t, -7.0, w[i])
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, order := range []int{6, 302, 3470, 5810} {
		a, err := grid.Generate(order)
		require.NoError(t, err)
		b, err := grid.Generate(order)
		require.NoError(t, err)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("Generate(%d) differs between calls (-first +second):\n%s", order, diff)
		}
	}
}

func TestGenerate_Concurrent(t *testing.T) {
	orders := grid.Orders()
	want := make(map[int]*grid.Grid, len(orders))
	for _, order := range orders {
		g, err := grid.Generate(order)
		require.NoError(t, err)
		want[order] = g
	}

	got := make([]*grid.Grid, len(orders))
	errs := make([]error, len(orders))
	var wg sync.WaitGroup
	for i, order := range orders {
		wg.Add(1)
		go func(i, order int) {
			defer wg.Done()
			got[i], errs[i] = grid.Generate(order)
		}(i, order)
	}
	wg.Wait()

	for i, order := range orders {
		require.NoError(t, errs[i])
		if diff := cmp.Diff(want[order], got[i]); diff != "" {
			t.Errorf("concurrent Generate(%d) mismatch:\n%s", order, diff)
		}
	}
}

//----------------------------------------------------------------------------//
// Error paths
//----------------------------------------------------------------------------//

func TestGenerate_UnsupportedOrder(t *testing.T) {
	for _, order := range []int{-6, 0, 1, 7, 13, 100, 5811, 6000} {
		g, err := grid.Generate(order)
		require.ErrorIs(t, err, grid.ErrUnsupportedOrder, "order %d", order)
		assert.Nil(t, g)
	}
}

func TestFill_UnsupportedOrderWritesNothing(t *testing.T) {
	x, y, z, w := make([]float64, 16), make([]float64, 16), make([]float64, 16), make([]float64, 16)
	n, err := grid.Fill(7, x, y, z, w)
	require.ErrorIs(t, err, grid.ErrUnsupportedOrder)
	assert.Zero(t, n)
	assert.Equal(t, make([]float64, 16), x)
	assert.Equal(t, make([]float64, 16), w)
}

func TestFill_ShortBuffer(t *testing.T) {
	cases := []struct {
		name       string
		x, y, z, w int
	}{
		{"X", 13, 14, 14, 14},
		{"Y", 14, 13, 14, 14},
		{"Z", 14, 14, 0, 14},
		{"W", 14, 14, 14, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y, z, w := make([]float64, tc.x), make([]float64, tc.y), make([]float64, tc.z), make([]float64, tc.w)
			n, err := grid.Fill(14, x, y, z, w)
			require.ErrorIs(t, err, grid.ErrShortBuffer)
			assert.Zero(t, n)
			for _, s := range [][]float64{x, y, z, w} {
				for _, v := range s {
					require.Zero(t, v)
				}
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Concrete rules
//----------------------------------------------------------------------------//

func TestGenerate_Order6(t *testing.T) {
	g, err := grid.Generate(6)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Degree)
	assert.Equal(t, []float64{1, -1, 0, 0, 0, 0}, g.X)
	assert.Equal(t, []float64{0, 0, 1, -1, 0, 0}, g.Y)
	assert.Equal(t, []float64{0, 0, 0, 0, 1, -1}, g.Z)
	for _, w := range g.W {
		assert.Equal(t, 0.1666666666666667, w)
	}
}

func TestGenerate_Order26(t *testing.T) {
	orbits, err := grid.Orbits(26)
	require.NoError(t, err)
	require.Equal(t, []orbit.Orbit{
		{Code: orbit.Axes, V: 0.04761904761904762},
		{Code: orbit.EdgeCenters, V: 0.03809523809523810},
		{Code: orbit.Corners, V: 0.03214285714285714},
	}, orbits)

	g, err := grid.Generate(26)
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		assert.Equal(t, 0.04761904761904762, g.W[i])
	}
	for i := 6; i < 18; i++ {
		assert.Equal(t, 0.03809523809523810, g.W[i])
	}
	for i := 18; i < 26; i++ {
		assert.Equal(t, 0.03214285714285714, g.W[i])
	}
	assert.InDelta(t, 1.0, g.WeightSum(), 1e-15)
}

func TestGenerate_NegativeWeights(t *testing.T) {
	for _, order := range []int{74, 230, 266} {
		g, err := grid.Generate(order)
		require.NoError(t, err)
		neg := 0
		for _, w := range g.W {
			if w < 0 {
				neg++
			}
		}
		assert.Positive(t, neg, "order %d", order)
		assert.NoError(t, g.Validate(1e-12), "order %d", order)
	}
}

// TestOrbits_3470 pins the 3470-point table, whose source carries a stray empty
// statement between two generators.
func TestOrbits_3470(t *testing.T) {
	orbits, err := grid.Orbits(3470)
	require.NoError(t, err)
	require.Len(t, orbits, 90)

	total, sum := 0, 0.0
	for _, o := range orbits {
		total += o.Size()
		sum += float64(o.Size()) * o.V
	}
	assert.Equal(t, 3470, total)
	assert.InDelta(t, 1.0, sum, 1e-12)

	// The generators around the stray statement.
	assert.Equal(t, orbit.Orbit{Code: orbit.DiagonalPlanes, A: 0.1108335359204799, V: 0.2083153161230153e-3}, orbits[5])
	assert.Equal(t, orbit.Orbit{Code: orbit.DiagonalPlanes, A: 0.1476517054388567, V: 0.2333279544657158e-3}, orbits[6])
}
