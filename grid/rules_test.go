// SPDX-License-Identifier: MIT

package grid_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lebedev/grid"
	"github.com/katalvlaran/lebedev/orbit"
)

var wantOrders = []int{
	6, 14, 26, 38, 50, 74, 86, 110, 146, 170, 194, 230, 266, 302, 350, 434,
	590, 770, 974, 1202, 1454, 1730, 2030, 2354, 2702, 3074, 3470, 3890, 4334, 4802, 5294, 5810,
}

func TestOrders(t *testing.T) {
	got := grid.Orders()
	require.Equal(t, wantOrders, got)
	assert.True(t, sort.IntsAreSorted(got))

	// Callers own the returned slice.
	got[0] = -1
	assert.Equal(t, 6, grid.Orders()[0])
}

func TestSupported(t *testing.T) {
	for _, order := range wantOrders {
		assert.True(t, grid.Supported(order), "order %d", order)
	}
	for _, order := range []int{0, 7, 15, 5809, 5812} {
		assert.False(t, grid.Supported(order), "order %d", order)
	}
}

func TestDegree(t *testing.T) {
	cases := map[int]int{6: 3, 14: 5, 110: 17, 302: 29, 350: 31, 434: 35, 590: 41, 5810: 131}
	for order, deg := range cases {
		got, err := grid.Degree(order)
		require.NoError(t, err)
		assert.Equal(t, deg, got, "order %d", order)
	}
	_, err := grid.Degree(7)
	require.ErrorIs(t, err, grid.ErrUnsupportedOrder)

	// Degrees strictly increase with order.
	prev := 0
	for _, order := range wantOrders {
		d, err := grid.Degree(order)
		require.NoError(t, err)
		assert.Greater(t, d, prev)
		prev = d
	}
	assert.Equal(t, grid.MaxDegree, prev)
}

func TestForDegree(t *testing.T) {
	cases := []struct {
		degree int
		order  int
	}{
		{0, 6}, {3, 6}, {4, 14}, {5, 14}, {17, 110}, {18, 146},
		{32, 434}, {35, 434}, {36, 590}, {130, 5810}, {131, 5810},
	}
	for _, tc := range cases {
		got, err := grid.ForDegree(tc.degree)
		require.NoError(t, err)
		assert.Equal(t, tc.order, got, "degree %d", tc.degree)
	}
	for _, bad := range []int{-1, 132, 1000} {
		_, err := grid.ForDegree(bad)
		require.ErrorIs(t, err, grid.ErrUnsupportedDegree, "degree %d", bad)
	}
}

func TestOrbits(t *testing.T) {
	for _, order := range wantOrders {
		orbits, err := grid.Orbits(order)
		require.NoError(t, err)
		total := 0
		for _, o := range orbits {
			require.True(t, o.Code.Valid())
			total += o.Size()
		}
		assert.Equal(t, order, total, "order %d", order)
	}

	// Mutating the copy does not reach the table.
	orbits, err := grid.Orbits(14)
	require.NoError(t, err)
	orbits[0] = orbit.Orbit{Code: 0}
	g, err := grid.Generate(14)
	require.NoError(t, err)
	assert.Equal(t, 0.6666666666666667e-1, g.W[0])

	_, err = grid.Orbits(15)
	require.ErrorIs(t, err, grid.ErrUnsupportedOrder)
}
