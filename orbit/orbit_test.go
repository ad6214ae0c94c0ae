// SPDX-License-Identifier: MIT

package orbit_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lebedev/orbit"
)

// sample holds one representative orbit per code, with generators taken from
// the 1202-point rule.
var sample = []orbit.Orbit{
	{Code: orbit.Axes, V: 0.1105189233267572e-3},
	{Code: orbit.EdgeCenters, V: 0.9205232738090741e-3},
	{Code: orbit.Corners, V: 0.9133159786443561e-3},
	{Code: orbit.DiagonalPlanes, A: 0.3712636449657089e-1, V: 0.3690421898017899e-3},
	{Code: orbit.CoordinatePlanes, A: 0.2613931360335988, V: 0.7575577328512826e-3},
	{Code: orbit.Generic, A: 0.1712319010787747, B: 0.5243170049419451e-1, V: 0.6737043938998580e-3},
}

func expand(t *testing.T, o orbit.Orbit) (x, y, z, w []float64) {
	t.Helper()
	n := o.Size()
	x, y, z, w = make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	got, err := orbit.Expand(o, x, y, z, w, 0)
	require.NoError(t, err)
	require.Equal(t, n, got)

	return x, y, z, w
}

func TestCodeSize(t *testing.T) {
	want := map[orbit.Code]int{
		orbit.Axes:             6,
		orbit.EdgeCenters:      12,
		orbit.Corners:          8,
		orbit.DiagonalPlanes:   24,
		orbit.CoordinatePlanes: 24,
		orbit.Generic:          48,
	}
	for code, n := range want {
		assert.True(t, code.Valid(), "code %v", code)
		assert.Equal(t, n, code.Size(), "code %v", code)
	}
	for _, bad := range []orbit.Code{0, 7, 255} {
		assert.False(t, bad.Valid())
		assert.Zero(t, bad.Size())
		assert.Equal(t, fmt.Sprintf("code(%d)", uint8(bad)), bad.String())
	}
	assert.Equal(t, "generic", orbit.Generic.String())
}

func TestExpand_AxesOrder(t *testing.T) {
	x, y, z, w := expand(t, orbit.Orbit{Code: orbit.Axes, V: 0.5})
	assert.Equal(t, []float64{1, -1, 0, 0, 0, 0}, x)
	assert.Equal(t, []float64{0, 0, 1, -1, 0, 0}, y)
	assert.Equal(t, []float64{0, 0, 0, 0, 1, -1}, z)
	for _, wi := range w {
		assert.Equal(t, 0.5, wi)
	}
}

func TestExpand_EdgeCentersOrder(t *testing.T) {
	a := math.Sqrt(0.5)
	x, y, z, _ := expand(t, orbit.Orbit{Code: orbit.EdgeCenters, V: 1})
	assert.Equal(t, []float64{0, 0, 0, 0, a, -a, a, -a, a, -a, a, -a}, x)
	assert.Equal(t, []float64{a, -a, a, -a, 0, 0, 0, 0, a, a, -a, -a}, y)
	assert.Equal(t, []float64{a, a, -a, -a, a, a, -a, -a, 0, 0, 0, 0}, z)
}

func TestExpand_GenericOrder(t *testing.T) {
	o := sample[5]
	a, b := o.A, o.B
	c := math.Sqrt(1 - a*a - b*b)
	x, y, z, _ := expand(t, o)
	// First sign block of each arrangement: (a,b,c) (a,c,b) (b,a,c) (b,c,a) (c,a,b) (c,b,a).
	heads := [][3]float64{{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a}}
	for k, h := range heads {
		i := 8 * k
		assert.InDelta(t, h[0], x[i], 1e-15)
		assert.InDelta(t, h[1], y[i], 1e-15)
		assert.InDelta(t, h[2], z[i], 1e-15)
		// x toggles fastest, then y, then z.
		assert.InDelta(t, -h[0], x[i+1], 1e-15)
		assert.InDelta(t, -h[1], y[i+2], 1e-15)
		assert.InDelta(t, -h[2], z[i+4], 1e-15)
	}
}

func TestExpand_UnitNormAndWeight(t *testing.T) {
	for _, o := range sample {
		t.Run(o.Code.String(), func(t *testing.T) {
			x, y, z, w := expand(t, o)
			for i := range x {
				r2 := x[i]*x[i] + y[i]*y[i] + z[i]*z[i]
				assert.InDelta(t, 1.0, r2, 1e-12, "point %d", i)
				assert.Equal(t, o.V, w[i])
			}
		})
	}
}

func TestExpand_Offset(t *testing.T) {
	const off = 5
	o := sample[2]
	n := off + o.Size() + 3
	x, y, z, w := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	got, err := orbit.Expand(o, x, y, z, w, off)
	require.NoError(t, err)
	require.Equal(t, 8, got)
	for i := 0; i < off; i++ {
		assert.Zero(t, w[i])
	}
	for i := off; i < off+8; i++ {
		assert.Equal(t, o.V, w[i])
	}
	for i := off + 8; i < n; i++ {
		assert.Zero(t, w[i])
	}
}

func TestExpand_Errors(t *testing.T) {
	cases := []struct {
		name   string
		o      orbit.Orbit
		size   int
		offset int
		err    error
	}{
		{"CodeZero", orbit.Orbit{Code: 0, V: 1}, 64, 0, orbit.ErrInvalidCode},
		{"CodeSeven", orbit.Orbit{Code: 7, V: 1}, 64, 0, orbit.ErrInvalidCode},
		{"Short", orbit.Orbit{Code: orbit.Generic, A: 0.3, B: 0.2, V: 1}, 47, 0, orbit.ErrShortBuffer},
		{"ShortAtOffset", orbit.Orbit{Code: orbit.Axes, V: 1}, 8, 3, orbit.ErrShortBuffer},
		{"NegativeOffset", orbit.Orbit{Code: orbit.Axes, V: 1}, 8, -1, orbit.ErrShortBuffer},
		{"OffsetOverflow", orbit.Orbit{Code: orbit.Axes, V: 1}, 8, math.MaxInt - 2, orbit.ErrShortBuffer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y, z, w := make([]float64, tc.size), make([]float64, tc.size), make([]float64, tc.size), make([]float64, tc.size)
			n, err := orbit.Expand(tc.o, x, y, z, w, tc.offset)
			require.ErrorIs(t, err, tc.err)
			assert.Zero(t, n)
			for i := range w {
				require.Zero(t, x[i])
				require.Zero(t, y[i])
				require.Zero(t, z[i])
				require.Zero(t, w[i])
			}
		})
	}
}

func TestExpand_MismatchedBuffers(t *testing.T) {
	o := orbit.Orbit{Code: orbit.Axes, V: 1}
	_, err := orbit.Expand(o, make([]float64, 6), make([]float64, 6), make([]float64, 5), make([]float64, 6), 0)
	require.ErrorIs(t, err, orbit.ErrShortBuffer)
}

func TestGenerator(t *testing.T) {
	assert.Equal(t, r3.Vec{X: 1}, orbit.Orbit{Code: orbit.Axes}.Generator())
	p := sample[3].Generator()
	assert.Equal(t, sample[3].A, p.X)
	assert.Equal(t, sample[3].A, p.Y)
	assert.InDelta(t, 1.0, r3.Norm(p), 1e-15)
	assert.Equal(t, r3.Vec{}, orbit.Orbit{Code: 9}.Generator())
}

func TestPoints_Invariant(t *testing.T) {
	for _, o := range sample {
		t.Run(o.Code.String(), func(t *testing.T) {
			pts, err := orbit.Points(o)
			require.NoError(t, err)
			require.Len(t, pts, o.Size())
			require.NoError(t, orbit.CheckInvariant(pts, 1e-14))

			// Orbit points are pairwise distinct.
			for i := range pts {
				for j := i + 1; j < len(pts); j++ {
					require.Greater(t, r3.Norm(r3.Sub(pts[i], pts[j])), 1e-6, "points %d and %d", i, j)
				}
			}
		})
	}
}

func TestPoints_InvalidCode(t *testing.T) {
	pts, err := orbit.Points(orbit.Orbit{Code: 0})
	require.ErrorIs(t, err, orbit.ErrInvalidCode)
	assert.Nil(t, pts)
}

func TestCheckInvariant_Asymmetric(t *testing.T) {
	pts, err := orbit.Points(sample[4])
	require.NoError(t, err)
	require.ErrorIs(t, orbit.CheckInvariant(pts[:len(pts)-1], 1e-14), orbit.ErrAsymmetric)
}

func TestGroup(t *testing.T) {
	ops := orbit.Group()
	require.Len(t, ops, 48)

	// Identity first, every operation distinct on a generic probe point.
	probe := r3.Vec{X: 0.1, Y: 0.2, Z: 0.3}
	assert.Equal(t, probe, ops[0].Apply(probe))
	seen := make(map[r3.Vec]bool, len(ops))
	for _, op := range ops {
		img := op.Apply(probe)
		assert.False(t, seen[img], "duplicate image %v", img)
		seen[img] = true
		assert.InDelta(t, r3.Norm(probe), r3.Norm(img), 1e-15)
	}

	// Closure: composing two operations yields a member of the group.
	for _, f := range ops {
		for _, g := range ops {
			assert.True(t, seen[f.Apply(g.Apply(probe))])
		}
	}
}
