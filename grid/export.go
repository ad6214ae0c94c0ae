// SPDX-License-Identifier: MIT
// Package: lebedev/grid
//
// export.go — gonum matrix view of a grid.

package grid

import "gonum.org/v1/gonum/mat"

// Matrix columns, in order.
const (
	ColX = iota
	ColY
	ColZ
	ColW
)

// Matrix returns a new Len()×4 dense matrix whose rows are (x, y, z, w).
// The matrix owns its data; later changes to g do not affect it. An empty
// grid yields an empty matrix.
func (g *Grid) Matrix() *mat.Dense {
	n := g.Len()
	if n == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, 4*n)
	for i := 0; i < n; i++ {
		row := data[4*i : 4*i+4]
		row[ColX], row[ColY], row[ColZ], row[ColW] = g.X[i], g.Y[i], g.Z[i], g.W[i]
	}

	return mat.NewDense(n, 4, data)
}
