// SPDX-License-Identifier: MIT

package grid_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lebedev/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Generate
////////////////////////////////////////////////////////////////////////////////

// ExampleGenerate builds the 6-point rule: the octahedron vertices, each with
// weight 1/6.
func ExampleGenerate() {
	g, err := grid.Generate(6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("points:", g.Len(), "degree:", g.Degree)
	for i := 0; i < g.Len(); i++ {
		fmt.Printf("(%2g, %2g, %2g) w=%.16f\n", g.X[i], g.Y[i], g.Z[i], g.W[i])
	}

	// Output:
	// points: 6 degree: 3
	// ( 1,  0,  0) w=0.1666666666666667
	// (-1,  0,  0) w=0.1666666666666667
	// ( 0,  1,  0) w=0.1666666666666667
	// ( 0, -1,  0) w=0.1666666666666667
	// ( 0,  0,  1) w=0.1666666666666667
	// ( 0,  0, -1) w=0.1666666666666667
}

////////////////////////////////////////////////////////////////////////////////
// Example: Integrate
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Integrate computes the surface integral of z² over the unit
// sphere (4π/3) with a 4π-scaled 50-point rule.
func ExampleGrid_Integrate() {
	g, _ := grid.Generate(50, grid.WithWeightScale(4*math.Pi))
	got := g.Integrate(func(x, y, z float64) float64 { return z * z })
	fmt.Printf("%.12f\n%.12f\n", got, 4*math.Pi/3)

	// Output:
	// 4.188790204786
	// 4.188790204786
}

////////////////////////////////////////////////////////////////////////////////
// Example: ForDegree
////////////////////////////////////////////////////////////////////////////////

// ExampleForDegree picks the cheapest rule exact for degree-20 polynomials.
func ExampleForDegree() {
	order, _ := grid.ForDegree(20)
	deg, _ := grid.Degree(order)
	fmt.Println(order, deg)

	// Output:
	// 170 21
}

// ExampleFill writes a rule into caller-owned buffers and rejects an order
// outside the catalogue.
func ExampleFill() {
	x, y, z, w := make([]float64, 14), make([]float64, 14), make([]float64, 14), make([]float64, 14)
	n, err := grid.Fill(14, x, y, z, w)
	fmt.Println(n, err)

	_, err = grid.Fill(7, x, y, z, w)
	fmt.Println(err)

	// Output:
	// 14 <nil>
	// Fill: order 7: grid: unsupported order
}
