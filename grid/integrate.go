// SPDX-License-Identifier: MIT
// Package: lebedev/grid
//
// integrate.go — quadrature sums and exactness checks against monomials.
//
// Contract:
//   • Integrate evaluates f once per point and returns Σ W[i]·f(p_i).
//   • MonomialMean is the exact sphere mean; 0 for odd exponents, NaN for
//     negative ones.
//   • CheckExactness: nil grid → ErrNilGrid; negative degree →
//     ErrUnsupportedDegree; any NaN or ±Inf value → ErrNaNInf; a monomial
//     off its mean by more than tol → ErrInexact.
//
// Determinism:
//   • Sums run in grid order through floats.Dot; repeated calls agree bit for bit.
//
// Complexity:
//   • Integrate O(Len()); CheckExactness O(Len()·maxDegree³/48) time and
//     O(Len()·maxDegree) memory for the power tables.

package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const methodCheckExactness = "CheckExactness"

// Integrate returns Σ W[i]·f(X[i], Y[i], Z[i]). On an unscaled unit grid this
// is the mean of f over the sphere.
// Complexity: O(Len()) evaluations of f.
func (g *Grid) Integrate(f func(x, y, z float64) float64) float64 {
	vals := make([]float64, g.Len())
	for i := range vals {
		vals[i] = f(g.X[i], g.Y[i], g.Z[i])
	}

	return floats.Dot(g.W, vals)
}

// MonomialMean returns the exact mean of x^a·y^b·z^c over the unit sphere:
//
//	Γ((a+1)/2)·Γ((b+1)/2)·Γ((c+1)/2) / (2π·Γ((a+b+c+3)/2))
//
// It is 0 when any exponent is odd and NaN when any exponent is negative.
func MonomialMean(a, b, c int) float64 {
	if a < 0 || b < 0 || c < 0 {
		return math.NaN()
	}
	if a%2 == 1 || b%2 == 1 || c%2 == 1 {
		return 0
	}
	lg := func(e float64) float64 {
		v, _ := math.Lgamma(e)
		return v
	}
	ha, hb, hc := float64(a+1)/2, float64(b+1)/2, float64(c+1)/2

	return math.Exp(lg(ha)+lg(hb)+lg(hc)-lg(ha+hb+hc)) / (2 * math.Pi)
}

// CheckExactness integrates every even monomial x^a·y^b·z^c with
// a+b+c ≤ maxDegree on g and compares it with MonomialMean. Coordinates are
// first mapped back to the unit sphere and weights divided by g.Scale, so
// placed grids are checked too. Odd monomials vanish by symmetry and are
// covered by CheckSymmetry.
// Complexity: O(Len()·maxDegree³/48) time, O(Len()·maxDegree) memory.
func CheckExactness(g *Grid, maxDegree int, tol float64) error {
	if g == nil {
		return fmt.Errorf("%s: %w", methodCheckExactness, ErrNilGrid)
	}
	if maxDegree < 0 {
		return fmt.Errorf("%s: degree %d: %w", methodCheckExactness, maxDegree, ErrUnsupportedDegree)
	}
	for _, s := range [][]float64{g.X, g.Y, g.Z, g.W} {
		if !allFinite(s) {
			return fmt.Errorf("%s: order %d: %w", methodCheckExactness, g.Order, ErrNaNInf)
		}
	}
	n := g.Len()
	px := powerTable(g.X, g.Center.X, g.Radius, maxDegree)
	py := powerTable(g.Y, g.Center.Y, g.Radius, maxDegree)
	pz := powerTable(g.Z, g.Center.Z, g.Radius, maxDegree)

	w := make([]float64, n)
	copy(w, g.W)
	floats.Scale(1/g.Scale, w)

	wxy := make([]float64, n)
	for a := 0; a <= maxDegree; a += 2 {
		for b := 0; a+b <= maxDegree; b += 2 {
			floats.MulTo(wxy, px[a], py[b])
			floats.Mul(wxy, w)
			for c := 0; a+b+c <= maxDegree; c += 2 {
				got := floats.Dot(wxy, pz[c])
				want := MonomialMean(a, b, c)
				if !(math.Abs(got-want) <= tol) {
					return fmt.Errorf("%s: order %d x^%d y^%d z^%d: got %.17g want %.17g: %w",
						methodCheckExactness, g.Order, a, b, c, got, want, ErrInexact)
				}
			}
		}
	}

	return nil
}

// allFinite reports whether s holds no NaN or ±Inf.
func allFinite(s []float64) bool {
	if floats.HasNaN(s) {
		return false
	}
	for _, v := range s {
		if math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// powerTable returns p[k][i] = ((v[i]-center)/radius)^k for k = 0..maxDegree.
func powerTable(v []float64, center, radius float64, maxDegree int) [][]float64 {
	p := make([][]float64, maxDegree+1)
	p[0] = make([]float64, len(v))
	for i := range p[0] {
		p[0][i] = 1
	}
	if maxDegree == 0 {
		return p
	}
	p[1] = make([]float64, len(v))
	for i, x := range v {
		p[1][i] = (x - center) / radius
	}
	for k := 2; k <= maxDegree; k++ {
		p[k] = make([]float64, len(v))
		floats.MulTo(p[k], p[k-1], p[1])
	}

	return p
}
