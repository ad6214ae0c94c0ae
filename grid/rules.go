// SPDX-License-Identifier: MIT
// Package: lebedev/grid
//
// rules.go — the rule catalogue: order → degree and orbit table.
//
// Contract:
//   • The catalogue holds 32 rules, ascending by order and by degree.
//   • Tables are package-level and never mutated; Orbits hands out copies.
//   • Orders outside the catalogue → ErrUnsupportedOrder.
//   • Degrees outside [0, MaxDegree] → ErrUnsupportedDegree.
//
// Determinism:
//   • Orders() is always ascending; ForDegree scans in that order.
//
// Complexity:
//   • Supported, Degree O(1) via the order index; ForDegree O(32);
//     Orders O(32); Orbits O(orbits in the rule).

package grid

import (
	"fmt"

	"github.com/katalvlaran/lebedev/orbit"
)

const (
	methodDegree    = "Degree"
	methodForDegree = "ForDegree"
	methodOrbits    = "Orbits"

	// MaxDegree is the highest degree of exactness in the catalogue.
	MaxDegree = 131
)

// rule binds one order to its degree of exactness and orbit table.
type rule struct {
	order  int
	degree int
	orbits []orbit.Orbit
}

// rules is sorted by ascending order (and degree).
var rules = [...]rule{
	{6, 3, ld0006},
	{14, 5, ld0014},
	{26, 7, ld0026},
	{38, 9, ld0038},
	{50, 11, ld0050},
	{74, 13, ld0074},
	{86, 15, ld0086},
	{110, 17, ld0110},
	{146, 19, ld0146},
	{170, 21, ld0170},
	{194, 23, ld0194},
	{230, 25, ld0230},
	{266, 27, ld0266},
	{302, 29, ld0302},
	{350, 31, ld0350},
	{434, 35, ld0434},
	{590, 41, ld0590},
	{770, 47, ld0770},
	{974, 53, ld0974},
	{1202, 59, ld1202},
	{1454, 65, ld1454},
	{1730, 71, ld1730},
	{2030, 77, ld2030},
	{2354, 83, ld2354},
	{2702, 89, ld2702},
	{3074, 95, ld3074},
	{3470, 101, ld3470},
	{3890, 107, ld3890},
	{4334, 113, ld4334},
	{4802, 119, ld4802},
	{5294, 125, ld5294},
	{5810, 131, ld5810},
}

var ruleByOrder = indexRules()

func indexRules() map[int]*rule {
	m := make(map[int]*rule, len(rules))
	for i := range rules {
		m[rules[i].order] = &rules[i]
	}

	return m
}

// lookup returns the rule for order or ErrUnsupportedOrder.
func lookup(method string, order int) (*rule, error) {
	r, ok := ruleByOrder[order]
	if !ok {
		return nil, fmt.Errorf("%s: order %d: %w", method, order, ErrUnsupportedOrder)
	}

	return r, nil
}

// Orders returns the supported orders in ascending order.
func Orders() []int {
	out := make([]int, len(rules))
	for i, r := range rules {
		out[i] = r.order
	}

	return out
}

// Supported reports whether order names a tabulated rule.
func Supported(order int) bool {
	_, ok := ruleByOrder[order]

	return ok
}

// Degree returns the algebraic degree of exactness of the order-point rule:
// every polynomial of total degree ≤ Degree is integrated exactly.
func Degree(order int) (int, error) {
	r, err := lookup(methodDegree, order)
	if err != nil {
		return 0, err
	}

	return r.degree, nil
}

// ForDegree returns the smallest order whose rule is exact through degree.
// It is a catalogue query; Generate never substitutes one order for another.
func ForDegree(degree int) (int, error) {
	if degree < 0 || degree > MaxDegree {
		return 0, fmt.Errorf("%s: degree %d not in [0,%d]: %w", methodForDegree, degree, MaxDegree, ErrUnsupportedDegree)
	}
	for _, r := range rules {
		if r.degree >= degree {
			return r.order, nil
		}
	}

	// Unreachable while rules ends at MaxDegree.
	return 0, fmt.Errorf("%s: degree %d: %w", methodForDegree, degree, ErrUnsupportedDegree)
}

// Orbits returns a copy of the generator table of the order-point rule, in
// expansion order.
func Orbits(order int) ([]orbit.Orbit, error) {
	r, err := lookup(methodOrbits, order)
	if err != nil {
		return nil, err
	}
	out := make([]orbit.Orbit, len(r.orbits))
	copy(out, r.orbits)

	return out, nil
}
