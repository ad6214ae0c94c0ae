// Package lebedev is your in-memory source of Lebedev-Laikov angular
// quadrature rules: point sets on the unit sphere with weights that integrate
// every polynomial up to a fixed degree exactly.
//
// 🚀 What is lebedev?
//
//	A small, deterministic, allocation-aware library that brings together:
//		• Symmetry expansion: one generator point → its octahedral (Oh) orbit
//		• 32 tabulated rules: 6 to 5810 points, exact through degree 3 to 131
//		• Selection by order (point count) or by required degree
//		• Placement: radius, center and weight scale (e.g. 4π for surface area)
//		• Verification: unit norm, weight sum, Oh invariance, monomial exactness
//		• Export: CSV, JSON, YAML and aligned tables
//
// ✨ Why choose lebedev?
//
//   - Bit-reproducible – the same order always yields the same bytes
//   - Caller-owned buffers – Fill writes into slices you already hold
//   - Checkable – every rule can prove its own invariants at run time
//
// Under the hood, everything is organized under these packages:
//
//	orbit/           — orbit codes 1..6, Expand into caller buffers, the 48-element Oh group
//	grid/            — rule catalogue, Fill / Generate, integration and validators
//	internal/export/ — CSV / JSON / YAML / table encoders for grids
//	internal/config/ — defaults, YAML file, LEBEDEV_* environment and flags
//	cmd/lebedev/     — the lebedev command: grid, orders, verify
//
// Quick example:
//
//	g, _ := grid.Generate(26)
//	mean := g.Integrate(func(x, y, z float64) float64 { return x * x })
//	// mean == 1/3
//
// The six-point rule is the octahedron vertices (±1,0,0), (0,±1,0), (0,0,±1),
// each with weight 1/6.
//
//	go get github.com/katalvlaran/lebedev/grid
package lebedev
