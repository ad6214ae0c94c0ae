// SPDX-License-Identifier: MIT

// Package export serializes a grid.Grid for the lebedev command: CSV, JSON,
// YAML or an aligned text table, optionally with spherical angles per point.
package export
