// SPDX-License-Identifier: MIT

package grid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lebedev/orbit"
)

func TestRuleFill_CorruptTable(t *testing.T) {
	buf := func() []float64 { return make([]float64, 64) }

	short := rule{order: 10, degree: 1, orbits: []orbit.Orbit{{Code: orbit.Axes, V: 0.1}}}
	n, err := short.fill(buf(), buf(), buf(), buf())
	require.ErrorIs(t, err, ErrCorruptTable)
	require.Equal(t, 6, n)

	bad := rule{order: 6, degree: 1, orbits: []orbit.Orbit{{Code: 9, V: 0.1}}}
	_, err = bad.fill(buf(), buf(), buf(), buf())
	require.ErrorIs(t, err, ErrCorruptTable)
	require.ErrorIs(t, err, orbit.ErrInvalidCode)
}

func TestRuleIndex(t *testing.T) {
	require.Len(t, ruleByOrder, len(rules))
	for i := range rules {
		require.Same(t, &rules[i], ruleByOrder[rules[i].order])
		if i > 0 {
			require.Greater(t, rules[i].order, rules[i-1].order)
			require.Greater(t, rules[i].degree, rules[i-1].degree)
		}
	}
}
