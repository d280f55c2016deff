// SPDX-License-Identifier: MIT
package quad_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/locnkn204/geomkb/quad"
)

func TestTrapezoid_SupplementaryAngles(t *testing.T) {
	n := quad.NewTrapezoid()
	require.NoError(t, n.SetInput("A", 70))
	require.NoError(t, n.SetInput("B", 110))

	results := n.GetResults()
	require.InDelta(t, 110.0, results["D"], 1e-6)
	require.InDelta(t, 70.0, results["C"], 1e-6)
}

func TestTrapezoid_HeightFromLegAndAngle(t *testing.T) {
	n := quad.NewTrapezoid()
	require.NoError(t, n.SetInput("b", 5))
	require.NoError(t, n.SetInput("B", 90))

	results := n.GetResults()
	require.InDelta(t, 5.0, results["h"], 1e-6)
}

func TestTrapezoid_HeightFromFourSides(t *testing.T) {
	// A right trapezoid: bases 4 and 10, one vertical leg of 3, the
	// slant leg then has length sqrt(3^2 + 6^2) = sqrt(45).
	n := quad.NewTrapezoid()
	require.NoError(t, n.SetInput("a", 4))
	require.NoError(t, n.SetInput("c", 10))
	require.NoError(t, n.SetInput("d", 3))
	require.NoError(t, n.SetInput("b", 6.708203932499369)) // sqrt(45)

	results := n.GetResults()
	require.InDelta(t, 3.0, results["h"], 1e-3)
}
