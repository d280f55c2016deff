// SPDX-License-Identifier: MIT
package quad_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/locnkn204/geomkb/quad"
)

func TestQuadrilateral_PerimeterReverseComputesMissingSide(t *testing.T) {
	n := quad.NewQuadrilateral()
	require.NoError(t, n.SetInput("a", 2))
	require.NoError(t, n.SetInput("b", 3))
	require.NoError(t, n.SetInput("c", 4))
	require.NoError(t, n.SetInput("perimeter", 13))

	results := n.GetResults()
	require.InDelta(t, 4.0, results["d"], 1e-6)
}

func TestQuadrilateral_AngleSumDerivesFourthAngle(t *testing.T) {
	n := quad.NewQuadrilateral()
	require.NoError(t, n.SetInput("A", 80))
	require.NoError(t, n.SetInput("B", 100))
	require.NoError(t, n.SetInput("C", 80))

	results := n.GetResults()
	require.InDelta(t, 100.0, results["D"], 1e-6)
}

func TestQuadrilateral_BretschneiderArea(t *testing.T) {
	n := quad.NewQuadrilateral()
	require.NoError(t, n.SetInput("a", 5))
	require.NoError(t, n.SetInput("b", 5))
	require.NoError(t, n.SetInput("c", 5))
	require.NoError(t, n.SetInput("d", 5))
	require.NoError(t, n.SetInput("A", 90))
	require.NoError(t, n.SetInput("C", 90))

	_, err := n.Solve()
	require.NoError(t, err)

	results := n.GetResults()
	require.InDelta(t, 25.0, results["area"], 1e-6)
}

func TestQuadrilateral_TrapezoidalAreaAndInverse(t *testing.T) {
	n := quad.NewQuadrilateral()
	require.NoError(t, n.SetInput("a", 4))
	require.NoError(t, n.SetInput("c", 6))
	require.NoError(t, n.SetInput("h", 3))

	results := n.GetResults()
	require.InDelta(t, 15.0, results["area"], 1e-6)

	n2 := quad.NewQuadrilateral()
	require.NoError(t, n2.SetInput("a", 4))
	require.NoError(t, n2.SetInput("c", 6))
	require.NoError(t, n2.SetInput("area", 15))

	results2 := n2.GetResults()
	require.InDelta(t, 3.0, results2["h"], 1e-6)
}
