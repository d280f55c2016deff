// SPDX-License-Identifier: MIT
package quad_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/locnkn204/geomkb/quad"
)

// TestRectangle_FromPerimeterAndArea reproduces the spec's rectangle
// end-to-end scenario.
func TestRectangle_FromPerimeterAndArea(t *testing.T) {
	n := quad.NewRectangle()
	require.NoError(t, n.SetInput("perimeter", 14))
	require.NoError(t, n.SetInput("area", 12))

	_, err := n.Solve()
	require.NoError(t, err)

	results := n.GetResults()
	require.ElementsMatch(t, []float64{3, 4}, []float64{results["a"], results["b"]})
	require.InDelta(t, 5.0, results["d1"], 1e-6)
	require.InDelta(t, 5.0, results["d2"], 1e-6)
	require.InDelta(t, 90.0, results["A"], 1e-6)
	require.InDelta(t, 90.0, results["B"], 1e-6)
	require.InDelta(t, 90.0, results["C"], 1e-6)
	require.InDelta(t, 90.0, results["D"], 1e-6)
}

func TestRectangle_PythagorasRoundTrip(t *testing.T) {
	n := quad.NewRectangle()
	require.NoError(t, n.SetInput("a", 3))
	require.NoError(t, n.SetInput("b", 4))

	results := n.GetResults()
	require.InDelta(t, 5.0, results["d1"], 1e-6)
	require.InDelta(t, 5.0, results["d2"], 1e-6)
}

func TestRectangle_PythagorasReverse(t *testing.T) {
	n := quad.NewRectangle()
	require.NoError(t, n.SetInput("a", 3))
	require.NoError(t, n.SetInput("d1", 5))

	results := n.GetResults()
	require.InDelta(t, 4.0, results["b"], 1e-6)
}

func TestRectangle_AreaReverse(t *testing.T) {
	n := quad.NewRectangle()
	require.NoError(t, n.SetInput("a", 3))
	require.NoError(t, n.SetInput("area", 12))

	results := n.GetResults()
	require.InDelta(t, 4.0, results["b"], 1e-6)
}
