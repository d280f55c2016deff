// SPDX-License-Identifier: MIT
package quad_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/locnkn204/geomkb/quad"
)

// TestSquare_FromArea reproduces the spec's square end-to-end scenario.
func TestSquare_FromArea(t *testing.T) {
	n := quad.NewSquare()
	require.NoError(t, n.SetInput("area", 25))

	_, err := n.Solve()
	require.NoError(t, err)

	results := n.GetResults()
	require.InDelta(t, 5.0, results["a"], 1e-6)
	require.InDelta(t, 5.0, results["b"], 1e-6)
	require.InDelta(t, 5.0, results["c"], 1e-6)
	require.InDelta(t, 5.0, results["d"], 1e-6)
	require.InDelta(t, 20.0, results["perimeter"], 1e-6)
	require.InDelta(t, 7.0711, results["d1"], 1e-3)
}

func TestSquare_FromPerimeter(t *testing.T) {
	n := quad.NewSquare()
	require.NoError(t, n.SetInput("perimeter", 16))

	_, err := n.Solve()
	require.NoError(t, err)

	results := n.GetResults()
	require.InDelta(t, 4.0, results["a"], 1e-6)
	require.InDelta(t, 16.0, results["area"], 1e-6)
}
