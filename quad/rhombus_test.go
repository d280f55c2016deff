// SPDX-License-Identifier: MIT
package quad_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/locnkn204/geomkb/quad"
)

func TestRhombus_SideFromPerimeterAndAreaFromDiagonals(t *testing.T) {
	n := quad.NewRhombus()
	require.NoError(t, n.SetInput("perimeter", 20))
	require.NoError(t, n.SetInput("d1", 6))
	require.NoError(t, n.SetInput("d2", 8))

	results := n.GetResults()
	require.InDelta(t, 5.0, results["a"], 1e-6)
	require.InDelta(t, 24.0, results["area"], 1e-6)
}

func TestRhombus_SideFromBothDiagonals(t *testing.T) {
	n := quad.NewRhombus()
	require.NoError(t, n.SetInput("d1", 6))
	require.NoError(t, n.SetInput("d2", 8))

	results := n.GetResults()
	require.InDelta(t, 5.0, results["a"], 1e-6)
	require.InDelta(t, 5.0, results["b"], 1e-6)
	require.InDelta(t, 5.0, results["c"], 1e-6)
	require.InDelta(t, 5.0, results["d"], 1e-6)
}
