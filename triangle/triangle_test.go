// SPDX-License-Identifier: MIT
package triangle_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/locnkn204/geomkb/triangle"
)

// TestTriangle_345RightTriangle reproduces the spec's 3-4-5 end-to-end
// scenario: every derived attribute should match within 1e-3.
func TestTriangle_345RightTriangle(t *testing.T) {
	n := triangle.NewTriangle()

	require.NoError(t, n.SetInput("a", 3))
	require.NoError(t, n.SetInput("b", 4))
	require.NoError(t, n.SetInput("c", 5))

	results := n.GetResults()

	require.InDelta(t, 36.8699, results["A"], 1e-3)
	require.InDelta(t, 53.1301, results["B"], 1e-3)
	require.InDelta(t, 90.0, results["C"], 1e-3)
	require.InDelta(t, 6.0, results["area"], 1e-3)
	require.InDelta(t, 12.0, results["perimeter"], 1e-3)
	require.InDelta(t, 6.0, results["s"], 1e-3)
	require.InDelta(t, 2.5, results["R"], 1e-3)
	require.InDelta(t, 1.0, results["r"], 1e-3)
	require.InDelta(t, 4.0, results["h_a"], 1e-3)
	require.InDelta(t, 3.0, results["h_b"], 1e-3)
	require.InDelta(t, 2.4, results["h_c"], 1e-3)
}

func TestTriangle_LawOfSinesSelfConsistency(t *testing.T) {
	n := triangle.NewTriangle()
	require.NoError(t, n.SetInput("a", 3))
	require.NoError(t, n.SetInput("b", 4))
	require.NoError(t, n.SetInput("c", 5))

	results := n.GetResults()
	ratioA := results["a"] / sinDeg(results["A"])
	ratioB := results["b"] / sinDeg(results["B"])
	ratioC := results["c"] / sinDeg(results["C"])

	require.InDelta(t, ratioA, ratioB, 1e-6*ratioA)
	require.InDelta(t, ratioA, ratioC, 1e-6*ratioA)
}

func TestTriangle_HeronMatchesAltitudeFormula(t *testing.T) {
	n := triangle.NewTriangle()
	require.NoError(t, n.SetInput("a", 3))
	require.NoError(t, n.SetInput("b", 4))
	require.NoError(t, n.SetInput("c", 5))

	results := n.GetResults()
	require.InDelta(t, results["area"], 0.5*results["a"]*results["h_a"], 1e-6*results["area"])
}

func TestTriangle_PerimeterReverseComputesMissingSide(t *testing.T) {
	n := triangle.NewTriangle()
	require.NoError(t, n.SetInput("a", 3))
	require.NoError(t, n.SetInput("b", 4))
	require.NoError(t, n.SetInput("perimeter", 12))

	results := n.GetResults()
	require.InDelta(t, 5.0, results["c"], 1e-6)
}

func TestTriangle_PerimeterReverseRejectsTriangleInequalityViolation(t *testing.T) {
	n := triangle.NewTriangle()
	require.NoError(t, n.SetInput("a", 1))
	require.NoError(t, n.SetInput("b", 1))
	require.NoError(t, n.SetInput("perimeter", 100)) // c would be 98: 1+1 < 98

	results := n.GetResults()
	_, known := results["c"]
	require.False(t, known, "a degenerate third side must not be written")
}

func TestTriangle_PerimeterConflictRollback(t *testing.T) {
	n := triangle.NewTriangle()
	require.NoError(t, n.SetInput("a", 3))
	require.NoError(t, n.SetInput("b", 4))
	require.NoError(t, n.SetInput("c", 5)) // derives perimeter = 12

	before := n.GetResults()

	err := n.SetInput("perimeter", 13)
	require.Error(t, err)

	after := n.GetResults()
	require.Equal(t, before, after, "a rejected perimeter conflict must leave every variable unchanged")
}

func sinDeg(deg float64) float64 {
	return math.Sin(deg * math.Pi / 180.0)
}
