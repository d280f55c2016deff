// SPDX-License-Identifier: MIT
package ssa_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/locnkn204/geomkb/ssa"
)

func TestSolutions_TwoSolutions(t *testing.T) {
	// spec §8 scenario 3: {a: 7, b: 10, A: 30} -> two solutions, B ~=
	// 45.585 deg and B ~= 134.415 deg.
	sols := ssa.Solutions(map[string]float64{"a": 7, "b": 10, "A": 30})
	require.Len(t, sols, 2)

	require.InDelta(t, 45.585, sols[0]["B"], 1e-2)
	require.InDelta(t, 134.415, sols[1]["B"], 1e-2)

	for _, sol := range sols {
		require.InDelta(t, 30.0, sol["A"], 1e-9)
		require.InDelta(t, 7.0, sol["a"], 1e-9)
		require.InDelta(t, 10.0, sol["b"], 1e-9)
		require.InDelta(t, 180.0, sol["A"]+sol["B"]+sol["C"], 1e-6)

		// law of sines holds across every side/angle pair of the
		// completed solution.
		ratio := sol["a"] / math.Sin(sol["A"]*math.Pi/180.0)
		require.InDelta(t, ratio, sol["b"]/math.Sin(sol["B"]*math.Pi/180.0), 1e-6)
		require.InDelta(t, ratio, sol["c"]/math.Sin(sol["C"]*math.Pi/180.0), 1e-6)
	}
}

func TestSolutions_ZeroSolutions(t *testing.T) {
	// sin O = (10 * sin(30)) / 3 > 1: no triangle can close.
	sols := ssa.Solutions(map[string]float64{"a": 3, "b": 10, "A": 30})
	require.Empty(t, sols)
}

func TestSolutions_OneSolution_RightAngleTangent(t *testing.T) {
	// sin O == 1 exactly (O == 90): primary and supplement coincide, so
	// only one candidate survives.
	sols := ssa.Solutions(map[string]float64{"a": 10, "b": 20, "A": 30})
	require.Len(t, sols, 1)
	require.InDelta(t, 90.0, sols[0]["B"], 1e-6)
	require.InDelta(t, 60.0, sols[0]["C"], 1e-6)
}

func TestSolutions_OneSolution_SupplementRejected(t *testing.T) {
	// The known angle is opposite the longer of the two known sides, so
	// the supplementary candidate's third angle is <= 0 and only the
	// primary branch survives.
	sols := ssa.Solutions(map[string]float64{"a": 10, "b": 7, "A": 30})
	require.Len(t, sols, 1)
	require.InDelta(t, 20.49, sols[0]["B"], 1e-2)
	require.InDelta(t, 129.51, sols[0]["C"], 1e-2)
}

func TestSolutions_NotSSAPattern(t *testing.T) {
	// Two angles known: not the SSA shape at all.
	require.Empty(t, ssa.Solutions(map[string]float64{"A": 30, "B": 60, "a": 5}))
	// Angle not opposite either known side.
	require.Empty(t, ssa.Solutions(map[string]float64{"A": 30, "b": 5, "c": 6}))
	// Only one side known.
	require.Empty(t, ssa.Solutions(map[string]float64{"A": 30, "a": 5}))
}
