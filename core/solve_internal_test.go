// SPDX-License-Identifier: MIT
// White-box test: seeds a variable via the unexported write protocol
// directly, bypassing SetInput's unbounded propagateFrom, so Solve's own
// round-by-round dispatch (rather than propagateFrom's uncapped loop) is
// what resolves a forward chain. This is the only way to exercise
// SolveOption/WithMaxRounds' cap honestly: every public entry point
// (SetInput) always propagates a chain to completion before Solve ever
// sees it.
package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// chainOfForwards builds v0 -> v1 -> v2 -> v3 -> v4, each hop computing
// target = dependency + 1.
func chainOfForwards(n *Network) {
	names := []string{"v0", "v1", "v2", "v3", "v4"}
	for _, name := range names {
		n.AddVariable(name, "")
	}
	for i := 0; i < len(names)-1; i++ {
		dep, target := names[i], names[i+1]
		n.AddConstraint(&Constraint{
			Name:         "step_" + target,
			Scope:        []string{dep, target},
			Kind:         KindForward,
			Target:       target,
			Dependencies: []string{dep},
			Forward: func(values map[string]float64) (float64, bool) {
				return values[dep] + 1, true
			},
		})
	}
}

func TestSolveInternal_CapsBeforeChainFullyResolves(t *testing.T) {
	n := NewNetwork()
	chainOfForwards(n)

	// Seed v0 directly, bypassing propagateFrom entirely.
	_, err := n.variables["v0"].trySet(0, "user")
	require.NoError(t, err)

	result, solveErr := n.Solve(WithMaxRounds(2))
	require.Error(t, solveErr)
	require.False(t, result.Converged)
	require.Equal(t, 2, result.Rounds)
	require.True(t, errors.Is(solveErr, ErrConvergence))

	// After 2 rounds: v1 (round 1) and v2 (round 2) resolve; v3 is blocked
	// (its dependency v2 is known, but the cap hit before it could run);
	// v4 is not blocked (its own dependency v3 is still unknown).
	require.True(t, n.variables["v1"].IsKnown())
	require.True(t, n.variables["v2"].IsKnown())
	require.False(t, n.variables["v3"].IsKnown())
	require.False(t, n.variables["v4"].IsKnown())

	require.Equal(t, []string{"step_v3"}, result.Blocked)
}

func TestSolveInternal_EnoughRoundsConverges(t *testing.T) {
	n := NewNetwork()
	chainOfForwards(n)

	_, err := n.variables["v0"].trySet(0, "user")
	require.NoError(t, err)

	result, solveErr := n.Solve(WithMaxRounds(10))
	require.NoError(t, solveErr)
	require.True(t, result.Converged)
	require.Empty(t, result.Blocked)

	v4, _ := n.variables["v4"].Value()
	require.Equal(t, 4.0, v4)
}

func TestSolveInternal_DefaultMaxRoundsIs100(t *testing.T) {
	cfg := defaultSolveConfig()
	require.Equal(t, 100, cfg.maxRounds)
}
