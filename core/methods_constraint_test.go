// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/locnkn204/geomkb/core"
)

func sumConstraint() *core.Constraint {
	return &core.Constraint{
		Name:         "sum_ab",
		Scope:        []string{"a", "b", "sum"},
		Kind:         core.KindForward,
		Target:       "sum",
		Dependencies: []string{"a", "b"},
		Forward: func(values map[string]float64) (float64, bool) {
			return values["a"] + values["b"], true
		},
	}
}

func TestConstraint_ForwardShortCircuitsOnKnownTarget(t *testing.T) {
	n := core.NewNetwork()
	n.AddConstraint(sumConstraint())

	require.NoError(t, n.SetInput("sum", 99))
	require.NoError(t, n.SetInput("a", 1))
	require.NoError(t, n.SetInput("b", 1))

	v, _ := n.Variable("sum")
	got, _ := v.Value()
	require.Equal(t, 99.0, got, "sum was already known; forward body must not overwrite it")
}

func TestConstraint_ForwardShortCircuitsOnUnknownDependency(t *testing.T) {
	n := core.NewNetwork()
	c := sumConstraint()
	n.AddConstraint(c)

	updates := c.TryApply(n)
	require.Nil(t, updates)
}

func TestConstraint_ForwardNoResultYieldsEmpty(t *testing.T) {
	n := core.NewNetwork()
	c := &core.Constraint{
		Name:         "heron_like",
		Scope:        []string{"x", "y"},
		Kind:         core.KindForward,
		Target:       "y",
		Dependencies: []string{"x"},
		Forward: func(values map[string]float64) (float64, bool) {
			return core.SafeSqrt(values["x"] - 1000)
		},
	}
	n.AddConstraint(c)
	require.NoError(t, n.SetInput("x", 1))

	updates := c.TryApply(n)
	require.Nil(t, updates)
}

func TestConstraint_FlexibleFiltersUnknownScopeNames(t *testing.T) {
	n := core.NewNetwork()
	c := &core.Constraint{
		Name:  "law_of_sines_like",
		Scope: []string{"p", "q"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			return map[string]float64{"p": 1, "q": 2, "ghost": 3}
		},
	}
	n.AddConstraint(c)

	updates := c.TryApply(n)
	require.Len(t, updates, 2)
	require.Contains(t, updates, "p")
	require.Contains(t, updates, "q")
	require.NotContains(t, updates, "ghost")
}

func TestConstraint_FlexibleShortCircuitsWhenScopeFullyKnown(t *testing.T) {
	n := core.NewNetwork()
	called := false
	c := &core.Constraint{
		Name:  "noop_if_done",
		Scope: []string{"p", "q"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			called = true
			return map[string]float64{"p": 1, "q": 2}
		},
	}
	// Registered only after p and q are known, so SetInput's propagation
	// never reaches the body.
	require.NoError(t, n.SetInput("p", 10))
	require.NoError(t, n.SetInput("q", 20))
	n.AddConstraint(c)

	updates := c.TryApply(n)
	require.Nil(t, updates)
	require.False(t, called, "Flexible body must not run once every scope variable is known")
}
