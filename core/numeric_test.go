// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/locnkn204/geomkb/core"
)

func TestSafeSqrt_Positive(t *testing.T) {
	got, ok := core.SafeSqrt(16)
	require.True(t, ok)
	require.Equal(t, 4.0, got)
}

func TestSafeSqrt_NegligibleNegativeRoundsToZero(t *testing.T) {
	got, ok := core.SafeSqrt(-1e-13)
	require.True(t, ok)
	require.Equal(t, 0.0, got)
}

func TestSafeSqrt_TrulyNegativeYieldsNoResult(t *testing.T) {
	_, ok := core.SafeSqrt(-0.5)
	require.False(t, ok)
}

func TestClamp(t *testing.T) {
	require.Equal(t, 1.0, core.Clamp(1.5, -1, 1))
	require.Equal(t, -1.0, core.Clamp(-1.5, -1, 1))
	require.Equal(t, 0.3, core.Clamp(0.3, -1, 1))
}

func TestDegRadRoundTrip(t *testing.T) {
	got := core.RadToDeg(core.DegToRad(60))
	require.InDelta(t, 60.0, got, 1e-9)
}
