// Package core_test provides examples demonstrating how to use a bare
// core.Network. Each example is runnable via "go test -run Example",
// showing both code and expected output.
package core_test

import (
	"fmt"
	"math"

	"github.com/locnkn204/geomkb/core"
)

// ExampleNetwork_triangleFromTwoSidesAndIncludedAngle builds a tiny
// single-constraint network computing the third side of a triangle from
// a, b, and the included angle C via the law of cosines, then reports the
// result through GetResults.
func ExampleNetwork_triangleFromTwoSidesAndIncludedAngle() {
	n := core.NewNetwork()

	// c^2 = a^2 + b^2 - 2ab*cos(C)
	n.AddConstraint(&core.Constraint{
		Name:         "law_of_cosines_c",
		Scope:        []string{"a", "b", "C", "c"},
		Kind:         core.KindForward,
		Target:       "c",
		Dependencies: []string{"a", "b", "C"},
		Forward: func(values map[string]float64) (float64, bool) {
			a, b, C := values["a"], values["b"], core.DegToRad(values["C"])
			radicand := a*a + b*b - 2*a*b*math.Cos(C)
			return core.SafeSqrt(radicand)
		},
	})

	_ = n.SetInput("a", 3)
	_ = n.SetInput("b", 4)
	_ = n.SetInput("C", 90)

	results := n.GetResults()
	fmt.Printf("c=%.1f\n", results["c"])
	// Output: c=5.0
}
