// File: utils.go
// Role: Shared quadratic solver for the parallelogram and rectangle
// closed-form systems (spec §4.7.2).
package quad

import "github.com/locnkn204/geomkb/core"

// solveQuadraticPositive solves x^2 + b*x + c = 0 and returns only the
// strictly positive real roots, ascending. n reports how many of x1, x2 are
// valid (0, 1, or 2); callers must ignore the unused slots.
//
// Both spec closed-form systems (parallelogram's X^2-(P/2)X+area/sinA=0 and
// rectangle's X^2-(P/2)X+area=0) reduce to this shape with b = -(P/2).
func solveQuadraticPositive(b, c float64) (x1, x2 float64, n int) {
	disc := b*b - 4*c
	root, ok := core.SafeSqrt(disc)
	if !ok {
		return 0, 0, 0
	}

	r1 := (-b - root) / 2.0
	r2 := (-b + root) / 2.0

	var roots []float64
	if r1 > 0 {
		roots = append(roots, r1)
	}
	if r2 > 0 && (disc > 1e-12 || len(roots) == 0) {
		roots = append(roots, r2)
	}

	switch len(roots) {
	case 0:
		return 0, 0, 0
	case 1:
		return roots[0], 0, 1
	default:
		return roots[0], roots[1], 2
	}
}
