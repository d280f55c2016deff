// Package quad implements the quadrilateral-family constraint catalogue of
// spec §4.7.2: a base convex-quadrilateral network plus five specializations
// (trapezoid, parallelogram, rectangle, rhombus, square) that each append
// further constraints atop the base rather than replacing it.
//
// Variable vocabulary: sides a, b, c, d (in order around the quadrilateral,
// so a is opposite c and b is opposite d); angles A, B, C, D at the vertex
// between the two sides named in their own position; diagonals d1 (splits
// triangle ABC / CDA) and d2 (splits triangle ABD / BCD); height h (used by
// the trapezoid and parallelogram area relations); and the same derived
// perimeter/semi-perimeter/area vocabulary as the triangle package.
//
// Every factory returns a *core.Network ready for core.Network.SetInput and
// core.Network.Solve; callers pick the factory matching the shape they know
// they have (NewQuadrilateral for an unconstrained convex quadrilateral, up
// through NewSquare for the fully specialized case).
package quad
