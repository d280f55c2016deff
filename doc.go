// Package geomkb is a geometric constraint propagation engine for planar
// triangles and convex quadrilaterals.
//
// 📐 What is geomkb?
//
//	A small knowledge-base engine that brings together:
//
//	  • Core primitives: a variable/constraint graph with incremental and
//	    batch propagation
//	  • Knowledge base: algebraic and trigonometric relations for the
//	    triangle and quadrilateral families
//	  • Shape classifier: maps a solved attribute set to its most-specific
//	    name and inheritance chain
//	  • SSA ambiguity detector: enumerates the one or two valid completions
//	    of the triangle side-side-angle pattern
//
// ✨ Why geomkb?
//
//   - Incremental — every input propagates immediately; no manual re-solve
//   - Consistent — conflicting inputs roll back instead of corrupting state
//   - Deterministic — constraints dispatch in sorted order, every run alike
//   - Pure Go — no cgo, no hidden dependencies beyond testify in tests
//
// Everything is organized under five subpackages:
//
//	core/      — Variable, Constraint, Network: the propagation engine
//	triangle/  — triangle and equilateral-triangle networks
//	quad/      — quadrilateral, trapezoid, parallelogram, rectangle, rhombus, square networks
//	classify/  — shape classification over a solved attribute set
//	ssa/       — triangle side-side-angle ambiguity detector
//
// Quick example: feed the three sides of a 3-4-5 triangle and read back the
// derived angles and area.
//
//	n := triangle.NewTriangle()
//	n.SetInput("a", 3)
//	n.SetInput("b", 4)
//	n.SetInput("c", 5)
//	results := n.GetResults() // C=90, area=6, ...
//
//	go get github.com/locnkn204/geomkb
package geomkb
