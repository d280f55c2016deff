// Package triangle provides the constraint-network factories for general
// and equilateral triangles (spec §4.7.1).
//
// Both factories return a *core.Network pre-populated with every variable
// and constraint of the triangle relation catalogue; callers then feed
// measurements through core.Network.SetInput and read results back via
// core.Network.GetResults, exactly as with any other core.Network.
//
// Variable names follow the spec's convention: lower-case a, b, c for
// sides, upper-case A, B, C for their opposite angles (degrees), plus the
// derived attributes perimeter, area, s (semi-perimeter), R (circumradius),
// r/r_a/r_b/r_c (in/exradii), h_a/h_b/h_c (altitudes), m_a/m_b/m_c
// (medians), and l_a/l_b/l_c (angle-bisector lengths). The variables d and
// D exist (auto-created the first time a constraint's Scope mentions them)
// only on a quadrilateral network; NewTriangle never references them.
package triangle
