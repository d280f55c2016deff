// Package classify implements the shape classifier of spec §4.8: given a
// value snapshot from a solved network (core.Network.GetResults) and a
// flag saying whether the network is a triangle or a quadrilateral, it
// returns the most specific shape name along with the inheritance chain
// leading up to the root of the taxonomy.
//
// Classification is most-specific-first: every check in ClassifyTriangle
// and ClassifyQuadrilateral runs in the order the spec lists them, and the
// first one that matches wins. Equality checks use 1e-6 for lengths and
// 1e-3 for angles, matching the tolerances spec §4.8 assigns each; the one
// exception is ClassifyTriangle's right-angle test, which accepts an angle
// within 0.1 degrees of 90 or the Pythagorean identity within 1e-3.
package classify
