// File: types.go
// Role: Shared vocabulary for the SSA detector (spec §4.9).
package ssa

// Solution is a fully populated triangle attribute set: the caller's
// original inputs plus the computed second angle, third angle and third
// side for one geometrically valid completion of the SSA pattern, so all
// three angles and all three sides are present.
type Solution map[string]float64

// angleToSide and sideToAngle translate between a triangle angle name and
// the side opposite it (spec §3: triangle sides a, b, c; angles A, B, C).
var angleToSide = map[string]string{"A": "a", "B": "b", "C": "c"}
var sideToAngle = map[string]string{"a": "A", "b": "B", "c": "C"}

// thirdAngleName returns the one of A, B, C that is neither x nor y.
func thirdAngleName(x, y string) string {
	for _, name := range [3]string{"A", "B", "C"} {
		if name != x && name != y {
			return name
		}
	}
	return ""
}
