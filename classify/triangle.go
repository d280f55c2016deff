// File: triangle.go
// Role: Triangle classifier (spec §4.8), grounded on
// original_source/allin1.py's classify_triangle_from_res.
package classify

// ClassifyTriangle returns the most-specific triangle shape name and its
// inheritance chain, most-specific first (e.g. ["Equilateral",
// "Isosceles", "Triangle"]), for a results snapshot taken from a
// triangle.NewTriangle network (spec §4.8 "Triangle classification").
func ClassifyTriangle(results map[string]float64) (name string, chain []string) {
	equilateral := allKnown(results, "a", "b", "c") &&
		closeWithin(results, "a", "b", sideTolerance) &&
		closeWithin(results, "b", "c", sideTolerance)
	if equilateral {
		return "Equilateral", []string{"Equilateral", "Isosceles", "Triangle"}
	}

	isosceles := closeWithin(results, "a", "b", sideTolerance) ||
		closeWithin(results, "a", "c", sideTolerance) ||
		closeWithin(results, "b", "c", sideTolerance)

	right := isRightByAngle(results) || isRightByPythagoras(results)

	switch {
	case right && isosceles:
		return "Right Isosceles", []string{"Right Isosceles", "Right", "Isosceles", "Triangle"}
	case right:
		return "Right", []string{"Right", "Triangle"}
	case isosceles:
		return "Isosceles", []string{"Isosceles", "Triangle"}
	}

	if anyKnown(results, "a", "b", "c", "A", "B", "C") {
		return "Scalene", []string{"Scalene", "Triangle"}
	}
	return "Unknown Triangle", []string{"Triangle"}
}

// nearEquilateralDeviation is the maximum relative side-length deviation
// from the mean still considered "nearly equilateral" (spec §7
// supplemented feature, grounded on allin1.py's near-equilateral hint:
// "max_dev < 0.001").
const nearEquilateralDeviation = 0.001

// NearEquilateral reports whether all three sides are known and their
// maximum relative deviation from the mean side length is under
// nearEquilateralDeviation, regardless of what ClassifyTriangle itself
// returns. It is purely informational (spec §7 supplemented feature) and
// never overrides the primary classification — callers that want the hint
// call it alongside ClassifyTriangle rather than through it.
func NearEquilateral(results map[string]float64) bool {
	if !allKnown(results, "a", "b", "c") {
		return false
	}
	a, b, c := results["a"], results["b"], results["c"]
	avg := (a + b + c) / 3.0
	if avg <= 0 {
		return false
	}
	dev := func(x float64) float64 {
		d := x - avg
		if d < 0 {
			d = -d
		}
		return d / avg
	}
	maxDev := dev(a)
	if d := dev(b); d > maxDev {
		maxDev = d
	}
	if d := dev(c); d > maxDev {
		maxDev = d
	}
	return maxDev < nearEquilateralDeviation
}

// isRightByAngle reports whether any of A, B, C is within rightTolerance
// of 90 degrees.
func isRightByAngle(results map[string]float64) bool {
	for _, name := range [3]string{"A", "B", "C"} {
		if v, ok := results[name]; ok {
			d := v - 90.0
			if d < 0 {
				d = -d
			}
			if d < rightTolerance {
				return true
			}
		}
	}
	return false
}

// isRightByPythagoras reports whether the three known sides satisfy the
// Pythagorean identity for any assignment of hypotenuse, within
// pythTolerance.
func isRightByPythagoras(results map[string]float64) bool {
	if !allKnown(results, "a", "b", "c") {
		return false
	}
	a, b, c := results["a"], results["b"], results["c"]
	close := func(x float64) bool {
		if x < 0 {
			x = -x
		}
		return x < pythTolerance
	}
	return close(a*a+b*b-c*c) || close(a*a+c*c-b*b) || close(b*b+c*c-a*a)
}
