// File: quadrilateral.go
// Role: Quadrilateral classifier (spec §4.8), grounded on
// original_source/allin1.py's classify_quad_from_res, restructured into
// the spec's cleaner most-specific-first precedence order.
package classify

// ClassifyQuadrilateral returns the most-specific quadrilateral shape name
// and its inheritance chain, most-specific first, for a results snapshot
// taken from any quad.New* network (spec §4.8 "Quadrilateral
// classification").
func ClassifyQuadrilateral(results map[string]float64) (name string, chain []string) {
	allSidesEqual := allKnown(results, "a", "b", "c", "d") &&
		closeWithin(results, "a", "b", sideTolerance) &&
		closeWithin(results, "b", "c", sideTolerance) &&
		closeWithin(results, "c", "d", sideTolerance)

	allRightAngles := allKnown(results, "A", "B", "C", "D") &&
		isRightAngle(results["A"]) && isRightAngle(results["B"]) &&
		isRightAngle(results["C"]) && isRightAngle(results["D"])

	oppositeSidesEqual := closeWithin(results, "a", "c", sideTolerance) &&
		closeWithin(results, "b", "d", sideTolerance)

	oppositeAnglesEqual := closeWithin(results, "A", "C", angleTolerance) &&
		closeWithin(results, "B", "D", angleTolerance)

	switch {
	case allSidesEqual && allRightAngles:
		return "Square", []string{"Square", "Rectangle", "Parallelogram", "Quadrilateral"}
	case allRightAngles && oppositeSidesEqual:
		return "Rectangle", []string{"Rectangle", "Parallelogram", "Quadrilateral"}
	case allSidesEqual:
		return "Rhombus", []string{"Rhombus", "Parallelogram", "Quadrilateral"}
	}

	adjacentSupplementary := func(x, y string) bool {
		xv, xok := results[x]
		yv, yok := results[y]
		if !xok || !yok {
			return false
		}
		d := xv + yv - 180.0
		if d < 0 {
			d = -d
		}
		return d < angleTolerance
	}
	bothPairsSupplementary := adjacentSupplementary("A", "B") && adjacentSupplementary("C", "D")

	if oppositeSidesEqual || oppositeAnglesEqual || bothPairsSupplementary {
		return "Parallelogram", []string{"Parallelogram", "Quadrilateral"}
	}

	// A+B=180 (equivalently C+D=180, given the angle sum is always 360)
	// holds exactly when b and d are the parallel sides, leaving a, c as
	// the legs; B+C=180 (equivalently D+A=180) holds exactly when a and c
	// are parallel instead, leaving b, d as the legs. Exactly one of the
	// two holding is "exactly one pair of parallel sides" (spec §4.8 step
	// 5); both holding is already caught by the parallelogram check above.
	bdParallel := adjacentSupplementary("A", "B")
	acParallel := adjacentSupplementary("B", "C")

	switch {
	case bdParallel && !acParallel:
		return trapezoidResult(results, "a", "c")
	case acParallel && !bdParallel:
		return trapezoidResult(results, "b", "d")
	}

	if anyKnown(results, "a", "b", "c", "d", "A", "B", "C", "D") {
		return "Quadrilateral (general)", []string{"Quadrilateral"}
	}
	return "Unknown Quadrilateral", []string{"Quadrilateral"}
}

// isRightAngle reports whether v is within angleTolerance of 90 degrees.
func isRightAngle(v float64) bool {
	d := v - 90.0
	if d < 0 {
		d = -d
	}
	return d < angleTolerance
}

// trapezoidResult distinguishes a plain trapezoid from an isosceles one:
// the two non-parallel (leg) sides equal (spec §4.8 step 5).
func trapezoidResult(results map[string]float64, leg1, leg2 string) (string, []string) {
	if closeWithin(results, leg1, leg2, sideTolerance) {
		return "Isosceles Trapezoid", []string{"Isosceles Trapezoid", "Trapezoid", "Quadrilateral"}
	}
	return "Trapezoid", []string{"Trapezoid", "Quadrilateral"}
}
