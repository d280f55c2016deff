// File: ssa.go
// Role: SSA ambiguity detector (spec §4.9), grounded on
// original_source/allin1.py's detect_ssa_cases, restructured around the
// core numeric helpers (core.SafeSqrt, core.Clamp, core.DegToRad/RadToDeg)
// used throughout the rest of the knowledge base.
package ssa

import (
	"math"

	"github.com/locnkn204/geomkb/core"
)

// sinTolerance is how far |sin O| may exceed 1 and still be accepted as
// round-off rather than a genuine out-of-range case (spec §4.9 step 1).
const sinTolerance = 1e-12

// candidateEpsilon is the minimum separation between the primary and
// supplementary angle candidates for both to be considered distinct (spec
// §4.9 step 2: "O₂ ... when ... O₁ != O₂").
const candidateEpsilon = 1e-6

// Solutions detects the triangle side-side-angle pattern in input and
// returns every geometrically valid completion (spec §4.9).
//
// Precondition: input carries exactly one of A, B, C and at least two of
// a, b, c, with the known angle opposite one of the known sides. Any other
// shape of input is not an SSA case and yields an empty, non-nil slice.
func Solutions(input map[string]float64) []Solution {
	knownAngle, ok := soleKnownAngle(input)
	if !ok {
		return []Solution{}
	}
	knownSides := knownSideNames(input)
	if len(knownSides) < 2 {
		return []Solution{}
	}

	oppositeSide := angleToSide[knownAngle]
	if !contains(knownSides, oppositeSide) {
		return []Solution{}
	}
	other := otherSide(knownSides, oppositeSide)
	if other == "" {
		return []Solution{}
	}

	aX := input[oppositeSide]
	aO := input[other]
	X := input[knownAngle]

	sinX := math.Sin(core.DegToRad(X))
	if math.Abs(sinX) < sinTolerance {
		return []Solution{}
	}

	sinO := (aO * sinX) / aX
	if sinO < -1.0-sinTolerance || sinO > 1.0+sinTolerance {
		return []Solution{}
	}
	sinO = core.Clamp(sinO, -1.0, 1.0)
	if math.Abs(math.Abs(sinO)-1.0) <= sinTolerance {
		sinO = math.Copysign(1.0, sinO)
	}

	primary := core.RadToDeg(math.Asin(sinO))
	candidates := []float64{primary}
	if math.Abs(math.Abs(sinO)-1.0) > sinTolerance {
		supplement := 180.0 - primary
		if math.Abs(supplement-primary) > candidateEpsilon {
			candidates = append(candidates, supplement)
		}
	}

	otherAngleName := sideToAngle[other]
	thirdAngle := thirdAngleName(knownAngle, otherAngleName)
	thirdSideName := angleToSide[thirdAngle]

	var solutions []Solution
	for _, O := range candidates {
		T := 180.0 - X - O
		if T <= 0 {
			continue
		}
		thirdSide := aX * math.Sin(core.DegToRad(T)) / sinX

		sol := make(Solution, len(input)+3)
		for k, v := range input {
			sol[k] = v
		}
		sol[otherAngleName] = O
		sol[thirdAngle] = T
		sol[thirdSideName] = thirdSide
		solutions = append(solutions, sol)
	}
	if solutions == nil {
		solutions = []Solution{}
	}
	return solutions
}

// soleKnownAngle returns the single A/B/C key present in input, or
// ("", false) if zero or more than one is present.
func soleKnownAngle(input map[string]float64) (string, bool) {
	found := ""
	for _, name := range [3]string{"A", "B", "C"} {
		if _, ok := input[name]; ok {
			if found != "" {
				return "", false
			}
			found = name
		}
	}
	if found == "" {
		return "", false
	}
	return found, true
}

// knownSideNames returns, in a, b, c order, the side names present in input.
func knownSideNames(input map[string]float64) []string {
	var sides []string
	for _, name := range [3]string{"a", "b", "c"} {
		if _, ok := input[name]; ok {
			sides = append(sides, name)
		}
	}
	return sides
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// otherSide returns the first known side that is not exclude, or "" if
// none exists.
func otherSide(known []string, exclude string) string {
	for _, n := range known {
		if n != exclude {
			return n
		}
	}
	return ""
}
