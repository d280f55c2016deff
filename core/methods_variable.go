// File: methods_variable.go
// Role: Variable write protocol (spec §4.2) and the range-invariant
//       classification it is built on (spec §3).
package core

import "math"

// sidesSet names the variables treated as "a side" for the strict-positive
// user-input rule (spec §3: "sides specifically strictly positive when set
// as user input").
var sidesSet = map[string]bool{"a": true, "b": true, "c": true, "d": true}

// nonNegativeSet names every variable required to be >= 0 once known (spec
// §3: "any side, height, semi-perimeter, radius, perimeter, area"), plus the
// remaining length-valued derived attributes (medians, bisectors,
// diagonals) for which the same physical reasoning applies, since spec
// §4.2 step 2 does not spell every name out.
var nonNegativeSet = map[string]bool{
	"a": true, "b": true, "c": true, "d": true,
	"h": true, "h_a": true, "h_b": true, "h_c": true, "h_d": true,
	"s": true, "R": true, "r": true, "r_a": true, "r_b": true, "r_c": true,
	"perimeter": true, "area": true,
	"m_a": true, "m_b": true, "m_c": true,
	"l_a": true, "l_b": true, "l_c": true,
	"d1": true, "d2": true,
}

// isTriangleAngle reports whether name is one of the strict-(0,180) degree
// variables.
func isTriangleAngle(name string) bool {
	return name == "A" || name == "B" || name == "C"
}

// isQuadAngleD reports whether name is the (0,360)-mod-360 variable.
func isQuadAngleD(name string) bool {
	return name == "D"
}

// validateRange applies the §3 range invariants to a candidate write,
// returning the (possibly modulo-normalized) value to store, or a
// *DomainError. Only user-sourced writes of a side enforce strict
// positivity; derived (constraint-sourced) writes of the same name only
// enforce non-negativity, matching the spec's "specifically ... as user
// input" carve-out.
func validateRange(name string, v float64, source string) (float64, error) {
	switch {
	case isTriangleAngle(name):
		if v <= 0 || v >= 180 {
			return 0, &DomainError{Variable: name, Value: v}
		}
		return v, nil
	case isQuadAngleD(name):
		m := math.Mod(v, 360.0)
		if m < 0 {
			m += 360.0
		}
		if m <= 0 {
			return 0, &DomainError{Variable: name, Value: v}
		}
		return m, nil
	case sidesSet[name] && source == "user":
		if v <= 0 {
			return 0, &DomainError{Variable: name, Value: v}
		}
		return v, nil
	case nonNegativeSet[name]:
		if v < 0 {
			return 0, &DomainError{Variable: name, Value: v}
		}
		return v, nil
	default:
		return v, nil
	}
}

// trySet implements the write protocol of spec §4.2:
//
//  1. Coerce to double — always true in Go's type system, so this step
//     degenerates to a finiteness check (NaN/Inf are rejected, not coerced).
//  2. Apply range invariants (validateRange above); an out-of-range angle
//     raises a *DomainError that must propagate to the caller uncaught.
//  3. Apply modulo normalization for D (folded into validateRange).
//  4. If unset or differing by more than EPSILON, store value+source and
//     report changed=true. If equal within EPSILON, optionally adopt an
//     absent source without reporting a change.
func (v *Variable) trySet(value float64, source string) (changed bool, err error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false, ErrInvalidValue
	}

	normalized, err := validateRange(v.Name, value, source)
	if err != nil {
		return false, err
	}

	if !v.known || math.Abs(v.value-normalized) > EPSILON {
		v.value = normalized
		v.known = true
		v.Source = source
		return true, nil
	}

	if v.Source == "" && source != "" {
		v.Source = source
	}
	return false, nil
}
