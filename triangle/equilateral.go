// File: equilateral.go
// Role: Equilateral-triangle specialization (spec §4.7.1 closing
// paragraph), grounded the way geometry_kb.py layers additional relations
// atop a base network rather than duplicating it.
package triangle

import (
	"github.com/locnkn204/geomkb/core"
)

// NewEquilateralTriangle returns a general triangle network (NewTriangle)
// with the equilateral specialization appended: any known side propagates
// to the other two, every angle defaults to 60 degrees, and area/perimeter
// gain direct single-side formulas plus their inverses.
func NewEquilateralTriangle() *core.Network {
	n := NewTriangle()

	addSidesEqual(n)
	addDefaultAngles(n)
	addEquilateralAreaPerimeter(n)

	return n
}

// addSidesEqual propagates any single known side to the other two (spec:
// "sides-equal flex").
func addSidesEqual(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:  "equilateral_sides_equal",
		Scope: []string{"a", "b", "c"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			sides := [3]string{"a", "b", "c"}
			var known float64
			found := false
			for _, s := range sides {
				v, _ := n.Variable(s)
				if val, ok := v.Value(); ok {
					known = val
					found = true
					break
				}
			}
			if !found {
				return nil
			}
			result := make(map[string]float64, 3)
			for _, s := range sides {
				result[s] = known
			}
			return result
		},
		Description: "a = b = c",
	})
}

// addDefaultAngles defaults every unknown angle to 60 degrees (spec:
// "unknown angles defaulted to 60°"). The scope includes the sides too so
// the constraint is reachable from propagateFrom no matter whether a side
// or an angle is the first value the caller supplies.
func addDefaultAngles(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:  "equilateral_default_angles",
		Scope: []string{"A", "B", "C", "a", "b", "c"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			angles := [3]string{"A", "B", "C"}
			result := make(map[string]float64, 3)
			for _, a := range angles {
				v, _ := n.Variable(a)
				if !v.IsKnown() {
					result[a] = 60.0
				}
			}
			if len(result) == 0 {
				return nil
			}
			return result
		},
		Description: "A = B = C = 60",
	})
}

// addEquilateralAreaPerimeter wires area = (sqrt(3)/4)*a^2, P = 3a, and
// their inverses a = P/3 and a = sqrt(4*area/sqrt(3)).
func addEquilateralAreaPerimeter(n *core.Network) {
	const sqrt3 = 1.7320508075688772935274463415058723669428
	const sqrt3Over4 = sqrt3 / 4.0

	n.AddConstraint(&core.Constraint{
		Name:         "equilateral_area_from_side",
		Scope:        []string{"a", "area"},
		Kind:         core.KindForward,
		Target:       "area",
		Dependencies: []string{"a"},
		Forward: func(v map[string]float64) (float64, bool) {
			return sqrt3Over4 * v["a"] * v["a"], true
		},
		Description: "area = (sqrt(3)/4) * a^2",
	})
	n.AddConstraint(&core.Constraint{
		Name:         "equilateral_side_from_area",
		Scope:        []string{"a", "area"},
		Kind:         core.KindForward,
		Target:       "a",
		Dependencies: []string{"area"},
		Forward: func(v map[string]float64) (float64, bool) {
			return core.SafeSqrt(4 * v["area"] / sqrt3)
		},
		Description: "a = sqrt(4*area/sqrt(3))",
	})
	n.AddConstraint(&core.Constraint{
		Name:         "equilateral_perimeter_from_side",
		Scope:        []string{"a", "perimeter"},
		Kind:         core.KindForward,
		Target:       "perimeter",
		Dependencies: []string{"a"},
		Forward: func(v map[string]float64) (float64, bool) {
			return 3 * v["a"], true
		},
		Description: "perimeter = 3a",
	})
	n.AddConstraint(&core.Constraint{
		Name:         "equilateral_side_from_perimeter",
		Scope:        []string{"a", "perimeter"},
		Kind:         core.KindForward,
		Target:       "a",
		Dependencies: []string{"perimeter"},
		Forward: func(v map[string]float64) (float64, bool) {
			return v["perimeter"] / 3.0, true
		},
		Description: "a = perimeter / 3",
	})
}
