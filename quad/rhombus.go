// File: rhombus.go
// Role: Rhombus specialization (spec §4.7.2 "Rhombus"), inheriting the
// parallelogram catalogue and forcing all sides equal.
package quad

import "github.com/locnkn204/geomkb/core"

// NewRhombus returns a parallelogram network (NewParallelogram) with the
// rhombus specialization appended: all four sides equal, area from both
// diagonals, side from both diagonals, and side from perimeter.
func NewRhombus() *core.Network {
	n := NewParallelogram()

	addAllSidesEqual(n)
	addRhombusArea(n)
	addSideFromDiagonals(n)
	addSideFromPerimeter(n)

	return n
}

// addAllSidesEqual propagates any single known side to the other three
// (spec: "all four sides equal").
func addAllSidesEqual(n *core.Network) {
	sides := [4]string{"a", "b", "c", "d"}
	n.AddConstraint(&core.Constraint{
		Name:  "rhombus_sides_equal",
		Scope: []string{"a", "b", "c", "d"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
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
			result := map[string]float64{}
			for _, s := range sides {
				v, _ := n.Variable(s)
				if !v.IsKnown() {
					result[s] = known
				}
			}
			if len(result) == 0 {
				return nil
			}
			return result
		},
		Description: "a = b = c = d",
	})
}

// addRhombusArea wires area = (1/2) * d1 * d2 (spec: "area =
// 1/2.d1.d2").
func addRhombusArea(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:         "rhombus_area",
		Scope:        []string{"d1", "d2", "area"},
		Kind:         core.KindForward,
		Target:       "area",
		Dependencies: []string{"d1", "d2"},
		Forward: func(v map[string]float64) (float64, bool) {
			return 0.5 * v["d1"] * v["d2"], true
		},
		Description: "area = 1/2 * d1 * d2",
	})
}

// addSideFromDiagonals wires a = sqrt((d1/2)^2 + (d2/2)^2) (spec: "side
// from both diagonals").
func addSideFromDiagonals(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:         "rhombus_side_from_diagonals",
		Scope:        []string{"a", "d1", "d2"},
		Kind:         core.KindForward,
		Target:       "a",
		Dependencies: []string{"d1", "d2"},
		Forward: func(v map[string]float64) (float64, bool) {
			halfD1, halfD2 := v["d1"]/2.0, v["d2"]/2.0
			return core.SafeSqrt(halfD1*halfD1 + halfD2*halfD2)
		},
		Description: "a = sqrt((d1/2)^2 + (d2/2)^2)",
	})
}

// addSideFromPerimeter wires a = P/4 (spec: "side from perimeter").
func addSideFromPerimeter(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:         "rhombus_side_from_perimeter",
		Scope:        []string{"a", "perimeter"},
		Kind:         core.KindForward,
		Target:       "a",
		Dependencies: []string{"perimeter"},
		Forward: func(v map[string]float64) (float64, bool) {
			return v["perimeter"] / 4.0, true
		},
		Description: "a = perimeter / 4",
	})
}
