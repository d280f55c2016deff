// File: square.go
// Role: Square specialization (spec §4.7.2 "Square"), inheriting the
// rectangle catalogue and forcing all sides equal.
package quad

import (
	"math"

	"github.com/locnkn204/geomkb/core"
)

// NewSquare returns a rectangle network (NewRectangle) with the square
// specialization appended: all four sides equal, side from perimeter,
// side from area, and the diagonal relation with its inverse.
func NewSquare() *core.Network {
	n := NewRectangle()

	addSquareSidesEqual(n)
	addSquareSideFromPerimeter(n)
	addSquareSideFromArea(n)
	addSquareDiagonal(n)

	return n
}

// addSquareSidesEqual propagates any single known side to the other three
// (spec: "all four sides equal").
func addSquareSidesEqual(n *core.Network) {
	sides := [4]string{"a", "b", "c", "d"}
	n.AddConstraint(&core.Constraint{
		Name:  "square_sides_equal",
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

// addSquareSideFromPerimeter wires a = P/4 (spec: "a = P/4").
func addSquareSideFromPerimeter(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:         "square_side_from_perimeter",
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

// addSquareSideFromArea wires a = sqrt(area) (spec: "a = sqrt(area)").
func addSquareSideFromArea(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:         "square_side_from_area",
		Scope:        []string{"a", "area"},
		Kind:         core.KindForward,
		Target:       "a",
		Dependencies: []string{"area"},
		Forward: func(v map[string]float64) (float64, bool) {
			return core.SafeSqrt(v["area"])
		},
		Description: "a = sqrt(area)",
	})
}

// addSquareDiagonal wires d1 = a*sqrt(2) and its inverse a = d1/sqrt(2)
// (spec: "diagonal = a.sqrt(2)").
func addSquareDiagonal(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:         "square_diagonal_from_side",
		Scope:        []string{"a", "d1"},
		Kind:         core.KindForward,
		Target:       "d1",
		Dependencies: []string{"a"},
		Forward: func(v map[string]float64) (float64, bool) {
			return v["a"] * math.Sqrt2, true
		},
		Description: "d1 = a * sqrt(2)",
	})
	n.AddConstraint(&core.Constraint{
		Name:         "square_side_from_diagonal",
		Scope:        []string{"a", "d1"},
		Kind:         core.KindForward,
		Target:       "a",
		Dependencies: []string{"d1"},
		Forward: func(v map[string]float64) (float64, bool) {
			return v["d1"] / math.Sqrt2, true
		},
		Description: "a = d1 / sqrt(2)",
	})
}
