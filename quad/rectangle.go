// File: rectangle.go
// Role: Rectangle specialization (spec §4.7.2 "Rectangle"), inheriting the
// parallelogram catalogue and forcing right angles, grounded on
// original_source/geometry_kb.py's rect_area / pythagoras / diag_reverse /
// area_reverse_rect.
package quad

import (
	"github.com/locnkn204/geomkb/core"
)

// NewRectangle returns a parallelogram network (NewParallelogram) with the
// rectangle specialization appended: all angles forced to 90 degrees,
// equal diagonals, the Pythagoras diagonal relation and its inverse,
// bidirectional area = a*b, and the closed-form perimeter/area system.
func NewRectangle() *core.Network {
	n := NewParallelogram()

	addRightAngles(n)
	addEqualDiagonals(n)
	addPythagoras(n)
	addRectangleArea(n)
	addPerimeterAreaSystem(n)

	return n
}

// addRightAngles defaults every unknown angle to 90 degrees (spec: "all
// four angles forced to 90"). The scope lists every side/area/diagonal
// variable in addition to the angles themselves so the constraint is
// reachable from propagateFrom regardless of which variable the caller
// sets first (spec §8 scenario 4 feeds only perimeter and area, never an
// angle or a side directly).
func addRightAngles(n *core.Network) {
	angles := [4]string{"A", "B", "C", "D"}
	n.AddConstraint(&core.Constraint{
		Name:  "rectangle_right_angles",
		Scope: []string{"A", "B", "C", "D", "a", "b", "c", "d", "perimeter", "area", "d1", "d2"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			result := map[string]float64{}
			for _, a := range angles {
				av, _ := n.Variable(a)
				if !av.IsKnown() {
					result[a] = 90.0
				}
			}
			if len(result) == 0 {
				return nil
			}
			return result
		},
		Description: "A = B = C = D = 90",
	})
}

// addEqualDiagonals propagates either diagonal to the other (spec:
// "diagonals equal").
func addEqualDiagonals(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:  "rectangle_diagonals_equal",
		Scope: []string{"d1", "d2"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			d1v, _ := n.Variable("d1")
			d2v, _ := n.Variable("d2")
			if val, ok := d1v.Value(); ok && !d2v.IsKnown() {
				return map[string]float64{"d2": val}
			}
			if val, ok := d2v.Value(); ok && !d1v.IsKnown() {
				return map[string]float64{"d1": val}
			}
			return nil
		},
		Description: "d1 = d2",
	})
}

// addPythagoras wires d1 = sqrt(a^2+b^2) and its inverse: solving for
// either side given the other and the diagonal (spec: "Pythagoras").
func addPythagoras(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:         "rectangle_pythagoras",
		Scope:        []string{"a", "b", "d1"},
		Kind:         core.KindForward,
		Target:       "d1",
		Dependencies: []string{"a", "b"},
		Forward: func(v map[string]float64) (float64, bool) {
			return core.SafeSqrt(v["a"]*v["a"] + v["b"]*v["b"])
		},
		Description: "d1 = sqrt(a^2 + b^2)",
	})
	n.AddConstraint(&core.Constraint{
		Name:  "rectangle_pythagoras_reverse",
		Scope: []string{"a", "b", "d1"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			d1v, _ := n.Variable("d1")
			d1, d1Known := d1v.Value()
			if !d1Known {
				return nil
			}
			av, _ := n.Variable("a")
			bv, _ := n.Variable("b")
			if a, ok := av.Value(); ok && !bv.IsKnown() {
				if val, valid := core.SafeSqrt(d1*d1 - a*a); valid {
					return map[string]float64{"b": val}
				}
			}
			if b, ok := bv.Value(); ok && !av.IsKnown() {
				if val, valid := core.SafeSqrt(d1*d1 - b*b); valid {
					return map[string]float64{"a": val}
				}
			}
			return nil
		},
		Description: "a = sqrt(d1^2 - b^2), b = sqrt(d1^2 - a^2)",
	})
}

// addRectangleArea wires bidirectional area = a*b (spec: "bidirectional
// area = a.b").
func addRectangleArea(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:         "rectangle_area",
		Scope:        []string{"a", "b", "area"},
		Kind:         core.KindForward,
		Target:       "area",
		Dependencies: []string{"a", "b"},
		Forward: func(v map[string]float64) (float64, bool) {
			return v["a"] * v["b"], true
		},
		Description: "area = a * b",
	})
	n.AddConstraint(&core.Constraint{
		Name:  "rectangle_area_reverse",
		Scope: []string{"a", "b", "area"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			areaVar, _ := n.Variable("area")
			area, areaKnown := areaVar.Value()
			if !areaKnown || area <= 0 {
				return nil
			}
			av, _ := n.Variable("a")
			bv, _ := n.Variable("b")
			if a, ok := av.Value(); ok && !bv.IsKnown() && a != 0 {
				return map[string]float64{"b": area / a}
			}
			if b, ok := bv.Value(); ok && !av.IsKnown() && b != 0 {
				return map[string]float64{"a": area / b}
			}
			return nil
		},
		Description: "reverse area: other side = area / known side",
	})
}

// addPerimeterAreaSystem wires the P&S closed-form system: given perimeter
// and area with neither side known, solve X^2-(P/2)X+area=0 and accept
// only two positive real roots (spec: "the P&S system").
func addPerimeterAreaSystem(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:  "rectangle_perimeter_area_system",
		Scope: []string{"a", "b", "perimeter", "area"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			av, _ := n.Variable("a")
			bv, _ := n.Variable("b")
			if av.IsKnown() || bv.IsKnown() {
				return nil
			}
			vals, ok := knownValues(n, "perimeter", "area")
			if !ok {
				return nil
			}
			x1, x2, count := solveQuadraticPositive(-vals["perimeter"]/2.0, vals["area"])
			if count != 2 {
				return nil
			}
			return map[string]float64{"a": x1, "b": x2}
		},
		Description: "X^2 - (P/2)X + area = 0, X in {a, b}",
	})
}
