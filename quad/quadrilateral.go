// File: quadrilateral.go
// Role: Base convex-quadrilateral constraint catalogue (spec §4.7.2 "Base"),
// grounded on original_source/geometry_kb.py's create_rectangle_network,
// generalized from "rectangle-only" relations to the base quadrilateral
// table the spec actually asks for.
package quad

import (
	"math"

	"github.com/locnkn204/geomkb/core"
)

// NewQuadrilateral returns a fresh *core.Network pre-populated with every
// variable and relation of the base convex-quadrilateral catalogue (spec
// §4.7.2 "Base"). Specializations (NewTrapezoid, NewParallelogram, ...)
// call this and append further constraints.
func NewQuadrilateral() *core.Network {
	n := core.NewNetwork()

	n.AddVariable("a", "side a")
	n.AddVariable("b", "side b, adjacent to a")
	n.AddVariable("c", "side c, opposite a")
	n.AddVariable("d", "side d, opposite b")
	n.AddVariable("A", "angle at the vertex between d and a, degrees")
	n.AddVariable("B", "angle at the vertex between a and b, degrees")
	n.AddVariable("C", "angle at the vertex between b and c, degrees")
	n.AddVariable("D", "angle at the vertex between c and d, degrees")
	n.AddVariable("perimeter", "a + b + c + d")
	n.AddVariable("s", "semi-perimeter, (a+b+c+d)/2")
	n.AddVariable("area", "quadrilateral area")
	n.AddVariable("d1", "diagonal splitting triangles ABC and CDA")
	n.AddVariable("d2", "diagonal splitting triangles ABD and BCD")
	n.AddVariable("h", "height, used by trapezoid/parallelogram area relations")

	addPerimeter(n)
	addSemiPerimeter(n)
	addAngleSum(n)
	addDiagonals(n)
	addBretschneiderArea(n)
	addTrapezoidalArea(n)

	return n
}

// addPerimeter wires the forward perimeter relation and its flexible
// reverse (spec §4.7.2 "perimeter"), generalizing
// geometry_kb.py's rect_perimeter / perimeter_reverse_quad from four named
// sides to the base quadrilateral.
func addPerimeter(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:         "quad_perimeter",
		Scope:        []string{"a", "b", "c", "d", "perimeter"},
		Kind:         core.KindForward,
		Target:       "perimeter",
		Dependencies: []string{"a", "b", "c", "d"},
		Forward: func(v map[string]float64) (float64, bool) {
			return v["a"] + v["b"] + v["c"] + v["d"], true
		},
		Description: "perimeter = a + b + c + d",
	})

	sides := [4]string{"a", "b", "c", "d"}
	n.AddConstraint(&core.Constraint{
		Name:  "quad_perimeter_reverse",
		Scope: []string{"a", "b", "c", "d", "perimeter"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			pv, ok := n.Variable("perimeter")
			if !ok {
				return nil
			}
			p, known := pv.Value()
			if !known {
				return nil
			}

			var knownSum float64
			missing := ""
			missingCount := 0
			for _, s := range sides {
				sv, _ := n.Variable(s)
				val, sKnown := sv.Value()
				if sKnown {
					knownSum += val
				} else {
					missing = s
					missingCount++
				}
			}
			if missingCount != 1 {
				return nil
			}

			candidate := p - knownSum
			if candidate <= 0 {
				return nil
			}
			return map[string]float64{missing: candidate}
		},
		Description: "reverse perimeter: compute the missing side",
	})
}

// addSemiPerimeter wires s = P/2 and s = (a+b+c+d)/2 (spec §4.7.2
// "semi-perimeter").
func addSemiPerimeter(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:         "quad_semi_perimeter_from_perimeter",
		Scope:        []string{"perimeter", "s"},
		Kind:         core.KindForward,
		Target:       "s",
		Dependencies: []string{"perimeter"},
		Forward: func(v map[string]float64) (float64, bool) {
			return v["perimeter"] / 2.0, true
		},
		Description: "s = perimeter / 2",
	})
	n.AddConstraint(&core.Constraint{
		Name:         "quad_semi_perimeter_from_sides",
		Scope:        []string{"a", "b", "c", "d", "s"},
		Kind:         core.KindForward,
		Target:       "s",
		Dependencies: []string{"a", "b", "c", "d"},
		Forward: func(v map[string]float64) (float64, bool) {
			return (v["a"] + v["b"] + v["c"] + v["d"]) / 2.0, true
		},
		Description: "s = (a+b+c+d) / 2",
	})
}

// addAngleSum wires the single flexible angle-sum relation (spec §4.7.2
// "angle sum"): whichever one of A,B,C,D is still unknown once the other
// three are known gets 360 minus their sum, generalizing
// geometry_kb.py's four separate sum_angle_*_quad forward constraints into
// one flexible body.
func addAngleSum(n *core.Network) {
	angles := [4]string{"A", "B", "C", "D"}
	n.AddConstraint(&core.Constraint{
		Name:  "quad_angle_sum",
		Scope: []string{"A", "B", "C", "D"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			var sum float64
			missing := ""
			missingCount := 0
			for _, a := range angles {
				av, _ := n.Variable(a)
				val, known := av.Value()
				if known {
					sum += val
				} else {
					missing = a
					missingCount++
				}
			}
			if missingCount != 1 {
				return nil
			}
			return map[string]float64{missing: 360.0 - sum}
		},
		Description: "the fourth angle = 360 - sum of the other three",
	})
}

// addDiagonals wires the two law-of-cosines diagonal relations (spec
// §4.7.2 "diagonal from triangle ABC" / "diagonal from triangle ABD"),
// each able to fire from either of its two bounding triangles.
func addDiagonals(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:  "quad_diagonal_d1",
		Scope: []string{"a", "b", "c", "d", "B", "D", "d1"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			if v, _ := n.Variable("d1"); v.IsKnown() {
				return nil
			}
			if val, ok := lawOfCosinesSide(n, "a", "b", "B"); ok {
				return map[string]float64{"d1": val}
			}
			if val, ok := lawOfCosinesSide(n, "c", "d", "D"); ok {
				return map[string]float64{"d1": val}
			}
			return nil
		},
		Description: "d1^2 = a^2+b^2-2ab*cos(B) = c^2+d^2-2cd*cos(D)",
	})
	n.AddConstraint(&core.Constraint{
		Name:  "quad_diagonal_d2",
		Scope: []string{"a", "b", "c", "d", "A", "C", "d2"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			if v, _ := n.Variable("d2"); v.IsKnown() {
				return nil
			}
			if val, ok := lawOfCosinesSide(n, "a", "d", "A"); ok {
				return map[string]float64{"d2": val}
			}
			if val, ok := lawOfCosinesSide(n, "b", "c", "C"); ok {
				return map[string]float64{"d2": val}
			}
			return nil
		},
		Description: "d2^2 = a^2+d^2-2ad*cos(A) = b^2+c^2-2bc*cos(C)",
	})
}

// lawOfCosinesSide computes sqrt(x^2+y^2-2xy*cos(included)) when x, y, and
// the included angle (named by variable) are all known in n.
func lawOfCosinesSide(n *core.Network, x, y, included string) (float64, bool) {
	xv, xok := n.Variable(x)
	yv, yok := n.Variable(y)
	iv, iok := n.Variable(included)
	if !xok || !yok || !iok {
		return 0, false
	}
	xVal, xKnown := xv.Value()
	yVal, yKnown := yv.Value()
	iVal, iKnown := iv.Value()
	if !xKnown || !yKnown || !iKnown {
		return 0, false
	}
	return core.SafeSqrt(xVal*xVal + yVal*yVal - 2*xVal*yVal*math.Cos(core.DegToRad(iVal)))
}

// addBretschneiderArea wires the general quadrilateral area formula (spec
// §4.7.2 "Bretschneider area"), requiring all four sides, the
// semi-perimeter, and the two angles A and C.
func addBretschneiderArea(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:  "bretschneider_area",
		Scope: []string{"a", "b", "c", "d", "s", "A", "C", "area"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			if v, _ := n.Variable("area"); v.IsKnown() {
				return nil
			}
			vals, ok := knownValues(n, "a", "b", "c", "d", "s", "A", "C")
			if !ok {
				return nil
			}
			a, b, c, d, s, A, C := vals["a"], vals["b"], vals["c"], vals["d"], vals["s"], vals["A"], vals["C"]
			cosTerm := math.Cos(core.DegToRad((A + C) / 2.0))
			radicand := (s-a)*(s-b)*(s-c)*(s-d) - a*b*c*d*cosTerm*cosTerm
			area, ok := core.SafeSqrt(radicand)
			if !ok {
				return nil
			}
			return map[string]float64{"area": area}
		},
		Description: "area = sqrt((s-a)(s-b)(s-c)(s-d) - abcd*cos^2((A+C)/2))",
	})
}

// addTrapezoidalArea wires the trapezoidal-area relation and its height
// inverse (spec §4.7.2 "trapezoidal area"), generalizing
// geometry_kb.py's trapezoid_area / trapezoid_height_from_area.
func addTrapezoidalArea(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:  "trapezoidal_area",
		Scope: []string{"a", "c", "h", "area"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			if v, _ := n.Variable("area"); v.IsKnown() {
				return nil
			}
			vals, ok := knownValues(n, "a", "c", "h")
			if !ok {
				return nil
			}
			return map[string]float64{"area": 0.5 * (vals["a"] + vals["c"]) * vals["h"]}
		},
		Description: "area = (a+c)/2 * h",
	})
	n.AddConstraint(&core.Constraint{
		Name:  "trapezoidal_height_from_area",
		Scope: []string{"a", "c", "h", "area"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			if v, _ := n.Variable("h"); v.IsKnown() {
				return nil
			}
			vals, ok := knownValues(n, "a", "c", "area")
			if !ok {
				return nil
			}
			denom := vals["a"] + vals["c"]
			if denom == 0 {
				return nil
			}
			return map[string]float64{"h": 2.0 * vals["area"] / denom}
		},
		Description: "h = 2*area/(a+c)",
	})
}

// knownValues looks up each name in n and reports ok=false if any is
// missing or unknown, sparing every Flexible body from repeating the same
// lookup boilerplate.
func knownValues(n *core.Network, names ...string) (map[string]float64, bool) {
	result := make(map[string]float64, len(names))
	for _, name := range names {
		v, ok := n.Variable(name)
		if !ok {
			return nil, false
		}
		val, known := v.Value()
		if !known {
			return nil, false
		}
		result[name] = val
	}
	return result, true
}
