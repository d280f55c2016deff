// File: parallelogram.go
// Role: Parallelogram specialization (spec §4.7.2 "Parallelogram"),
// appended atop the base quadrilateral network.
package quad

import (
	"math"

	"github.com/locnkn204/geomkb/core"
)

// NewParallelogram returns a base quadrilateral network (NewQuadrilateral)
// with the parallelogram specialization appended: opposite sides and
// opposite angles equal, adjacent angles supplementary, the two area
// formulas and the diagonal identity, perimeter-to-sides, and the
// closed-form P/area/A side-length system.
func NewParallelogram() *core.Network {
	n := NewQuadrilateral()

	addOppositeSidesEqual(n)
	addOppositeAnglesEqual(n)
	addParallelogramArea(n)
	addDiagonalIdentity(n)
	addPerimeterToSides(n)
	addClosedFormSystem(n)

	return n
}

// oppositePairs lists each opposite-pair of side names.
var oppositePairs = [2][2]string{{"a", "c"}, {"b", "d"}}

// addOppositeSidesEqual propagates any known side to its opposite (spec:
// "opposite sides equal").
func addOppositeSidesEqual(n *core.Network) {
	for _, p := range oppositePairs {
		p := p
		n.AddConstraint(&core.Constraint{
			Name:  "parallelogram_" + p[0] + "_eq_" + p[1],
			Scope: []string{p[0], p[1]},
			Kind:  core.KindFlexible,
			Flexible: func(n *core.Network) map[string]float64 {
				xv, _ := n.Variable(p[0])
				yv, _ := n.Variable(p[1])
				if xVal, ok := xv.Value(); ok && !yv.IsKnown() {
					return map[string]float64{p[1]: xVal}
				}
				if yVal, ok := yv.Value(); ok && !xv.IsKnown() {
					return map[string]float64{p[0]: yVal}
				}
				return nil
			},
			Description: p[0] + " = " + p[1],
		})
	}
}

// addOppositeAnglesEqual wires opposite angles equal and adjacent angles
// supplementary (spec: "opposite angles equal and adjacent supplementary"):
// any single known angle among A,B,C,D fully determines the other three.
func addOppositeAnglesEqual(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:  "parallelogram_angles_from_one",
		Scope: []string{"A", "B", "C", "D"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			angles := [4]string{"A", "B", "C", "D"}
			var known float64
			found := false
			for _, a := range angles {
				av, _ := n.Variable(a)
				if val, ok := av.Value(); ok {
					known = val
					found = true
					break
				}
			}
			if !found {
				return nil
			}
			other := 180.0 - known
			result := map[string]float64{}
			for _, a := range angles {
				av, _ := n.Variable(a)
				if av.IsKnown() {
					continue
				}
				switch a {
				case "A", "C":
					result[a] = known
				default:
					result[a] = other
				}
			}
			if len(result) == 0 {
				return nil
			}
			return result
		},
		Description: "A = C, B = D, A + B = 180",
	})
}

// addParallelogramArea wires area = a*h (with inverse) and
// area = a*b*sin(A) (spec: "area = a.h with inverse, area = a.b.sin A").
func addParallelogramArea(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:  "parallelogram_area_from_height",
		Scope: []string{"a", "h", "area"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			areaVar, _ := n.Variable("area")
			aVar, _ := n.Variable("a")
			hVar, _ := n.Variable("h")

			if !areaVar.IsKnown() {
				if vals, ok := knownValues(n, "a", "h"); ok {
					return map[string]float64{"area": vals["a"] * vals["h"]}
				}
			}
			area, areaKnown := areaVar.Value()
			if areaKnown {
				if a, ok := aVar.Value(); ok && !hVar.IsKnown() && a != 0 {
					return map[string]float64{"h": area / a}
				}
				if h, ok := hVar.Value(); ok && !aVar.IsKnown() && h != 0 {
					return map[string]float64{"a": area / h}
				}
			}
			return nil
		},
		Description: "area = a * h",
	})
	n.AddConstraint(&core.Constraint{
		Name:  "parallelogram_area_sas",
		Scope: []string{"a", "b", "A", "area"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			if v, _ := n.Variable("area"); v.IsKnown() {
				return nil
			}
			vals, ok := knownValues(n, "a", "b", "A")
			if !ok {
				return nil
			}
			return map[string]float64{"area": vals["a"] * vals["b"] * math.Sin(core.DegToRad(vals["A"]))}
		},
		Description: "area = a * b * sin(A)",
	})
}

// addDiagonalIdentity wires d1^2+d2^2 = 2(a^2+b^2), solving for whichever
// one of {a, b, d1, d2} is still unknown when the other three are known
// (spec: "diagonal identity").
func addDiagonalIdentity(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:  "parallelogram_diagonal_identity",
		Scope: []string{"a", "b", "d1", "d2"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			names := [4]string{"a", "b", "d1", "d2"}
			values := map[string]float64{}
			missing := ""
			missingCount := 0
			for _, name := range names {
				v, _ := n.Variable(name)
				val, known := v.Value()
				if known {
					values[name] = val
				} else {
					missing = name
					missingCount++
				}
			}
			if missingCount != 1 {
				return nil
			}

			var radicand float64
			switch missing {
			case "d2":
				radicand = 2*(values["a"]*values["a"]+values["b"]*values["b"]) - values["d1"]*values["d1"]
			case "d1":
				radicand = 2*(values["a"]*values["a"]+values["b"]*values["b"]) - values["d2"]*values["d2"]
			case "b":
				radicand = (values["d1"]*values["d1"]+values["d2"]*values["d2"])/2.0 - values["a"]*values["a"]
			case "a":
				radicand = (values["d1"]*values["d1"]+values["d2"]*values["d2"])/2.0 - values["b"]*values["b"]
			}
			result, ok := core.SafeSqrt(radicand)
			if !ok {
				return nil
			}
			return map[string]float64{missing: result}
		},
		Description: "d1^2 + d2^2 = 2(a^2 + b^2)",
	})
}

// addPerimeterToSides wires the perimeter-to-sides relation (spec:
// "perimeter to sides — given P and one of {a, b}, compute the other and
// mirror"); the mirror half is handled by addOppositeSidesEqual once c or
// d is written.
func addPerimeterToSides(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:  "parallelogram_perimeter_to_sides",
		Scope: []string{"a", "b", "perimeter"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			pv, _ := n.Variable("perimeter")
			p, pKnown := pv.Value()
			if !pKnown {
				return nil
			}
			av, _ := n.Variable("a")
			bv, _ := n.Variable("b")
			if a, ok := av.Value(); ok && !bv.IsKnown() {
				return map[string]float64{"b": p/2.0 - a}
			}
			if b, ok := bv.Value(); ok && !av.IsKnown() {
				return map[string]float64{"a": p/2.0 - b}
			}
			return nil
		},
		Description: "b = P/2 - a (or a = P/2 - b)",
	})
}

// addClosedFormSystem wires the spec's closed-form system: given P, area,
// A with neither a nor b known, solve X^2-(P/2)X+area/sinA=0 and accept
// only positive real roots (spec: "the closed-form system").
func addClosedFormSystem(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:  "parallelogram_closed_form_sides",
		Scope: []string{"a", "b", "perimeter", "area", "A"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			av, _ := n.Variable("a")
			bv, _ := n.Variable("b")
			if av.IsKnown() || bv.IsKnown() {
				return nil
			}
			vals, ok := knownValues(n, "perimeter", "area", "A")
			if !ok {
				return nil
			}
			sinA := math.Sin(core.DegToRad(vals["A"]))
			if math.Abs(sinA) < 1e-12 {
				return nil
			}
			x1, x2, count := solveQuadraticPositive(-vals["perimeter"]/2.0, vals["area"]/sinA)
			if count != 2 {
				return nil
			}
			return map[string]float64{"a": x1, "b": x2}
		},
		Description: "X^2 - (P/2)X + area/sinA = 0, X in {a, b}",
	})
}
