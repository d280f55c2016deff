// File: triangle.go
// Role: General-triangle constraint catalogue (spec §4.7.1), grounded on
// original_source/geometry_kb.py's create_triangle_network.
package triangle

import (
	"math"

	"github.com/locnkn204/geomkb/core"
)

// sidePairs lists each side paired with its opposite angle, in the order
// the law of sines and the classifier both rely on.
var sidePairs = [3]struct {
	side, angle string
}{{"a", "A"}, {"b", "B"}, {"c", "C"}}

// NewTriangle returns a fresh *core.Network pre-populated with every
// variable and relation of the general-triangle catalogue (spec §4.7.1).
// Callers feed measurements through SetInput and let propagation or Solve
// derive the rest.
func NewTriangle() *core.Network {
	n := core.NewNetwork()

	n.AddVariable("a", "side a, opposite angle A")
	n.AddVariable("b", "side b, opposite angle B")
	n.AddVariable("c", "side c, opposite angle C")
	n.AddVariable("A", "angle opposite side a, degrees")
	n.AddVariable("B", "angle opposite side b, degrees")
	n.AddVariable("C", "angle opposite side c, degrees")
	n.AddVariable("perimeter", "a + b + c")
	n.AddVariable("s", "semi-perimeter, (a+b+c)/2")
	n.AddVariable("area", "triangle area")
	n.AddVariable("R", "circumradius")
	n.AddVariable("r", "inradius")
	n.AddVariable("r_a", "exradius opposite a")
	n.AddVariable("r_b", "exradius opposite b")
	n.AddVariable("r_c", "exradius opposite c")
	n.AddVariable("h_a", "altitude to side a")
	n.AddVariable("h_b", "altitude to side b")
	n.AddVariable("h_c", "altitude to side c")
	n.AddVariable("m_a", "median to side a")
	n.AddVariable("m_b", "median to side b")
	n.AddVariable("m_c", "median to side c")
	n.AddVariable("l_a", "angle bisector length from A")
	n.AddVariable("l_b", "angle bisector length from B")
	n.AddVariable("l_c", "angle bisector length from C")

	addAngleSum(n)
	addLawOfSines(n)
	addLawOfCosines(n)
	addAngleFromCosines(n)
	addPerimeter(n)
	addSemiPerimeter(n)
	addArea(n)
	addAltitudes(n)
	addMedians(n)
	addBisectors(n)
	addRadii(n)

	return n
}

// addAngleSum wires the three angle-sum forward constraints (spec §4.7.1
// "angle sum"). Each fires only while its own target is unknown, so the
// spec's "if all three are known, reject updates off by >1e-2" clause is
// vacuous under the forward dispatch contract (the target cannot be both
// known and a firing target at once); it is left unimplemented as dead
// code would be.
func addAngleSum(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:         "sum_A",
		Scope:        []string{"A", "B", "C"},
		Kind:         core.KindForward,
		Target:       "A",
		Dependencies: []string{"B", "C"},
		Forward: func(v map[string]float64) (float64, bool) {
			return 180.0 - v["B"] - v["C"], true
		},
		Description: "A = 180 - B - C",
	})
	n.AddConstraint(&core.Constraint{
		Name:         "sum_B",
		Scope:        []string{"A", "B", "C"},
		Kind:         core.KindForward,
		Target:       "B",
		Dependencies: []string{"A", "C"},
		Forward: func(v map[string]float64) (float64, bool) {
			return 180.0 - v["A"] - v["C"], true
		},
		Description: "B = 180 - A - C",
	})
	n.AddConstraint(&core.Constraint{
		Name:         "sum_C",
		Scope:        []string{"A", "B", "C"},
		Kind:         core.KindForward,
		Target:       "C",
		Dependencies: []string{"A", "B"},
		Forward: func(v map[string]float64) (float64, bool) {
			return 180.0 - v["A"] - v["B"], true
		},
		Description: "C = 180 - A - B",
	})
}

// addLawOfSines wires the single flexible law-of-sines relation (spec
// §4.7.1 "law of sines"): given any known (side, opposite-angle) pair, it
// establishes ratio = side / sin(angle) and derives every other side or
// angle it can from that ratio.
func addLawOfSines(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:  "law_of_sines",
		Scope: []string{"a", "b", "c", "A", "B", "C"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			var ratio float64
			found := false
			for _, p := range sidePairs {
				sv, sok := n.Variable(p.side)
				av, aok := n.Variable(p.angle)
				if !sok || !aok {
					continue
				}
				side, sKnown := sv.Value()
				angle, aKnown := av.Value()
				if !sKnown || !aKnown {
					continue
				}
				sinA := math.Sin(core.DegToRad(angle))
				if math.Abs(sinA) < 1e-12 {
					continue
				}
				ratio = side / sinA
				found = true
				break
			}
			if !found {
				return nil
			}

			result := make(map[string]float64)
			for _, p := range sidePairs {
				sv, _ := n.Variable(p.side)
				av, _ := n.Variable(p.angle)
				side, sKnown := sv.Value()
				angle, aKnown := av.Value()

				if !sKnown && aKnown {
					result[p.side] = ratio * math.Sin(core.DegToRad(angle))
				}
				if !aKnown && sKnown {
					sinV := side / ratio
					if sinV >= -1.0 && sinV <= 1.0 {
						result[p.angle] = core.RadToDeg(math.Asin(core.Clamp(sinV, -1, 1)))
					}
				}
			}
			return result
		},
		Description: "law of sines: a/sinA = b/sinB = c/sinC",
	})
}

// addLawOfCosines wires the three forward constraints computing a side
// from the other two sides and the included angle (spec §4.7.1 "law of
// cosines").
func addLawOfCosines(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:         "cos_a",
		Scope:        []string{"a", "b", "c", "A"},
		Kind:         core.KindForward,
		Target:       "a",
		Dependencies: []string{"b", "c", "A"},
		Forward: func(v map[string]float64) (float64, bool) {
			b, c, A := v["b"], v["c"], core.DegToRad(v["A"])
			return core.SafeSqrt(b*b + c*c - 2*b*c*math.Cos(A))
		},
		Description: "a^2 = b^2 + c^2 - 2bc*cos(A)",
	})
	n.AddConstraint(&core.Constraint{
		Name:         "cos_b",
		Scope:        []string{"a", "b", "c", "B"},
		Kind:         core.KindForward,
		Target:       "b",
		Dependencies: []string{"a", "c", "B"},
		Forward: func(v map[string]float64) (float64, bool) {
			a, c, B := v["a"], v["c"], core.DegToRad(v["B"])
			return core.SafeSqrt(a*a + c*c - 2*a*c*math.Cos(B))
		},
		Description: "b^2 = a^2 + c^2 - 2ac*cos(B)",
	})
	n.AddConstraint(&core.Constraint{
		Name:         "cos_c",
		Scope:        []string{"a", "b", "c", "C"},
		Kind:         core.KindForward,
		Target:       "c",
		Dependencies: []string{"a", "b", "C"},
		Forward: func(v map[string]float64) (float64, bool) {
			a, b, C := v["a"], v["b"], core.DegToRad(v["C"])
			return core.SafeSqrt(a*a + b*b - 2*a*b*math.Cos(C))
		},
		Description: "c^2 = a^2 + b^2 - 2ab*cos(C)",
	})
}

// addAngleFromCosines wires the inverse: an angle from all three known
// sides (spec §4.7.1 "angle from cosines").
func addAngleFromCosines(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:         "angle_A_from_cos",
		Scope:        []string{"a", "b", "c", "A"},
		Kind:         core.KindForward,
		Target:       "A",
		Dependencies: []string{"a", "b", "c"},
		Forward: func(v map[string]float64) (float64, bool) {
			a, b, c := v["a"], v["b"], v["c"]
			den := 2 * b * c
			if den == 0 {
				return 0, false
			}
			cosA := core.Clamp((b*b+c*c-a*a)/den, -1, 1)
			return core.RadToDeg(math.Acos(cosA)), true
		},
		Description: "A = acos((b^2+c^2-a^2)/2bc)",
	})
	n.AddConstraint(&core.Constraint{
		Name:         "angle_B_from_cos",
		Scope:        []string{"a", "b", "c", "B"},
		Kind:         core.KindForward,
		Target:       "B",
		Dependencies: []string{"a", "b", "c"},
		Forward: func(v map[string]float64) (float64, bool) {
			a, b, c := v["a"], v["b"], v["c"]
			den := 2 * a * c
			if den == 0 {
				return 0, false
			}
			cosB := core.Clamp((a*a+c*c-b*b)/den, -1, 1)
			return core.RadToDeg(math.Acos(cosB)), true
		},
		Description: "B = acos((a^2+c^2-b^2)/2ac)",
	})
	n.AddConstraint(&core.Constraint{
		Name:         "angle_C_from_cos",
		Scope:        []string{"a", "b", "c", "C"},
		Kind:         core.KindForward,
		Target:       "C",
		Dependencies: []string{"a", "b", "c"},
		Forward: func(v map[string]float64) (float64, bool) {
			a, b, c := v["a"], v["b"], v["c"]
			den := 2 * a * b
			if den == 0 {
				return 0, false
			}
			cosC := core.Clamp((a*a+b*b-c*c)/den, -1, 1)
			return core.RadToDeg(math.Acos(cosC)), true
		},
		Description: "C = acos((a^2+b^2-c^2)/2ab)",
	})
}

// triangleInequalityHolds reports whether x, y, z satisfy the strict
// triangle inequality within the 1e-6 slack spec §4.7.1 grants the
// perimeter-reverse relation.
func triangleInequalityHolds(x, y, z float64) bool {
	const slack = 1e-6
	return x+y > z-slack && x+z > y-slack && y+z > x-slack
}

// addPerimeter wires the forward perimeter relation and its flexible
// reverse (spec §4.7.1 "perimeter forward"/"perimeter reverse").
func addPerimeter(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:         "perimeter",
		Scope:        []string{"a", "b", "c", "perimeter"},
		Kind:         core.KindForward,
		Target:       "perimeter",
		Dependencies: []string{"a", "b", "c"},
		Forward: func(v map[string]float64) (float64, bool) {
			return v["a"] + v["b"] + v["c"], true
		},
		Description: "perimeter = a + b + c",
	})

	sides := [3]string{"a", "b", "c"}
	n.AddConstraint(&core.Constraint{
		Name:  "perimeter_reverse",
		Scope: []string{"a", "b", "c", "perimeter"},
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
			values := map[string]float64{}
			for _, s := range sides {
				sv, _ := n.Variable(s)
				val, sKnown := sv.Value()
				if sKnown {
					knownSum += val
					values[s] = val
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
			values[missing] = candidate
			if !triangleInequalityHolds(values["a"], values["b"], values["c"]) {
				return nil
			}
			return map[string]float64{missing: candidate}
		},
		Description: "reverse perimeter: compute the missing side",
	})
}

// addSemiPerimeter wires s = P/2 and s = (a+b+c)/2, two independently
// firing forward routes to the same target (spec §4.7.1 "(and from
// sides)").
func addSemiPerimeter(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:         "semi_perimeter_from_perimeter",
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
		Name:         "semi_perimeter_from_sides",
		Scope:        []string{"a", "b", "c", "s"},
		Kind:         core.KindForward,
		Target:       "s",
		Dependencies: []string{"a", "b", "c"},
		Forward: func(v map[string]float64) (float64, bool) {
			return (v["a"] + v["b"] + v["c"]) / 2.0, true
		},
		Description: "s = (a+b+c) / 2",
	})
}

// addArea wires Heron's formula, the two-sides-and-included-angle formula
// (all three orientations), and the area-reverse-via-altitude relation
// (spec §4.7.1 "area — Heron"/"area — SAS"/"area reverse").
func addArea(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:  "area_heron",
		Scope: []string{"a", "b", "c", "area"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			areaVar, _ := n.Variable("area")
			if areaVar.IsKnown() {
				return nil
			}
			av, aok := n.Variable("a")
			bv, bok := n.Variable("b")
			cv, cok := n.Variable("c")
			if !aok || !bok || !cok {
				return nil
			}
			a, aKnown := av.Value()
			b, bKnown := bv.Value()
			c, cKnown := cv.Value()
			if !aKnown || !bKnown || !cKnown {
				return nil
			}
			s := (a + b + c) / 2.0
			her, ok := core.SafeSqrt(s * (s - a) * (s - b) * (s - c))
			if !ok {
				return nil
			}
			return map[string]float64{"area": her}
		},
		Description: "Heron: area = sqrt(s(s-a)(s-b)(s-c))",
	})

	sasOrientations := [3]struct{ x, y, included string }{
		{"a", "b", "C"}, {"b", "c", "A"}, {"a", "c", "B"},
	}
	for _, o := range sasOrientations {
		o := o
		n.AddConstraint(&core.Constraint{
			Name:  "area_sas_" + o.included,
			Scope: []string{o.x, o.y, o.included, "area"},
			Kind:  core.KindFlexible,
			Flexible: func(n *core.Network) map[string]float64 {
				areaVar, _ := n.Variable("area")
				if areaVar.IsKnown() {
					return nil
				}
				xv, xok := n.Variable(o.x)
				yv, yok := n.Variable(o.y)
				incv, incok := n.Variable(o.included)
				if !xok || !yok || !incok {
					return nil
				}
				x, xKnown := xv.Value()
				y, yKnown := yv.Value()
				inc, incKnown := incv.Value()
				if !xKnown || !yKnown || !incKnown {
					return nil
				}
				return map[string]float64{"area": 0.5 * x * y * math.Sin(core.DegToRad(inc))}
			},
			Description: "area = 1/2 * " + o.x + " * " + o.y + " * sin(" + o.included + ")",
		})
	}

	altitudeSides := [3]struct{ side, height string }{{"a", "h_a"}, {"b", "h_b"}, {"c", "h_c"}}
	n.AddConstraint(&core.Constraint{
		Name:  "area_reverse_via_altitude",
		Scope: []string{"area", "h_a", "h_b", "h_c", "a", "b", "c"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			areaVar, ok := n.Variable("area")
			if !ok {
				return nil
			}
			area, areaKnown := areaVar.Value()
			if !areaKnown || area <= 0 {
				return nil
			}
			result := map[string]float64{}
			for _, as := range altitudeSides {
				sideVar, _ := n.Variable(as.side)
				if sideVar.IsKnown() {
					continue
				}
				hVar, hok := n.Variable(as.height)
				if !hok {
					continue
				}
				h, hKnown := hVar.Value()
				if !hKnown || h <= 0 {
					continue
				}
				result[as.side] = 2 * area / h
			}
			if len(result) == 0 {
				return nil
			}
			return result
		},
		Description: "reverse area: base = 2*area/height",
	})
}

// addAltitudes wires h_x = 2*area/x for each side (spec §4.7.1
// "altitudes").
func addAltitudes(n *core.Network) {
	sides := [3]struct{ side, height string }{{"a", "h_a"}, {"b", "h_b"}, {"c", "h_c"}}
	for _, s := range sides {
		s := s
		n.AddConstraint(&core.Constraint{
			Name:         "height_" + s.side,
			Scope:        []string{"area", s.side, s.height},
			Kind:         core.KindForward,
			Target:       s.height,
			Dependencies: []string{"area", s.side},
			Forward: func(v map[string]float64) (float64, bool) {
				if v[s.side] == 0 {
					return 0, false
				}
				return 2 * v["area"] / v[s.side], true
			},
			Description: s.height + " = 2*area/" + s.side,
		})
	}
}

// addMedians wires the Apollonius median-length formulas (spec §4.7.1
// "medians").
func addMedians(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:         "median_a",
		Scope:        []string{"a", "b", "c", "m_a"},
		Kind:         core.KindForward,
		Target:       "m_a",
		Dependencies: []string{"a", "b", "c"},
		Forward: func(v map[string]float64) (float64, bool) {
			return core.SafeSqrt(0.25 * (2*(v["b"]*v["b"]+v["c"]*v["c"]) - v["a"]*v["a"]))
		},
		Description: "m_a = 1/2 * sqrt(2b^2 + 2c^2 - a^2)",
	})
	n.AddConstraint(&core.Constraint{
		Name:         "median_b",
		Scope:        []string{"a", "b", "c", "m_b"},
		Kind:         core.KindForward,
		Target:       "m_b",
		Dependencies: []string{"a", "b", "c"},
		Forward: func(v map[string]float64) (float64, bool) {
			return core.SafeSqrt(0.25 * (2*(v["a"]*v["a"]+v["c"]*v["c"]) - v["b"]*v["b"]))
		},
		Description: "m_b = 1/2 * sqrt(2a^2 + 2c^2 - b^2)",
	})
	n.AddConstraint(&core.Constraint{
		Name:         "median_c",
		Scope:        []string{"a", "b", "c", "m_c"},
		Kind:         core.KindForward,
		Target:       "m_c",
		Dependencies: []string{"a", "b", "c"},
		Forward: func(v map[string]float64) (float64, bool) {
			return core.SafeSqrt(0.25 * (2*(v["a"]*v["a"]+v["b"]*v["b"]) - v["c"]*v["c"]))
		},
		Description: "m_c = 1/2 * sqrt(2a^2 + 2b^2 - c^2)",
	})
}

// addBisectors wires the internal angle-bisector length formulas (spec
// §4.7.1 "angle bisectors").
func addBisectors(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:         "bisector_a",
		Scope:        []string{"b", "c", "A", "l_a"},
		Kind:         core.KindForward,
		Target:       "l_a",
		Dependencies: []string{"b", "c", "A"},
		Forward: func(v map[string]float64) (float64, bool) {
			if v["b"]+v["c"] == 0 {
				return 0, false
			}
			return 2 * v["b"] * v["c"] * math.Cos(core.DegToRad(v["A"]/2.0)) / (v["b"] + v["c"]), true
		},
		Description: "l_a = 2bc*cos(A/2) / (b+c)",
	})
	n.AddConstraint(&core.Constraint{
		Name:         "bisector_b",
		Scope:        []string{"a", "c", "B", "l_b"},
		Kind:         core.KindForward,
		Target:       "l_b",
		Dependencies: []string{"a", "c", "B"},
		Forward: func(v map[string]float64) (float64, bool) {
			if v["a"]+v["c"] == 0 {
				return 0, false
			}
			return 2 * v["a"] * v["c"] * math.Cos(core.DegToRad(v["B"]/2.0)) / (v["a"] + v["c"]), true
		},
		Description: "l_b = 2ac*cos(B/2) / (a+c)",
	})
	n.AddConstraint(&core.Constraint{
		Name:         "bisector_c",
		Scope:        []string{"a", "b", "C", "l_c"},
		Kind:         core.KindForward,
		Target:       "l_c",
		Dependencies: []string{"a", "b", "C"},
		Forward: func(v map[string]float64) (float64, bool) {
			if v["a"]+v["b"] == 0 {
				return 0, false
			}
			return 2 * v["a"] * v["b"] * math.Cos(core.DegToRad(v["C"]/2.0)) / (v["a"] + v["b"]), true
		},
		Description: "l_c = 2ab*cos(C/2) / (a+b)",
	})
}

// addRadii wires circumradius, inradius, and the three exradii (spec
// §4.7.1 "circumradius"/"inradius"/"exradii").
func addRadii(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:         "circumradius",
		Scope:        []string{"a", "b", "c", "area", "R"},
		Kind:         core.KindForward,
		Target:       "R",
		Dependencies: []string{"a", "b", "c", "area"},
		Forward: func(v map[string]float64) (float64, bool) {
			if v["area"] == 0 {
				return 0, false
			}
			return (v["a"] * v["b"] * v["c"]) / (4.0 * v["area"]), true
		},
		Description: "R = abc / (4*area)",
	})
	n.AddConstraint(&core.Constraint{
		Name:         "inradius",
		Scope:        []string{"area", "s", "r"},
		Kind:         core.KindForward,
		Target:       "r",
		Dependencies: []string{"area", "s"},
		Forward: func(v map[string]float64) (float64, bool) {
			if v["s"] == 0 {
				return 0, false
			}
			return v["area"] / v["s"], true
		},
		Description: "r = area / s",
	})

	exradii := [3]struct{ side, target string }{{"a", "r_a"}, {"b", "r_b"}, {"c", "r_c"}}
	for _, e := range exradii {
		e := e
		n.AddConstraint(&core.Constraint{
			Name:         "exradius_" + e.side,
			Scope:        []string{"area", "s", e.side, e.target},
			Kind:         core.KindForward,
			Target:       e.target,
			Dependencies: []string{"area", "s", e.side},
			Forward: func(v map[string]float64) (float64, bool) {
				denom := v["s"] - v[e.side]
				if math.Abs(denom) <= 1e-12 {
					return 0, false
				}
				return v["area"] / denom, true
			},
			Description: e.target + " = area / (s - " + e.side + ")",
		})
	}
}
