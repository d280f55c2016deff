// File: trapezoid.go
// Role: Trapezoid specialization (spec §4.7.2 "Trapezoid"), appended atop
// the base quadrilateral network. a and c are the parallel bases; b and d
// are the legs.
package quad

import (
	"math"

	"github.com/locnkn204/geomkb/core"
)

// NewTrapezoid returns a base quadrilateral network (NewQuadrilateral) with
// the trapezoid specialization appended: supplementary adjacent angles on
// each parallel side, leg-and-angle altitude relations with their
// inverses, and the closed-form altitude from all four sides.
func NewTrapezoid() *core.Network {
	n := NewQuadrilateral()

	addSupplementaryAngles(n)
	addLegAltitudes(n)
	addFourSideAltitude(n)

	return n
}

// addSupplementaryAngles wires A+D=180 and B+C=180, each direction
// (spec: "supplementary adjacent angles on the parallel side").
func addSupplementaryAngles(n *core.Network) {
	pairs := [2][2]string{{"A", "D"}, {"B", "C"}}
	for _, p := range pairs {
		p := p
		n.AddConstraint(&core.Constraint{
			Name:         "trapezoid_" + p[0] + "_from_" + p[1],
			Scope:        []string{p[0], p[1]},
			Kind:         core.KindForward,
			Target:       p[0],
			Dependencies: []string{p[1]},
			Forward: func(v map[string]float64) (float64, bool) {
				return 180.0 - v[p[1]], true
			},
			Description: p[0] + " = 180 - " + p[1],
		})
		n.AddConstraint(&core.Constraint{
			Name:         "trapezoid_" + p[1] + "_from_" + p[0],
			Scope:        []string{p[0], p[1]},
			Kind:         core.KindForward,
			Target:       p[1],
			Dependencies: []string{p[0]},
			Forward: func(v map[string]float64) (float64, bool) {
				return 180.0 - v[p[0]], true
			},
			Description: p[1] + " = 180 - " + p[0],
		})
	}
}

// legAltitudes pairs each leg with the base angle it makes (spec:
// "h = b*sinB, h = d*sinD").
var legAltitudes = [2]struct{ leg, angle string }{{"b", "B"}, {"d", "D"}}

// addLegAltitudes wires h = leg*sin(angle) and its two algebraic inverses
// (leg from h and angle; angle from h and leg) for each leg.
func addLegAltitudes(n *core.Network) {
	for _, la := range legAltitudes {
		la := la
		n.AddConstraint(&core.Constraint{
			Name:  "trapezoid_height_from_" + la.leg,
			Scope: []string{la.leg, la.angle, "h"},
			Kind:  core.KindFlexible,
			Flexible: func(n *core.Network) map[string]float64 {
				vals, fullyKnown := knownValues(n, la.leg, la.angle)
				hVar, _ := n.Variable("h")
				hKnown := hVar.IsKnown()

				if !hKnown && fullyKnown {
					return map[string]float64{"h": vals[la.leg] * math.Sin(core.DegToRad(vals[la.angle]))}
				}

				h, hOK := hVar.Value()
				legVar, _ := n.Variable(la.leg)
				angleVar, _ := n.Variable(la.angle)
				leg, legKnown := legVar.Value()
				angle, angleKnown := angleVar.Value()

				if hOK && angleKnown && !legKnown {
					sinA := math.Sin(core.DegToRad(angle))
					if math.Abs(sinA) < 1e-12 {
						return nil
					}
					return map[string]float64{la.leg: h / sinA}
				}
				if hOK && legKnown && !angleKnown {
					if leg == 0 {
						return nil
					}
					sinA := core.Clamp(h/leg, -1, 1)
					return map[string]float64{la.angle: core.RadToDeg(math.Asin(sinA))}
				}
				return nil
			},
			Description: "h = " + la.leg + " * sin(" + la.angle + ")",
		})
	}
}

// addFourSideAltitude wires the closed-form height from all four sides
// when a != c (spec: "closed-form altitude from four sides when a != c"),
// derived by placing the bases on the x-axis and solving the two leg
// equations for the horizontal offset and then the height.
func addFourSideAltitude(n *core.Network) {
	n.AddConstraint(&core.Constraint{
		Name:  "trapezoid_height_from_sides",
		Scope: []string{"a", "b", "c", "d", "h"},
		Kind:  core.KindFlexible,
		Flexible: func(n *core.Network) map[string]float64 {
			if v, _ := n.Variable("h"); v.IsKnown() {
				return nil
			}
			vals, ok := knownValues(n, "a", "b", "c", "d")
			if !ok {
				return nil
			}
			a, b, c, d := vals["a"], vals["b"], vals["c"], vals["d"]
			q := c - a
			if math.Abs(q) < 1e-12 {
				return nil
			}
			p := (q*q + d*d - b*b) / (2 * q)
			h, ok := core.SafeSqrt(d*d - p*p)
			if !ok {
				return nil
			}
			return map[string]float64{"h": h}
		},
		Description: "h from a,b,c,d via coordinate placement of the two bases",
	})
}
