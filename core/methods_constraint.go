// File: methods_constraint.go
// Role: Constraint application (spec §4.3). TryApply never writes to the
//       Network directly; it returns a mapping of proposed updates that the
//       caller (propagateFrom, Solve) merges through the Variable write
//       protocol. This keeps Constraint bodies pure functions of a snapshot.
package core

// TryApply evaluates the constraint's body against the current Network
// state and returns a (possibly empty) mapping of variable name to proposed
// value.
//
//   - Forward: short-circuits to {} if Target is already known, or if any
//     Dependency is unknown. Otherwise evaluates ForwardFunc with a snapshot
//     of the dependencies; a "no result" return (degenerate input — division
//     by zero, a negative Heron radicand, ...) also yields {}.
//   - Flexible: short-circuits to {} if every Scope variable is already
//     known (nothing left to derive). Otherwise calls FlexibleFunc with the
//     whole Network and filters its result to names the Network actually
//     knows about.
func (c *Constraint) TryApply(n *Network) map[string]float64 {
	switch c.Kind {
	case KindForward:
		return c.tryApplyForward(n)
	case KindFlexible:
		return c.tryApplyFlexible(n)
	default:
		return nil
	}
}

func (c *Constraint) tryApplyForward(n *Network) map[string]float64 {
	target, ok := n.variables[c.Target]
	if !ok || target.IsKnown() {
		return nil
	}

	values := make(map[string]float64, len(c.Dependencies))
	for _, dep := range c.Dependencies {
		depVar, ok := n.variables[dep]
		if !ok || !depVar.IsKnown() {
			return nil
		}
		v, _ := depVar.Value()
		values[dep] = v
	}

	result, ok := c.Forward(values)
	if !ok {
		n.trace("constraint %s: no result", c.Name)
		return nil
	}
	return map[string]float64{c.Target: result}
}

func (c *Constraint) tryApplyFlexible(n *Network) map[string]float64 {
	allKnown := true
	for _, name := range c.Scope {
		v, ok := n.variables[name]
		if !ok || !v.IsKnown() {
			allKnown = false
			break
		}
	}
	if allKnown {
		return nil
	}

	result := c.Flexible(n)
	if len(result) == 0 {
		return nil
	}

	filtered := make(map[string]float64, len(result))
	for name, value := range result {
		if _, ok := n.variables[name]; ok {
			filtered[name] = value
		}
	}
	return filtered
}
