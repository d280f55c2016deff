// File: methods_input.go
// Role: Transactional user input with consistency checks and rollback
//       (spec §4.4). This is the engine's only externally triggered write
//       path; every other value enters via propagation or Solve.
package core

import "sort"

// InputOption configures a single SetInput call.
type InputOption func(*inputConfig)

type inputConfig struct {
	source    string
	tolerance float64
}

func defaultInputConfig() inputConfig {
	return inputConfig{source: "user", tolerance: 1e-2}
}

// Source overrides the provenance tag recorded for this write. Defaults to
// "user"; knowledge-base tests occasionally need to simulate a different
// provenance when pre-seeding a network.
func Source(source string) InputOption {
	return func(c *inputConfig) { c.source = source }
}

// WithTolerance overrides the direct-conflict tolerance (default 1e-2, spec
// §4.4 step 2).
func WithTolerance(tolerance float64) InputOption {
	return func(c *inputConfig) { c.tolerance = tolerance }
}

// perimeterSides set, used by the postcheck below.
var perimeterSideCandidates = [...]string{"a", "b", "c", "d"}

// relevantPerimeterSides returns the subset of {a,b,c,d} that appears in any
// constraint scope that also contains "perimeter" (spec §4.4 step 5). This
// is what excludes the unused "d" variable from a triangle network even
// though the variable itself exists.
func (n *Network) relevantPerimeterSides() []string {
	relevant := make(map[string]bool)
	for _, c := range n.constraints {
		hasPerimeter := false
		for _, name := range c.Scope {
			if name == "perimeter" {
				hasPerimeter = true
				break
			}
		}
		if !hasPerimeter {
			continue
		}
		for _, name := range c.Scope {
			for _, side := range perimeterSideCandidates {
				if name == side {
					relevant[side] = true
				}
			}
		}
	}
	out := make([]string, 0, len(relevant))
	for _, side := range perimeterSideCandidates {
		if relevant[side] {
			out = append(out, side)
		}
	}
	sort.Strings(out)
	return out
}

// snapshot captures every variable's (value, known, source) so a failed
// postcheck can restore the pre-write state exactly.
type varSnapshot struct {
	value  float64
	known  bool
	source string
}

func (n *Network) snapshotAll() map[string]varSnapshot {
	out := make(map[string]varSnapshot, len(n.order))
	for _, name := range n.order {
		v := n.variables[name]
		out[name] = varSnapshot{value: v.value, known: v.known, source: v.Source}
	}
	return out
}

func (n *Network) restore(snap map[string]varSnapshot) {
	for name, s := range snap {
		v := n.variables[name]
		v.value = s.value
		v.known = s.known
		v.Source = s.source
	}
}

// SetInput assigns a user-supplied value to name with full consistency
// checking and rollback (spec §4.4):
//
//  1. Auto-create the variable if absent.
//  2. Direct conflict check against any already-known value.
//  3. Snapshot every variable for rollback.
//  4. Write the value and, if it changed, propagate incrementally.
//  5. Perimeter-consistency postcheck when perimeter is known with
//     provenance "user".
//
// Returns nil on success (including the "refined" case of step 2), a
// *ConflictError on a consistency failure (network left untouched), or a
// *DomainError if the value itself violates a range invariant — the latter
// must not be swallowed by the caller.
func (n *Network) SetInput(name string, value float64, opts ...InputOption) error {
	cfg := defaultInputConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !n.HasVariable(name) {
		n.AddVariable(name, "")
	}
	v := n.variables[name]

	if v.IsKnown() {
		existing, _ := v.Value()
		diff := existing - value
		if diff < 0 {
			diff = -diff
		}
		if diff > cfg.tolerance {
			return &ConflictError{Variable: name, Existing: existing, Proposed: value}
		}
		// Refinement: store the user-supplied value without a fresh
		// propagation pass (the value is already within the tolerance of
		// the known one).
		if _, err := v.trySet(value, cfg.source); err != nil {
			return err
		}
		return nil
	}

	snap := n.snapshotAll()

	changed, err := v.trySet(value, cfg.source)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	n.trace("input %s=%g (source=%s)", name, value, cfg.source)
	if err := n.propagateFrom(name); err != nil {
		return err
	}

	if perimeter, ok := n.variables["perimeter"]; ok && perimeter.IsKnown() && perimeter.Source == "user" {
		if err := n.checkPerimeterConsistency(perimeter, snap); err != nil {
			return err
		}
	}

	return nil
}

// checkPerimeterConsistency implements spec §4.4 step 5. On failure it
// restores snap (rolling back the write that triggered this check) and
// returns a *ConflictError.
func (n *Network) checkPerimeterConsistency(perimeter *Variable, snap map[string]varSnapshot) error {
	const tol = 1e-4

	p, _ := perimeter.Value()
	sides := n.relevantPerimeterSides()

	var sum float64
	var known int
	for _, side := range sides {
		if v, ok := n.variables[side].Value(); ok {
			sum += v
			known++
		}
	}

	if known == len(sides) {
		if diff := sum - p; diff > tol || diff < -tol {
			n.restore(snap)
			return &ConflictError{
				Variable: "perimeter",
				Existing: sum,
				Proposed: p,
				Reason:   "sum of known sides does not match perimeter",
			}
		}
		return nil
	}

	if sum >= p-tol {
		n.restore(snap)
		return &ConflictError{
			Variable: "perimeter",
			Existing: sum,
			Proposed: p,
			Reason:   "no room left for the unknown side",
		}
	}
	return nil
}
