// File: solve.go
// Role: Bounded fixed-point batch solver (spec §4.6).
package core

import "sort"

// SolveResult carries the outer loop's diagnostics (spec §6: "diagnostics
// include round count and, on failure, the list of blocked forward-
// constraint names").
type SolveResult struct {
	Converged bool
	Rounds    int
	Blocked   []string
}

// SolveOption configures a single Solve call.
type SolveOption func(*solveConfig)

type solveConfig struct {
	maxRounds int
}

func defaultSolveConfig() solveConfig {
	return solveConfig{maxRounds: 100}
}

// WithMaxRounds overrides the default round cap of 100.
func WithMaxRounds(maxRounds int) SolveOption {
	return func(c *solveConfig) { c.maxRounds = maxRounds }
}

// Solve runs the bounded outer fixed-point loop:
//
//  1. Seed a queue with every currently-known variable.
//  2. Each round, collect every constraint touching a queued variable,
//     clear the queue, and attempt each such constraint in sorted-by-name
//     order (stable across runs); merge updates through the write protocol,
//     enqueue changed targets, and mark the round as changed on any write.
//  3. Stop when a round produces no change (converged) or MaxRounds is
//     reached (capped).
//  4. On cap, diagnostics list every blocked forward constraint — target
//     still unknown despite every dependency being known.
//
// Results already derived remain readable even when Solve reports a
// *ConvergenceError (spec §7: "results to date remain readable"). A
// *DomainError raised by a constraint's computed value propagates out of
// Solve uncaught, exactly as it does from SetInput.
func (n *Network) Solve(opts ...SolveOption) (SolveResult, error) {
	cfg := defaultSolveConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	queue := make([]string, 0, len(n.order))
	for _, name := range n.order {
		if n.variables[name].IsKnown() {
			queue = append(queue, name)
		}
	}

	rounds := 0
	changed := true
	for rounds < cfg.maxRounds && changed {
		changed = false
		rounds++

		touched := make(map[*Constraint]bool)
		for _, name := range queue {
			v, ok := n.variables[name]
			if !ok {
				continue
			}
			for _, c := range v.constraints {
				touched[c] = true
			}
		}
		queue = queue[:0]
		if len(touched) == 0 {
			break
		}

		ordered := make([]*Constraint, 0, len(touched))
		for c := range touched {
			ordered = append(ordered, c)
		}
		sort.Slice(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })

		for _, c := range ordered {
			updates := c.TryApply(n)
			for name, value := range updates {
				target, ok := n.variables[name]
				if !ok {
					continue
				}
				wasChanged, err := target.trySet(value, c.Name)
				if err != nil {
					return SolveResult{Rounds: rounds}, err
				}
				if wasChanged {
					changed = true
					queue = append(queue, name)
				}
			}
		}
	}

	result := SolveResult{Converged: !changed, Rounds: rounds}
	if !result.Converged {
		result.Blocked = n.blockedConstraints()
		return result, &ConvergenceError{Rounds: rounds, Blocked: result.Blocked}
	}
	return result, nil
}

// blockedConstraints lists every Forward constraint whose Target is still
// unknown despite every Dependency being known — the diagnostic signal of a
// numeric degeneracy (spec glossary: "blocked constraint"). Flexible
// constraints are skipped (spec §4.6 step 4 mirrors the source's
// forward-only diagnostic).
func (n *Network) blockedConstraints() []string {
	var blocked []string
	for _, c := range n.constraints {
		if c.Kind != KindForward {
			continue
		}
		target, ok := n.variables[c.Target]
		if !ok || target.IsKnown() {
			continue
		}
		allDepsKnown := true
		for _, dep := range c.Dependencies {
			depVar, ok := n.variables[dep]
			if !ok || !depVar.IsKnown() {
				allDepsKnown = false
				break
			}
		}
		if allDepsKnown {
			blocked = append(blocked, c.Name)
		}
	}
	return blocked
}
