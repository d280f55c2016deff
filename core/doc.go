// Package core implements the variable/constraint propagation engine at the
// heart of the geometry solver: a Network owns a set of named Variables and
// a set of Constraints over them, and drives two complementary propagation
// modes toward a fixed point.
//
// The Network N = (Vars, Cons) supports:
//
//   - Named numeric slots with optional values and provenance (Variable)
//   - Two constraint shapes: Forward (single deterministic target) and
//     Flexible (zero or more targets chosen from the current state)
//   - Transactional user input with conflict detection and rollback
//     (SetInput)
//   - Incremental, queue-based propagation after every write (propagateFrom)
//   - A bounded outer fixed-point loop with convergence diagnostics (Solve)
//
// Why a single Network type?
//
//   - One graph shape serves every shape family (triangle, quadrilateral and
//     its specializations); knowledge-base packages only choose which
//     variables and constraints to register.
//   - Deterministic iteration — Variables() returns a creation-ordered slice,
//     Solve() dispatches constraints in sorted-name order — so two runs of
//     the same SetInput sequence produce bit-identical results and
//     provenance.
//   - Constraints hold no captured closures over solver state: each is a
//     tagged Forward/Flexible variant evaluated against a snapshot of the
//     Network, so propagation has no hidden aliasing.
//
// Configuration options (functional, applied left-to-right):
//
//   - InputOption: Source(name), WithTolerance(tol) — used by SetInput.
//   - SolveOption: WithMaxRounds(n) — used by Solve.
//
// Core methods:
//
//	NewNetwork() *Network
//	(*Network) AddVariable(name, description string)
//	(*Network) AddConstraint(c *Constraint)
//	(*Network) SetInput(name string, value float64, opts ...InputOption) error
//	(*Network) Solve(opts ...SolveOption) (SolveResult, error)
//	(*Network) GetResults() map[string]float64
//	(*Network) GetProvenance() map[string]string
//	(*Network) Reset()
//
// Errors:
//
//	ErrUnknownVariable   - declared for unknown names; no Network method
//	                       returns it (SetInput and AddConstraint create a
//	                       missing variable instead).
//	ErrInvalidValue      - a non-finite value was written.
//	*DomainError         - an angle (or other ranged value) left its domain.
//	*ConflictError       - SetInput disagreed with already-known state.
//	*ConvergenceError     - Solve hit max_rounds before quiescence.
//
// Concurrency: a Network is a plain data structure with no background
// activity and is NOT safe for concurrent mutation (spec §5: single-threaded,
// cooperative, no suspension points). Callers needing concurrent solves
// should build one Network per goroutine from a knowledge-base factory.
package core
