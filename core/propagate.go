// File: propagate.go
// Role: Incremental, queue-based propagation triggered by a single write
//       (spec §4.5).
package core

// propagateFrom runs the incremental propagation loop seeded with a single
// changed variable:
//
//  1. Pop a variable name from the queue.
//  2. For every constraint whose scope contains it, in insertion order
//     (back-list order — deterministic, spec §5), invoke TryApply.
//  3. For each returned update, attempt the write protocol; a reported
//     change re-enqueues the written variable.
//  4. Terminate when the queue is empty.
//
// The EPSILON guard inside the write protocol is what bounds this loop in
// principle (spec §4.5/§5): no variable can change unboundedly often
// because every write either advances by more than EPSILON or is rejected.
//
// A *DomainError surfacing here must propagate to the caller of SetInput
// uncaught (spec §7); propagateFrom does not recover from it.
func (n *Network) propagateFrom(start string) error {
	queue := []string{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		v, ok := n.variables[cur]
		if !ok {
			continue
		}

		for _, c := range v.constraints {
			updates := c.TryApply(n)
			for name, value := range updates {
				target, ok := n.variables[name]
				if !ok {
					continue
				}
				changed, err := target.trySet(value, c.Name)
				if err != nil {
					return err
				}
				if changed {
					n.trace("%s = %g (from %s)", name, value, c.Name)
					queue = append(queue, name)
				}
			}
		}
	}
	return nil
}
