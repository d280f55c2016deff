// SPDX-License-Identifier: MIT
package ssa_test

import (
	"fmt"

	"github.com/locnkn204/geomkb/ssa"
)

// ExampleSolutions_twoCompletions feeds the classic ambiguous SSA input and
// prints both completions' second angle.
func ExampleSolutions_twoCompletions() {
	sols := ssa.Solutions(map[string]float64{"a": 7, "b": 10, "A": 30})
	for _, sol := range sols {
		fmt.Printf("B=%.3f\n", sol["B"])
	}
	// Output:
	// B=45.585
	// B=134.415
}
