// SPDX-License-Identifier: MIT
// Package: sssp/bellmanford
//
// negative_cycle.go - witness extraction from the predecessor graph.

package bellmanford

import "slices"

// findCycle walks the predecessor chain from start and returns the cycle it
// ends in, in forward (relationship) order. It returns nil when the chain
// terminates, i.e. reaches a node without predecessor.
//
// Must only be called while no worker is running.
func findCycle(d *TentativeDistances, start int64) []int64 {
	n := d.Size()
	if start < 0 || start >= n {
		return nil
	}

	// 1. After n steps on a chain that never terminates we are on its cycle.
	cur := start
	for i := int64(0); i < n; i++ {
		cur = d.Predecessor(cur)
		if cur == NoPredecessor {
			return nil
		}
	}

	// 2. Collect one lap backwards.
	cycle := []int64{cur}
	for next := d.Predecessor(cur); next != cur; next = d.Predecessor(next) {
		if next == NoPredecessor || int64(len(cycle)) > n {
			return nil
		}
		cycle = append(cycle, next)
	}

	// 3. predecessor(x) -> x is the relationship direction.
	slices.Reverse(cycle)

	return cycle
}
