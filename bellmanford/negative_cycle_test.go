// SPDX-License-Identifier: MIT
// Package: sssp/bellmanford
//
// negative_cycle_test.go - witness extraction from predecessors.

package bellmanford

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// chain sets predecessor(i) = preds[i] for every node.
func chain(preds []int64, withHops bool) *TentativeDistances {
	d := NewTentativeDistances(int64(len(preds)), withHops)
	for node, pred := range preds {
		d.Initialize(int64(node), pred, float64(-node), int64(node+1))
	}

	return d
}

func TestFindCycle(t *testing.T) {
	for _, withHops := range []bool{false, true} {
		// Relationships 1->2->3->1 form the loop; 4 hangs off 3.
		d := chain([]int64{NoPredecessor, 3, 1, 2, 3}, withHops)

		cycle := findCycle(d, 4)
		require.Len(t, cycle, 3)
		// Forward order: every element is the predecessor of the next one.
		for i, node := range cycle {
			next := cycle[(i+1)%len(cycle)]
			require.Equal(t, node, d.Predecessor(next))
		}
		require.ElementsMatch(t, []int64{1, 2, 3}, cycle)
	}
}

func TestFindCycle_SelfLoop(t *testing.T) {
	d := chain([]int64{NoPredecessor, 1}, false)
	require.Equal(t, []int64{1}, findCycle(d, 1))
}

func TestFindCycle_NoCycle(t *testing.T) {
	d := chain([]int64{NoPredecessor, 0, 1, 2}, true)
	require.Nil(t, findCycle(d, 3))
	require.Nil(t, findCycle(d, 0))
	require.Nil(t, findCycle(d, -1))
	require.Nil(t, findCycle(d, 4))
}
