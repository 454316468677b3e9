// SPDX-License-Identifier: MIT
// Package: sssp/bellmanford
//
// memory.go - peak memory estimation.

package bellmanford

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// MemoryRange is an estimated peak memory interval in bytes.
type MemoryRange struct {
	Min uint64
	Max uint64
}

// String renders the range with binary units, e.g. "[1.2 MiB ... 3.4 MiB]".
func (m MemoryRange) String() string {
	if m.Min == m.Max {
		return humanize.IBytes(m.Min)
	}

	return fmt.Sprintf("[%s ... %s]", humanize.IBytes(m.Min), humanize.IBytes(m.Max))
}

// MemoryEstimation estimates the peak memory of one BellmanFord run:
//   - distances and predecessors (and hop lengths when tracked): 8 bytes per node each;
//   - the frontier: 8 bytes per node;
//   - the enqueued bitset: one bit per node;
//   - one local queue per worker: between nodeCount/concurrency and nodeCount ids.
func MemoryEstimation(nodeCount int64, concurrency int, trackNegativeCycles bool) MemoryRange {
	if nodeCount <= 0 {
		return MemoryRange{}
	}
	if concurrency < 1 {
		concurrency = 1
	}
	n := uint64(nodeCount)
	c := uint64(concurrency)

	arrays := uint64(2)
	if trackNegativeCycles {
		arrays = 3
	}
	fixed := arrays*8*n + // store
		8*n + // frontier
		(n+63)/64*8 // bitset

	perWorkerMin := (n + c - 1) / c * 8
	perWorkerMax := 8 * n

	return MemoryRange{
		Min: fixed + c*perWorkerMin,
		Max: fixed + c*perWorkerMax,
	}
}
