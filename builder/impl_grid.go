// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   - Cell (r, c) gets id first + r*cols + c (row-major order).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - For each (r,c) emit Right then Bottom if present. Directed builders
//     also emit the reverse arc right after, each with its own weight draw.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/graph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		R, C := int64(rows), int64(cols)
		first := b.AddNodes(R * C)
		id := func(r, c int64) int64 { return first + r*C + c }

		link := func(u, v int64) error {
			if err := addEdge(methodGrid, b, cfg, u, v); err != nil {
				return err
			}
			if !b.Undirected() {
				return addEdge(methodGrid, b, cfg, v, u)
			}
			return nil
		}

		for r := int64(0); r < R; r++ {
			for c := int64(0); c < C; c++ {
				if c+1 < C {
					if err := link(id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < R {
					if err := link(id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
