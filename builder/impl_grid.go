// SPDX-License-Identifier: MIT
// Package: cyclegames/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighbourhood lattice.
//
// Node (r, c) takes index base + r*cols + c. For each cell in row-major order
// the right edge is emitted before the down edge.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends a rows×cols grid graph.
func Grid(rows, cols int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := s.grow(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := base + r*cols + c
				if c+1 < cols {
					s.link(u, u+1)
				}
				if r+1 < rows {
					s.link(u, u+cols)
				}
			}
		}

		return nil
	}
}
