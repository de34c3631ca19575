// SPDX-License-Identifier: MIT
// Package: cyclegames/builder
//
// impl_star.go - Star(n): one center joined to n-1 leaves.
//
// The center takes the first fresh index so that, in a standalone star,
// node 0 is the center and nodes 1..n-1 are leaves.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that appends a star with n-1 leaves.
func Star(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := s.grow(n)
		for i := 1; i < n; i++ {
			s.link(center, center+i)
		}

		return nil
	}
}
