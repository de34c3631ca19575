// SPDX-License-Identifier: MIT
// Package: cyclegames/builder
//
// impl_complete.go - Complete(n): K_n, every unordered pair {i<j} once.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that appends the complete graph K_n.
func Complete(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := s.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.link(base+i, base+j)
			}
		}

		return nil
	}
}
