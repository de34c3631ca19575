// SPDX-License-Identifier: MIT
// Package: cyclegames/builder
//
// impl_path.go - Path(n): P_n with edges i—i+1 in ascending i.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that appends the simple path P_n.
func Path(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := s.grow(n)
		for i := 0; i < n-1; i++ {
			s.link(base+i, base+i+1)
		}

		return nil
	}
}
