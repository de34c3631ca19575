// SPDX-License-Identifier: MIT
// Package: cyclegames/builder
//
// impl_cycle.go - Cycle(n): C_n as a ring over fresh indices.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i—(i+1) mod n for ascending i.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that appends the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ring(s, s.grow(n), n)

		return nil
	}
}

// ring links base..base+n-1 into a cycle.
func ring(s *sketch, base, n int) {
	for i := 0; i < n; i++ {
		s.link(base+i, base+(i+1)%n)
	}
}
