// SPDX-License-Identifier: MIT
// Package: cyclegames/builder
//
// impl_wheel.go - Wheel(n): W_n = C_{n-1} plus a hub.
//
// Contract:
//   - n ≥ 4, since the rim must be a cycle (else ErrTooFewVertices).
//   - Rim takes the first n-1 fresh indices, the hub the last one.
//   - Spokes are emitted in ascending rim order.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that appends the wheel W_n.
func Wheel(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		base := s.grow(n)
		ring(s, base, n-1)
		hub := base + n - 1
		for i := 0; i < n-1; i++ {
			s.link(hub, base+i)
		}

		return nil
	}
}
