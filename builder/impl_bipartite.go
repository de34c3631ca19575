// SPDX-License-Identifier: MIT
// Package: cyclegames/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2): K_{n1,n2}.
//
// Left block takes the first n1 fresh indices, right block the next n2.
// Edges are emitted left-major: for each left i asc, each right j asc.

package builder

import "fmt"

const (
	methodBipartite = "CompleteBipartite"
	minPartSize     = 1
)

// CompleteBipartite returns a Constructor that appends K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n1 < minPartSize || n2 < minPartSize {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodBipartite, n1, n2, minPartSize, ErrTooFewVertices)
		}
		left := s.grow(n1 + n2)
		right := left + n1
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				s.link(left+i, right+j)
			}
		}

		return nil
	}
}
