// SPDX-License-Identifier: MIT
// Package: cyclegames/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic and needs no RNG.
//
// Determinism:
//   - Trials run over unordered pairs {i<j}, i asc then j asc, one
//     rng.Float64() per pair, so a fixed seed fixes the graph.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p) over fresh indices.
func RandomSparse(n int, p float64) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		// 1) Validate
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		stochastic := p > probMin && p < probMax
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Trials
		base := s.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if stochastic {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					s.link(base+i, base+j)
				}
			}
		}

		return nil
	}
}
