// SPDX-License-Identifier: MIT
// Package: cyclegames/builder
//
// config.go - internal configuration resolved from BuilderOption values.
//
// Deterministic defaults:
//   - rng = nil (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates the knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// rng drives stochastic choices; nil means no randomness.
	rng *rand.Rand
}

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
