// SPDX-License-Identifier: MIT
// Package: cyclegames/builder
//
// options.go - functional options for BuildGraph.
//
// Option constructors validate their arguments and panic on nonsense values;
// constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption mutates the builder configuration.
type BuilderOption func(*builderConfig)

// WithRand attaches a caller-owned RNG. Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a fresh RNG seeded with seed, for reproducible fixtures.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
