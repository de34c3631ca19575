// SPDX-License-Identifier: MIT
// Package: cyclegames/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the family minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a sketch that core
// rejected as a graph.
var ErrConstructFailed = errors.New("builder: construction failed")
