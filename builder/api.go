// SPDX-License-Identifier: MIT
// Package: cyclegames/builder
//
// api.go - the BuildGraph orchestrator and the sketch constructors write to.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order against a sketch, then freezes the sketch into an immutable core.Graph.
//   - Constructors never panic; they return sentinel errors wrapped with context.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cyclegames/core"
)

// Constructor appends one graph family to the sketch using the resolved config.
type Constructor func(s *sketch, cfg builderConfig) error

// sketch is the mutable graph under construction. core.Graph is immutable,
// so constructors collect nodes and edges here first.
type sketch struct {
	n     int
	edges []core.Edge
}

// grow reserves k fresh node indices and returns the first one.
func (s *sketch) grow(k int) int {
	base := s.n
	s.n += k

	return base
}

// link records the undirected edge u—v.
func (s *sketch) link(u, v int) {
	s.edges = append(s.edges, core.Edge{U: u, V: v})
}

// BuildGraph resolves bopts, applies every constructor in order and returns
// the resulting graph. Constructor errors are wrapped as "BuildGraph: %w".
//
// Complexity: Σ cost of constructors + O(N² + E) for core.NewGraph.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	// 1. Run constructors in order
	s := &sketch{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	// 2. Freeze
	if s.n == 0 {
		return nil, fmt.Errorf("BuildGraph: no nodes: %w", ErrTooFewVertices)
	}
	g, err := core.NewGraph(s.n, core.WithEdges(s.edges))
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}
