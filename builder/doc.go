// SPDX-License-Identifier: MIT
// Package builder assembles deterministic core.Graph fixtures for tests,
// benchmarks and examples of the cycle-game engine.
//
// Every constructor appends a fresh block of node indices to the graph under
// construction, so composing constructors yields a disjoint union:
//
//	g, err := builder.BuildGraph(nil, builder.Cycle(4), builder.Path(3))
//	// nodes 0..3 form C4, nodes 4..6 form P3
//
// Families:
//
//	Path(n)                 P_n, n ≥ 2, edges i—i+1.
//	Cycle(n)                C_n, n ≥ 3, ring 0—1—…—(n-1)—0.
//	Star(n)                 center = first index, n-1 leaves, n ≥ 2.
//	Wheel(n)                rim C_{n-1} then hub as last index, n ≥ 4.
//	Complete(n)             K_n, n ≥ 1.
//	CompleteBipartite(a,b)  K_{a,b}, left block first, a,b ≥ 1.
//	Grid(r,c)               r×c 4-neighbourhood grid, row-major indices.
//	RandomSparse(n,p)       G(n,p); needs WithSeed or WithRand when 0<p<1.
//
// Options:
//
//	WithSeed(seed)   reproducible RNG.
//	WithRand(r)      caller-owned RNG; panics on nil.
//
// Errors:
//
//	ErrTooFewVertices      size below the family minimum.
//	ErrInvalidProbability  p outside [0,1].
//	ErrNeedRandSource      stochastic constructor without RNG.
//	ErrConstructFailed     nil constructor, or the result is not a valid graph.
package builder
