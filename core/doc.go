// Package core provides the immutable, undirected Graph consumed by the
// cycle-game engine.
//
// A Graph G = (V,E) has N nodes labelled 0..N-1 and a symmetric, loop-free
// adjacency relation stored as a flat row-major N×N boolean matrix, plus a
// precomputed ascending neighbour list per node so that search loops touch
// only real edges.
//
// Why immutable?
//
//   - One Graph value is shared by every concurrent search branch; with no
//     mutators there is nothing to lock.
//   - Search scratch data (which edges and nodes are used on the current line
//     of play) lives in game.PathState, never in the Graph.
//
// Construction:
//
//	g, err := core.NewGraph(4,
//		core.WithEdge(0, 1),
//		core.WithEdge(1, 2),
//		core.WithEdges([]core.Edge{{U: 2, V: 3}, {U: 3, V: 0}}),
//	)
//
//	g, err := core.FromMatrix([][]bool{...}) // validated square/symmetric/loop-free
//
// Read API:
//
//	NumNodes() int              // O(1)
//	Adjacent(u, v int) bool     // O(1)
//	Neighbors(u int) []int      // O(1), shared read-only slice, ascending
//	Degree(u int) int           // O(1)
//	Edges() []Edge              // O(V+E), lexicographic (U<V)
//	EdgeCount() int             // O(1)
//	Matrix() [][]bool           // O(V²) copy
//	Relabel(perm []int)         // O(V+E), node i becomes perm[i]
//
// Errors:
//
//	ErrTooFewNodes         - N < 1.
//	ErrNodeOutOfRange      - an endpoint or query outside [0,N).
//	ErrLoopNotAllowed      - a self-loop was requested.
//	ErrDimensionMismatch   - FromMatrix input is not square.
//	ErrAsymmetry           - FromMatrix input is not symmetric.
//	ErrInvalidPermutation  - Relabel input is not a permutation of 0..N-1.
package core
