// File: methods.go
// Role: read-only queries and relabelling on an immutable Graph.
// Determinism:
//   - Neighbors() is ascending by node index.
//   - Edges() is lexicographic by (U, V) with U < V.
// Concurrency:
//   - No locks; nothing here mutates the receiver.

package core

import "fmt"

// NumNodes returns N, the number of nodes.
// Complexity: O(1).
func (g *Graph) NumNodes() int {
	return g.n
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Adjacent reports whether u and v share an edge.
// Out-of-range indices report false.
// Complexity: O(1).
func (g *Graph) Adjacent(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}

	return g.adj[u*g.n+v]
}

// Neighbors returns the neighbours of u in ascending order.
//
// The returned slice is shared with the Graph and is read-only by convention;
// callers that need to modify it must copy it first. An out-of-range u yields nil.
//
// Complexity: O(1).
func (g *Graph) Neighbors(u int) []int {
	if u < 0 || u >= g.n {
		return nil
	}

	return g.nbrs[u]
}

// Degree returns the number of neighbours of u, or 0 when u is out of range.
// Complexity: O(1).
func (g *Graph) Degree(u int) int {
	return len(g.Neighbors(u))
}

// Edges returns every undirected edge once, canonical (U < V), sorted.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u, list := range g.nbrs {
		for _, v := range list {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}

// Matrix returns a fresh N×N copy of the adjacency matrix.
// Complexity: O(V²).
func (g *Graph) Matrix() [][]bool {
	m := make([][]bool, g.n)
	for u := 0; u < g.n; u++ {
		m[u] = append([]bool(nil), g.adj[u*g.n:(u+1)*g.n]...)
	}

	return m
}

// Relabel returns the isomorphic Graph in which node i is renamed perm[i].
//
// Stage 1 (Validate): perm is a permutation of 0..N-1.
// Stage 2 (Execute): map every edge through perm.
//
// Complexity: O(V + E).
func (g *Graph) Relabel(perm []int) (*Graph, error) {
	// 1. Validate bijection
	if len(perm) != g.n {
		return nil, fmt.Errorf("Relabel: len(perm)=%d, want %d: %w", len(perm), g.n, ErrInvalidPermutation)
	}
	seen := make([]bool, g.n)
	for i, p := range perm {
		if p < 0 || p >= g.n || seen[p] {
			return nil, fmt.Errorf("Relabel: perm[%d]=%d: %w", i, p, ErrInvalidPermutation)
		}
		seen[p] = true
	}

	// 2. Map edges
	es := g.Edges()
	for i, e := range es {
		es[i] = Edge{U: perm[e.U], V: perm[e.V]}.canonical()
	}
	sortEdges(es)

	return NewGraph(g.n, WithEdges(es))
}
