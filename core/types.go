// Package core defines the immutable Graph, the Edge value type, graph
// construction options and the sentinel errors of the package.
package core

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for core graph operations.
var (
	// ErrTooFewNodes indicates a graph with fewer than one node was requested.
	ErrTooFewNodes = errors.New("core: graph needs at least one node")

	// ErrNodeOutOfRange indicates a node index outside [0, NumNodes).
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrLoopNotAllowed indicates a self-loop; cycle games are played on simple graphs.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDimensionMismatch indicates a non-square adjacency matrix.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrAsymmetry indicates an adjacency matrix with m[i][j] != m[j][i].
	ErrAsymmetry = errors.New("core: adjacency is not symmetric")

	// ErrInvalidPermutation indicates a relabelling that is not a bijection on 0..N-1.
	ErrInvalidPermutation = errors.New("core: invalid permutation")
)

// Edge is an undirected edge between nodes U and V.
// Edges returned by the package are canonical: U < V.
type Edge struct {
	U int
	V int
}

// canonical returns e with U <= V.
func (e Edge) canonical() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// GraphOption contributes edges to a Graph under construction.
type GraphOption func(b *graphBuild)

// graphBuild collects requested edges before validation.
type graphBuild struct {
	edges []Edge
}

// WithEdge adds the undirected edge u—v.
func WithEdge(u, v int) GraphOption {
	return func(b *graphBuild) { b.edges = append(b.edges, Edge{U: u, V: v}) }
}

// WithEdges adds every edge of es. Duplicates are idempotent.
func WithEdges(es []Edge) GraphOption {
	return func(b *graphBuild) { b.edges = append(b.edges, es...) }
}

// Graph is an immutable simple undirected graph over nodes 0..N-1.
//
// adj is the row-major N×N adjacency matrix; nbrs[u] lists the neighbours of
// u in ascending order. Both are written once by the constructor and never
// again, so a *Graph is safe for concurrent readers without locking.
type Graph struct {
	n     int     // number of nodes
	adj   []bool  // adj[u*n+v] == adj[v*n+u]
	nbrs  [][]int // ascending neighbour lists
	edges int     // number of undirected edges
}

// NewGraph creates a Graph with n nodes and the edges supplied by opts.
//
// Stage 1 (Validate): n ≥ 1.
// Stage 2 (Execute): validate and mirror every requested edge.
// Stage 3 (Finalize): derive ascending neighbour lists.
//
// Complexity: O(n² + E) time, O(n²) memory.
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	// 1. Validate size
	if n < 1 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrTooFewNodes)
	}

	// 2. Collect requested edges
	var b graphBuild
	for _, opt := range opts {
		opt(&b)
	}

	// 3. Mirror each edge into the matrix
	g := &Graph{n: n, adj: make([]bool, n*n)}
	for _, e := range b.edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("NewGraph: edge %d—%d with n=%d: %w", e.U, e.V, n, ErrNodeOutOfRange)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("NewGraph: edge %d—%d: %w", e.U, e.V, ErrLoopNotAllowed)
		}
		g.adj[e.U*n+e.V] = true
		g.adj[e.V*n+e.U] = true
	}

	// 4. Derive neighbour lists
	g.finalize()

	return g, nil
}

// FromMatrix creates a Graph from a square adjacency matrix.
// The matrix must be symmetric with a false diagonal.
//
// Complexity: O(n²).
func FromMatrix(m [][]bool) (*Graph, error) {
	n := len(m)
	if n < 1 {
		return nil, fmt.Errorf("FromMatrix: %w", ErrTooFewNodes)
	}

	g := &Graph{n: n, adj: make([]bool, n*n)}
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("FromMatrix: row %d has %d columns, want %d: %w", i, len(row), n, ErrDimensionMismatch)
		}
	}
	for i := 0; i < n; i++ {
		if m[i][i] {
			return nil, fmt.Errorf("FromMatrix: diagonal at %d: %w", i, ErrLoopNotAllowed)
		}
		for j := i + 1; j < n; j++ {
			if m[i][j] != m[j][i] {
				return nil, fmt.Errorf("FromMatrix: (%d,%d): %w", i, j, ErrAsymmetry)
			}
			if m[i][j] {
				g.adj[i*n+j] = true
				g.adj[j*n+i] = true
			}
		}
	}
	g.finalize()

	return g, nil
}

// finalize derives nbrs and the edge count from adj.
func (g *Graph) finalize() {
	g.nbrs = make([][]int, g.n)
	g.edges = 0
	for u := 0; u < g.n; u++ {
		row := g.adj[u*g.n : (u+1)*g.n]
		list := make([]int, 0, 4)
		for v, ok := range row {
			if ok {
				list = append(list, v)
				if u < v {
					g.edges++
				}
			}
		}
		g.nbrs[u] = list
	}
}

// sortEdges orders edges lexicographically by (U, V).
func sortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].U != es[j].U {
			return es[i].U < es[j].U
		}
		return es[i].V < es[j].V
	})
}
