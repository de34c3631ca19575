package game

import "fmt"

// PathState records which edges and nodes are used on one line of play.
//
// edgeUse is a flat row-major N×N matrix kept symmetric by every mutator;
// nodeUse marks nodes visited on the current path only. A PathState is owned
// by exactly one search at a time and is not safe for concurrent mutation.
type PathState struct {
	n       int
	edgeUse []bool
	nodeUse []bool
}

// NewPathState returns an empty PathState for an n-node graph.
// A negative n is treated as zero.
func NewPathState(n int) *PathState {
	if n < 0 {
		n = 0
	}

	return &PathState{
		n:       n,
		edgeUse: make([]bool, n*n),
		nodeUse: make([]bool, n),
	}
}

// NumNodes returns the node count the state was sized for.
func (ps *PathState) NumNodes() int { return ps.n }

// EdgeUsed reports whether edge u—v is used. Out-of-range pairs report false.
func (ps *PathState) EdgeUsed(u, v int) bool {
	if !ps.inRange(u) || !ps.inRange(v) {
		return false
	}

	return ps.edgeUse[u*ps.n+v]
}

// NodeUsed reports whether u is visited. Out-of-range nodes report false.
func (ps *PathState) NodeUsed(u int) bool {
	return ps.inRange(u) && ps.nodeUse[u]
}

// Visit marks u visited. Callers mark the entry node before searching.
func (ps *PathState) Visit(u int) error {
	if !ps.inRange(u) {
		return fmt.Errorf("Visit(%d) with n=%d: %w", u, ps.n, ErrNodeOutOfRange)
	}
	ps.nodeUse[u] = true

	return nil
}

// UseEdge marks edge u—v and both endpoints used, for setting up a
// mid-game position. It does not check that the edge exists in any graph.
func (ps *PathState) UseEdge(u, v int) error {
	if !ps.inRange(u) || !ps.inRange(v) {
		return fmt.Errorf("UseEdge(%d, %d) with n=%d: %w", u, v, ps.n, ErrNodeOutOfRange)
	}
	ps.edgeUse[u*ps.n+v] = true
	ps.edgeUse[v*ps.n+u] = true
	ps.nodeUse[u] = true
	ps.nodeUse[v] = true

	return nil
}

// Clone returns a deep copy of ps.
func (ps *PathState) Clone() *PathState {
	return &PathState{
		n:       ps.n,
		edgeUse: append([]bool(nil), ps.edgeUse...),
		nodeUse: append([]bool(nil), ps.nodeUse...),
	}
}

// Equal reports whether ps and other have the same size and contents.
func (ps *PathState) Equal(other *PathState) bool {
	if ps == nil || other == nil {
		return ps == other
	}
	if ps.n != other.n {
		return false
	}
	for i, b := range ps.nodeUse {
		if other.nodeUse[i] != b {
			return false
		}
	}
	for i, b := range ps.edgeUse {
		if other.edgeUse[i] != b {
			return false
		}
	}

	return true
}

// play moves from u to v: it marks edge u—v both ways and node v, and returns
// the function restoring the three previous values. Callers defer it so every
// exit path undoes the move in LIFO order.
func (ps *PathState) play(u, v int) (undo func()) {
	i, j := u*ps.n+v, v*ps.n+u
	prevIJ, prevJI, prevV := ps.edgeUse[i], ps.edgeUse[j], ps.nodeUse[v]
	ps.edgeUse[i], ps.edgeUse[j], ps.nodeUse[v] = true, true, true

	return func() {
		ps.edgeUse[i], ps.edgeUse[j], ps.nodeUse[v] = prevIJ, prevJI, prevV
	}
}

// legal reports whether the mover at u may step to neighbour v without
// closing a cycle: the edge is unused and v is unvisited.
func (ps *PathState) legal(u, v int) bool {
	return !ps.edgeUse[u*ps.n+v] && !ps.nodeUse[v]
}

func (ps *PathState) inRange(u int) bool { return u >= 0 && u < ps.n }
