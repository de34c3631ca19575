package game

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/cyclegames/core"
)

// walker carries the fixed inputs of one recursive search.
type walker struct {
	g     *core.Graph
	ps    *PathState
	rule  Rule
	ctx   context.Context // nil: no context checks
	stop  *atomic.Bool    // nil: not a parallel branch
	trace *Trace          // nil: quiet

	positions int64
}

// Search decides whether the player to move at node can force a win, given
// the edges and nodes already used in ps.
//
// The caller marks node visited before the call (Solve does this). Neighbours
// are tried in ascending index order. ps is mutated during the search and is
// restored to its input contents before Search returns, on every path.
//
// Returns:
//   - Win or Loss with a nil error on a completed search.
//   - Cancelled with ctx.Err() when the WithContext context ends.
//   - Error with a wrapped sentinel on invalid input.
//
// Complexity: exponential in the worst case; O(N²) memory for ps plus O(N) stack.
func Search(g *core.Graph, node int, ps *PathState, rule Rule, opts ...Option) (State, error) {
	// 1. Validate inputs
	if err := validate(g, node, ps, rule); err != nil {
		return Error, fmt.Errorf("Search: %w", err)
	}

	// 2. Apply options
	o := applyOptions(opts)
	if o.Trace != nil {
		o.Trace.reset()
	}

	// 3. Recurse
	w := &walker{g: g, ps: ps, rule: rule, ctx: o.Ctx, trace: o.Trace}
	if o.Ctx.Done() == nil {
		w.ctx = nil // never cancelled
	}
	st, err := w.search(node, 0)

	// 4. Publish counters
	if o.Stats != nil {
		o.Stats.positions.Add(w.positions)
	}

	return st, err
}

// Solve plays rule on g from start with nothing used yet.
func Solve(g *core.Graph, start int, rule Rule, opts ...Option) (State, error) {
	ps, err := entryState(g, start)
	if err != nil {
		return Error, fmt.Errorf("Solve: %w", err)
	}

	return Search(g, start, ps, rule, opts...)
}

// entryState returns a fresh PathState for g with start visited.
func entryState(g *core.Graph, start int) (*PathState, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ps := NewPathState(g.NumNodes())
	if err := ps.Visit(start); err != nil {
		return nil, err
	}

	return ps, nil
}

// validate checks the preconditions shared by Search and SearchParallel.
func validate(g *core.Graph, node int, ps *PathState, rule Rule) error {
	switch {
	case g == nil:
		return ErrGraphNil
	case ps == nil:
		return ErrPathStateNil
	case !rule.valid():
		return fmt.Errorf("%v: %w", rule, ErrUnknownRule)
	case ps.NumNodes() != g.NumNodes():
		return fmt.Errorf("path state n=%d, graph n=%d: %w", ps.NumNodes(), g.NumNodes(), ErrDimensionMismatch)
	case node < 0 || node >= g.NumNodes():
		return fmt.Errorf("node %d with n=%d: %w", node, g.NumNodes(), ErrNodeOutOfRange)
	case !ps.NodeUsed(node):
		return fmt.Errorf("node %d: %w", node, ErrEntryNotVisited)
	}

	return nil
}

// search evaluates the position at node for the player to move at depth.
func (w *walker) search(node, depth int) (State, error) {
	// 1. Cooperative cancellation, once per call
	if w.stop != nil && w.stop.Load() {
		return Cancelled, nil
	}
	if w.ctx != nil {
		select {
		case <-w.ctx.Done():
			return Cancelled, w.ctx.Err()
		default:
		}
	}
	w.positions++
	if w.trace != nil {
		w.trace.enter(node, depth)
	}

	// 2. MAC: an unused edge back to the path closes a cycle
	nbrs := w.g.Neighbors(node)
	if w.rule == MAC {
		if w.trace != nil {
			w.trace.scanning(depth)
		}
		for _, v := range nbrs {
			if !w.ps.EdgeUsed(node, v) && w.ps.nodeUse[v] {
				if w.trace != nil {
					w.trace.closed(v, depth)
				}
				return Win, nil
			}
		}
	}

	// 3. Try every legal move; a move leaving the opponent lost wins
	moved := false
	for _, v := range nbrs {
		if !w.ps.legal(node, v) {
			continue
		}
		moved = true

		child, err := w.move(node, v, depth)
		if child == Cancelled || child == Error {
			return child, err
		}
		if w.trace != nil {
			w.trace.outcome(node, v, depth, child)
		}
		if child == Loss {
			return Win, nil
		}
	}

	// 4. No move, or every move hands the opponent a win
	if !moved {
		if w.trace != nil {
			w.trace.stuck(depth)
		}
		return Loss, nil
	}
	if w.trace != nil {
		w.trace.exhausted(depth)
	}

	return Loss, nil
}

// move plays node→v, evaluates the opponent's position and undoes the move.
func (w *walker) move(node, v, depth int) (State, error) {
	defer w.ps.play(node, v)()

	return w.search(v, depth+1)
}
