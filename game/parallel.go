package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/cyclegames/core"
	"github.com/katalvlaran/cyclegames/internal/ctxlog"
	"github.com/katalvlaran/cyclegames/pool"
)

// coordinator drives the root fan-out of one SearchParallel call.
type coordinator struct {
	pool     *pool.Pool
	root     int
	rule     Rule
	branches []*branch
	stop     atomic.Bool // raised once; read by every worker
	poll     time.Duration
	stats    *Stats
	log      *slog.Logger
}

// SearchParallel computes the same verdict as Search, splitting the work at
// the root: every legal first move becomes one pool task that runs the
// sequential engine on a private clone of ps with that move applied.
//
// Stage 1 (Validate): same preconditions as Search.
// Stage 2 (Enumerate): one ply at root; an immediate verdict dispatches nothing.
// Stage 3 (Dispatch/Poll): submit without blocking, poll handles every
// PollInterval; the first branch ending in Loss makes the root a Win, all
// branches ending in Win make it a Loss.
// Stage 4 (Join): raise the stop signal and join every submitted task.
//
// ps is never mutated. WithTrace and WithContext are ignored; ctx cancels.
//
// Returns:
//   - Win or Loss with a nil error.
//   - Cancelled with ctx.Err() if ctx ends first.
//   - Error wrapping ErrBranchFailed or ErrUnexpectedCancel if a branch fails,
//     or a validation sentinel.
func SearchParallel(ctx context.Context, g *core.Graph, root int, ps *PathState, rule Rule, opts ...Option) (State, error) {
	// 1. Validate
	if err := validate(g, root, ps, rule); err != nil {
		return Error, fmt.Errorf("SearchParallel: %w", err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return Cancelled, err
	}
	o := applyOptions(opts)
	if o.Stats != nil {
		o.Stats.positions.Add(1)
	}
	log := ctxlog.FromContext(ctx)

	// 2. Enumerate the root ply
	moves, instant := rootMoves(g, root, ps, rule)
	if instant {
		log.Debug("parallel search decided at root", "root", root, "rule", rule, "verdict", Win)
		return Win, nil
	}
	if len(moves) == 0 {
		log.Debug("parallel search decided at root", "root", root, "rule", rule, "verdict", Loss)
		return Loss, nil
	}

	// 3. Pool
	p := o.Pool
	if p == nil {
		p = pool.New(o.Workers)
		defer p.Close()
	}

	c := &coordinator{
		pool:     p,
		root:     root,
		rule:     rule,
		branches: make([]*branch, 0, len(moves)),
		poll:     o.PollInterval,
		stats:    o.Stats,
		log:      log,
	}
	for _, v := range moves {
		cps := ps.Clone()
		cps.play(root, v)
		c.branches = append(c.branches, &branch{
			move: v,
			work: worker{g: g, ps: cps, rule: rule, child: v, stop: &c.stop, stats: o.Stats},
		})
	}
	log.Debug("parallel search started", "root", root, "rule", rule, "branches", len(moves), "pool", p.Size())

	st, err := c.run(ctx)
	log.Debug("parallel search finished", "root", root, "rule", rule, "verdict", st)

	return st, err
}

// SolveParallel is Solve with the root split across a pool.
func SolveParallel(ctx context.Context, g *core.Graph, start int, rule Rule, opts ...Option) (State, error) {
	ps, err := entryState(g, start)
	if err != nil {
		return Error, fmt.Errorf("SolveParallel: %w", err)
	}

	return SearchParallel(ctx, g, start, ps, rule, opts...)
}

// rootMoves lists the legal moves from root, or reports a MAC cycle that can
// be closed immediately.
func rootMoves(g *core.Graph, root int, ps *PathState, rule Rule) (moves []int, instant bool) {
	nbrs := g.Neighbors(root)
	if rule == MAC {
		for _, v := range nbrs {
			if !ps.EdgeUsed(root, v) && ps.nodeUse[v] {
				return nil, true
			}
		}
	}
	for _, v := range nbrs {
		if ps.legal(root, v) {
			moves = append(moves, v)
		}
	}

	return moves, false
}

// run dispatches and polls until a verdict, then joins everything submitted.
func (c *coordinator) run(ctx context.Context) (State, error) {
	defer c.joinAll()

	ticker := time.NewTicker(c.poll)
	defer ticker.Stop()

	wins := 0
	for {
		// a. Fill free pool slots
		if err := c.dispatch(); err != nil {
			c.halt()
			return Error, err
		}

		// b. Collect finished branches
		for _, b := range c.branches {
			if b.status != branchRunning || !b.h.Done() {
				continue
			}
			c.collect(b)
			c.log.Debug("branch finished", "root", c.root, "move", b.move, "state", b.result)

			switch b.result {
			case Loss:
				c.halt()
				return Win, nil
			case Win:
				wins++
			case Cancelled:
				c.halt()
				return Error, fmt.Errorf("SearchParallel: move %d→%d: %w", c.root, b.move, ErrUnexpectedCancel)
			default:
				c.halt()
				if b.err != nil {
					return Error, fmt.Errorf("SearchParallel: move %d→%d: %w: %w", c.root, b.move, ErrBranchFailed, b.err)
				}
				return Error, fmt.Errorf("SearchParallel: move %d→%d: %w", c.root, b.move, ErrBranchFailed)
			}
		}
		if wins == len(c.branches) {
			return Loss, nil
		}

		// c. Sleep until the next round or cancellation
		select {
		case <-ctx.Done():
			c.halt()
			return Cancelled, ctx.Err()
		case <-ticker.C:
		}
	}
}

// dispatch submits pending branches until the pool reports saturation.
func (c *coordinator) dispatch() error {
	for _, b := range c.branches {
		if b.status != branchPending {
			continue
		}
		h, err := pool.TrySubmit(c.pool, b.work.run)
		if errors.Is(err, pool.ErrSaturated) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("SearchParallel: dispatch move %d→%d: %w", c.root, b.move, err)
		}
		b.h, b.status = h, branchRunning
		if c.stats != nil {
			c.stats.dispatched.Add(1)
		}
	}

	return nil
}

// collect joins a running branch and records its terminal state.
// A task error without a Cancelled state is an Error.
func (c *coordinator) collect(b *branch) {
	st, err := b.h.Join()
	if err != nil && st != Cancelled {
		st = Error
	}
	b.result, b.err, b.status = st, err, branchDone
	if c.stats != nil {
		c.stats.joined.Add(1)
		if st == Cancelled {
			c.stats.cancelled.Add(1)
		}
	}
}

// halt raises the stop signal observed by every worker.
func (c *coordinator) halt() {
	c.stop.Store(true)
}

// joinAll waits for every branch still running.
func (c *coordinator) joinAll() {
	for _, b := range c.branches {
		if b.status == branchRunning {
			c.collect(b)
		}
	}
}
