package game

import (
	"sync/atomic"

	"github.com/katalvlaran/cyclegames/core"
	"github.com/katalvlaran/cyclegames/pool"
)

// branch is one root move dispatched by SearchParallel.
//
// Its lifecycle is branchPending → branchRunning → branchDone; result and err
// are meaningful only once done and never change afterwards.
type branch struct {
	move   int
	work   worker
	h      *pool.Handle[State]
	status branchStatus
	result State
	err    error
}

type branchStatus uint8

const (
	branchPending branchStatus = iota
	branchRunning
	branchDone
)

// worker evaluates the opponent's position after one root move, on a private
// PathState, until it finishes or stop is raised.
type worker struct {
	g     *core.Graph
	ps    *PathState // owned exclusively by this worker
	rule  Rule
	child int
	stop  *atomic.Bool
	stats *Stats
}

// run is the pool task body. A verdict computed before stop is observed is
// returned as is; stop only prevents further exploration.
func (wk worker) run() (State, error) {
	w := &walker{g: wk.g, ps: wk.ps, rule: wk.rule, stop: wk.stop}
	st, err := w.search(wk.child, 1)
	if wk.stats != nil {
		wk.stats.positions.Add(w.positions)
	}

	return st, err
}
