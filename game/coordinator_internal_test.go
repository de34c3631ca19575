package game

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclegames/core"
	"github.com/katalvlaran/cyclegames/internal/ctxlog"
	"github.com/katalvlaran/cyclegames/pool"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(3, core.WithEdge(0, 1), core.WithEdge(1, 2), core.WithEdge(2, 0))
	require.NoError(t, err)

	return g
}

func TestPlay_UndoRestoresPreviousValues(t *testing.T) {
	ps := NewPathState(3)
	require.NoError(t, ps.Visit(0))
	before := ps.Clone()

	undo := ps.play(0, 1)
	assert.True(t, ps.EdgeUsed(0, 1))
	assert.True(t, ps.EdgeUsed(1, 0))
	assert.True(t, ps.NodeUsed(1))
	undo()
	assert.True(t, before.Equal(ps))

	// undoing a move onto an already visited node keeps it visited
	require.NoError(t, ps.Visit(2))
	undo = ps.play(1, 2)
	undo()
	assert.True(t, ps.NodeUsed(2))
	assert.False(t, ps.EdgeUsed(1, 2))
}

func TestWorker_StopBeforeStartReturnsCancelled(t *testing.T) {
	g := triangle(t)
	ps := NewPathState(3)
	require.NoError(t, ps.UseEdge(0, 1))

	var stop atomic.Bool
	stop.Store(true)
	st, err := worker{g: g, ps: ps, rule: MAC, child: 1, stop: &stop}.run()
	assert.Equal(t, Cancelled, st)
	assert.NoError(t, err)
}

func TestWorker_VerdictSurvivesLateStop(t *testing.T) {
	g := triangle(t)
	ps := NewPathState(3)
	require.NoError(t, ps.UseEdge(0, 1))

	var stop atomic.Bool
	st, err := worker{g: g, ps: ps, rule: MAC, child: 1, stop: &stop}.run()
	stop.Store(true)
	require.NoError(t, err)
	assert.Equal(t, Loss, st)
}

// TestCoordinator_UnexpectedCancel feeds the coordinator a branch that stops
// on a flag the coordinator never raised.
func TestCoordinator_UnexpectedCancel(t *testing.T) {
	g := triangle(t)
	p := pool.New(1)
	defer p.Close()

	var foreign atomic.Bool
	foreign.Store(true)

	ps := NewPathState(3)
	require.NoError(t, ps.UseEdge(0, 1))
	c := &coordinator{pool: p, root: 0, rule: MAC, poll: time.Millisecond, log: ctxlog.Discard()}
	c.branches = []*branch{{move: 1, work: worker{g: g, ps: ps, rule: MAC, child: 1, stop: &foreign}}}

	st, err := c.run(context.Background())
	assert.Equal(t, Error, st)
	assert.ErrorIs(t, err, ErrUnexpectedCancel)
	assert.True(t, c.stop.Load())
	assert.Equal(t, branchDone, c.branches[0].status)
}

// TestCoordinator_BranchPanicIsError checks a task failure surfaces as Error,
// never as a verdict.
func TestCoordinator_BranchPanicIsError(t *testing.T) {
	g := triangle(t)
	p := pool.New(1)
	defer p.Close()

	// a PathState sized for a different graph makes the walker index out of range
	c := &coordinator{pool: p, root: 0, rule: MAC, poll: time.Millisecond, log: slog.Default()}
	c.branches = []*branch{{move: 1, work: worker{g: g, ps: NewPathState(1), rule: MAC, child: 1}}}

	st, err := c.run(context.Background())
	assert.Equal(t, Error, st)
	assert.ErrorIs(t, err, ErrBranchFailed)
	assert.ErrorIs(t, err, pool.ErrTaskPanicked)
}
