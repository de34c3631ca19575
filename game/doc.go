// Package game decides two-player cycle games on undirected graphs by
// exhaustive backtracking search.
//
// A token starts on a node. Players alternate moving it along an unused
// edge; the edge is then used and the destination node visited.
//
//   - MAC (Make-A-Cycle): a move along an unused edge to an already visited
//     node closes a cycle and wins at once. A player with no unused edge loses.
//   - AAC (Avoid-A-Cycle): moves to visited nodes are illegal. A player with
//     no legal move loses.
//
// Verdicts are exact (no heuristics) and always relative to the player about
// to move at the queried node: Win means that player can force a win.
//
// Entry points:
//
//	Search(g, node, ps, rule, opts...)            sequential, on a caller PathState
//	Solve(g, start, rule, opts...)                sequential, fresh PathState
//	SearchParallel(ctx, g, root, ps, rule, ...)   root fan-out over a pool.Pool
//	SolveParallel(ctx, g, start, rule, ...)       same, fresh PathState
//
// Sequential search shares one PathState across the recursion and undoes
// every move on return. Parallel search clones the PathState once per legal
// root move, runs each branch as a pool task and stops the remaining branches
// through a shared flag as soon as one branch proves the root a Win. Both
// engines return the same verdict for the same input.
//
// Options:
//
//	WithContext(ctx)         cancels a sequential search (Cancelled + ctx.Err()).
//	WithTrace(t)             human-readable progress and move history (sequential only).
//	WithStats(s)             positions, branches dispatched/joined/cancelled.
//	WithWorkers(n)           size of the private pool of SearchParallel.
//	WithPool(p)              share an existing pool.
//	WithPollInterval(d)      coordinator sleep between polls (default 1ms).
//
// Errors:
//
//	ErrGraphNil, ErrPathStateNil, ErrNodeOutOfRange, ErrDimensionMismatch,
//	ErrEntryNotVisited, ErrUnknownRule     invalid input; State is Error.
//	ErrBranchFailed, ErrUnexpectedCancel   a parallel branch failed; State is Error.
package game
