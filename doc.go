// Package cyclegames decides who wins cycle games played on undirected graphs.
//
// 🚀 What are cycle games?
//
//	Two players share one token that starts on a node. They take turns
//	sliding it along an edge that has not been used yet.
//		• Make-A-Cycle (MAC): the player who closes a cycle, by moving onto
//		  an already visited node, wins. A player with no move loses.
//		• Avoid-A-Cycle (AAC): moving onto a visited node is illegal, so the
//		  token walks a simple path. A player with no move loses.
//
// ✨ What is in the box?
//
//   - Exact verdicts: exhaustive game-tree search, Win or Loss for the first mover
//   - Parallel root split: the first ply fans out over a bounded worker pool
//     and short-circuits on the first winning reply
//   - Traces: a human-readable game tree for any sequential search
//   - Batch runs: HCL run files, concurrent graph loading, tabular reports
//
// Under the hood, everything is organized under these packages:
//
//	core/     — immutable simple undirected Graph, read API, relabelling
//	builder/  — deterministic graph fixtures (path, cycle, star, wheel, grid, …)
//	listing/  — Adjacency_Listing text format reader and writer
//	game/     — rules, PathState, sequential Search, SearchParallel, Trace, Stats
//	pool/     — bounded task pool with typed join handles
//	internal/ — config (HCL), classify (batch runner), cli, ctxlog
//	cmd/      — the cyclegames command
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, builder.Cycle(3))
//	st, _ := game.Solve(g, 0, game.MAC)
//	fmt.Println(st, st.Winner()) // WIN P1
//
// Command line:
//
//	cyclegames -rule MAC -start 0 graphs/petersen.txt
//	cyclegames -config runs.hcl
package cyclegames
