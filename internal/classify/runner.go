// Package classify evaluates batches of cycle-game positions.
//
// A Runner takes Jobs (a graph file, the rules to play and the start nodes),
// loads every distinct graph once, then decides each (rule, start) position
// in job order and returns one Outcome per position. Traced positions write
// their game tree to "<stem> -<RULE>- SN <start>.txt" under the results
// directory.
package classify

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cyclegames/core"
	"github.com/katalvlaran/cyclegames/game"
	"github.com/katalvlaran/cyclegames/internal/ctxlog"
	"github.com/katalvlaran/cyclegames/listing"
	"github.com/katalvlaran/cyclegames/pool"
)

// ErrLoadFailed indicates a graph file could not be loaded; no position is
// searched when it is returned.
var ErrLoadFailed = errors.New("classify: graph load failed")

// DefaultLoadLimit bounds concurrent graph loads.
const DefaultLoadLimit = 4

// GraphLoader reads a graph from a file.
type GraphLoader interface {
	Load(path string) (*core.Graph, error)
}

// Job is one batch of positions on a single graph.
type Job struct {
	Name      string
	GraphPath string
	Rules     []game.Rule // empty means MAC then AAC
	Starts    []int       // empty means every node
	Parallel  bool
	Trace     bool // forces a sequential search
}

// Outcome is the verdict for one position.
type Outcome struct {
	Job     string
	Graph   string
	Rule    game.Rule
	Start   int
	State   game.State
	Elapsed time.Duration
	Err     error
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets the size of the pool shared by parallel jobs; n <= 0
// means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// WithResultsDir sets where trace files go.
func WithResultsDir(dir string) Option {
	return func(r *Runner) { r.resultsDir = dir }
}

// WithPollInterval sets the coordinator poll interval of parallel jobs.
// Panics if d <= 0.
func WithPollInterval(d time.Duration) Option {
	if d <= 0 {
		panic("classify: WithPollInterval(d<=0)")
	}

	return func(r *Runner) { r.poll = d }
}

// WithLoadLimit bounds concurrent graph loads; n <= 0 keeps DefaultLoadLimit.
func WithLoadLimit(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.loadLimit = n
		}
	}
}

// Runner decides positions for a list of Jobs.
type Runner struct {
	loader     GraphLoader
	workers    int
	resultsDir string
	poll       time.Duration
	loadLimit  int
}

// NewRunner returns a Runner reading graphs through loader; a nil loader
// means the default listing.Loader.
func NewRunner(loader GraphLoader, opts ...Option) *Runner {
	if loader == nil {
		loader = listing.Loader{}
	}
	r := &Runner{
		loader:     loader,
		resultsDir: "results",
		poll:       game.DefaultPollInterval,
		loadLimit:  DefaultLoadLimit,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run evaluates every position of jobs in order.
//
// A load failure returns ErrLoadFailed before any search. A per-position
// failure is recorded in that Outcome and the run continues. When ctx ends
// Run returns the outcomes decided so far with ctx.Err().
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Outcome, error) {
	log := ctxlog.FromContext(ctx)

	// 1. Load graphs
	graphs, err := r.loadGraphs(ctx, jobs)
	if err != nil {
		return nil, err
	}
	log.Info("Graphs loaded.", "count", len(graphs))

	// 2. Shared pool for parallel jobs
	var p *pool.Pool
	for _, job := range jobs {
		if job.Parallel && !job.Trace {
			p = pool.New(r.workers)
			defer p.Close()
			break
		}
	}

	// 3. Positions
	var out []Outcome
	for _, job := range jobs {
		g := graphs[job.GraphPath]
		for _, rule := range job.rules() {
			for _, start := range job.starts(g) {
				if err := ctx.Err(); err != nil {
					return out, err
				}
				o := r.evaluate(ctx, p, job, g, rule, start)
				if o.Err != nil {
					log.Warn("Position failed.", "job", job.Name, "rule", rule, "start", start, "error", o.Err)
				} else {
					log.Info("Position decided.", "job", job.Name, "rule", rule, "start", start,
						"verdict", o.State, "winner", o.State.Winner(), "elapsed", o.Elapsed)
				}
				out = append(out, o)
			}
		}
	}

	return out, nil
}

// loadGraphs loads each distinct path once, concurrently.
func (r *Runner) loadGraphs(ctx context.Context, jobs []Job) (map[string]*core.Graph, error) {
	var paths []string
	seen := make(map[string]bool)
	for _, job := range jobs {
		if !seen[job.GraphPath] {
			seen[job.GraphPath] = true
			paths = append(paths, job.GraphPath)
		}
	}

	loaded := make([]*core.Graph, len(paths))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.loadLimit)
	for i, path := range paths {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			g, err := r.loader.Load(path)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrLoadFailed, path, err)
			}
			loaded[i] = g

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	graphs := make(map[string]*core.Graph, len(paths))
	for i, path := range paths {
		graphs[path] = loaded[i]
	}

	return graphs, nil
}

func (r *Runner) evaluate(ctx context.Context, p *pool.Pool, job Job, g *core.Graph, rule game.Rule, start int) Outcome {
	o := Outcome{Job: job.Name, Graph: job.GraphPath, Rule: rule, Start: start}
	begin := time.Now()
	switch {
	case job.Trace:
		o.State, o.Err = r.traced(ctx, job, g, rule, start)
	case job.Parallel:
		o.State, o.Err = game.SolveParallel(ctx, g, start, rule, game.WithPool(p), game.WithPollInterval(r.poll))
	default:
		o.State, o.Err = game.Solve(g, start, rule, game.WithContext(ctx))
	}
	o.Elapsed = time.Since(begin)

	return o
}

// traced runs a sequential search writing its tree to a results file. A
// failing file never changes the verdict.
func (r *Runner) traced(ctx context.Context, job Job, g *core.Graph, rule game.Rule, start int) (game.State, error) {
	log := ctxlog.FromContext(ctx)
	if err := os.MkdirAll(r.resultsDir, 0o755); err != nil {
		return game.Error, fmt.Errorf("classify: results dir: %w", err)
	}
	path := filepath.Join(r.resultsDir, TraceFileName(job.GraphPath, rule, start))
	f, err := os.Create(path)
	if err != nil {
		return game.Error, fmt.Errorf("classify: trace file: %w", err)
	}

	bw := bufio.NewWriter(f)
	tr := game.NewTrace(bw)
	st, err := game.Solve(g, start, rule, game.WithContext(ctx), game.WithTrace(tr))
	if werr := errors.Join(tr.Err(), bw.Flush(), f.Close()); werr != nil {
		log.Warn("Trace file incomplete.", "path", path, "error", werr)
	} else {
		log.Debug("Trace written.", "path", path)
	}

	return st, err
}

// TraceFileName names the trace of one position: the graph file stem, the
// rule and the start node, e.g. "petersen -MAC- SN 0.txt".
func TraceFileName(graphPath string, rule game.Rule, start int) string {
	stem := strings.TrimSuffix(filepath.Base(graphPath), filepath.Ext(graphPath))

	return stem + " -" + rule.String() + "- SN " + strconv.Itoa(start) + ".txt"
}

func (j Job) rules() []game.Rule {
	if len(j.Rules) == 0 {
		return []game.Rule{game.MAC, game.AAC}
	}

	return j.Rules
}

func (j Job) starts(g *core.Graph) []int {
	if len(j.Starts) > 0 {
		return j.Starts
	}
	all := make([]int, g.NumNodes())
	for i := range all {
		all[i] = i
	}

	return all
}
