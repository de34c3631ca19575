// Package game defines the game rules, verdict values, options and sentinel
// errors of the cycle-game search engine.
package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/cyclegames/pool"
)

// Sentinel errors for search operations.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to a search.
	ErrGraphNil = errors.New("game: graph is nil")

	// ErrPathStateNil is returned when a nil *PathState is passed to a search.
	ErrPathStateNil = errors.New("game: path state is nil")

	// ErrNodeOutOfRange indicates a node index outside [0, NumNodes).
	ErrNodeOutOfRange = errors.New("game: node out of range")

	// ErrDimensionMismatch indicates a PathState sized for a different graph.
	ErrDimensionMismatch = errors.New("game: path state and graph sizes differ")

	// ErrEntryNotVisited indicates the searched node is not marked visited.
	ErrEntryNotVisited = errors.New("game: entry node not marked visited")

	// ErrUnknownRule indicates a Rule value or name that is neither MAC nor AAC.
	ErrUnknownRule = errors.New("game: unknown rule")

	// ErrBranchFailed indicates a parallel branch ended in Error.
	ErrBranchFailed = errors.New("game: branch failed")

	// ErrUnexpectedCancel indicates a parallel branch reported Cancelled
	// although no cancellation had been requested.
	ErrUnexpectedCancel = errors.New("game: branch cancelled without request")
)

// Rule selects the cycle game being played.
type Rule uint8

const (
	// MAC is Make-A-Cycle: moving along an unused edge to a visited node wins.
	MAC Rule = iota + 1
	// AAC is Avoid-A-Cycle: visited nodes are off limits; no legal move loses.
	AAC
)

// String returns "MAC", "AAC" or "Rule(n)".
func (r Rule) String() string {
	switch r {
	case MAC:
		return "MAC"
	case AAC:
		return "AAC"
	default:
		return fmt.Sprintf("Rule(%d)", uint8(r))
	}
}

// valid reports whether r is MAC or AAC.
func (r Rule) valid() bool { return r == MAC || r == AAC }

// ParseRule parses "MAC" or "AAC", case-insensitively.
func ParseRule(s string) (Rule, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MAC":
		return MAC, nil
	case "AAC":
		return AAC, nil
	default:
		return 0, fmt.Errorf("ParseRule(%q): %w", s, ErrUnknownRule)
	}
}

// State is the outcome of a search for the player about to move.
// Win and Loss are verdicts; Cancelled and Error are control values.
type State uint8

const (
	Loss      State = iota // the mover cannot avoid losing
	Win                    // the mover can force a win
	Cancelled              // a cooperative stop was observed
	Error                  // invalid input or a failed branch
)

// String renders LOSS, WIN, CANCELLED or ERROR.
func (s State) String() string {
	switch s {
	case Loss:
		return "LOSS"
	case Win:
		return "WIN"
	case Cancelled:
		return "CANCELLED"
	case Error:
		return "ERROR"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Winner names the player who wins a game whose root verdict is s: the
// first mover ("P1") on Win, the second ("P2") on Loss, "" otherwise.
func (s State) Winner() string {
	switch s {
	case Win:
		return "P1"
	case Loss:
		return "P2"
	default:
		return ""
	}
}

// Option configures Search, Solve and SearchParallel.
type Option func(*Options)

// Options holds the configurable parameters of a search.
type Options struct {
	// Ctx cancels a sequential search; checked once per recursive call.
	// SearchParallel takes its context as an argument and ignores this field.
	Ctx context.Context

	// Trace, if non-nil, receives human-readable progress of a sequential search.
	Trace *Trace

	// Stats, if non-nil, accumulates search counters.
	Stats *Stats

	// Workers bounds the pool SearchParallel creates; <= 0 means GOMAXPROCS.
	Workers int

	// Pool, if non-nil, is used by SearchParallel instead of a private pool.
	Pool *pool.Pool

	// PollInterval is the sleep between SearchParallel completion polls.
	PollInterval time.Duration
}

// DefaultPollInterval is the coordinator's default sleep between polls.
const DefaultPollInterval = time.Millisecond

// DefaultOptions returns Options with a background context, no trace or
// stats, GOMAXPROCS workers and a 1ms poll interval.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		PollInterval: DefaultPollInterval,
	}
}

// WithContext sets the cancellation context of a sequential search.
// A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTrace attaches t to a sequential search. Panics if t is nil.
func WithTrace(t *Trace) Option {
	if t == nil {
		panic("game: WithTrace(nil)")
	}

	return func(o *Options) { o.Trace = t }
}

// WithStats attaches s to collect counters. Panics if s is nil.
func WithStats(s *Stats) Option {
	if s == nil {
		panic("game: WithStats(nil)")
	}

	return func(o *Options) { o.Stats = s }
}

// WithWorkers bounds the private pool of SearchParallel to n tasks.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithPool makes SearchParallel submit to p instead of creating its own pool.
// Panics if p is nil.
func WithPool(p *pool.Pool) Option {
	if p == nil {
		panic("game: WithPool(nil)")
	}

	return func(o *Options) { o.Pool = p }
}

// WithPollInterval sets the coordinator's sleep between polls.
// Panics if d <= 0.
func WithPollInterval(d time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("game: WithPollInterval(%v): must be positive", d))
	}

	return func(o *Options) { o.PollInterval = d }
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
