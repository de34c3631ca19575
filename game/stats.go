package game

import "sync/atomic"

// Stats accumulates search counters. The zero value is ready to use and may
// be shared by concurrent searches.
type Stats struct {
	positions  atomic.Int64
	dispatched atomic.Int64
	joined     atomic.Int64
	cancelled  atomic.Int64
}

// Positions returns the number of positions (recursive calls) evaluated.
func (s *Stats) Positions() int64 { return s.positions.Load() }

// Dispatched returns the number of parallel branches submitted to a pool.
func (s *Stats) Dispatched() int64 { return s.dispatched.Load() }

// Joined returns the number of parallel branches joined.
func (s *Stats) Joined() int64 { return s.joined.Load() }

// Cancelled returns the number of joined branches that ended Cancelled.
func (s *Stats) Cancelled() int64 { return s.cancelled.Load() }

// Reset zeroes every counter.
func (s *Stats) Reset() {
	s.positions.Store(0)
	s.dispatched.Store(0)
	s.joined.Store(0)
	s.cancelled.Store(0)
}
