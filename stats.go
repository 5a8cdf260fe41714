package ttlcache

import (
	"sync/atomic"
	"time"
)

// Stats holds hit/miss counters using atomics for lock-free updates.
// Increments are not ordered with respect to the data operations that
// produced them, nor with respect to a concurrent reset.
type Stats struct {
	hits   atomic.Uint64
	misses atomic.Uint64
	since  atomic.Int64 // unix nanoseconds of the last reset
}

func newStats(now time.Time) *Stats {
	s := &Stats{}
	s.since.Store(now.UnixNano())
	return s
}

// Hits returns the number of lookups that found a live entry.
func (s *Stats) Hits() uint64 {
	return s.hits.Load()
}

// Misses returns the number of lookups that found nothing live.
// Expired entries count as misses.
func (s *Stats) Misses() uint64 {
	return s.misses.Load()
}

// Since returns when counting started: creation or the last reset.
func (s *Stats) Since() time.Time {
	return time.Unix(0, s.since.Load())
}

// HitRate returns the hit rate as a value between 0 and 1.
// Returns 0 if there have been no lookups.
func (s *Stats) HitRate() float64 {
	return s.Snapshot().HitRate()
}

func (s *Stats) hit() {
	s.hits.Add(1)
}

func (s *Stats) miss() {
	s.misses.Add(1)
}

func (s *Stats) reset(now time.Time) {
	s.hits.Store(0)
	s.misses.Store(0)
	s.since.Store(now.UnixNano())
}

func (s *Stats) clone() *Stats {
	c := &Stats{}
	c.hits.Store(s.hits.Load())
	c.misses.Store(s.misses.Load())
	c.since.Store(s.since.Load())
	return c
}

// Snapshot is a point-in-time copy of cache statistics.
type Snapshot struct {
	Hits   uint64
	Misses uint64
	Since  time.Time
}

// HitRate returns the hit rate as a value between 0 and 1.
// Returns 0 if there have been no lookups.
func (s Snapshot) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Snapshot returns a point-in-time copy of the stats.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
		Since:  s.Since(),
	}
}
