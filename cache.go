package ttlcache

import (
	"log/slog"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Cache is a generic in-memory map whose entries each carry their own
// time-to-live. Entries are kept in insertion order, oldest first.
//
// A Cache is not safe for concurrent use. Wrap it in a Locked, or provide
// external locking, when it is shared between goroutines.
type Cache[K comparable, V any] struct {
	items *orderedmap.OrderedMap[K, *record[V]]
	cfg   config[K, V]
	stats *Stats // nil unless WithStats was given
	log   *slog.Logger

	// gen changes on every structural mutation so that live cursors can
	// tell when the order they were walking is gone.
	gen uint64
}

// New creates an empty Cache with the given options.
func New[K comparable, V any](opts ...Option[K, V]) *Cache[K, V] {
	cfg := defaultConfig[K, V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Cache[K, V]{
		items: newItems[K, V](cfg.capacity),
		cfg:   cfg,
		log:   cfg.logger.With(slog.String("component", "ttlcache")),
	}
	if cfg.stats {
		c.stats = newStats(cfg.clock.Now())
	}
	return c
}

func newItems[K comparable, V any](capacity int) *orderedmap.OrderedMap[K, *record[V]] {
	return orderedmap.New[K, *record[V]](capacity)
}

func (c *Cache[K, V]) now() time.Time {
	return c.cfg.clock.Now()
}

// live returns the record for key if it exists and has not expired.
func (c *Cache[K, V]) live(key K) (*record[V], bool) {
	rec, ok := c.items.Get(key)
	if !ok || rec.isExpired(c.now()) {
		return nil, false
	}
	return rec, true
}

// count records the outcome of a counted lookup.
func (c *Cache[K, V]) count(key K, rec *record[V]) {
	if rec == nil {
		if c.stats != nil {
			c.stats.miss()
		}
		if c.cfg.onMiss != nil {
			c.cfg.onMiss(key)
		}
		return
	}
	if c.stats != nil {
		c.stats.hit()
	}
	if c.cfg.onHit != nil {
		c.cfg.onHit(key, rec.value)
	}
}

func (c *Cache[K, V]) expired(key K, rec *record[V]) {
	if c.cfg.onExpire != nil {
		c.cfg.onExpire(key, rec.value)
	}
}

// Get returns the value stored under key if it is present and unexpired.
// An expired entry is reported as absent but left in place.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	rec, _ := c.live(key)
	c.count(key, rec)
	if rec == nil {
		var zero V
		return zero, false
	}
	return rec.value, true
}

// GetMut returns a pointer to the stored value if it is present and
// unexpired. The deadline is left untouched. The pointer stays valid until
// the entry is removed or replaced.
func (c *Cache[K, V]) GetMut(key K) (*V, bool) {
	rec, _ := c.live(key)
	c.count(key, rec)
	if rec == nil {
		return nil, false
	}
	return &rec.value, true
}

// GetMutProlong is GetMut that also pushes the deadline out to now plus the
// TTL the entry was inserted with.
func (c *Cache[K, V]) GetMutProlong(key K) (*V, bool) {
	rec, _ := c.live(key)
	c.count(key, rec)
	if rec == nil {
		return nil, false
	}
	rec.renew(c.now())
	return &rec.value, true
}

// ResetTTL renews a live entry's deadline to now plus its original TTL.
// Absent and expired entries are left alone.
func (c *Cache[K, V]) ResetTTL(key K) {
	if rec, ok := c.live(key); ok {
		rec.renew(c.now())
	}
}

// ContainsKey reports whether key holds a live entry. It is a Get and
// counts toward the stats like one.
func (c *Cache[K, V]) ContainsKey(key K) bool {
	_, ok := c.Get(key)
	return ok
}

// Insert stores value under key with its own ttl, moving key to the newest
// position. The previous value is returned only if it had not expired.
//
// Insert first sweeps the expired prefix of the cache; see RemoveExpired.
func (c *Cache[K, V]) Insert(key K, value V, ttl time.Duration) (V, bool) {
	c.RemoveExpired()

	now := c.now()
	old, existed := c.items.Delete(key)
	c.items.Set(key, newRecord(value, ttl, now))
	c.gen++

	if !existed {
		var zero V
		return zero, false
	}
	if old.isExpired(now) {
		c.expired(key, old)
		var zero V
		return zero, false
	}
	return old.value, true
}

// Remove deletes key whatever its state. The value is returned only if the
// entry was still live.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	var zero V

	rec, ok := c.items.Delete(key)
	if !ok {
		return zero, false
	}
	c.gen++

	if rec.isExpired(c.now()) {
		c.expired(key, rec)
		return zero, false
	}
	return rec.value, true
}

// Clear removes every entry without looking at deadlines.
func (c *Cache[K, V]) Clear() {
	n := c.items.Len()
	c.items = newItems[K, V](c.cfg.capacity)
	c.gen++
	c.log.Debug("cleared", slog.Int("entries", n))
}

// Len returns the number of stored entries.
// May include expired entries that haven't been cleaned up yet.
func (c *Cache[K, V]) Len() int {
	return c.items.Len()
}

// RemoveExpired drops expired entries from the oldest end of the cache and
// stops at the first live one. It returns how many were removed.
//
// The sweep assumes entries expire roughly in insertion order. With mixed
// TTLs a short-lived entry inserted after a long-lived one stays put until
// it reaches the front; Get, Remove and iteration still hide it. Use
// RemoveAllExpired for a full pass.
func (c *Cache[K, V]) RemoveExpired() int {
	now := c.now()
	removed := 0
	for {
		oldest := c.items.Oldest()
		if oldest == nil || !oldest.Value.isExpired(now) {
			break
		}
		c.items.Delete(oldest.Key)
		c.expired(oldest.Key, oldest.Value)
		removed++
	}
	if removed > 0 {
		c.gen++
		c.log.Debug("swept expired prefix", slog.Int("removed", removed))
	}
	return removed
}

// RemoveAllExpired walks the whole cache and drops every expired entry.
// It costs O(n), unlike RemoveExpired.
func (c *Cache[K, V]) RemoveAllExpired() int {
	now := c.now()
	removed := 0
	for pair := c.items.Oldest(); pair != nil; {
		next := pair.Next()
		if pair.Value.isExpired(now) {
			c.items.Delete(pair.Key)
			c.expired(pair.Key, pair.Value)
			removed++
		}
		pair = next
	}
	if removed > 0 {
		c.gen++
		c.log.Debug("swept all expired", slog.Int("removed", removed))
	}
	return removed
}

// Stats returns a snapshot of the hit/miss counters. The snapshot is zero
// when the cache was built without WithStats.
func (c *Cache[K, V]) Stats() Snapshot {
	if c.stats == nil {
		return Snapshot{}
	}
	return c.stats.Snapshot()
}

// HitCount returns the number of counted lookups that found a live entry
// since the counters were last reset.
func (c *Cache[K, V]) HitCount() uint64 {
	if c.stats == nil {
		return 0
	}
	return c.stats.Hits()
}

// MissCount returns the number of counted lookups that found nothing live
// since the counters were last reset. Expired entries count as misses.
func (c *Cache[K, V]) MissCount() uint64 {
	if c.stats == nil {
		return 0
	}
	return c.stats.Misses()
}

// ResetStatsCounter zeroes both counters and restamps StatsSince.
func (c *Cache[K, V]) ResetStatsCounter() {
	if c.stats == nil {
		return
	}
	c.stats.reset(c.now())
}

// StatsSince returns when counting started: cache creation or the last
// ResetStatsCounter, whichever is more recent.
func (c *Cache[K, V]) StatsSince() time.Time {
	if c.stats == nil {
		return time.Time{}
	}
	return c.stats.Since()
}

// Clone returns an independent copy of the cache. Values are copied by
// assignment; use CloneFunc when V holds references that must not be shared.
func (c *Cache[K, V]) Clone() *Cache[K, V] {
	return c.CloneFunc(func(v V) V { return v })
}

// CloneFunc returns an independent copy of the cache, passing every value
// through fn. Deadlines, order and counters are carried over.
func (c *Cache[K, V]) CloneFunc(fn func(V) V) *Cache[K, V] {
	out := &Cache[K, V]{
		items: newItems[K, V](c.items.Len()),
		cfg:   c.cfg,
		log:   c.log,
	}
	for pair := c.items.Oldest(); pair != nil; pair = pair.Next() {
		rec := *pair.Value
		rec.value = fn(rec.value)
		out.items.Set(pair.Key, &rec)
	}
	if c.stats != nil {
		out.stats = c.stats.clone()
	}
	return out
}
