// Package ttlcache provides a generic in-memory map whose entries each carry
// their own time-to-live.
//
// # Overview
//
// Every value is stored with a deadline computed as insertion time plus its
// TTL. Expired entries are never returned: lookups, removals and iteration
// treat them as absent the moment they are observed. There is no background
// goroutine; expired entries are physically dropped lazily, either when an
// operation stumbles on them or by the sweep that runs on Insert.
//
// # Basic Usage
//
//	cache := ttlcache.New[string, int]()
//
//	cache.Insert("a", 1, 30*time.Second)
//
//	if v, ok := cache.Get("a"); ok {
//		fmt.Println(v)
//	}
//
//	cache.Remove("a")
//
// # Ordering and Sweeping
//
// Entries are kept in insertion order, oldest first. Reinserting a key moves
// it to the newest position. Order is never re-sorted by deadline.
//
// RemoveExpired trims expired entries from the oldest end and stops at the
// first live one. This is cheap and catches everything when TTLs are
// uniform. With mixed TTLs an entry that expires early can sit behind a
// longer-lived one until that one goes; it stays invisible, just not freed.
// RemoveAllExpired does a full pass when that matters.
//
// Reverse iteration makes the same assumption: Iter.NextBack and Backward
// stop at the first expired entry they meet.
//
// # Entry Views
//
// Entry resolves a key once and returns either an *OccupiedEntry or a
// *VacantEntry, so callers can inspect-or-insert without a second lookup:
//
//	switch e := cache.Entry("hits").(type) {
//	case *ttlcache.OccupiedEntry[string, int]:
//		*e.GetMut()++
//	case *ttlcache.VacantEntry[string, int]:
//		e.Insert(1, time.Minute)
//	}
//
// # Renewal
//
// GetMutProlong and ResetTTL push a live entry's deadline out to now plus
// the TTL it was inserted with. Get and GetMut never touch deadlines.
//
// # Statistics
//
// Hit and miss counting is opt-in:
//
//	cache := ttlcache.New[string, int](ttlcache.WithStats[string, int]())
//
//	cache.Get("missing")
//	fmt.Println(cache.MissCount()) // 1
//
// Only Get, GetMut, GetMutProlong and ContainsKey count.
//
// # Testing
//
// Inject a custom clock to control time in tests:
//
//	type fakeClock struct{ now time.Time }
//	func (c *fakeClock) Now() time.Time { return c.now }
//
//	clock := &fakeClock{now: time.Now()}
//	cache := ttlcache.New[string, int](ttlcache.WithClock[string, int](clock))
//
//	cache.Insert("key", 42, time.Minute)
//	clock.now = clock.now.Add(2 * time.Minute)
//	_, ok := cache.Get("key") // ok == false
//
// # Thread Safety
//
// Cache is not safe for concurrent use; only its counters are atomic.
// Locked wraps a Cache in a sync.RWMutex for callers that share one between
// goroutines.
package ttlcache
