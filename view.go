package ttlcache

import "time"

// Entry is a view into a single key of a Cache, resolved at the moment
// Cache.Entry was called. It is either an *OccupiedEntry or a *VacantEntry:
//
//	switch e := cache.Entry("k").(type) {
//	case *ttlcache.OccupiedEntry[string, int]:
//		*e.GetMut() += 1
//	case *ttlcache.VacantEntry[string, int]:
//		e.Insert(1, time.Minute)
//	}
//
// A view holds the cache exclusively. Calling any other mutating method on
// the cache while a view is in use invalidates it.
type Entry[K comparable, V any] interface {
	// Key returns the key the view was created for.
	Key() K

	sealed()
}

var (
	_ Entry[string, int] = (*OccupiedEntry[string, int])(nil)
	_ Entry[string, int] = (*VacantEntry[string, int])(nil)
)

// Entry returns a view of key. An entry that exists but has expired is
// removed first, so a VacantEntry always means there is no live value.
func (c *Cache[K, V]) Entry(key K) Entry[K, V] {
	if rec, ok := c.items.Get(key); ok {
		if !rec.isExpired(c.now()) {
			return &OccupiedEntry[K, V]{cache: c, key: key, rec: rec}
		}
		c.items.Delete(key)
		c.gen++
		c.expired(key, rec)
	}
	return &VacantEntry[K, V]{cache: c, key: key}
}

// GetOrInsertWith returns a pointer to the live value under key, calling fn
// to create one with the given ttl when there is none.
func (c *Cache[K, V]) GetOrInsertWith(key K, fn func() V, ttl time.Duration) *V {
	switch e := c.Entry(key).(type) {
	case *OccupiedEntry[K, V]:
		return e.GetMut()
	case *VacantEntry[K, V]:
		return e.Insert(fn(), ttl)
	}
	panic("ttlcache: unknown entry type")
}

// OccupiedEntry is a view of a key that held a live value when the view
// was created.
type OccupiedEntry[K comparable, V any] struct {
	cache *Cache[K, V]
	key   K
	rec   *record[V]
}

func (*OccupiedEntry[K, V]) sealed() {}

// Key returns the entry's key.
func (e *OccupiedEntry[K, V]) Key() K {
	return e.key
}

// Get returns the stored value.
func (e *OccupiedEntry[K, V]) Get() V {
	return e.rec.value
}

// GetMut returns a pointer to the stored value. The deadline is unchanged.
func (e *OccupiedEntry[K, V]) GetMut() *V {
	return &e.rec.value
}

// Insert replaces the value and ttl, moves the key to the newest position
// and returns the old value. Unlike Cache.Insert it does not sweep.
func (e *OccupiedEntry[K, V]) Insert(value V, ttl time.Duration) V {
	c := e.cache
	old := e.rec.value
	e.rec = newRecord(value, ttl, c.now())
	c.items.Delete(e.key)
	c.items.Set(e.key, e.rec)
	c.gen++
	return old
}

// VacantEntry is a view of a key with no live value.
type VacantEntry[K comparable, V any] struct {
	cache *Cache[K, V]
	key   K
	used  bool
}

func (*VacantEntry[K, V]) sealed() {}

// Key returns the key that would be inserted.
func (e *VacantEntry[K, V]) Key() K {
	return e.key
}

// Insert stores value under the view's key with the given ttl and returns
// a pointer to the stored value. A VacantEntry can be inserted into once;
// a second call panics.
func (e *VacantEntry[K, V]) Insert(value V, ttl time.Duration) *V {
	if e.used {
		panic("ttlcache: VacantEntry.Insert called twice")
	}
	e.used = true

	c := e.cache
	rec := newRecord(value, ttl, c.now())
	c.items.Set(e.key, rec)
	c.gen++
	return &rec.value
}
