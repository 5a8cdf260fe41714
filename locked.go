package ttlcache

import (
	"sync"
	"time"
)

// Locked guards a Cache with a sync.RWMutex so it can be shared between
// goroutines. Values are returned by copy; use Do for anything that needs
// pointers or entry views.
type Locked[K comparable, V any] struct {
	mu sync.RWMutex
	c  *Cache[K, V]
}

// NewLocked creates an empty Locked cache with the given options.
func NewLocked[K comparable, V any](opts ...Option[K, V]) *Locked[K, V] {
	return &Locked[K, V]{c: New(opts...)}
}

// Get returns the live value under key.
func (l *Locked[K, V]) Get(key K) (V, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.c.Get(key)
}

// GetProlong returns the live value under key and renews its deadline.
func (l *Locked[K, V]) GetProlong(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.c.GetMutProlong(key)
	if !ok {
		var zero V
		return zero, false
	}
	return *p, true
}

// ContainsKey reports whether key holds a live value.
func (l *Locked[K, V]) ContainsKey(key K) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.c.ContainsKey(key)
}

// Insert stores value under key; see Cache.Insert.
func (l *Locked[K, V]) Insert(key K, value V, ttl time.Duration) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.c.Insert(key, value, ttl)
}

// Update calls fn with a pointer to the live value under key and reports
// whether there was one. The deadline is unchanged.
func (l *Locked[K, V]) Update(key K, fn func(*V)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.c.GetMut(key)
	if ok {
		fn(p)
	}
	return ok
}

// ResetTTL renews the deadline of the live value under key.
func (l *Locked[K, V]) ResetTTL(key K) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.c.ResetTTL(key)
}

// Remove deletes key; see Cache.Remove.
func (l *Locked[K, V]) Remove(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.c.Remove(key)
}

// Clear removes every entry.
func (l *Locked[K, V]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.c.Clear()
}

// RemoveExpired sweeps the expired prefix; see Cache.RemoveExpired.
func (l *Locked[K, V]) RemoveExpired() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.c.RemoveExpired()
}

// Len returns the number of stored entries, expired ones included.
func (l *Locked[K, V]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.c.Len()
}

// Stats returns a snapshot of the hit/miss counters.
func (l *Locked[K, V]) Stats() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.c.Stats()
}

// Range calls fn for each live entry from oldest to newest until fn
// returns false. The lock is held for the whole walk.
func (l *Locked[K, V]) Range(fn func(K, V) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for k, v := range l.c.All() {
		if !fn(k, v) {
			return
		}
	}
}

// Do runs fn with exclusive access to the underlying cache. Pointers and
// views obtained inside fn must not escape it.
func (l *Locked[K, V]) Do(fn func(*Cache[K, V])) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fn(l.c)
}
