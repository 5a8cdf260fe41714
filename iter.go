package ttlcache

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// cursor walks the cache's order from both ends until they meet. It is
// pinned to the generation it was created at and reports exhaustion once
// the cache has been structurally modified.
type cursor[K comparable, V any] struct {
	cache *Cache[K, V]
	gen   uint64
	front *orderedmap.Pair[K, *record[V]]
	back  *orderedmap.Pair[K, *record[V]]
	done  bool

	// backDone is set once the walk from the newest end has met an expired
	// entry. The front end is unaffected.
	backDone bool
}

func newCursor[K comparable, V any](c *Cache[K, V]) cursor[K, V] {
	c.RemoveExpired()
	cur := cursor[K, V]{
		cache: c,
		gen:   c.gen,
		front: c.items.Oldest(),
		back:  c.items.Newest(),
	}
	cur.done = cur.front == nil
	return cur
}

func (cur *cursor[K, V]) stale() bool {
	if cur.done || cur.cache.gen != cur.gen {
		cur.done = true
	}
	return cur.done
}

func (cur *cursor[K, V]) popFront() *orderedmap.Pair[K, *record[V]] {
	if cur.stale() {
		return nil
	}
	p := cur.front
	if p == cur.back {
		cur.done = true
	} else {
		cur.front = p.Next()
	}
	return p
}

func (cur *cursor[K, V]) popBack() *orderedmap.Pair[K, *record[V]] {
	if cur.stale() {
		return nil
	}
	p := cur.back
	if p == cur.front {
		cur.done = true
	} else {
		cur.back = p.Prev()
	}
	return p
}

// next returns the next live pair from the front, skipping expired ones.
func (cur *cursor[K, V]) next() *orderedmap.Pair[K, *record[V]] {
	for {
		p := cur.popFront()
		if p == nil {
			return nil
		}
		if !p.Value.isExpired(cur.cache.now()) {
			return p
		}
	}
}

// nextBack returns the next live pair from the back. Entries are assumed
// to expire in insertion order, so the first expired one ends the walk.
func (cur *cursor[K, V]) nextBack() *orderedmap.Pair[K, *record[V]] {
	if cur.backDone {
		return nil
	}
	p := cur.popBack()
	if p == nil {
		return nil
	}
	if p.Value.isExpired(cur.cache.now()) {
		cur.backDone = true
		return nil
	}
	return p
}

// Iter is a single-pass, double-ended iterator over live entries from
// oldest to newest. Expiration is checked as each entry is visited.
type Iter[K comparable, V any] struct {
	cur cursor[K, V]
}

// Iter sweeps the expired prefix and returns an iterator over the
// remaining entries. The cache must not be modified while it is in use;
// if it is, the iterator ends.
func (c *Cache[K, V]) Iter() *Iter[K, V] {
	return &Iter[K, V]{cur: newCursor(c)}
}

// Next returns the next live entry from the oldest end.
func (it *Iter[K, V]) Next() (K, V, bool) {
	p := it.cur.next()
	if p == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}
	return p.Key, p.Value.value, true
}

// NextBack returns the next live entry from the newest end. It stops at
// the first expired entry it meets, so with mixed TTLs it can yield fewer
// entries than Next would.
func (it *Iter[K, V]) NextBack() (K, V, bool) {
	p := it.cur.nextBack()
	if p == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}
	return p.Key, p.Value.value, true
}

// IterMut is Iter with mutable access to the values.
type IterMut[K comparable, V any] struct {
	cur cursor[K, V]
}

// IterMut sweeps the expired prefix and returns an iterator yielding
// pointers to the remaining values. Writing through the pointers does not
// change deadlines.
func (c *Cache[K, V]) IterMut() *IterMut[K, V] {
	return &IterMut[K, V]{cur: newCursor(c)}
}

// Next returns the next live entry from the oldest end.
func (it *IterMut[K, V]) Next() (K, *V, bool) {
	p := it.cur.next()
	if p == nil {
		var k K
		return k, nil, false
	}
	return p.Key, &p.Value.value, true
}

// NextBack returns the next live entry from the newest end, stopping at
// the first expired one.
func (it *IterMut[K, V]) NextBack() (K, *V, bool) {
	p := it.cur.nextBack()
	if p == nil {
		var k K
		return k, nil, false
	}
	return p.Key, &p.Value.value, true
}

// All returns a sequence of live entries from oldest to newest, for use
// with range. The sweep runs when iteration starts.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := c.Iter()
		for {
			k, v, ok := it.Next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}

// Backward returns a sequence of live entries from newest to oldest. Like
// Iter.NextBack it stops at the first expired entry.
func (c *Cache[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := c.Iter()
		for {
			k, v, ok := it.NextBack()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}
