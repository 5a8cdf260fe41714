package ttlcache

import "time"

// record is the stored form of a value. expiration is always derived from
// the clock plus duration, never assigned directly.
type record[V any] struct {
	value      V
	expiration time.Time
	duration   time.Duration
}

func newRecord[V any](value V, ttl time.Duration, now time.Time) *record[V] {
	return &record[V]{
		value:      value,
		expiration: now.Add(ttl),
		duration:   ttl,
	}
}

// isExpired reports whether now is strictly past the deadline. A record is
// still live at exactly its expiration instant.
func (r *record[V]) isExpired(now time.Time) bool {
	return now.After(r.expiration)
}

func (r *record[V]) renew(now time.Time) {
	r.expiration = now.Add(r.duration)
}
