package ttlcache

import "log/slog"

type config[K comparable, V any] struct {
	capacity int
	stats    bool
	clock    Clock
	logger   *slog.Logger
	onHit    func(K, V)
	onMiss   func(K)
	onExpire func(K, V)
}

func defaultConfig[K comparable, V any]() config[K, V] {
	return config[K, V]{
		clock:  realClock{},
		logger: slog.New(slog.DiscardHandler),
	}
}

// Option configures a Cache.
type Option[K comparable, V any] func(*config[K, V])

// WithCapacity presizes the underlying map. It is a hint, not a limit:
// the cache never refuses or evicts entries because of it.
func WithCapacity[K comparable, V any](n int) Option[K, V] {
	return func(c *config[K, V]) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithStats enables hit/miss counting.
func WithStats[K comparable, V any]() Option[K, V] {
	return func(c *config[K, V]) {
		c.stats = true
	}
}

// WithClock sets a custom clock for time operations.
// Useful for testing TTL behavior.
func WithClock[K comparable, V any](clk Clock) Option[K, V] {
	return func(c *config[K, V]) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithLogger sets the logger used for sweep and clear diagnostics.
// Records are emitted at debug level.
func WithLogger[K comparable, V any](l *slog.Logger) Option[K, V] {
	return func(c *config[K, V]) {
		if l != nil {
			c.logger = l
		}
	}
}

// OnHit sets a callback invoked on counted lookups that find a live entry.
func OnHit[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onHit = fn
	}
}

// OnMiss sets a callback invoked on counted lookups that find nothing live.
func OnMiss[K comparable, V any](fn func(K)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onMiss = fn
	}
}

// OnExpire sets a callback invoked when an expired entry is physically
// dropped from the cache.
func OnExpire[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onExpire = fn
	}
}
