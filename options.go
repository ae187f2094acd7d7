package hoard

import (
	"go.uber.org/zap"

	"github.com/hoardcache/hoard/internal/policy"
	"github.com/hoardcache/hoard/internal/policy/lfu"
	"github.com/hoardcache/hoard/internal/stats"
)

// Option configures a Cache.
type Option[K comparable, V any] interface {
	apply(*config[K, V])
}

// config holds the cache configuration.
type config[K comparable, V any] struct {
	capacity int
	policy   policy.Policy[K, V]
	stats    stats.Collector
	logger   *zap.Logger
	onEvict  EvictFunc[K, V]
}

// defaultConfig returns the default configuration.
func defaultConfig[K comparable, V any]() config[K, V] {
	return config[K, V]{
		capacity: DefaultCapacity,
		stats:    stats.NewNoop(),
		logger:   zap.NewNop(),
	}
}

// newDefaultPolicy returns the policy used when WithPolicy is not given.
func newDefaultPolicy[K comparable, V any](capacity int) policy.Policy[K, V] {
	return lfu.New[K, V](capacity)
}

// optionFunc wraps a function to implement Option.
type optionFunc[K comparable, V any] func(*config[K, V])

// Compile-time check that optionFunc implements Option.
var _ Option[string, int] = optionFunc[string, int](nil)

func (f optionFunc[K, V]) apply(c *config[K, V]) { f(c) }

// WithCapacity sets the entry limit. Default is DefaultCapacity.
func WithCapacity[K comparable, V any](n int) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) {
		c.capacity = n
	})
}

// WithPolicy sets the eviction policy. A policy passed here owns its own
// entry bound; the capacity option only governs the default policy.
func WithPolicy[K comparable, V any](p policy.Policy[K, V]) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) {
		c.policy = p
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats[K comparable, V any](collector stats.Collector) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) {
		c.stats = collector
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger[K comparable, V any](l *zap.Logger) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) {
		c.logger = l
	})
}

// WithOnEvict registers a callback invoked with every discarded entry.
func WithOnEvict[K comparable, V any](fn EvictFunc[K, V]) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) {
		c.onEvict = fn
	})
}
