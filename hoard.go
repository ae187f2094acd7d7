// Package hoard provides a fixed-capacity in-memory key/value cache with
// pluggable eviction policies.
//
// The default policy is least-frequently-used with a least-recently-used
// tie-break: when the cache is full, the entry with the lowest access
// count is discarded, and among entries tied at that count the one that
// has gone longest without being touched loses.
//
// Example usage:
//
//	cache, err := hoard.New(
//	    hoard.WithCapacity[string, int](100),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cache.Put("answer", 42)
//	if v, ok := cache.Get("answer"); ok {
//	    fmt.Println(v)
//	}
package hoard

import (
	"errors"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/hoardcache/hoard/internal/policy"
	"github.com/hoardcache/hoard/internal/stats"
)

// DefaultCapacity is the entry limit used when WithCapacity is not given.
const DefaultCapacity = 100

// ErrInvalidCapacity indicates a non-positive capacity was configured.
var ErrInvalidCapacity = errors.New("hoard: capacity must be positive")

// EvictFunc is called with each discarded entry.
type EvictFunc[K comparable, V any] func(key K, value V)

// Cache is a bounded key/value cache. Put and Get never fail: invalid
// input is a silent no-op and a missing key is reported through the ok
// result. A Cache is safe for concurrent use; one mutex guards the whole
// structure so every operation is atomic with respect to the others.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	policy   policy.Policy[K, V]
	capacity int
	stats    stats.Collector
	logger   *zap.Logger
	onEvict  EvictFunc[K, V]
}

// New creates a new Cache with the given options.
// If no options are provided, an LFU cache holding DefaultCapacity
// entries is returned.
func New[K comparable, V any](opts ...Option[K, V]) (*Cache[K, V], error) {
	cfg := defaultConfig[K, V]()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	if cfg.capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	p := cfg.policy
	if p == nil {
		p = newDefaultPolicy[K, V](cfg.capacity)
	}

	c := &Cache[K, V]{
		policy:   p,
		capacity: cfg.capacity,
		stats:    cfg.stats,
		logger:   cfg.logger,
		onEvict:  cfg.onEvict,
	}

	c.logger.Debug("cache initialized",
		zap.Int("capacity", c.capacity),
		zap.String("policy", p.Name()),
	)

	return c, nil
}

// Put stores value under key. Overwriting an existing key counts as a use
// and never evicts; a new key entering a full cache evicts one entry per
// the policy. If key or value is a nil pointer, interface, map, slice,
// channel or function, Put does nothing.
func (c *Cache[K, V]) Put(key K, value V) {
	if isNil(key) || isNil(value) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.IncCounter(stats.MetricPuts, 1)

	evictedKey, evictedValue, evicted := c.policy.Put(key, value)
	if evicted {
		c.stats.IncCounter(stats.MetricEvictions, 1)
		c.logger.Info("discard", zap.Any("key", evictedKey))
		if c.onEvict != nil {
			c.onEvict(evictedKey, evictedValue)
		}
	}

	c.stats.SetGauge(stats.MetricSize, int64(c.policy.Len()))
}

// Get returns the value stored under key. A hit counts as a use and may
// repromote the entry per the policy; a miss has no side effects beyond
// the miss counter.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if isNil(key) {
		var zero V
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.policy.Get(key)
	if ok {
		c.stats.IncCounter(stats.MetricHits, 1)
	} else {
		c.stats.IncCounter(stats.MetricMisses, 1)
	}
	return value, ok
}

// Len returns the number of live entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.policy.Len()
}

// Capacity returns the configured entry limit.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Purge discards all entries. Purged entries are not reported as
// evictions.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.policy.Purge()
	c.stats.SetGauge(stats.MetricSize, 0)
}

// PolicyName returns the name of the eviction policy in use.
func (c *Cache[K, V]) PolicyName() string {
	return c.policy.Name()
}

// isNil reports whether v's dynamic value is nil for kinds that can be
// nil. Non-nilable kinds always report false.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
