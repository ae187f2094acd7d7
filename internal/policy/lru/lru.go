// Package lru implements a least-recently-used eviction policy backed by
// hashicorp/golang-lru.
package lru

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hoardcache/hoard/internal/policy"
)

// Compile-time check that Policy implements policy.Policy.
var _ policy.Policy[string, int] = (*Policy[string, int])(nil)

// Policy wraps an lru.Cache. The underlying cache reports evictions
// through a callback; Put captures the most recent one so it can return
// the discarded pair. Callers serialize access, so the capture is safe.
type Policy[K comparable, V any] struct {
	cache *lru.Cache[K, V]

	lastKey   K
	lastValue V
	lastEvict bool
}

// New creates an LRU policy holding at most capacity entries.
func New[K comparable, V any](capacity int) (*Policy[K, V], error) {
	p := &Policy[K, V]{}
	c, err := lru.NewWithEvict(capacity, func(key K, value V) {
		p.lastKey = key
		p.lastValue = value
		p.lastEvict = true
	})
	if err != nil {
		return nil, err
	}
	p.cache = c
	return p, nil
}

// Put inserts or overwrites an entry, reporting any eviction it forced.
func (p *Policy[K, V]) Put(key K, value V) (K, V, bool) {
	p.lastEvict = false
	p.cache.Add(key, value)
	return p.lastKey, p.lastValue, p.lastEvict
}

// Get retrieves a value, marking the entry most recently used.
func (p *Policy[K, V]) Get(key K) (V, bool) {
	return p.cache.Get(key)
}

// Len returns the number of live entries.
func (p *Policy[K, V]) Len() int { return p.cache.Len() }

// Purge discards all entries.
func (p *Policy[K, V]) Purge() {
	p.cache.Purge()
	p.lastEvict = false
}

// Name returns "lru".
func (p *Policy[K, V]) Name() string { return "lru" }
