// Package lifo implements a last-in-first-out eviction policy: the most
// recently inserted entry is discarded first.
package lifo

import (
	"container/list"

	"github.com/hoardcache/hoard/internal/policy"
)

// Compile-time check that Policy implements policy.Policy.
var _ policy.Policy[string, int] = (*Policy[string, int])(nil)

type node[K comparable, V any] struct {
	key   K
	value V
}

// Policy is a LIFO cache. The list runs oldest to newest; the back is the
// victim.
type Policy[K comparable, V any] struct {
	capacity int
	order    *list.List
	elems    map[K]*list.Element
}

// New creates a LIFO policy holding at most capacity entries.
func New[K comparable, V any](capacity int) *Policy[K, V] {
	return &Policy[K, V]{
		capacity: capacity,
		order:    list.New(),
		elems:    make(map[K]*list.Element),
	}
}

// Put inserts or overwrites an entry. Overwrites keep insertion order and
// never evict.
func (p *Policy[K, V]) Put(key K, value V) (evictedKey K, evictedValue V, evicted bool) {
	if p.capacity <= 0 {
		return
	}
	if elem, ok := p.elems[key]; ok {
		elem.Value.(*node[K, V]).value = value
		return
	}
	if len(p.elems) >= p.capacity {
		newest := p.order.Back().Value.(*node[K, V])
		p.order.Remove(p.elems[newest.key])
		delete(p.elems, newest.key)
		evictedKey, evictedValue, evicted = newest.key, newest.value, true
	}
	p.elems[key] = p.order.PushBack(&node[K, V]{key: key, value: value})
	return
}

// Get retrieves a value without touching the eviction order.
func (p *Policy[K, V]) Get(key K) (V, bool) {
	if elem, ok := p.elems[key]; ok {
		return elem.Value.(*node[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Len returns the number of live entries.
func (p *Policy[K, V]) Len() int { return len(p.elems) }

// Purge discards all entries.
func (p *Policy[K, V]) Purge() {
	p.order.Init()
	p.elems = make(map[K]*list.Element)
}

// Name returns "lifo".
func (p *Policy[K, V]) Name() string { return "lifo" }
