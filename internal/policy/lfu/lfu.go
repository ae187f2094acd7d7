// Package lfu implements a least-frequently-used eviction policy that
// breaks frequency ties by evicting the least recently touched entry.
package lfu

import (
	"container/list"

	"github.com/hoardcache/hoard/internal/policy"
)

// Compile-time check that Policy implements policy.Policy.
var _ policy.Policy[string, int] = (*Policy[string, int])(nil)

// entry is a single cache slot. seq is restamped on insert and on every
// promotion, so within a frequency bucket the smallest seq belongs to the
// entry that has gone longest without being touched.
type entry[K comparable, V any] struct {
	key   K
	value V
	freq  int
	seq   uint64
	elem  *list.Element
}

// Policy is an LFU cache with LRU tie-breaking. It keeps three coupled
// structures: a key to entry map, a frequency to bucket map, and per-bucket
// lists held in ascending seq order. A live key appears in exactly one
// bucket, the one matching its current frequency, and an empty bucket is
// removed immediately. The front of the minimum-frequency bucket is always
// the next victim.
type Policy[K comparable, V any] struct {
	capacity int
	entries  map[K]*entry[K, V]
	buckets  map[int]*list.List
	minFreq  int
	seq      uint64
}

// New creates an LFU policy holding at most capacity entries.
func New[K comparable, V any](capacity int) *Policy[K, V] {
	return &Policy[K, V]{
		capacity: capacity,
		entries:  make(map[K]*entry[K, V]),
		buckets:  make(map[int]*list.List),
	}
}

// Put inserts key or overwrites its value. An overwrite counts as a use:
// the entry is promoted exactly as a Get would, and nothing is evicted. A
// new key entering a full cache first evicts the oldest entry of the
// minimum-frequency bucket; the discarded pair is returned.
func (p *Policy[K, V]) Put(key K, value V) (evictedKey K, evictedValue V, evicted bool) {
	if p.capacity <= 0 {
		return
	}

	if e, ok := p.entries[key]; ok {
		e.value = value
		p.promote(e)
		return
	}

	if len(p.entries) >= p.capacity {
		evictedKey, evictedValue = p.evict()
		evicted = true
	}

	e := &entry[K, V]{key: key, value: value, freq: 1, seq: p.nextSeq()}
	p.entries[key] = e
	e.elem = p.bucket(1).PushBack(e)
	p.minFreq = 1
	return
}

// Get returns the value stored under key and promotes the entry by one
// frequency. A miss has no side effects.
func (p *Policy[K, V]) Get(key K) (V, bool) {
	e, ok := p.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	p.promote(e)
	return e.value, true
}

// Len returns the number of live entries.
func (p *Policy[K, V]) Len() int { return len(p.entries) }

// Freq reports the current frequency of key, if present.
func (p *Policy[K, V]) Freq(key K) (int, bool) {
	e, ok := p.entries[key]
	if !ok {
		return 0, false
	}
	return e.freq, true
}

// Purge discards all entries. The seq counter is deliberately not reset so
// stamps are never reused for the lifetime of the policy.
func (p *Policy[K, V]) Purge() {
	p.entries = make(map[K]*entry[K, V])
	p.buckets = make(map[int]*list.List)
	p.minFreq = 0
}

// Name returns "lfu".
func (p *Policy[K, V]) Name() string { return "lfu" }

// promote moves e to the bucket one frequency up with a fresh seq stamp,
// making it the most recent member of that bucket. All three structures
// change together here and in evict; nothing else mutates them.
func (p *Policy[K, V]) promote(e *entry[K, V]) {
	p.unlink(e)
	e.freq++
	e.seq = p.nextSeq()
	e.elem = p.bucket(e.freq).PushBack(e)
}

// evict removes the front of the minimum-frequency bucket, which by the
// ordering invariant is the least recently touched entry among those tied
// at the minimum frequency.
func (p *Policy[K, V]) evict() (K, V) {
	victim := p.buckets[p.minFreq].Front().Value.(*entry[K, V])
	p.unlink(victim)
	delete(p.entries, victim.key)
	return victim.key, victim.value
}

// unlink removes e from its bucket and drops the bucket if it is now
// empty. When the minimum-frequency bucket empties during a promotion the
// minimum moves up by one; during an eviction the caller re-establishes
// minFreq when it inserts the replacement at frequency 1.
func (p *Policy[K, V]) unlink(e *entry[K, V]) {
	b := p.buckets[e.freq]
	b.Remove(e.elem)
	e.elem = nil
	if b.Len() == 0 {
		delete(p.buckets, e.freq)
		if p.minFreq == e.freq {
			p.minFreq = e.freq + 1
		}
	}
}

func (p *Policy[K, V]) bucket(freq int) *list.List {
	b, ok := p.buckets[freq]
	if !ok {
		b = list.New()
		p.buckets[freq] = b
	}
	return b
}

func (p *Policy[K, V]) nextSeq() uint64 {
	s := p.seq
	p.seq++
	return s
}
