// Package policy defines the eviction policy interface shared by all
// cache policies.
package policy

// Policy decides which entry to discard when a full cache receives a new
// key. Implementations are not safe for concurrent use; callers serialize
// access.
type Policy[K comparable, V any] interface {
	// Put inserts or overwrites an entry. If the insert forced an entry
	// out, the discarded key and value are returned with evicted == true.
	// Overwriting an existing key never evicts.
	Put(key K, value V) (evictedKey K, evictedValue V, evicted bool)

	// Get retrieves a value by key. Returns false if the key is absent.
	// A hit may reorder or repromote the entry per the policy.
	Get(key K) (V, bool)

	// Len returns the number of live entries.
	Len() int

	// Purge discards all entries without reporting them as evictions.
	Purge()

	// Name identifies the policy, e.g. "lfu".
	Name() string
}
