package simulation

import "math/rand"

// Uniform generates ops keys drawn uniformly from [0, keyspace).
func Uniform(ops, keyspace int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	keys := make([]int, ops)
	for i := range keys {
		keys[i] = rng.Intn(keyspace)
	}
	return keys
}

// Zipf generates ops keys with a zipfian skew over [0, keyspace): a small
// hot set dominates, the regime frequency-aware policies are built for.
// s controls the skew and must be > 1.
func Zipf(ops, keyspace int, s float64, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	zipf := rand.NewZipf(rng, s, 1, uint64(keyspace-1))
	keys := make([]int, ops)
	for i := range keys {
		keys[i] = int(zipf.Uint64())
	}
	return keys
}

// Scan generates ops keys cycling sequentially through [0, keyspace),
// the worst case for recency-based policies when keyspace exceeds the
// cache capacity.
func Scan(ops, keyspace int) []int {
	keys := make([]int, ops)
	for i := range keys {
		keys[i] = i % keyspace
	}
	return keys
}
