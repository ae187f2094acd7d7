// Package simulation replays synthetic key workloads against eviction
// policies and records how each one fares.
package simulation

import (
	"github.com/hoardcache/hoard/internal/policy"
)

// Factory builds a fresh policy instance with the given capacity. Each
// replay gets its own instance so runs never share state.
type Factory func(capacity int) policy.Policy[int, int]

// Result holds the outcome of one workload replay for one policy.
type Result struct {
	PolicyName string
	Hits       int
	Misses     int
	Evictions  int
}

// HitRate returns the hit rate as a percentage.
func (r *Result) HitRate() float64 {
	total := r.Hits + r.Misses
	if total == 0 {
		return 0
	}
	return float64(r.Hits) / float64(total) * 100
}

// Aggregate accumulates results over several workload replays.
type Aggregate struct {
	PolicyName string
	Hits       int
	Misses     int
	Evictions  int

	// HitRates holds the per-replay hit-rate samples, in replay order,
	// for downstream statistical comparison.
	HitRates []float64
}

// Simulator replays workloads against a set of policy factories.
type Simulator struct {
	capacity  int
	factories []Factory
}

// NewSimulator creates a Simulator. Every policy is built with the same
// capacity so the comparison is apples to apples.
func NewSimulator(capacity int, factories ...Factory) *Simulator {
	return &Simulator{
		capacity:  capacity,
		factories: factories,
	}
}

// Replay runs one workload through a fresh instance of each policy.
// Accesses follow the cache-aside pattern: a miss is followed by an
// insert of the missing key.
func (s *Simulator) Replay(workload []int) map[string]*Result {
	results := make(map[string]*Result, len(s.factories))

	for _, factory := range s.factories {
		p := factory(s.capacity)
		result := &Result{PolicyName: p.Name()}

		for _, key := range workload {
			if _, ok := p.Get(key); ok {
				result.Hits++
				continue
			}
			result.Misses++
			if _, _, evicted := p.Put(key, key); evicted {
				result.Evictions++
			}
		}

		results[p.Name()] = result
	}

	return results
}

// ReplayAll runs several workloads and aggregates per-policy results.
func (s *Simulator) ReplayAll(workloads [][]int) map[string]*Aggregate {
	aggregates := make(map[string]*Aggregate, len(s.factories))

	for _, workload := range workloads {
		for name, result := range s.Replay(workload) {
			agg, ok := aggregates[name]
			if !ok {
				agg = &Aggregate{PolicyName: name}
				aggregates[name] = agg
			}
			agg.Hits += result.Hits
			agg.Misses += result.Misses
			agg.Evictions += result.Evictions
			agg.HitRates = append(agg.HitRates, result.HitRate())
		}
	}

	return aggregates
}
