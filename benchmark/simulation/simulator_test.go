package simulation

import (
	"testing"

	"github.com/hoardcache/hoard/internal/policy"
	"github.com/hoardcache/hoard/internal/policy/fifo"
	"github.com/hoardcache/hoard/internal/policy/lfu"
)

func lfuFactory(capacity int) policy.Policy[int, int] {
	return lfu.New[int, int](capacity)
}

func fifoFactory(capacity int) policy.Policy[int, int] {
	return fifo.New[int, int](capacity)
}

func TestSimulator_Replay_Counts(t *testing.T) {
	sim := NewSimulator(1, lfuFactory)

	// get 1 (miss, insert), get 1 (hit), get 2 (miss, insert, evicts 1).
	results := sim.Replay([]int{1, 1, 2})
	r := results["lfu"]
	if r == nil {
		t.Fatal("no result for lfu")
	}

	if r.Hits != 1 || r.Misses != 2 || r.Evictions != 1 {
		t.Errorf("got hits=%d misses=%d evictions=%d, want 1/2/1", r.Hits, r.Misses, r.Evictions)
	}
	if got := r.HitRate(); got < 33.3 || got > 33.4 {
		t.Errorf("HitRate() = %f, want ~33.3", got)
	}
}

func TestSimulator_Replay_AccountsEveryAccess(t *testing.T) {
	workload := Zipf(2000, 200, 1.2, 1)
	sim := NewSimulator(32, lfuFactory, fifoFactory)

	for name, r := range sim.Replay(workload) {
		if r.Hits+r.Misses != len(workload) {
			t.Errorf("%s: hits+misses = %d, want %d", name, r.Hits+r.Misses, len(workload))
		}
	}
}

func TestSimulator_Replay_Deterministic(t *testing.T) {
	workload := Uniform(1000, 100, 7)
	sim := NewSimulator(16, lfuFactory)

	a := sim.Replay(workload)["lfu"]
	b := sim.Replay(workload)["lfu"]
	if *a != *b {
		t.Errorf("replays differ: %+v vs %+v", a, b)
	}
}

func TestSimulator_ReplayAll(t *testing.T) {
	workloads := [][]int{
		Uniform(500, 100, 1),
		Uniform(500, 100, 2),
		Zipf(500, 100, 1.3, 3),
	}
	sim := NewSimulator(16, lfuFactory, fifoFactory)

	aggregates := sim.ReplayAll(workloads)
	for name, agg := range aggregates {
		if len(agg.HitRates) != len(workloads) {
			t.Errorf("%s: %d hit-rate samples, want %d", name, len(agg.HitRates), len(workloads))
		}
		if agg.Hits+agg.Misses != 1500 {
			t.Errorf("%s: hits+misses = %d, want 1500", name, agg.Hits+agg.Misses)
		}
	}
}

func TestWorkloadGenerators(t *testing.T) {
	tests := []struct {
		name string
		keys []int
	}{
		{"uniform", Uniform(100, 10, 42)},
		{"zipf", Zipf(100, 10, 1.5, 42)},
		{"scan", Scan(100, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.keys) != 100 {
				t.Fatalf("len = %d, want 100", len(tt.keys))
			}
			for _, k := range tt.keys {
				if k < 0 || k >= 10 {
					t.Fatalf("key %d out of range [0,10)", k)
				}
			}
		})
	}
}
