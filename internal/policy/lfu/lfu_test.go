package lfu

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestPolicy_PutGet(t *testing.T) {
	p := New[string, int](4)

	p.Put("a", 1)
	p.Put("b", 2)

	if got, ok := p.Get("a"); !ok || got != 1 {
		t.Errorf("Get(a) = %d, %v, want 1, true", got, ok)
	}
	if _, ok := p.Get("missing"); ok {
		t.Error("Get(missing) should return false")
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestPolicy_EvictsLeastFrequent(t *testing.T) {
	p := New[string, int](3)

	p.Put("a", 1)
	p.Put("b", 2)
	p.Put("c", 3)
	p.Get("a")
	p.Get("b")

	key, value, evicted := p.Put("d", 4)
	if !evicted {
		t.Fatal("Put(d) should have evicted an entry")
	}
	if key != "c" || value != 3 {
		t.Errorf("evicted (%q, %d), want (c, 3)", key, value)
	}
	if _, ok := p.Get("c"); ok {
		t.Error("c should be gone after eviction")
	}
}

func TestPolicy_TieBreakLeastRecentlyTouched(t *testing.T) {
	p := New[string, int](3)

	// All three at frequency 1; a is the oldest insertion.
	p.Put("a", 1)
	p.Put("b", 2)
	p.Put("c", 3)

	key, _, evicted := p.Put("d", 4)
	if !evicted || key != "a" {
		t.Errorf("evicted %q (evicted=%v), want a", key, evicted)
	}
}

func TestPolicy_PromotionFreshensRecency(t *testing.T) {
	p := New[string, int](2)

	p.Put("a", 1)
	p.Put("b", 2)
	// Both reach frequency 2, but a was promoted first, so a is the
	// older member of the frequency-2 bucket.
	p.Get("a")
	p.Get("b")

	key, _, evicted := p.Put("c", 3)
	if !evicted || key != "a" {
		t.Errorf("evicted %q (evicted=%v), want a", key, evicted)
	}
}

func TestPolicy_OverwriteCountsAsUse(t *testing.T) {
	p := New[string, int](2)

	p.Put("a", 1)
	p.Put("b", 2)
	p.Put("a", 10) // overwrite promotes a to frequency 2

	if got, ok := p.Get("a"); !ok || got != 10 {
		t.Errorf("Get(a) = %d, %v, want 10, true", got, ok)
	}
	if freq, _ := p.Freq("a"); freq != 3 {
		t.Errorf("Freq(a) = %d, want 3 (overwrite + get)", freq)
	}

	key, _, evicted := p.Put("c", 3)
	if !evicted || key != "b" {
		t.Errorf("evicted %q (evicted=%v), want b", key, evicted)
	}
}

func TestPolicy_OverwriteAtCapacityDoesNotEvict(t *testing.T) {
	p := New[string, int](2)

	p.Put("a", 1)
	p.Put("b", 2)

	_, _, evicted := p.Put("b", 20)
	if evicted {
		t.Error("overwrite should never evict")
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestPolicy_FrequencyNeverDecreases(t *testing.T) {
	p := New[string, int](4)
	p.Put("a", 1)

	last := 0
	for i := 0; i < 10; i++ {
		p.Get("a")
		freq, ok := p.Freq("a")
		if !ok {
			t.Fatal("a disappeared")
		}
		if freq <= last {
			t.Fatalf("Freq(a) = %d after %d gets, want > %d", freq, i+1, last)
		}
		last = freq
	}
}

func TestPolicy_ReinsertResetsFrequency(t *testing.T) {
	p := New[string, int](1)

	p.Put("a", 1)
	p.Get("a")
	p.Get("a")

	// a (frequency 3) is the only entry, so it is the victim.
	key, _, evicted := p.Put("b", 2)
	if !evicted || key != "a" {
		t.Fatalf("evicted %q (evicted=%v), want a", key, evicted)
	}

	p.Put("b", 2) // promote b so a re-enters below it
	key, _, evicted = p.Put("a", 1)
	if !evicted || key != "b" {
		t.Fatalf("evicted %q (evicted=%v), want b", key, evicted)
	}
	if freq, _ := p.Freq("a"); freq != 1 {
		t.Errorf("Freq(a) = %d after reinsert, want 1", freq)
	}
}

func TestPolicy_ZeroCapacity(t *testing.T) {
	p := New[string, int](0)

	_, _, evicted := p.Put("a", 1)
	if evicted {
		t.Error("zero-capacity Put should not report an eviction")
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
}

func TestPolicy_Purge(t *testing.T) {
	p := New[string, int](4)
	p.Put("a", 1)
	p.Put("b", 2)
	p.Get("a")

	p.Purge()
	if p.Len() != 0 {
		t.Errorf("Len() = %d after Purge, want 0", p.Len())
	}
	if _, ok := p.Get("a"); ok {
		t.Error("Get(a) should miss after Purge")
	}

	// The policy stays usable after a purge.
	p.Put("c", 3)
	if got, ok := p.Get("c"); !ok || got != 3 {
		t.Errorf("Get(c) = %d, %v, want 3, true", got, ok)
	}
}

func TestPolicy_CapacityInvariant(t *testing.T) {
	const capacity = 8
	p := New[string, int](capacity)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 5000; i++ {
		key := fmt.Sprintf("k%d", rng.Intn(32))
		if rng.Intn(3) == 0 {
			p.Put(key, i)
		} else {
			p.Get(key)
		}
		if p.Len() > capacity {
			t.Fatalf("Len() = %d after %d ops, capacity %d exceeded", p.Len(), i+1, capacity)
		}
	}
}

func TestPolicy_EvictionAlwaysMinFrequency(t *testing.T) {
	const capacity = 6
	p := New[int, int](capacity)
	freqs := make(map[int]int) // shadow frequency table
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 4000; i++ {
		key := rng.Intn(20)
		if rng.Intn(2) == 0 {
			if _, ok := freqs[key]; ok {
				p.Put(key, i)
				freqs[key]++
				continue
			}
			evictedKey, _, evicted := p.Put(key, i)
			if evicted {
				min := 0
				for _, f := range freqs {
					if min == 0 || f < min {
						min = f
					}
				}
				if got := freqs[evictedKey]; got != min {
					t.Fatalf("evicted key %d at frequency %d, minimum is %d", evictedKey, got, min)
				}
				delete(freqs, evictedKey)
			}
			freqs[key] = 1
		} else if _, ok := p.Get(key); ok {
			freqs[key]++
		}
	}
}
