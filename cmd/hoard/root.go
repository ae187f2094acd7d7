package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hoardcache/hoard/internal/policy"
	"github.com/hoardcache/hoard/internal/policy/fifo"
	"github.com/hoardcache/hoard/internal/policy/lfu"
	"github.com/hoardcache/hoard/internal/policy/lifo"
	"github.com/hoardcache/hoard/internal/policy/lru"
	"github.com/hoardcache/hoard/internal/policy/mru"
)

var (
	// Global flags.
	capacity   int
	policyName string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "hoard",
	Short: "Exercise and compare cache eviction policies",
	Long: `Hoard is a CLI tool for exercising the hoard cache library.

The default policy is LFU with an LRU tie-break: the least frequently
used entry is discarded first, and ties go to the least recently
touched entry.

Examples:
  # Replay a put/get script against an LFU cache of 4 entries
  hoard trace --capacity 4 script.txt

  # Compare hit rates of all policies on a zipfian workload
  hoard simulate --workload zipf --runs 20`,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&capacity, "capacity", "c", 100, "maximum number of cache entries")
	rootCmd.PersistentFlags().StringVarP(&policyName, "policy", "p", "lfu", "eviction policy (lfu, lru, fifo, lifo, mru)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// newPolicy builds the named policy for string keys and values.
func newPolicy(name string, capacity int) (policy.Policy[string, string], error) {
	switch name {
	case "lfu":
		return lfu.New[string, string](capacity), nil
	case "lru":
		return lru.New[string, string](capacity)
	case "fifo":
		return fifo.New[string, string](capacity), nil
	case "lifo":
		return lifo.New[string, string](capacity), nil
	case "mru":
		return mru.New[string, string](capacity), nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}
