package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hoardcache/hoard"
)

var traceCmd = &cobra.Command{
	Use:   "trace [script]",
	Short: "Replay a put/get script against a cache",
	Long: `Replay a script of cache operations, one per line, and print the
outcome of each. Reads from stdin when no script file is given.

Script syntax:
  put KEY VALUE
  get KEY

Evictions are reported as they happen:
  DISCARD: KEY

Example script:
  put A 1
  put B 2
  get A
  put C 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	input := io.Reader(os.Stdin)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		input = f
	}

	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		logger = l
	}

	p, err := newPolicy(policyName, capacity)
	if err != nil {
		return err
	}

	cache, err := hoard.New(
		hoard.WithCapacity[string, string](capacity),
		hoard.WithPolicy[string, string](p),
		hoard.WithLogger[string, string](logger),
		hoard.WithOnEvict[string, string](func(key, value string) {
			fmt.Printf("DISCARD: %s\n", key)
		}),
	)
	if err != nil {
		return fmt.Errorf("creating cache: %w", err)
	}

	scanner := bufio.NewScanner(input)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "put":
			if len(fields) != 3 {
				return fmt.Errorf("line %d: put wants KEY VALUE", line)
			}
			cache.Put(fields[1], fields[2])
		case "get":
			if len(fields) != 2 {
				return fmt.Errorf("line %d: get wants KEY", line)
			}
			if value, ok := cache.Get(fields[1]); ok {
				fmt.Printf("%s = %s\n", fields[1], value)
			} else {
				fmt.Printf("%s = <not found>\n", fields[1])
			}
		default:
			return fmt.Errorf("line %d: unknown operation %q", line, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	fmt.Printf("entries: %d/%d (%s)\n", cache.Len(), cache.Capacity(), cache.PolicyName())
	return nil
}
