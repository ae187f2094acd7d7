// Package main provides the hoard CLI for exercising and comparing cache
// eviction policies.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
