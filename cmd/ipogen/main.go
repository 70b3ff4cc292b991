// Command ipogen generates a pairwise-covering set of test runs with the
// IPO strategy.
//
// Usage:
//
//	ipogen <factors> <levels> [factors.csv] [infeasible.csv] [flags]
//
//	ipogen 3 [3,5,5]
//	ipogen 3 [3,5,5] factors.csv infeasible.csv --seed 42 --format csv
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ipogen:", err)
		os.Exit(1)
	}
}
