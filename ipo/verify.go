package ipo

import "fmt"

// Report is the outcome of Verify.
type Report struct {
	Missing    []Pair // feasible pairs not covered by any run
	Violations []Pair // infeasible pairs present in some run (deduplicated)
	Incomplete []int  // indices of runs with wrong length or placeholders
}

// OK reports whether the run set passed every check.
func (r Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Violations) == 0 && len(r.Incomplete) == 0
}

// Err returns nil when OK, otherwise an error wrapping ErrCoverage.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}

	return fmt.Errorf("%s: %w: %d missing pairs, %d infeasible pairs covered, %d incomplete runs",
		MethodVerify, ErrCoverage, len(r.Missing), len(r.Violations), len(r.Incomplete))
}

// Verify brute-force checks runs against d and c: every feasible pair between
// two distinct parameters must be covered, no infeasible pair may occur, and
// every run must be complete. It is independent of the generation algorithm.
//
// Complexity: O(|runs|·N² + N²·L²).
func Verify(d Domain, c *Constraints, runs []Run) Report {
	var rep Report
	covered := make(map[Pair]struct{})
	violated := make(map[Pair]struct{})

	for i, r := range runs {
		if !r.Complete(d.Size()) {
			rep.Incomplete = append(rep.Incomplete, i)
		}
		for _, p := range r.Pairs() {
			covered[p] = struct{}{}
			if c.Contains(p) {
				if _, seen := violated[p]; !seen {
					violated[p] = struct{}{}
					rep.Violations = append(rep.Violations, p)
				}
			}
		}
	}

	for a := 0; a < d.Size(); a++ {
		for b := a + 1; b < d.Size(); b++ {
			for _, p := range AllPairs(d, a, b) {
				if c.Contains(p) {
					continue
				}
				if _, ok := covered[p]; !ok {
					rep.Missing = append(rep.Missing, p)
				}
			}
		}
	}

	return rep
}
