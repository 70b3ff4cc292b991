// Package ipo generates pairwise-covering test suites with the
// In-Parameter-Order (IPO) strategy, honouring a set of forbidden
// value combinations ("infeasible pairs").
//
// What is IPO?
//
//	Given N factors (parameters) with a discrete number of levels each,
//	IPO builds a set of runs (test vectors) such that every pair of levels
//	taken from two different factors appears in at least one run. It starts
//	from the cartesian product of the first two factors and then, factor by
//	factor:
//		• Horizontal growth — extends every existing run with a level of the
//		  new factor, greedily maximizing the number of newly covered pairs.
//		• Vertical growth   — adds runs for the pairs horizontal growth could
//		  not cover; unconstrained slots are filled from a seeded RNG.
//
// The result is a heuristic (not guaranteed minimal) covering array:
//
//	factors: A(2) B(2) C(2)          runs:  a1 b1 c1
//	                                        a1 b2 c2
//	                                        a2 b1 c2
//	                                        a2 b2 c1
//
// Building blocks (leaf-first):
//
//	domain.go      — Parameter, Value, Domain (2..26 factors, ≥1 level each)
//	pair.go        — Pair canonicalization, AllPairs, PairsWithinRun
//	constraints.go — the Infeasibility Set
//	run.go         — Run: a partially or fully populated test vector
//	horizontal.go  — horizontal growth
//	vertical.go    — vertical growth
//	engine.go      — Generate: the per-factor pipeline
//	verify.go      — brute-force coverage cross-check
//
// Guarantees:
//   - Coverage: every feasible pair between two distinct factors is covered.
//   - Constraint respect: no run contains an infeasible pair.
//   - Determinism: the only randomness flows through an injected RandSource;
//     identical seeds yield identical run sets.
//   - No panics at runtime; option constructors panic on nil arguments.
//
// Errors are sentinels (ErrConfiguration, ErrUnknownValue, ErrUnsatisfiable,
// ErrFrozen, ErrCoverage) matched with errors.Is; UnsatisfiableError carries
// the growth phase that failed and is reachable with errors.As.
//
// Quick start:
//
//	d, _ := ipo.NewDomain([]int{3, 5, 5})
//	c := ipo.NewConstraints(d)
//	_ = c.Add(ipo.Value{Param: 0, Level: 0}, ipo.Value{Param: 1, Level: 0})
//	res, err := ipo.Generate(d, c, ipo.WithSeed(42))
package ipo
