// Package pairwise generates pairwise (all-pairs) test suites with the
// In-Parameter-Order strategy.
//
// The module is split into small packages:
//
//	ipo        - domain model, constraints, the IPO engine and a coverage verifier
//	catalog    - named factors and infeasible pairs loaded from ';'-separated tables
//	render     - labelled table and CSV output for generated runs
//	config     - YAML run configuration with validation
//	cmd/ipogen - command line front end
//
// Quick start:
//
//	d, _ := ipo.NewDomain([]int{2, 3, 2})
//	res, err := ipo.Generate(d, nil, ipo.WithSeed(42))
//	if err != nil {
//		var ue *ipo.UnsatisfiableError
//		if errors.As(err, &ue) {
//			log.Fatalf("no valid runs: %s", ue.Phase)
//		}
//	}
//	for _, r := range res.Runs {
//		fmt.Println(r)
//	}
//
// Every pair of values from two different parameters appears in at least
// one run, unless the pair was declared infeasible.
package pairwise
