package ipo

import (
	"go.uber.org/zap"
)

// Step summarizes the processing of one factor (f ≥ 2).
type Step struct {
	Factor         int // parameter index processed in this step
	NeededPairs    int // |NP| before horizontal growth
	Uncovered      int // |NP| left after horizontal growth
	HorizontalRuns int // runs extended by horizontal growth
	VerticalRuns   int // runs added by vertical growth
}

// Result is the outcome of Generate.
type Result struct {
	// Runs holds one complete run per test case; every run has Domain.Size()
	// concrete slots.
	Runs []Run

	// Steps records one entry per factor 2..N-1, in order.
	Steps []Step
}

// generator carries the immutable inputs of one generation.
type generator struct {
	domain      Domain
	constraints *Constraints
	cfg         generatorConfig
}

// Generate builds a pairwise-covering run set for d that avoids every pair in
// c (nil means no infeasible pairs).
//
// Pipeline:
//  1. Seed: AllPairs(0,1) − c, each pair a two-slot run.
//  2. For f = 2..N-1: runs = growHorizontal(runs, f); if pairs are left,
//     runs = runs ∪ growVertical(runs, leftover, f).
//
// Each step produces a new run slice; the previous generation is not mutated.
// c is frozen for the rest of its lifetime.
//
// Errors:
//   - ErrConfiguration: zero Domain, or c built for a different Domain.
//   - ErrUnsatisfiable (*UnsatisfiableError): no feasible extension or fill.
//
// Complexity: roughly O(N²·L²·|runs|) for N factors of at most L levels.
func Generate(d Domain, c *Constraints, opts ...Option) (Result, error) {
	if err := validateDomain(d); err != nil {
		return Result{}, err
	}
	if !c.sameDomain(d) {
		return Result{}, ipoErrorf(MethodGenerate, ErrConfiguration, "constraints were declared for a different domain")
	}
	c.freeze()

	g := &generator{domain: d, constraints: c, cfg: newGeneratorConfig(opts...)}
	log := g.cfg.logger

	runs := g.seed()
	log.Debug("seeded runs",
		zap.Int("factors", d.Size()),
		zap.Int("runs", len(runs)),
		zap.Int("infeasible_pairs", c.Len()),
	)

	steps := make([]Step, 0, max(d.Size()-2, 0))
	for f := 2; f < d.Size(); f++ {
		step := Step{Factor: f, HorizontalRuns: len(runs)}
		step.NeededPairs = g.neededPairs(f).len()

		next, leftover, err := g.growHorizontal(runs, f)
		if err != nil {
			log.Debug("horizontal growth failed", zap.Int("factor", f), zap.Error(err))
			return Result{}, err
		}
		step.Uncovered = leftover.len()

		if leftover.len() > 0 {
			added, err := g.growVertical(next, leftover, f)
			if err != nil {
				log.Debug("vertical growth failed", zap.Int("factor", f), zap.Error(err))
				return Result{}, err
			}
			step.VerticalRuns = len(added)
			next = append(next, added...)
		}
		runs = next
		steps = append(steps, step)

		log.Debug("factor processed",
			zap.Int("factor", f),
			zap.Int("needed_pairs", step.NeededPairs),
			zap.Int("uncovered", step.Uncovered),
			zap.Int("vertical_runs", step.VerticalRuns),
			zap.Int("runs", len(runs)),
		)
	}

	log.Info("generation complete", zap.Int("factors", d.Size()), zap.Int("runs", len(runs)))

	return Result{Runs: runs, Steps: steps}, nil
}

// seed returns AllPairs(0,1) minus the infeasible pairs as two-slot runs.
func (g *generator) seed() []Run {
	pairs := AllPairs(g.domain, 0, 1)
	runs := make([]Run, 0, len(pairs))
	for _, p := range pairs {
		if g.constraints.Contains(p) {
			continue
		}
		runs = append(runs, Run{p.A.Level, p.B.Level})
	}

	return runs
}
