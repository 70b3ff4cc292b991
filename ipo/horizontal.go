package ipo

// neededPairs computes NP = (⋃_{i<f} AllPairs(i,f)) − infeasible, in the
// order AllPairs(0,f), AllPairs(1,f), ….
//
// Complexity: O(Σ_{i<f} Levels(i)·Levels(f)).
func (g *generator) neededPairs(f int) *pairSet {
	total := 0
	for i := 0; i < f; i++ {
		total += g.domain.Levels(i) * g.domain.Levels(f)
	}
	np := newPairSet(total)
	for i := 0; i < f; i++ {
		for _, p := range AllPairs(g.domain, i, f) {
			if !g.constraints.Contains(p) {
				np.add(p)
			}
		}
	}

	return np
}

// growHorizontal extends every run (each of length f) with a level of
// parameter f and returns the new generation together with the pairs still
// uncovered.
//
// Phase A (runs 0..c-1, c = min(Levels(f), len(runs))):
//
//	Scan f's levels circularly from level i. Pass 1 accepts the first level
//	not yet taken in this phase that admits no infeasible pair; pass 2,
//	restarting at i, accepts any admissible level.
//
// Phase B (runs c..len-1):
//
//	Choose the admissible level covering the most pairs still in NP; the
//	first such level in value order wins ties.
//
// Errors: *UnsatisfiableError{Phase: PhaseHorizontal} when a run admits no
// level of f at all.
//
// Complexity: O(len(runs)·Levels(f)·f) plus the cost of neededPairs.
func (g *generator) growHorizontal(runs []Run, f int) ([]Run, *pairSet, error) {
	var (
		np     = g.neededPairs(f)
		levels = g.domain.Levels(f)
		c      = min(levels, len(runs))
		next   = make([]Run, len(runs))
		used   = make([]bool, levels)
	)

	// Phase A: spread distinct levels over the first c runs.
	for i := 0; i < c; i++ {
		level, ok := g.scanLevels(runs[i], f, i, used)
		if !ok {
			level, ok = g.scanLevels(runs[i], f, i, nil)
			if !ok {
				return nil, nil, &UnsatisfiableError{Phase: PhaseHorizontal, Factor: f, Run: i, Param: f}
			}
		} else {
			used[level] = true
		}
		next[i] = runs[i].Extend(level)
		g.cover(np, next[i], f)
	}

	// Phase B: greedy maximum coverage for the remaining runs.
	for j := c; j < len(runs); j++ {
		best, bestGain := -1, -1
		for level := 0; level < levels; level++ {
			if !g.constraints.Admits(runs[j], f, level) {
				continue
			}
			if gain := gainOf(np, runs[j], f, level); gain > bestGain {
				best, bestGain = level, gain
			}
		}
		if best < 0 {
			return nil, nil, &UnsatisfiableError{Phase: PhaseHorizontal, Factor: f, Run: j, Param: f}
		}
		next[j] = runs[j].Extend(best)
		g.cover(np, next[j], f)
	}

	return next, np, nil
}

// scanLevels walks f's levels circularly starting at start%Levels(f) and
// returns the first level admissible for run r. When taken is non-nil,
// levels marked in it are skipped. At most Levels(f) levels are visited.
func (g *generator) scanLevels(r Run, f, start int, taken []bool) (int, bool) {
	levels := g.domain.Levels(f)
	for k := 0; k < levels; k++ {
		level := (start + k) % levels
		if taken != nil && taken[level] {
			continue
		}
		if g.constraints.Admits(r, f, level) {
			return level, true
		}
	}

	return 0, false
}

// gainOf counts the pairs of NP that extending r with level would cover.
// Only pairs involving f can be in NP, so earlier slots need no re-check.
func gainOf(np *pairSet, r Run, f, level int) int {
	w := Value{Param: f, Level: level}
	gain := 0
	for p, l := range r {
		if l == Placeholder {
			continue
		}
		if np.has(Pair{A: Value{Param: p, Level: l}, B: w}) {
			gain++
		}
	}

	return gain
}

// cover removes from np every pair formed by slot f of r with an earlier slot.
func (g *generator) cover(np *pairSet, r Run, f int) {
	w, ok := r.Value(f)
	if !ok {
		return
	}
	for p := 0; p < f; p++ {
		if v, ok := r.Value(p); ok {
			np.remove(Pair{A: v, B: w})
		}
	}
}
