package ipo

// growVertical covers every pair left in np (each pair joins a value of an
// earlier parameter with a value of f), then resolves placeholders. runs is
// the generation produced by horizontal growth; the returned runs are new,
// complete, and meant to be appended to it.
//
// For each uncovered pair (v,w), in np order:
//  1. Reuse a run (from runs, then from the runs added in this step) that
//     already holds v and still has a placeholder at f, when w admits no
//     infeasible pair there.
//  2. Otherwise start a new run: v at v.Param, w at f, placeholders elsewhere.
//
// Placeholders are then resolved slot by slot: draw a uniform start level
// from rng and scan circularly for the first admissible level.
//
// Errors: *UnsatisfiableError{Phase: PhaseVertical} when a placeholder admits
// no level.
//
// Complexity: O(|np|·(|runs|+|pending|)) for placement, O(|pending|·f·L·f)
// for resolution, where L is the largest level count.
func (g *generator) growVertical(runs []Run, np *pairSet, f int) ([]Run, error) {
	var pending []Run

	for _, p := range np.items() {
		v, w := p.A, p.B
		if g.place(runs, v, w, f) || g.place(pending, v, w, f) {
			continue
		}
		r := make(Run, f+1)
		for i := range r {
			r[i] = Placeholder
		}
		r[v.Param] = v.Level
		r[f] = w.Level
		pending = append(pending, r)
	}

	for i, r := range pending {
		if err := g.resolve(r, f, i); err != nil {
			return nil, err
		}
	}

	return pending, nil
}

// place tries to cover (v,w) by filling the placeholder at f of a run that
// already holds v. It reports whether the pair is now covered.
func (g *generator) place(candidates []Run, v, w Value, f int) bool {
	for _, r := range candidates {
		if len(r) <= f || r[v.Param] != v.Level || r[f] != Placeholder {
			continue
		}
		if g.constraints.Admits(r, f, w.Level) {
			r[f] = w.Level
			return true
		}
	}

	return false
}

// resolve replaces every placeholder of r, left to right, with an admissible
// level. The scan for slot p starts at rng.Intn(Levels(p)) and visits each
// level at most once.
func (g *generator) resolve(r Run, f, idx int) error {
	for p := range r {
		if r[p] != Placeholder {
			continue
		}
		levels := g.domain.Levels(p)
		start := g.cfg.rng.Intn(levels)
		chosen := Placeholder
		for k := 0; k < levels; k++ {
			level := (start + k) % levels
			if g.constraints.Admits(r, p, level) {
				chosen = level
				break
			}
		}
		if chosen == Placeholder {
			return &UnsatisfiableError{Phase: PhaseVertical, Factor: f, Run: idx, Param: p}
		}
		r[p] = chosen
	}

	return nil
}
