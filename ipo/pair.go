package ipo

import "fmt"

// Pair is an unordered combination of two Values from different parameters,
// stored canonically with A.Param < B.Param so that == and map keys are
// order-independent.
type Pair struct {
	A, B Value
}

// MakePair returns the canonical Pair of v and w.
// The caller is responsible for v.Param != w.Param; see Constraints.Add for a
// validating entry point.
func MakePair(v, w Value) Pair {
	if w.Param < v.Param || (w.Param == v.Param && w.Level < v.Level) {
		v, w = w, v
	}

	return Pair{A: v, B: w}
}

// String renders the pair as "(p.l,p.l)" for diagnostics.
func (p Pair) String() string {
	return fmt.Sprintf("(%d.%d,%d.%d)", p.A.Param, p.A.Level, p.B.Param, p.B.Level)
}

// AllPairs returns the cartesian product of the values of parameters a and b,
// each as a canonical Pair, iterating a's levels in the outer loop.
//
// Complexity: O(Levels(a)·Levels(b)).
func AllPairs(d Domain, a, b int) []Pair {
	la, lb := d.Levels(a), d.Levels(b)
	out := make([]Pair, 0, la*lb)
	for i := 0; i < la; i++ {
		for j := 0; j < lb; j++ {
			out = append(out, MakePair(Value{Param: a, Level: i}, Value{Param: b, Level: j}))
		}
	}

	return out
}

// PairsWithinRun returns every pair among the run's concrete slots;
// placeholders are skipped. A run with k concrete slots yields C(k,2) pairs.
//
// Complexity: O(k²).
func PairsWithinRun(r Run) []Pair {
	k := 0
	for _, l := range r {
		if l != Placeholder {
			k++
		}
	}
	out := make([]Pair, 0, k*(k-1)/2)
	for i := 0; i < len(r); i++ {
		if r[i] == Placeholder {
			continue
		}
		for j := i + 1; j < len(r); j++ {
			if r[j] == Placeholder {
				continue
			}
			out = append(out, Pair{A: Value{Param: i, Level: r[i]}, B: Value{Param: j, Level: r[j]}})
		}
	}

	return out
}

// pairSet is an insertion-ordered hashed set of pairs. Removal is O(1) and
// iteration skips removed entries, so the surviving order is stable.
type pairSet struct {
	order []Pair
	live  map[Pair]bool
	n     int
}

func newPairSet(capacity int) *pairSet {
	return &pairSet{
		order: make([]Pair, 0, capacity),
		live:  make(map[Pair]bool, capacity),
	}
}

// add inserts p if absent. A pair removed earlier becomes live again at its
// original position.
func (s *pairSet) add(p Pair) {
	live, known := s.live[p]
	if live {
		return
	}
	if !known {
		s.order = append(s.order, p)
	}
	s.live[p] = true
	s.n++
}

// remove deletes p; it reports whether p was present.
func (s *pairSet) remove(p Pair) bool {
	if !s.live[p] {
		return false
	}
	s.live[p] = false
	s.n--

	return true
}

func (s *pairSet) has(p Pair) bool { return s.live[p] }

func (s *pairSet) len() int { return s.n }

// items returns the live pairs in insertion order.
func (s *pairSet) items() []Pair {
	out := make([]Pair, 0, s.n)
	for _, p := range s.order {
		if s.live[p] {
			out = append(out, p)
		}
	}

	return out
}
