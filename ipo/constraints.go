package ipo

import "sync/atomic"

// Constraints is the Infeasibility Set: pairs that must never co-occur in a
// Run. It is bound to the Domain it was created for and becomes read-only the
// first time it is handed to Generate.
type Constraints struct {
	domain Domain
	set    map[Pair]struct{}
	order  []Pair
	frozen atomic.Bool
}

// NewConstraints returns an empty Infeasibility Set over d.
func NewConstraints(d Domain) *Constraints {
	return &Constraints{
		domain: d,
		set:    make(map[Pair]struct{}),
	}
}

// Add forbids the combination of v and w. Duplicate insertions are no-ops.
//
// Errors:
//   - ErrUnknownValue if v or w is not declared in the Domain.
//   - ErrConfiguration if v and w belong to the same parameter.
//   - ErrFrozen once the set has been used by Generate.
func (c *Constraints) Add(v, w Value) error {
	if c.frozen.Load() {
		return ipoErrorf(MethodAdd, ErrFrozen, "cannot add %v", MakePair(v, w))
	}
	if !c.domain.Contains(v) {
		return ipoErrorf(MethodAdd, ErrUnknownValue, "(%d,%d) not declared", v.Param, v.Level)
	}
	if !c.domain.Contains(w) {
		return ipoErrorf(MethodAdd, ErrUnknownValue, "(%d,%d) not declared", w.Param, w.Level)
	}
	if v.Param == w.Param {
		return ipoErrorf(MethodAdd, ErrConfiguration, "pair values share parameter %d", v.Param)
	}
	p := MakePair(v, w)
	if _, ok := c.set[p]; ok {
		return nil
	}
	c.set[p] = struct{}{}
	c.order = append(c.order, p)

	return nil
}

// AddPair is Add(p.A, p.B).
func (c *Constraints) AddPair(p Pair) error { return c.Add(p.A, p.B) }

// Contains reports whether p is infeasible. Order-independent.
// A nil *Constraints is the empty set.
func (c *Constraints) Contains(p Pair) bool {
	if c == nil {
		return false
	}
	_, ok := c.set[MakePair(p.A, p.B)]

	return ok
}

// Len returns the number of distinct infeasible pairs.
func (c *Constraints) Len() int {
	if c == nil {
		return 0
	}

	return len(c.order)
}

// Pairs returns the infeasible pairs in insertion order.
func (c *Constraints) Pairs() []Pair {
	if c == nil {
		return nil
	}
	out := make([]Pair, len(c.order))
	copy(out, c.order)

	return out
}

// Admits reports whether assigning level to slot param of r forms no
// infeasible pair with the other concrete slots of r. Slot param itself
// is ignored, so it may hold a placeholder or a previous candidate; param
// may equal len(r) to test an extension.
//
// Complexity: O(len(r)) hash lookups.
func (c *Constraints) Admits(r Run, param, level int) bool {
	if c.Len() == 0 {
		return true
	}
	w := Value{Param: param, Level: level}
	for p, l := range r {
		if p == param || l == Placeholder {
			continue
		}
		if _, bad := c.set[MakePair(Value{Param: p, Level: l}, w)]; bad {
			return false
		}
	}

	return true
}

// freeze marks the set read-only. Safe to call repeatedly.
func (c *Constraints) freeze() {
	if c != nil {
		c.frozen.Store(true)
	}
}

// sameDomain reports whether c was built for d (by level counts).
func (c *Constraints) sameDomain(d Domain) bool {
	if c == nil {
		return true
	}
	if c.domain.Size() != d.Size() {
		return false
	}
	for p := 0; p < d.Size(); p++ {
		if c.domain.Levels(p) != d.Levels(p) {
			return false
		}
	}

	return true
}
