package ipo

import (
	"strconv"
	"strings"
)

// Run is one test vector. Slot p holds the level index of parameter p, or
// Placeholder while vertical growth has not resolved it yet.
type Run []int

// Len returns the number of slots (processed parameters).
func (r Run) Len() int { return len(r) }

// Value returns the concrete Value at slot p. ok is false for placeholders
// and out-of-range slots.
func (r Run) Value(p int) (v Value, ok bool) {
	if p < 0 || p >= len(r) || r[p] == Placeholder {
		return Value{}, false
	}

	return Value{Param: p, Level: r[p]}, true
}

// Complete reports whether r has n slots and no placeholders.
func (r Run) Complete(n int) bool {
	if len(r) != n {
		return false
	}
	for _, l := range r {
		if l == Placeholder {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of r.
func (r Run) Clone() Run {
	out := make(Run, len(r))
	copy(out, r)

	return out
}

// Extend returns a copy of r with level appended as the next slot.
// The receiver is never modified.
func (r Run) Extend(level int) Run {
	out := make(Run, len(r), len(r)+1)
	copy(out, r)

	return append(out, level)
}

// Pairs is PairsWithinRun(r).
func (r Run) Pairs() []Pair { return PairsWithinRun(r) }

// Covers reports whether both values of p are concrete slots of r.
func (r Run) Covers(p Pair) bool {
	a, okA := r.Value(p.A.Param)
	b, okB := r.Value(p.B.Param)

	return okA && okB && a == p.A && b == p.B
}

// String renders r symbolically ("a1 b2 -"), placeholders as "-".
// Slots beyond 'z' are named "x<slot>", as render.LetterID does.
func (r Run) String() string {
	var sb strings.Builder
	for p, l := range r {
		if p > 0 {
			sb.WriteByte(' ')
		}
		if l == Placeholder {
			sb.WriteByte('-')
			continue
		}
		if p < MaxParameters {
			sb.WriteByte(byte('a' + p))
		} else {
			sb.WriteByte('x')
			sb.WriteString(strconv.Itoa(p))
		}
		sb.WriteString(strconv.Itoa(l + 1))
	}

	return sb.String()
}
