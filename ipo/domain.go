package ipo

// Value identifies one level of one parameter: (parameterIndex, levelIndex).
// Display labels are derived outside the core (see package render).
type Value struct {
	Param int // parameter index, 0..N-1
	Level int // level index, 0..Levels(Param)-1
}

// Parameter is a factor of the test matrix.
type Parameter struct {
	Index  int // position in the Domain, 0..N-1
	Levels int // number of distinct values, ≥ MinLevels
}

// Domain is the immutable, ordered set of declared parameters.
// The zero Domain is empty and rejected by Generate.
type Domain struct {
	levels []int
}

// NewDomain declares parameter i with levelCounts[i] levels, in order.
//
// Contract:
//   - MinParameters ≤ len(levelCounts) ≤ MaxParameters.
//   - levelCounts[i] ≥ MinLevels for every i.
//
// Errors: ErrConfiguration with the offending index/value.
//
// Complexity: O(N).
func NewDomain(levelCounts []int) (Domain, error) {
	if err := validateLevels(levelCounts); err != nil {
		return Domain{}, err
	}
	levels := make([]int, len(levelCounts))
	copy(levels, levelCounts)

	return Domain{levels: levels}, nil
}

// Size returns the number of declared parameters.
func (d Domain) Size() int { return len(d.levels) }

// Levels returns the level count of parameter p, or 0 if p is not declared.
func (d Domain) Levels(p int) int {
	if p < 0 || p >= len(d.levels) {
		return 0
	}

	return d.levels[p]
}

// LevelCounts returns a copy of all level counts in declaration order.
func (d Domain) LevelCounts() []int {
	out := make([]int, len(d.levels))
	copy(out, d.levels)

	return out
}

// Parameter returns the declaration of parameter p.
func (d Domain) Parameter(p int) (Parameter, error) {
	if p < 0 || p >= len(d.levels) {
		return Parameter{}, ipoErrorf(MethodValue, ErrUnknownValue, "parameter %d not in [0,%d)", p, len(d.levels))
	}

	return Parameter{Index: p, Levels: d.levels[p]}, nil
}

// Value returns the Value (param, level), validating both indices.
//
// Errors: ErrUnknownValue if param or level is out of range.
func (d Domain) Value(param, level int) (Value, error) {
	v := Value{Param: param, Level: level}
	if !d.Contains(v) {
		return Value{}, ipoErrorf(MethodValue, ErrUnknownValue, "(%d,%d) not declared", param, level)
	}

	return v, nil
}

// Contains reports whether v references a declared parameter and level.
func (d Domain) Contains(v Value) bool {
	return v.Param >= 0 && v.Param < len(d.levels) && v.Level >= 0 && v.Level < d.levels[v.Param]
}

// Values lists the values of parameter p in level order.
func (d Domain) Values(p int) []Value {
	n := d.Levels(p)
	out := make([]Value, n)
	for l := 0; l < n; l++ {
		out[l] = Value{Param: p, Level: l}
	}

	return out
}
