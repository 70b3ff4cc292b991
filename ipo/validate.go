// Package ipo - validation helpers for domain declarations.
//
// Deterministic, side-effect free; errors wrap ErrConfiguration.
package ipo

// validateLevels enforces the parameter-count window and per-parameter level floor.
//
// Complexity: O(N).
func validateLevels(levelCounts []int) error {
	n := len(levelCounts)
	if n < MinParameters || n > MaxParameters {
		return ipoErrorf(MethodNewDomain, ErrConfiguration,
			"number of parameters must be in [%d,%d], got %d", MinParameters, MaxParameters, n)
	}
	for i, l := range levelCounts {
		if l < MinLevels {
			return ipoErrorf(MethodNewDomain, ErrConfiguration,
				"parameter %d: number of levels must be ≥ %d, got %d", i, MinLevels, l)
		}
	}

	return nil
}

// validateDomain rejects the zero Domain (not built through NewDomain).
func validateDomain(d Domain) error {
	if d.Size() < MinParameters {
		return ipoErrorf(MethodGenerate, ErrConfiguration, "domain declares %d parameters", d.Size())
	}

	return nil
}
