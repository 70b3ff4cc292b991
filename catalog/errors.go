package catalog

import "errors"

var (
	// ErrUnreadable indicates a table file could not be opened or parsed.
	ErrUnreadable = errors.New("catalog: table could not be read")
	// ErrMalformedFactor indicates a factor line without a name.
	ErrMalformedFactor = errors.New("catalog: every factor line must start with a factor name")
	// ErrMalformedPair indicates an infeasible-pair line without exactly two elements.
	ErrMalformedPair = errors.New("catalog: every line of the infeasible pairs table must contain exactly 2 elements")
)
