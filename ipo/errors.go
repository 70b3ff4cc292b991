// SPDX-License-Identifier: MIT
// Package: pairwise/ipo
//
// errors.go — sentinel errors for the ipo package.
//
// Error policy:
//   • Only sentinel variables (package-level) plus UnsatisfiableError are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics and errors.As to
//     reach *UnsatisfiableError for the failing phase.
//   • Context is attached with %w; sentinel messages never carry parameters.
//   • Algorithms never panic; option constructors (WithX) panic on nil input.

package ipo

import (
	"errors"
	"fmt"
)

// ErrConfiguration indicates an invalid factor count, level count, or a
// mismatch between declared sizes. Detected before generation starts.
var ErrConfiguration = errors.New("ipo: invalid configuration")

// ErrUnknownValue indicates a Value that does not belong to the declared Domain.
var ErrUnknownValue = errors.New("ipo: unknown value")

// ErrUnsatisfiable indicates that the infeasible pairs leave no valid
// extension (horizontal growth) or no valid placeholder fill (vertical growth).
// The concrete error is an *UnsatisfiableError.
var ErrUnsatisfiable = errors.New("ipo: the input provided doesn't allow the creation of valid runs")

// ErrFrozen indicates a mutation of a Constraints set that is already in use
// by a generation.
var ErrFrozen = errors.New("ipo: constraints are read-only once generation starts")

// ErrCoverage indicates that a run set failed the coverage cross-check.
var ErrCoverage = errors.New("ipo: coverage check failed")

// Phase names the growth step in which generation failed.
type Phase int

const (
	// PhaseHorizontal is horizontal growth (extending existing runs).
	PhaseHorizontal Phase = iota
	// PhaseVertical is vertical growth (placeholder resolution).
	PhaseVertical
)

// String returns the snake_case name used in error messages.
func (p Phase) String() string {
	switch p {
	case PhaseHorizontal:
		return "horizontal_growth"
	case PhaseVertical:
		return "vertical_growth"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// UnsatisfiableError reports the phase, factor, and run for which no level
// could be chosen without forming an infeasible pair.
type UnsatisfiableError struct {
	Phase  Phase // growth step that failed
	Factor int   // parameter being processed
	Run    int   // index of the offending run within its phase
	Param  int   // slot that could not be filled
}

// Error implements error.
func (e *UnsatisfiableError) Error() string {
	return fmt.Sprintf("%v (raised in %s: factor %d, run %d, slot %d)",
		ErrUnsatisfiable, e.Phase, e.Factor, e.Run, e.Param)
}

// Unwrap makes errors.Is(err, ErrUnsatisfiable) hold.
func (e *UnsatisfiableError) Unwrap() error { return ErrUnsatisfiable }

// ipoErrorf wraps sentinel with method context and a formatted detail:
// "<method>: <sentinel>: <detail>".
func ipoErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", method, sentinel, fmt.Sprintf(format, args...))
}
