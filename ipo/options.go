// SPDX-License-Identifier: MIT
// Package: pairwise/ipo
//
// options.go — functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*generatorConfig)).
//   • Option constructors panic on meaningless inputs (nil RNG, nil logger).
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package ipo

import "go.uber.org/zap"

// Option customizes a generation by mutating a generatorConfig before the
// first factor is processed.
type Option func(*generatorConfig)

// WithSeed uses a *rand.Rand seeded with seed for placeholder resolution.
// seed==0 selects the package default seed.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit random source. Panics on nil.
func WithRand(r RandSource) Option {
	if r == nil {
		panic("ipo: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithLogger attaches a structured logger; one debug entry is emitted per
// factor and an info summary at the end. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("ipo: WithLogger(nil)")
	}
	return func(c *generatorConfig) {
		c.logger = l
	}
}
