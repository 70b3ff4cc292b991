package ipo

import "go.uber.org/zap"

// generatorConfig aggregates the knobs of one generation.
//
// Deterministic defaults:
//   - rng    = rngFromSeed(0)   (defaultRNGSeed)
//   - logger = zap.NewNop()
type generatorConfig struct {
	rng    RandSource
	logger *zap.Logger
}

// newGeneratorConfig applies opts in order over the defaults; last wins.
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		rng:    rngFromSeed(0),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
