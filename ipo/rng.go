// Package ipo - random source for placeholder resolution.
//
// Vertical growth is the only consumer: each placeholder draws one start
// level and scans circularly from it. Generations are reproducible, so the
// default source is seeded with a constant and never with the clock.
//
// A RandSource is used by one generation at a time; *rand.Rand carries no
// lock.
package ipo

import "math/rand"

// RandSource is the randomness vertical growth consumes: a uniform draw in
// [0,n). *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// defaultRNGSeed backs generations that set no random option, and WithSeed(0).
const defaultRNGSeed int64 = 1

// rngFromSeed maps 0 to defaultRNGSeed and passes any other seed through.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
