package ipo_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/pairwise/ipo"
)

// EngineSuite exercises Generate end-to-end.
type EngineSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

// build returns a domain and constraints; each infeasible entry is
// {paramA, levelA, paramB, levelB}.
func (s *EngineSuite) build(levels []int, infeasible ...[4]int) (ipo.Domain, *ipo.Constraints) {
	d, err := ipo.NewDomain(levels)
	s.Require().NoError(err)
	c := ipo.NewConstraints(d)
	for _, q := range infeasible {
		s.Require().NoError(c.Add(ipo.Value{Param: q[0], Level: q[1]}, ipo.Value{Param: q[2], Level: q[3]}))
	}

	return d, c
}

// TestTwoFactorsFullProduct: N=2, [2,2] ⇒ (a1,b1),(a1,b2),(a2,b1),(a2,b2).
func (s *EngineSuite) TestTwoFactorsFullProduct() {
	d, c := s.build([]int{2, 2})
	res, err := ipo.Generate(d, c)
	s.Require().NoError(err)
	s.Equal([]ipo.Run{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, res.Runs)
	s.Empty(res.Steps)
}

// TestTwoFactorExactness: run count = L0·L1 − |infeasible pairs between 0 and 1|.
func (s *EngineSuite) TestTwoFactorExactness() {
	d, c := s.build([]int{3, 4}, [4]int{0, 0, 1, 0}, [4]int{0, 2, 1, 3})
	res, err := ipo.Generate(d, c)
	s.Require().NoError(err)
	s.Len(res.Runs, 3*4-2)
	s.True(ipo.Verify(d, c, res.Runs).OK())
}

// lowestLevel always starts placeholder scans at level 0.
type lowestLevel struct{}

func (lowestLevel) Intn(int) int { return 0 }

// TestSeedExcludesInfeasible: N=3, [2,2,2], (a1,b1) infeasible ⇒ the seed has
// three runs and each of the three leftover pairs gets its own vertical run.
func (s *EngineSuite) TestSeedExcludesInfeasible() {
	d, c := s.build([]int{2, 2, 2}, [4]int{0, 0, 1, 0})
	res, err := ipo.Generate(d, c, ipo.WithRand(lowestLevel{}))
	s.Require().NoError(err)

	s.Require().Len(res.Steps, 1)
	s.Equal(3, res.Steps[0].HorizontalRuns)
	s.Equal(3, res.Steps[0].Uncovered)
	s.Equal(3, res.Steps[0].VerticalRuns)
	want := []ipo.Run{{0, 1, 0}, {1, 0, 1}, {1, 1, 0}, {0, 1, 1}, {1, 0, 0}, {0, 1, 1}}
	if diff := cmp.Diff(want, res.Runs); diff != "" {
		s.T().Fatalf("runs mismatch (-want +got):\n%s", diff)
	}
	s.NoError(ipo.Verify(d, c, res.Runs).Err())
}

func (s *EngineSuite) TestHorizontalUnsatisfiable() {
	d, c := s.build([]int{2, 2, 2}, [4]int{0, 0, 2, 0}, [4]int{0, 0, 2, 1})
	_, err := ipo.Generate(d, c)
	s.Require().ErrorIs(err, ipo.ErrUnsatisfiable)

	var ue *ipo.UnsatisfiableError
	s.Require().True(errors.As(err, &ue))
	s.Equal(ipo.PhaseHorizontal, ue.Phase)
}

func (s *EngineSuite) TestVerticalUnsatisfiable() {
	d, c := s.build([]int{2, 2, 2}, [4]int{1, 0, 2, 0}, [4]int{1, 1, 2, 0})
	_, err := ipo.Generate(d, c)

	var ue *ipo.UnsatisfiableError
	s.Require().True(errors.As(err, &ue))
	s.Equal(ipo.PhaseVertical, ue.Phase)
}

// TestBruteForceCrossCheck: N=3, [3,5,5] without constraints.
func (s *EngineSuite) TestBruteForceCrossCheck() {
	d, c := s.build([]int{3, 5, 5})
	res, err := ipo.Generate(d, c, ipo.WithSeed(3))
	s.Require().NoError(err)

	rep := ipo.Verify(d, c, res.Runs)
	s.Empty(rep.Missing)
	s.Empty(rep.Incomplete)
	// at least the largest pair product, never more than the full product
	s.GreaterOrEqual(len(res.Runs), 25)
	s.LessOrEqual(len(res.Runs), 3*5*5)
}

func (s *EngineSuite) TestConstraintsFrozen() {
	d, c := s.build([]int{2, 2, 2})
	_, err := ipo.Generate(d, c)
	s.Require().NoError(err)

	err = c.Add(ipo.Value{Param: 0, Level: 0}, ipo.Value{Param: 1, Level: 0})
	s.ErrorIs(err, ipo.ErrFrozen)
}

func (s *EngineSuite) TestDomainMismatch() {
	d, _ := s.build([]int{2, 2, 2})
	_, other := s.build([]int{2, 3, 2})

	_, err := ipo.Generate(d, other)
	s.ErrorIs(err, ipo.ErrConfiguration)

	_, err = ipo.Generate(ipo.Domain{}, nil)
	s.ErrorIs(err, ipo.ErrConfiguration)
}

func (s *EngineSuite) TestNilConstraints() {
	d, _ := s.build([]int{3, 3, 3, 3})
	res, err := ipo.Generate(d, nil)
	s.Require().NoError(err)
	s.True(ipo.Verify(d, nil, res.Runs).OK())
}

// TestMonotonicCoverage: horizontal growth never grows the needed-pair set.
func (s *EngineSuite) TestMonotonicCoverage() {
	d, c := s.build([]int{4, 3, 5, 2, 4, 3}, [4]int{0, 1, 2, 3}, [4]int{3, 0, 5, 2})
	res, err := ipo.Generate(d, c, ipo.WithSeed(11))
	s.Require().NoError(err)

	s.Require().Len(res.Steps, 4)
	for _, st := range res.Steps {
		s.LessOrEqual(st.Uncovered, st.NeededPairs, "factor %d", st.Factor)
		if st.Uncovered == 0 {
			s.Zero(st.VerticalRuns)
		} else {
			s.Positive(st.VerticalRuns)
		}
	}
}

func (s *EngineSuite) TestLoggerReceivesSteps() {
	core, logs := observer.New(zap.DebugLevel)
	d, c := s.build([]int{2, 3, 4})

	_, err := ipo.Generate(d, c, ipo.WithLogger(zap.New(core)))
	s.Require().NoError(err)
	s.Equal(1, logs.FilterMessage("factor processed").Len())
	s.Equal(1, logs.FilterMessage("generation complete").Len())
}

// TestDeterminism: identical seeds reproduce identical run sets.
func TestDeterminism(t *testing.T) {
	t.Parallel()

	levels := []int{3, 4, 5, 2, 6, 3}
	gen := func(seed int64) []ipo.Run {
		d, err := ipo.NewDomain(levels)
		require.NoError(t, err)
		c := ipo.NewConstraints(d)
		require.NoError(t, c.Add(ipo.Value{Param: 0, Level: 1}, ipo.Value{Param: 4, Level: 5}))
		require.NoError(t, c.Add(ipo.Value{Param: 2, Level: 0}, ipo.Value{Param: 3, Level: 1}))
		res, err := ipo.Generate(d, c, ipo.WithSeed(seed))
		require.NoError(t, err)
		require.True(t, ipo.Verify(d, c, res.Runs).OK())
		return res.Runs
	}

	first := gen(42)
	for i := 0; i < 3; i++ {
		if diff := cmp.Diff(first, gen(42)); diff != "" {
			t.Fatalf("non-deterministic run set (-first +this):\n%s", diff)
		}
	}

	// an explicit *rand.Rand with the same seed is the same stream
	d, err := ipo.NewDomain(levels)
	require.NoError(t, err)
	c := ipo.NewConstraints(d)
	require.NoError(t, c.Add(ipo.Value{Param: 0, Level: 1}, ipo.Value{Param: 4, Level: 5}))
	require.NoError(t, c.Add(ipo.Value{Param: 2, Level: 0}, ipo.Value{Param: 3, Level: 1}))
	res, err := ipo.Generate(d, c, ipo.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(first, res.Runs))
}

// TestCoverageProperty: random domains N∈[2,26] without constraints are
// always fully covered.
func TestCoverageProperty(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 40; trial++ {
		n := ipo.MinParameters + r.Intn(ipo.MaxParameters-ipo.MinParameters+1)
		levels := make([]int, n)
		for i := range levels {
			levels[i] = 1 + r.Intn(5)
		}
		d, err := ipo.NewDomain(levels)
		require.NoError(t, err)

		res, err := ipo.Generate(d, nil, ipo.WithSeed(int64(trial)))
		require.NoError(t, err, "levels %v", levels)
		rep := ipo.Verify(d, nil, res.Runs)
		require.True(t, rep.OK(), "levels %v: %d missing, %d incomplete", levels, len(rep.Missing), len(rep.Incomplete))
	}
}

// TestConstraintRespectProperty: with a sprinkling of random infeasible pairs,
// every successful generation avoids them and covers the rest.
func TestConstraintRespectProperty(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(99))
	succeeded := 0
	for trial := 0; trial < 40; trial++ {
		n := 3 + r.Intn(6)
		levels := make([]int, n)
		for i := range levels {
			levels[i] = 2 + r.Intn(4)
		}
		d, err := ipo.NewDomain(levels)
		require.NoError(t, err)
		c := ipo.NewConstraints(d)
		for k := 0; k < 1+r.Intn(3); k++ {
			a := r.Intn(n)
			b := (a + 1 + r.Intn(n-1)) % n
			require.NoError(t, c.Add(
				ipo.Value{Param: a, Level: r.Intn(levels[a])},
				ipo.Value{Param: b, Level: r.Intn(levels[b])},
			))
		}

		res, err := ipo.Generate(d, c, ipo.WithSeed(int64(trial)))
		if err != nil {
			require.ErrorIs(t, err, ipo.ErrUnsatisfiable)
			continue
		}
		succeeded++
		rep := ipo.Verify(d, c, res.Runs)
		require.Empty(t, rep.Violations, "levels %v", levels)
		require.Empty(t, rep.Missing, "levels %v", levels)
		require.Empty(t, rep.Incomplete, "levels %v", levels)
	}
	require.Positive(t, succeeded)
}
