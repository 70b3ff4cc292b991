package catalog_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairwise/catalog"
	"github.com/katalvlaran/pairwise/ipo"
)

func testdata(name string) string { return filepath.Join("testdata", name) }

func TestLoadFactors(t *testing.T) {
	t.Parallel()

	c, err := catalog.LoadFactors(testdata("input_file.csv"))
	require.NoError(t, err)
	require.Len(t, c.Factors(), 3)
	assert.Equal(t, "Browser", c.Heading(1))
	assert.Equal(t, "Opera", c.Label(ipo.Value{Param: 1, Level: 4}))
	assert.Empty(t, c.Label(ipo.Value{Param: 1, Level: 5}))
	assert.Empty(t, c.Heading(3))
	assert.NoError(t, c.Check([]int{3, 5, 5}))
}

func TestLoadFactors_Unreadable(t *testing.T) {
	t.Parallel()

	_, err := catalog.LoadFactors(testdata("invalid_file.csv"))
	require.ErrorIs(t, err, catalog.ErrUnreadable)
	assert.Contains(t, err.Error(), "invalid_file.csv")
}

func TestCheck_Mismatch(t *testing.T) {
	t.Parallel()

	c, err := catalog.LoadFactors(testdata("input_file.csv"))
	require.NoError(t, err)

	err = c.Check([]int{3, 5})
	assert.ErrorIs(t, err, ipo.ErrConfiguration)
	assert.Contains(t, err.Error(), "number of factors")

	err = c.Check([]int{3, 4, 5})
	assert.ErrorIs(t, err, ipo.ErrConfiguration)
	assert.Contains(t, err.Error(), `"Browser"`)
}

func TestReadFactors_Malformed(t *testing.T) {
	t.Parallel()

	_, err := catalog.ReadFactors(strings.NewReader("A;a1\n;b1;b2\n"), "inline")
	assert.ErrorIs(t, err, catalog.ErrMalformedFactor)
}

// TestLookup_Normalization: matching ignores case and whitespace, never
// matches factor names, and the first duplicate wins.
func TestLookup_Normalization(t *testing.T) {
	t.Parallel()

	c, err := catalog.ReadFactors(strings.NewReader("Size;Small;Large\nShape;Round;small\n"), "inline")
	require.NoError(t, err)

	v, err := c.Lookup("  LARGE ")
	require.NoError(t, err)
	assert.Equal(t, ipo.Value{Param: 0, Level: 1}, v)

	v, err = c.Lookup("small")
	require.NoError(t, err)
	assert.Equal(t, ipo.Value{Param: 0, Level: 0}, v)

	_, err = c.Lookup("Shape")
	assert.ErrorIs(t, err, ipo.ErrUnknownValue)
}

func TestReadInfeasible(t *testing.T) {
	t.Parallel()

	pairs, err := catalog.LoadInfeasible(testdata("infeasible_pairs.csv"))
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	assert.Equal(t, catalog.NamePair{First: "ubuntu 22.04", Second: "safari", Line: 2}, pairs[1])

	_, err = catalog.LoadInfeasible(testdata("infeasible_pairs_not_all_pairs.csv"))
	assert.ErrorIs(t, err, catalog.ErrMalformedPair)

	_, err = catalog.LoadInfeasible(testdata("missing.csv"))
	assert.ErrorIs(t, err, catalog.ErrUnreadable)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	c, err := catalog.LoadFactors(testdata("input_file.csv"))
	require.NoError(t, err)
	d, err := ipo.NewDomain([]int{3, 5, 5})
	require.NoError(t, err)

	pairs, err := catalog.LoadInfeasible(testdata("infeasible_pairs.csv"))
	require.NoError(t, err)
	cons, err := c.Resolve(d, pairs)
	require.NoError(t, err)
	assert.Equal(t, 3, cons.Len())
	assert.True(t, cons.Contains(ipo.MakePair(ipo.Value{Param: 1, Level: 2}, ipo.Value{Param: 0, Level: 1})))

	res, err := ipo.Generate(d, cons, ipo.WithSeed(5))
	require.NoError(t, err)
	assert.True(t, ipo.Verify(d, cons, res.Runs).OK())
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	c, err := catalog.LoadFactors(testdata("input_file.csv"))
	require.NoError(t, err)
	d, err := ipo.NewDomain([]int{3, 5, 5})
	require.NoError(t, err)

	pairs, err := catalog.LoadInfeasible(testdata("infeasible_pairs_unspecified_level.csv"))
	require.NoError(t, err)
	_, err = c.Resolve(d, pairs)
	require.ErrorIs(t, err, ipo.ErrUnknownValue)
	assert.Contains(t, err.Error(), "Windows 10 Enterprise")

	_, err = c.Resolve(d, []catalog.NamePair{{First: "Chrome", Second: "Opera", Line: 1}})
	assert.ErrorIs(t, err, ipo.ErrConfiguration)
}
